package league

import (
	"errors"
	"fmt"
)

var (
	ErrBadOvers            = errors.New("invalid overs notation")
	ErrBadFormat           = errors.New("overs per match out of range")
	ErrNegativeScore       = errors.New("score must not be negative")
	ErrScoreTooHigh        = errors.New("score above limit")
	ErrNoOvers             = errors.New("team has no overs recorded")
	ErrBadRuns             = errors.New("team runs out of range")
	ErrInvalidPosition     = errors.New("invalid desired position")
	ErrTeamNotFound        = errors.New("team not found")
	ErrSameTeam            = errors.New("team and opponent must differ")
	ErrDuplicateTeam       = errors.New("duplicate team in table")
	ErrShortTable          = errors.New("table needs at least two teams")
	ErrUnreachableByPoints = errors.New("position unreachable by points")
)

// UnreachableError reports that a win still leaves the team below the
// target team on points.
type UnreachableError struct {
	Team           string
	Target         string
	Desired        int
	PointsAfterWin int
	TargetPoints   int
}

func (e *UnreachableError) Error() string {
	return fmt.Sprintf("even with a win %s would have %d points, below %s's %d: position %d cannot be reached in one match",
		e.Team, e.PointsAfterWin, e.Target, e.TargetPoints, e.Desired)
}

func (e *UnreachableError) Is(target error) bool {
	return target == ErrUnreachableByPoints
}
