package league

import (
	"fmt"
	"math"
)

// OvertakeMargin is added to the target team's NRR so that the evaluated
// team finishes strictly above it.
const OvertakeMargin = 0.001

// Standing is the table context a window was derived from.
type Standing struct {
	Team           *Team
	Position       int
	Desired        int
	Target         *Team
	Above          *Team // nil when Desired is 1
	PointsAfterWin int
	Window         Window
}

// DeriveWindow works out the NRR window the named team must land in after a
// win to take the desired position. It returns an *UnreachableError when a
// win leaves the team short of the target on points, whatever the NRR.
//
// The window is capped at the NRR of the team above the desired position
// only when a win would tie it on points; otherwise the team cannot pass it
// and the window is open-ended.
func DeriveWindow(table Table, name string, desired, winPoints int) (Standing, error) {
	var st Standing

	team, err := table.Find(name)
	if err != nil {
		return st, err
	}
	pos := table.Position(name)
	if desired < 1 || desired >= pos {
		return st, fmt.Errorf("%w: %s is at %d, desired position must be between 1 and %d",
			ErrInvalidPosition, name, pos, pos-1)
	}
	target, err := table.At(desired)
	if err != nil {
		return st, err
	}

	st = Standing{
		Team:           team,
		Position:       pos,
		Desired:        desired,
		Target:         target,
		PointsAfterWin: team.Points + winPoints,
	}
	if st.PointsAfterWin < target.Points {
		return st, &UnreachableError{
			Team:           team.Name,
			Target:         target.Name,
			Desired:        desired,
			PointsAfterWin: st.PointsAfterWin,
			TargetPoints:   target.Points,
		}
	}

	st.Window = Window{Min: target.NRR + OvertakeMargin, Max: math.Inf(1)}
	if desired > 1 {
		st.Above = table[desired-2]
		if st.PointsAfterWin == st.Above.Points {
			st.Window.Max = st.Above.NRR
		}
	}
	return st, nil
}
