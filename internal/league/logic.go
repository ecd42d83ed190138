// internal/league/logic.go
package league

import (
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/shopspring/decimal"
)

// Round rounds v half away from zero to the given decimal places.
func Round(v float64, places int32) float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return v
	}
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

// RunRate returns the net run rate for the given aggregates.
func RunRate(runsFor int, oversFor float64, runsAgainst int, oversAgainst float64) (float64, error) {
	if oversFor <= 0 || oversAgainst <= 0 {
		return 0, ErrNoOvers
	}
	return float64(runsFor)/oversFor - float64(runsAgainst)/oversAgainst, nil
}

// ComputeNRR recomputes the team's net run rate from its aggregates,
// rounded to three decimals.
func (t *Team) ComputeNRR() (float64, error) {
	nrr, err := RunRate(t.RunsFor, t.OversFor.Float(), t.RunsAgainst, t.OversAgainst.Float())
	if err != nil {
		return 0, fmt.Errorf("%s: %w", t.Name, err)
	}
	return Round(nrr, 3), nil
}

// Validate rejects scenarios whose arithmetic is undefined or whose scan
// would run past MaxOvers or MaxScore.
func (s Scenario) Validate() error {
	if s.Overs <= 0 || s.Overs > MaxOvers {
		return fmt.Errorf("%w: got %d, want 1-%d", ErrBadFormat, s.Overs, MaxOvers)
	}
	if s.Score < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeScore, s.Score)
	}
	if s.Score > MaxScore {
		return fmt.Errorf("%w: got %d, max %d", ErrScoreTooHigh, s.Score, MaxScore)
	}
	return nil
}

func checkAggregates(t *Team) error {
	if t.OversFor.IsZero() || t.OversAgainst.IsZero() {
		return fmt.Errorf("%s: %w", t.Name, ErrNoOvers)
	}
	if t.RunsFor < 0 || t.RunsFor > maxRuns || t.RunsAgainst < 0 || t.RunsAgainst > maxRuns {
		return fmt.Errorf("%s: %w: %d for, %d against", t.Name, ErrBadRuns, t.RunsFor, t.RunsAgainst)
	}
	return nil
}

// SimulateBattingFirst scans the opponent's possible scores when the team
// bats first and makes s.Score in s.Overs. The opponent is assumed not to
// pass s.Score, i.e. the team wins the match.
//
// The scan runs from the highest opponent score down, so the first accepted
// score carries the lowest NRR in the window and the last the highest.
// ok is false when no score lands in the window.
func SimulateBattingFirst(t *Team, s Scenario, w Window) (res BattingFirstResult, ok bool, err error) {
	if err := s.Validate(); err != nil {
		return res, false, err
	}
	if err := checkAggregates(t); err != nil {
		return res, false, err
	}

	runsFor := t.RunsFor + s.Score
	oversFor := t.OversFor.Float() + float64(s.Overs)
	oversAgainst := t.OversAgainst.Float() + float64(s.Overs)

	var (
		worstRuns, bestRuns int
		worstNRR, bestNRR   float64
	)
	for runs := s.Score; runs >= 0; runs-- {
		nrr, err := RunRate(runsFor, oversFor, t.RunsAgainst+runs, oversAgainst)
		if err != nil {
			return res, false, err
		}
		if !w.Contains(nrr) {
			continue
		}
		if !ok {
			worstRuns, worstNRR = runs, nrr
			ok = true
		}
		bestRuns, bestNRR = runs, nrr
	}
	if !ok {
		return res, false, nil
	}

	return BattingFirstResult{
		MinRunsToAllow: bestRuns,
		MaxRunsToAllow: worstRuns,
		MinNRR:         Round(worstNRR, 3),
		MaxNRR:         Round(bestNRR, 3),
	}, true, nil
}

// SimulateBowlingFirst scans chase lengths from one ball to the full
// allotment when the opponent bats first and sets s.Score. The opponent's
// innings always counts as the full s.Overs against the team.
//
// Faster chases give a higher NRR, so the first accepted ball count is the
// quickest chase and the last is the slowest still inside the window.
func SimulateBowlingFirst(t *Team, s Scenario, w Window) (res BowlingFirstResult, ok bool, err error) {
	if err := s.Validate(); err != nil {
		return res, false, err
	}
	if err := checkAggregates(t); err != nil {
		return res, false, err
	}

	runsFor := t.RunsFor + s.Score
	runsAgainst := t.RunsAgainst + s.Score
	oversAgainst := t.OversAgainst.Float() + float64(s.Overs)

	var (
		fastBalls, slowBalls int
		fastNRR, slowNRR     float64
	)
	for balls := 1; balls <= s.Overs*BallsPerOver; balls++ {
		chase := float64(balls) / BallsPerOver
		nrr, err := RunRate(runsFor, t.OversFor.Float()+chase, runsAgainst, oversAgainst)
		if err != nil {
			return res, false, err
		}
		if !w.Contains(nrr) {
			continue
		}
		if !ok {
			fastBalls, fastNRR = balls, nrr
			ok = true
		}
		slowBalls, slowNRR = balls, nrr
	}
	if !ok {
		return res, false, nil
	}

	return BowlingFirstResult{
		MinOversToChase: Round(float64(fastBalls)/BallsPerOver, 1),
		MaxOversToChase: Round(float64(slowBalls)/BallsPerOver, 1),
		MinBalls:        fastBalls,
		MaxBalls:        slowBalls,
		MinNRR:          Round(slowNRR, 3),
		MaxNRR:          Round(fastNRR, 3),
	}, true, nil
}

// CalculateTable validates the teams and returns them as standings ordered
// by points, then NRR, then name. Each team's NRR is taken as published;
// sources fill in the ones they lack before calling it.
func CalculateTable(teams []*Team) (Table, error) {
	if len(teams) < 2 {
		return nil, ErrShortTable
	}
	seen := make(map[string]bool, len(teams))
	table := make(Table, 0, len(teams))
	for _, t := range teams {
		if seen[t.Name] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateTeam, t.Name)
		}
		seen[t.Name] = true
		table = append(table, t)
	}

	sort.SliceStable(table, func(i, j int) bool {
		a, b := table[i], table[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.NRR != b.NRR {
			return a.NRR > b.NRR
		}
		return a.Name < b.Name
	})
	return table, nil
}

// Position returns the 1-based rank of the named team, or 0.
func (tb Table) Position(name string) int {
	for i, t := range tb {
		if t.Name == name {
			return i + 1
		}
	}
	return 0
}

// Find returns the named team.
func (tb Table) Find(name string) (*Team, error) {
	if p := tb.Position(name); p > 0 {
		return tb[p-1], nil
	}
	return nil, fmt.Errorf("%w: %s", ErrTeamNotFound, name)
}

// At returns the team at a 1-based position.
func (tb Table) At(pos int) (*Team, error) {
	if pos < 1 || pos > len(tb) {
		return nil, fmt.Errorf("%w: %d not in 1-%d", ErrInvalidPosition, pos, len(tb))
	}
	return tb[pos-1], nil
}

func PrintTable(w io.Writer, label string, table Table) {
	fmt.Fprintln(w, label)
	fmt.Fprintf(w, "%3s %-30s %2s %2s %2s %3s %7s %12s %12s",
		"Pos", "Team", "P", "W", "L", "Pts", "NRR", "For", "Against")
	for i, t := range table {
		fmt.Fprintf(w, "\n%3d %-30s %2d %2d %2d %3d %7.3f %12s %12s",
			i+1,
			t.Name,
			t.Played,
			t.Win,
			t.Lose,
			t.Points,
			t.NRR,
			fmt.Sprintf("%d/%s", t.RunsFor, t.OversFor),
			fmt.Sprintf("%d/%s", t.RunsAgainst, t.OversAgainst),
		)
	}
	fmt.Fprintln(w)
}
