package league

import (
	"encoding/json"
	"math"
)

// DefaultWinPoints is what a single win adds to a team's points.
const DefaultWinPoints = 2

// Scenario limits. MaxOvers is the longest limited-overs format and
// MaxScore sits well above any innings played in one.
const (
	MaxOvers = 50
	MaxScore = 1000
)

// maxRuns bounds a team's season runs so adding a scenario score cannot
// overflow int on any platform.
const maxRuns = math.MaxInt32 - MaxScore

// Team represents a side in the league with its season aggregates.
type Team struct {
	Name         string  `json:"name"`
	Played       int     `json:"played"`
	Win          int     `json:"won"`
	Lose         int     `json:"lost"`
	Points       int     `json:"points"`
	NRR          float64 `json:"nrr"`
	RunsFor      int     `json:"runsFor"`
	OversFor     Overs   `json:"oversFor"`
	RunsAgainst  int     `json:"runsAgainst"`
	OversAgainst Overs   `json:"oversAgainst"`
}

// Table is the ordered standings. Position is index + 1.
type Table []*Team

// Scenario holds the hypothetical inputs of one match.
type Scenario struct {
	Overs        int  `json:"overs"`
	Score        int  `json:"score"`
	BattingFirst bool `json:"battingFirst"`
}

// Window is the accepted post-match NRR range, both ends inclusive.
type Window struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Unbounded reports whether the window has no upper cap.
func (w Window) Unbounded() bool {
	return math.IsInf(w.Max, 1)
}

// Contains reports whether nrr lies within the window.
func (w Window) Contains(nrr float64) bool {
	return nrr >= w.Min && nrr <= w.Max
}

// MarshalJSON writes an unbounded cap as null; encoding/json rejects +Inf.
func (w Window) MarshalJSON() ([]byte, error) {
	out := struct {
		Min float64  `json:"min"`
		Max *float64 `json:"max"`
	}{Min: w.Min}
	if !w.Unbounded() {
		out.Max = &w.Max
	}
	return json.Marshal(out)
}

// BattingFirstResult is the range of opponent scores that keep the NRR in
// the window when the team bats first.
type BattingFirstResult struct {
	MinRunsToAllow int     `json:"minRunsToAllow"`
	MaxRunsToAllow int     `json:"maxRunsToAllow"`
	MinNRR         float64 `json:"minNRR"`
	MaxNRR         float64 `json:"maxNRR"`
}

// BowlingFirstResult is the range of chase lengths that keep the NRR in the
// window when the team bowls first.
type BowlingFirstResult struct {
	MinOversToChase float64 `json:"minOversToChase"`
	MaxOversToChase float64 `json:"maxOversToChase"`
	MinBalls        int     `json:"minBalls"`
	MaxBalls        int     `json:"maxBalls"`
	MinNRR          float64 `json:"minNRR"`
	MaxNRR          float64 `json:"maxNRR"`
}
