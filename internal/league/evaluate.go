package league

import "fmt"

// Request is one "what do we need to do" question against the table.
type Request struct {
	Team            string `json:"team"`
	Opponent        string `json:"opponent"`
	DesiredPosition int    `json:"desiredPosition"`
	Scenario
}

// Evaluation is the answer to a Request. Exactly one of Batting and Bowling
// is meaningful, picked by Scenario.BattingFirst, and only when Feasible.
type Evaluation struct {
	Team           *Team               `json:"team"`
	Opponent       *Team               `json:"opponent"`
	Target         *Team               `json:"target"`
	Position       int                 `json:"position"`
	Desired        int                 `json:"desiredPosition"`
	PointsAfterWin int                 `json:"pointsAfterWin"`
	Scenario       Scenario            `json:"scenario"`
	Window         Window              `json:"window"`
	Feasible       bool                `json:"feasible"`
	Batting        *BattingFirstResult `json:"battingFirst,omitempty"`
	Bowling        *BowlingFirstResult `json:"bowlingFirst,omitempty"`
}

// Evaluate applies the position policy and then runs the simulator for the
// requested toss outcome. The points gate is checked before either
// simulator runs.
func Evaluate(table Table, req Request, winPoints int) (Evaluation, error) {
	var ev Evaluation

	if err := req.Scenario.Validate(); err != nil {
		return ev, err
	}
	opp, err := table.Find(req.Opponent)
	if err != nil {
		return ev, fmt.Errorf("opponent: %w", err)
	}
	if req.Opponent == req.Team {
		return ev, fmt.Errorf("%w: %s", ErrSameTeam, req.Team)
	}

	st, err := DeriveWindow(table, req.Team, req.DesiredPosition, winPoints)
	if err != nil {
		return ev, err
	}

	ev = Evaluation{
		Team:           st.Team,
		Opponent:       opp,
		Target:         st.Target,
		Position:       st.Position,
		Desired:        st.Desired,
		PointsAfterWin: st.PointsAfterWin,
		Scenario:       req.Scenario,
		Window:         st.Window,
	}

	if req.BattingFirst {
		res, ok, err := SimulateBattingFirst(st.Team, req.Scenario, st.Window)
		if err != nil {
			return ev, err
		}
		if ok {
			ev.Feasible, ev.Batting = true, &res
		}
		return ev, nil
	}

	res, ok, err := SimulateBowlingFirst(st.Team, req.Scenario, st.Window)
	if err != nil {
		return ev, err
	}
	if ok {
		ev.Feasible, ev.Bowling = true, &res
	}
	return ev, nil
}
