package shell

import (
	"fmt"
	"io"

	"github.com/utakatalp/nrr-simulator/internal/league"
)

const rule = "================================================"

// PrintSummary writes the match summary block for an evaluation.
func PrintSummary(w io.Writer, ev league.Evaluation) {
	toss := ev.Team.Name + " BOWLS first"
	if ev.Scenario.BattingFirst {
		toss = ev.Team.Name + " BATS first"
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "================ MATCH SUMMARY =================")
	fmt.Fprintf(w, "Your Team        : %s\n", ev.Team.Name)
	fmt.Fprintf(w, "Opponent Team    : %s\n", ev.Opponent.Name)
	fmt.Fprintf(w, "Overs / Format   : %d-over match\n", ev.Scenario.Overs)
	fmt.Fprintf(w, "Toss Result      : %s\n", toss)
	fmt.Fprintf(w, "Score Entered    : %d runs\n", ev.Scenario.Score)
	fmt.Fprintln(w, "------------------------------------------------")
	fmt.Fprintf(w, "Current Position : %d\n", ev.Position)
	fmt.Fprintf(w, "Current Points   : %d\n", ev.Team.Points)
	fmt.Fprintf(w, "Current NRR      : %.3f\n", ev.Team.NRR)
	fmt.Fprintln(w, "------------------------------------------------")
	fmt.Fprintf(w, "Desired Position : %d (%s)\n", ev.Desired, ev.Target.Name)
	fmt.Fprintf(w, "Target Points    : %d\n", ev.Target.Points)
	fmt.Fprintf(w, "Target NRR       : %.3f\n", ev.Target.NRR)
	if ev.Window.Unbounded() {
		fmt.Fprintf(w, "NRR You Need     : >= %.3f\n", ev.Window.Min)
	} else {
		fmt.Fprintf(w, "NRR You Need     : %.3f to %.3f\n", ev.Window.Min, ev.Window.Max)
	}
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)
}

// PrintScenario writes the narrative for the simulated toss outcome.
func PrintScenario(w io.Writer, ev league.Evaluation) {
	team, opp := ev.Team.Name, ev.Opponent.Name
	overs, score := ev.Scenario.Overs, ev.Scenario.Score

	if ev.Scenario.BattingFirst {
		fmt.Fprintf(w, "Scenario: if %s bat first and score %d runs in %d overs...\n", team, score, overs)
		if !ev.Feasible {
			fmt.Fprintln(w, "x Cannot reach desired position in this batting-first scenario.")
			return
		}
		r := ev.Batting
		fmt.Fprintf(w, "- %s need to restrict %s between %d and %d runs in %d overs.\n",
			team, opp, r.MinRunsToAllow, r.MaxRunsToAllow, overs)
		fmt.Fprintf(w, "- Revised NRR of %s will be between %.3f and %.3f.\n", team, r.MinNRR, r.MaxNRR)
		return
	}

	fmt.Fprintf(w, "Scenario: if %s bat first and score %d runs in %d overs...\n", opp, score, overs)
	if !ev.Feasible {
		fmt.Fprintln(w, "x Cannot reach desired position in this bowling-first scenario.")
		return
	}
	r := ev.Bowling
	fmt.Fprintf(w, "- %s need to chase %d runs between %.1f and %.1f overs (%s to %s).\n",
		team, score, r.MinOversToChase, r.MaxOversToChase,
		league.OversFromBalls(r.MinBalls), league.OversFromBalls(r.MaxBalls))
	fmt.Fprintf(w, "- Revised NRR for %s will be between %.3f and %.3f.\n", team, r.MinNRR, r.MaxNRR)
}
