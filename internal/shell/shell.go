// Package shell runs the interactive question-and-answer flow of the
// calculator on top of the league package.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/utakatalp/nrr-simulator/internal/league"
)

// ErrInputClosed is returned when input ends before the flow completes.
var ErrInputClosed = errors.New("input closed")

// Shell prompts on out and reads answers from in.
type Shell struct {
	in           *bufio.Scanner
	out          io.Writer
	table        league.Table
	winPoints    int
	defaultOvers int
	logger       *slog.Logger
}

func New(in io.Reader, out io.Writer, table league.Table, winPoints, defaultOvers int, logger *slog.Logger) *Shell {
	return &Shell{
		in:           bufio.NewScanner(in),
		out:          out,
		table:        table,
		winPoints:    winPoints,
		defaultOvers: defaultOvers,
		logger:       logger,
	}
}

// Run asks for one scenario and prints the analysis. An unreachable
// position or an infeasible scenario is reported to the user, not returned.
func (s *Shell) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, "=== Cricket NRR Calculator ===")

	s.showTeams()
	team, err := s.askTeam("Select *your* team by number: ")
	if err != nil {
		return err
	}

	s.showTeams()
	var opponent *league.Team
	for {
		opponent, err = s.askTeam("Select opposition team by number: ")
		if err != nil {
			return err
		}
		if opponent.Name != team.Name {
			break
		}
		fmt.Fprintln(s.out, "x  Your team and opponent cannot be the same.")
		fmt.Fprintln(s.out)
	}

	overs, err := s.askInt(fmt.Sprintf("Total Overs per match [%d]: ", s.defaultOvers), s.defaultOvers,
		func(n int) bool { return n > 0 && n <= league.MaxOvers }, fmt.Sprintf("Overs must be between 1 and %d.", league.MaxOvers))
	if err != nil {
		return err
	}

	rank := s.table.Position(team.Name)
	fmt.Fprintf(s.out, "(Your team is currently at position %d)\n", rank)
	if rank == 1 {
		fmt.Fprintf(s.out, "%s already top the table; there is no better position to chase.\n", team.Name)
		return nil
	}

	desired, err := s.askInt(fmt.Sprintf("Desired Table Position (less than %d): ", rank), 0,
		func(n int) bool { return n >= 1 && n < rank },
		fmt.Sprintf("Enter a number between 1 and %d.", rank-1))
	if err != nil {
		return err
	}

	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "Toss Options:")
	fmt.Fprintln(s.out, "  1. Your team BATS first")
	fmt.Fprintln(s.out, "  2. Your team BOWLS first")
	fmt.Fprintln(s.out)
	toss, err := s.askInt("Select toss result (1 or 2): ", 0,
		func(n int) bool { return n == 1 || n == 2 }, "Enter 1 or 2.")
	if err != nil {
		return err
	}

	score, err := s.askInt("Runs Scored or Target to Chase: ", 0,
		func(n int) bool { return n >= 0 && n <= league.MaxScore }, fmt.Sprintf("Score must be between 0 and %d.", league.MaxScore))
	if err != nil {
		return err
	}

	req := league.Request{
		Team:            team.Name,
		Opponent:        opponent.Name,
		DesiredPosition: desired,
		Scenario:        league.Scenario{Overs: overs, Score: score, BattingFirst: toss == 1},
	}
	ev, err := league.Evaluate(s.table, req, s.winPoints)
	var unreachable *league.UnreachableError
	switch {
	case errors.As(err, &unreachable):
		fmt.Fprintf(s.out, "x Even with a win, %s would have %d points, below %s's %d. Position %d cannot be reached in one match.\n",
			unreachable.Team, unreachable.PointsAfterWin, unreachable.Target, unreachable.TargetPoints, unreachable.Desired)
		return nil
	case err != nil:
		return err
	}

	s.logger.DebugContext(ctx, "evaluated scenario",
		slog.String("team", team.Name),
		slog.Int("desired", desired),
		slog.Float64("min_nrr", ev.Window.Min),
		slog.Bool("feasible", ev.Feasible),
	)

	PrintSummary(s.out, ev)
	PrintScenario(s.out, ev)
	return nil
}

func (s *Shell) showTeams() {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "Available Teams:")
	for i, t := range s.table {
		fmt.Fprintf(s.out, "  %d. %s\n", i+1, t.Name)
	}
	fmt.Fprintln(s.out)
}

func (s *Shell) askTeam(question string) (*league.Team, error) {
	n, err := s.askInt(question, 0, func(n int) bool { return n >= 1 && n <= len(s.table) },
		"Please choose a listed number.")
	if err != nil {
		return nil, err
	}
	return s.table[n-1], nil
}

// askInt prompts until valid accepts the answer. An empty answer yields def
// when def is positive.
func (s *Shell) askInt(question string, def int, valid func(int) bool, errMsg string) (int, error) {
	for {
		fmt.Fprint(s.out, question)
		if !s.in.Scan() {
			if err := s.in.Err(); err != nil {
				return 0, err
			}
			return 0, ErrInputClosed
		}
		txt := strings.TrimSpace(s.in.Text())
		if txt == "" && def > 0 {
			return def, nil
		}
		n, err := strconv.Atoi(txt)
		if err == nil && valid(n) {
			return n, nil
		}
		fmt.Fprintf(s.out, "x  %s\n\n", errMsg)
	}
}
