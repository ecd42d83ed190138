package store

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/utakatalp/nrr-simulator/internal/league"
)

// Header aliases seen on points-table pages.
var columnAliases = map[string]string{
	"team":    "team",
	"teams":   "team",
	"m":       "played",
	"p":       "played",
	"played":  "played",
	"matches": "played",
	"w":       "won",
	"won":     "won",
	"l":       "lost",
	"lost":    "lost",
	"pts":     "points",
	"points":  "points",
	"nrr":     "nrr",
	"net rr":  "nrr",
	"for":     "for",
	"against": "against",
}

// LoadHTML reads teams from a saved points-table page.
func LoadHTML(path string) ([]*league.Team, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	teams, err := ParseHTML(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return teams, nil
}

// ParseHTML extracts teams from the first table whose header names a team
// column. For and Against cells hold "runs/overs", e.g. "1130/133.1". Data
// rows may carry the team in a <th scope="row"> cell. A missing or empty NRR
// cell is computed from For and Against.
func ParseHTML(r io.Reader) ([]*league.Team, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	var (
		teams    []*league.Team
		parseErr error
		found    bool
	)
	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		columns := map[string]int{}
		table.Find("tr").First().Find("th, td").Each(func(i int, cell *goquery.Selection) {
			key := strings.ToLower(strings.TrimSpace(cell.Text()))
			if col, ok := columnAliases[key]; ok {
				columns[col] = i
			}
		})
		if _, ok := columns["team"]; !ok {
			return true
		}
		found = true

		table.Find("tr").Slice(1, goquery.ToEnd).EachWithBreak(func(rowIdx int, row *goquery.Selection) bool {
			cells := row.Find("th, td")
			if cells.Length() == 0 {
				return true
			}
			text := func(col string) (string, bool) {
				i, ok := columns[col]
				if !ok || i >= cells.Length() {
					return "", false
				}
				return strings.TrimSpace(cells.Eq(i).Text()), true
			}

			t, err := parseRow(text)
			if err != nil {
				parseErr = fmt.Errorf("row %d: %w", rowIdx+1, err)
				return false
			}
			teams = append(teams, t)
			return true
		})
		return false
	})

	if parseErr != nil {
		return nil, parseErr
	}
	if !found {
		return nil, fmt.Errorf("no points table found")
	}
	return teams, nil
}

func parseRow(text func(string) (string, bool)) (*league.Team, error) {
	t := &league.Team{}
	name, _ := text("team")
	if name == "" {
		return nil, fmt.Errorf("missing team name")
	}
	t.Name = name

	ints := []struct {
		col string
		dst *int
	}{
		{"played", &t.Played},
		{"won", &t.Win},
		{"lost", &t.Lose},
		{"points", &t.Points},
	}
	for _, f := range ints {
		s, ok := text(f.col)
		if !ok || s == "" {
			continue
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("%s %s: %w", name, f.col, err)
		}
		*f.dst = n
	}

	var err error
	if s, ok := text("for"); ok {
		if t.RunsFor, t.OversFor, err = parseRunsOvers(s); err != nil {
			return nil, fmt.Errorf("%s for: %w", name, err)
		}
	}
	if s, ok := text("against"); ok {
		if t.RunsAgainst, t.OversAgainst, err = parseRunsOvers(s); err != nil {
			return nil, fmt.Errorf("%s against: %w", name, err)
		}
	}

	s, ok := text("nrr")
	if !ok || s == "" {
		if err := fillNRR(t); err != nil {
			return nil, err
		}
		return t, nil
	}
	if t.NRR, err = strconv.ParseFloat(s, 64); err != nil {
		return nil, fmt.Errorf("%s nrr: %w", name, err)
	}
	return t, nil
}

// parseRunsOvers reads "runs/overs".
func parseRunsOvers(s string) (int, league.Overs, error) {
	runs, overs, ok := strings.Cut(s, "/")
	if !ok {
		return 0, league.Overs{}, fmt.Errorf("want runs/overs, got %q", s)
	}
	n, err := strconv.Atoi(strings.TrimSpace(runs))
	if err != nil {
		return 0, league.Overs{}, err
	}
	o, err := league.ParseOvers(overs)
	if err != nil {
		return 0, league.Overs{}, err
	}
	return n, o, nil
}
