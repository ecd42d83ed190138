package store

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/utakatalp/nrr-simulator/internal/league"
)

// standingsFile is the layout of a TOML standings file:
//
//	[[team]]
//	name = "Chennai Super Kings"
//	points = 10
//	nrr = 0.771
//	runs_for = 1130
//	overs_for = "133.1"
//	runs_against = 1071
//	overs_against = "138.5"
//
// nrr may be left out, in which case it is computed from the aggregates.
type standingsFile struct {
	Teams []teamRecord `toml:"team"`
}

type teamRecord struct {
	Name         string       `toml:"name"`
	Played       int          `toml:"played"`
	Win          int          `toml:"won"`
	Lose         int          `toml:"lost"`
	Points       int          `toml:"points"`
	NRR          *float64     `toml:"nrr"`
	RunsFor      int          `toml:"runs_for"`
	OversFor     league.Overs `toml:"overs_for"`
	RunsAgainst  int          `toml:"runs_against"`
	OversAgainst league.Overs `toml:"overs_against"`
}

func (r teamRecord) team() (*league.Team, error) {
	t := &league.Team{
		Name:         r.Name,
		Played:       r.Played,
		Win:          r.Win,
		Lose:         r.Lose,
		Points:       r.Points,
		RunsFor:      r.RunsFor,
		OversFor:     r.OversFor,
		RunsAgainst:  r.RunsAgainst,
		OversAgainst: r.OversAgainst,
	}
	if r.NRR != nil {
		t.NRR = *r.NRR
		return t, nil
	}
	if err := fillNRR(t); err != nil {
		return nil, err
	}
	return t, nil
}

// fillNRR computes the NRR of a team whose source did not publish one.
// A team without overs on both sides has not played and keeps zero.
func fillNRR(t *league.Team) error {
	if t.OversFor.IsZero() || t.OversAgainst.IsZero() {
		return nil
	}
	nrr, err := t.ComputeNRR()
	if err != nil {
		return err
	}
	t.NRR = nrr
	return nil
}

// LoadTOML reads teams from a TOML standings file.
func LoadTOML(path string) ([]*league.Team, error) {
	var f standingsFile
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("decoding %s: unknown keys %v", path, undecoded)
	}
	if len(f.Teams) == 0 {
		return nil, fmt.Errorf("decoding %s: no [[team]] entries", path)
	}

	teams := make([]*league.Team, 0, len(f.Teams))
	for _, r := range f.Teams {
		t, err := r.team()
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", path, err)
		}
		teams = append(teams, t)
	}
	return teams, nil
}
