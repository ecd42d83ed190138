package store

import (
	"context"
	"fmt"

	"github.com/utakatalp/nrr-simulator/internal/league"
)

// Source kinds.
const (
	KindBuiltin  = "builtin"
	KindTOML     = "toml"
	KindHTML     = "html"
	KindPostgres = DriverPostgres
	KindSQLite   = DriverSQLite
)

// Source says where the standings come from. Path is used by file kinds,
// DSN by SQL kinds.
type Source struct {
	Kind string
	Path string
	DSN  string
}

func (s Source) String() string {
	switch s.Kind {
	case KindTOML, KindHTML:
		return s.Kind + ":" + s.Path
	default:
		return s.Kind
	}
}

// Load reads the standings once. The returned table is not refreshed.
func Load(ctx context.Context, src Source) (league.Table, error) {
	var (
		teams []*league.Team
		err   error
	)
	switch src.Kind {
	case KindBuiltin, "":
		teams = Builtin()
	case KindTOML:
		teams, err = LoadTOML(src.Path)
	case KindHTML:
		teams, err = LoadHTML(src.Path)
	case KindPostgres, KindSQLite:
		teams, err = loadSQL(ctx, src)
	default:
		return nil, fmt.Errorf("unknown standings source %q", src.Kind)
	}
	if err != nil {
		return nil, fmt.Errorf("loading standings from %s: %w", src, err)
	}

	table, err := league.CalculateTable(teams)
	if err != nil {
		return nil, fmt.Errorf("building standings from %s: %w", src, err)
	}
	return table, nil
}

func loadSQL(ctx context.Context, src Source) ([]*league.Team, error) {
	s, err := NewStore(ctx, src.Kind, src.DSN)
	if err != nil {
		return nil, err
	}
	defer s.Close()
	return s.GetTeams(ctx)
}

// Seed writes teams into the SQL source, creating the table first.
func Seed(ctx context.Context, src Source, teams []*league.Team) error {
	s, err := NewStore(ctx, src.Kind, src.DSN)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Migrate(ctx); err != nil {
		return err
	}
	return s.InsertTeams(ctx, teams)
}
