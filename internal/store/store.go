package store

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/utakatalp/nrr-simulator/internal/league"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Store wraps a SQL connection holding the standings table.
type Store struct {
	DB     *sql.DB
	driver string
}

// NewStore opens a connection using the given driver and connection string.
func NewStore(ctx context.Context, driver, dsn string) (*Store, error) {
	switch driver {
	case DriverPostgres, DriverSQLite:
	default:
		return nil, fmt.Errorf("unsupported driver %q", driver)
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// verify early
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return &Store{DB: db, driver: driver}, nil
}

func (s *Store) Close() error {
	return s.DB.Close()
}

var placeholder = regexp.MustCompile(`\$(\d+)`)

// rebind rewrites $N placeholders into SQLite's ?N form.
func (s *Store) rebind(q string) string {
	if s.driver != DriverSQLite {
		return q
	}
	return placeholder.ReplaceAllString(q, "?$1")
}

// Migrate creates the standings table if it does not exist.
func (s *Store) Migrate(ctx context.Context) error {
	const q = `
	CREATE TABLE IF NOT EXISTS standings (
        name          TEXT    PRIMARY KEY,
        played        INT     NOT NULL DEFAULT 0,
        won           INT     NOT NULL DEFAULT 0,
        lost          INT     NOT NULL DEFAULT 0,
        points        INT     NOT NULL DEFAULT 0,
        nrr           DOUBLE PRECISION NOT NULL DEFAULT 0,
        runs_for      INT     NOT NULL DEFAULT 0,
        overs_for     TEXT    NOT NULL DEFAULT '0',
        runs_against  INT     NOT NULL DEFAULT 0,
        overs_against TEXT    NOT NULL DEFAULT '0'
    );`
	if _, err := s.DB.ExecContext(ctx, q); err != nil {
		return fmt.Errorf("migrating: %w", err)
	}
	return nil
}

// InsertTeams upserts the given teams in one transaction.
func (s *Store) InsertTeams(ctx context.Context, teams []*league.Team) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin InsertTeams tx: %w", err)
	}
	defer tx.Rollback()

	q := s.rebind(`
    INSERT INTO standings (name, played, won, lost, points, nrr, runs_for, overs_for, runs_against, overs_against)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    ON CONFLICT (name) DO UPDATE SET
        played        = excluded.played,
        won           = excluded.won,
        lost          = excluded.lost,
        points        = excluded.points,
        nrr           = excluded.nrr,
        runs_for      = excluded.runs_for,
        overs_for     = excluded.overs_for,
        runs_against  = excluded.runs_against,
        overs_against = excluded.overs_against
    `)
	for _, t := range teams {
		if _, err := tx.ExecContext(ctx, q,
			t.Name, t.Played, t.Win, t.Lose, t.Points, t.NRR,
			t.RunsFor, t.OversFor.String(), t.RunsAgainst, t.OversAgainst.String(),
		); err != nil {
			return fmt.Errorf("inserting team %s: %w", t.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit InsertTeams tx: %w", err)
	}
	return nil
}

// GetTeams returns every stored team in table order.
func (s *Store) GetTeams(ctx context.Context) ([]*league.Team, error) {
	const q = `
    SELECT
      name,
      played,
      won,
      lost,
      points,
      nrr,
      runs_for,
      overs_for,
      runs_against,
      overs_against
    FROM standings
    ORDER BY
      points DESC,
      nrr    DESC,
      name   ASC
    `
	rows, err := s.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("querying table: %w", err)
	}
	defer rows.Close()

	var teams []*league.Team
	for rows.Next() {
		t := &league.Team{}
		var oversFor, oversAgainst string
		if err := rows.Scan(
			&t.Name,
			&t.Played,
			&t.Win,
			&t.Lose,
			&t.Points,
			&t.NRR,
			&t.RunsFor,
			&oversFor,
			&t.RunsAgainst,
			&oversAgainst,
		); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		if t.OversFor, err = league.ParseOvers(oversFor); err != nil {
			return nil, fmt.Errorf("team %s overs_for: %w", t.Name, err)
		}
		if t.OversAgainst, err = league.ParseOvers(oversAgainst); err != nil {
			return nil, fmt.Errorf("team %s overs_against: %w", t.Name, err)
		}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}
	return teams, nil
}

// GetTable loads the stored teams as standings.
func (s *Store) GetTable(ctx context.Context) (league.Table, error) {
	teams, err := s.GetTeams(ctx)
	if err != nil {
		return nil, err
	}
	return league.CalculateTable(teams)
}

func (s *Store) DeleteAllTeams(ctx context.Context) error {
	_, err := s.DB.ExecContext(ctx, `DELETE FROM standings;`)
	if err != nil {
		return fmt.Errorf("deleting all teams: %w", err)
	}
	return nil
}
