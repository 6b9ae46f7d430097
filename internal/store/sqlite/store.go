// Package sqlite persists generated board layouts in SQLite.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/katalvlaran/nlbtt/gridgraph"
	"github.com/katalvlaran/nlbtt/internal/store/sqlite/migrations"
	"github.com/katalvlaran/nlbtt/internal/store/sqlitemigrate"
	"github.com/katalvlaran/nlbtt/layout"
)

var (
	// ErrNotFound indicates no layout matched the lookup.
	ErrNotFound = errors.New("store: layout not found")
	// ErrAlreadyExists indicates a layout with the same params and seed is stored.
	ErrAlreadyExists = errors.New("store: layout already exists")
	// ErrDisconnected indicates a layout whose occupied cells are not 4-connected.
	ErrDisconnected = errors.New("store: layout is not connected")
)

// Record is one stored layout. Params and Seed fully determine Grid.
type Record struct {
	ID        int64
	Params    layout.Params
	Seed      int64
	Grid      *layout.Grid
	Occupied  int
	CreatedAt time.Time
}

// Store persists layouts in SQLite.
type Store struct {
	sqlDB *sql.DB
}

// Open opens a SQLite layout store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(context.Background(), sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Save inserts rec and returns its ID. The grid must match the params'
// dimensions and be 4-connected.
func (s *Store) Save(ctx context.Context, rec Record) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}
	if rec.Grid == nil {
		return 0, fmt.Errorf("grid is required")
	}
	p := rec.Params
	if rec.Grid.Width() != p.Width || rec.Grid.Height() != p.Height {
		return 0, fmt.Errorf("grid is %dx%d, params say %dx%d",
			rec.Grid.Width(), rec.Grid.Height(), p.Width, p.Height)
	}
	if err := requireConnected(rec.Grid); err != nil {
		return 0, err
	}
	createdAt := rec.CreatedAt.UTC()
	if rec.CreatedAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	res, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO layouts (
		   width, height, start_x, start_y, waypoints,
		   min_radius, max_radius, orthogonal_prob, diagonal_prob,
		   seed, cells, occupied, created_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Width, p.Height, p.Start.X, p.Start.Y, p.Waypoints,
		p.MinRadius, p.MaxRadius, p.OrthogonalProb, p.DiagonalProb,
		rec.Seed, encodeCells(rec.Grid), rec.Grid.Count(), createdAt.UnixMilli(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrAlreadyExists
		}
		return 0, fmt.Errorf("save layout: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("save layout: last insert id: %w", err)
	}
	return id, nil
}

const selectColumns = `SELECT id, width, height, start_x, start_y, waypoints,
	min_radius, max_radius, orthogonal_prob, diagonal_prob,
	seed, cells, occupied, created_at FROM layouts`

// Get returns one layout by ID.
func (s *Store) Get(ctx context.Context, id int64) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	row := s.sqlDB.QueryRowContext(ctx, selectColumns+` WHERE id = ?`, id)
	return scanRecord(row)
}

// FindBySeed returns the stored layout generated from exactly p and seed.
func (s *Store) FindBySeed(ctx context.Context, p layout.Params, seed int64) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	row := s.sqlDB.QueryRowContext(ctx, selectColumns+`
		WHERE width = ? AND height = ? AND start_x = ? AND start_y = ? AND waypoints = ?
		  AND min_radius = ? AND max_radius = ? AND orthogonal_prob = ? AND diagonal_prob = ?
		  AND seed = ?`,
		p.Width, p.Height, p.Start.X, p.Start.Y, p.Waypoints,
		p.MinRadius, p.MaxRadius, p.OrthogonalProb, p.DiagonalProb, seed,
	)
	return scanRecord(row)
}

// List returns up to limit layouts, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be greater than zero")
	}
	rows, err := s.sqlDB.QueryContext(ctx, selectColumns+` ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list layouts: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list layouts: %w", err)
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (Record, error) {
	var (
		rec       Record
		cells     string
		createdAt int64
	)
	p := &rec.Params
	err := row.Scan(
		&rec.ID, &p.Width, &p.Height, &p.Start.X, &p.Start.Y, &p.Waypoints,
		&p.MinRadius, &p.MaxRadius, &p.OrthogonalProb, &p.DiagonalProb,
		&rec.Seed, &cells, &rec.Occupied, &createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, fmt.Errorf("scan layout: %w", err)
	}
	grid, err := decodeCells(cells, p.Width, p.Height)
	if err != nil {
		return Record{}, fmt.Errorf("layout %d: %w", rec.ID, err)
	}
	rec.Grid = grid
	rec.CreatedAt = time.UnixMilli(createdAt).UTC()
	return rec, nil
}

// encodeCells renders the grid row-major (y, then x) as '0'/'1'.
func encodeCells(g *layout.Grid) string {
	var sb strings.Builder
	sb.Grow(g.Width() * g.Height())
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if g.Occupied(x, y) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
	}
	return sb.String()
}

func decodeCells(cells string, width, height int) (*layout.Grid, error) {
	if width <= 0 || height <= 0 || len(cells) != width*height {
		return nil, fmt.Errorf("cells length %d does not match %dx%d", len(cells), width, height)
	}
	g := layout.NewGrid(width, height)
	for i := 0; i < len(cells); i++ {
		switch cells[i] {
		case '1':
			g.Set(i%width, i/width, true)
		case '0':
		default:
			return nil, fmt.Errorf("invalid cell byte %q at %d", cells[i], i)
		}
	}
	return g, nil
}

func requireConnected(g *layout.Grid) error {
	if g.Count() == 0 {
		return ErrDisconnected
	}
	gg, err := gridgraph.NewGridGraph(g.Rows(), gridgraph.DefaultGridOptions())
	if err != nil {
		return fmt.Errorf("analyse layout: %w", err)
	}
	if !gg.IsConnected() {
		return ErrDisconnected
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}
