// Package notestore persists notes in a SQLite database.
//
// The pure Go driver (modernc.org/sqlite) is used by default. Building with
// -tags cgo_sqlite switches to mattn/go-sqlite3.
package notestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no note has the requested name.
var ErrNotFound = errors.New("note not found")

type Note struct {
	ID        string
	Name      string
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (creating if needed) the database at path and applies the
// schema. ":memory:" opens a private in-memory database.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	// An in-memory database lives and dies with its connection.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db, now: time.Now}, nil
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Get returns the note called name. Names are compared after trimming
// surrounding whitespace, as they are stored.
func (s *Store) Get(ctx context.Context, name string) (Note, error) {
	name = normalizeName(name)
	row := s.db.QueryRowContext(ctx,
		"SELECT id, name, body, created_at, updated_at FROM notes WHERE name=?", name)
	n, err := scanNote(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Note{}, fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	if err != nil {
		return Note{}, fmt.Errorf("get %q: %w", name, err)
	}
	return n, nil
}

// GetOrCreate returns the note called name, creating an empty one when it does
// not exist yet.
func (s *Store) GetOrCreate(ctx context.Context, name string) (Note, error) {
	n, err := s.Get(ctx, name)
	if err == nil {
		return n, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return Note{}, err
	}
	return s.create(ctx, name, "")
}

// Save stores body under name, creating the note when needed.
func (s *Store) Save(ctx context.Context, name, body string) (Note, error) {
	name = normalizeName(name)
	if name == "" {
		return Note{}, errors.New("save: empty note name")
	}

	now := s.timestamp()
	res, err := s.db.ExecContext(ctx,
		"UPDATE notes SET body=?, updated_at=? WHERE name=?", body, now.UnixNano(), name)
	if err != nil {
		return Note{}, fmt.Errorf("save %q: %w", name, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return s.create(ctx, name, body)
	}
	return s.Get(ctx, name)
}

// List returns every note, most recently updated first.
func (s *Store) List(ctx context.Context) ([]Note, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, body, created_at, updated_at FROM notes ORDER BY updated_at DESC, name")
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	var out []Note
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("list notes: %w", err)
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return out, nil
}

// Delete removes the note called name.
func (s *Store) Delete(ctx context.Context, name string) error {
	name = normalizeName(name)
	res, err := s.db.ExecContext(ctx, "DELETE FROM notes WHERE name=?", name)
	if err != nil {
		return fmt.Errorf("delete %q: %w", name, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	return nil
}

func (s *Store) create(ctx context.Context, name, body string) (Note, error) {
	name = normalizeName(name)
	if name == "" {
		return Note{}, errors.New("create: empty note name")
	}

	now := s.timestamp()
	n := Note{
		ID:        uuid.NewString(),
		Name:      name,
		Body:      body,
		CreatedAt: now,
		UpdatedAt: now,
	}
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO notes(id, name, body, created_at, updated_at) VALUES(?, ?, ?, ?, ?)",
		n.ID, n.Name, n.Body, now.UnixNano(), now.UnixNano())
	if err != nil {
		return Note{}, fmt.Errorf("create %q: %w", name, err)
	}
	return n, nil
}

func normalizeName(name string) string { return strings.TrimSpace(name) }

// timestamp returns the current time at the precision stored in the
// database.
func (s *Store) timestamp() time.Time {
	return time.Unix(0, s.now().UnixNano()).UTC()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanNote(sc scanner) (Note, error) {
	var (
		n                Note
		created, updated int64
	)
	if err := sc.Scan(&n.ID, &n.Name, &n.Body, &created, &updated); err != nil {
		return Note{}, err
	}
	n.CreatedAt = time.Unix(0, created).UTC()
	n.UpdatedAt = time.Unix(0, updated).UTC()
	return n, nil
}
