package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ErrNotFound is returned when no memo matches the given id.
var ErrNotFound = errors.New("memo not found")

// ErrAmbiguousID is returned when an id prefix matches more than one
// memo.
var ErrAmbiguousID = errors.New("ambiguous memo id")

// Memo is one stored note.
type Memo struct {
	ID        string
	Text      string
	Tag       string
	Pinned    bool
	CreatedAt time.Time
}

// Add inserts a new memo and returns it with a generated id.
func (s *Store) Add(text, tag string, pinned bool) (Memo, error) {
	m := Memo{
		ID:        uuid.NewString(),
		Text:      text,
		Tag:       tag,
		Pinned:    pinned,
		CreatedAt: time.Now().UTC(),
	}

	_, err := s.db.Exec(
		`INSERT INTO memos (id, text, tag, pinned, created_at) VALUES (?, ?, ?, ?, ?)`,
		m.ID, m.Text, m.Tag, boolToInt(m.Pinned), m.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return Memo{}, fmt.Errorf("insert memo: %w", err)
	}

	logrus.WithFields(logrus.Fields{"id": m.ID, "tag": tag}).Debug("store: memo added")
	return m, nil
}

// Get returns the memo whose id starts with the given prefix. It fails
// with ErrNotFound when nothing matches and ErrAmbiguousID when the
// prefix is not unique.
func (s *Store) Get(idPrefix string) (Memo, error) {
	rows, err := s.db.Query(
		`SELECT id, text, tag, pinned, created_at FROM memos WHERE id LIKE ? LIMIT 2`,
		idPrefix+"%",
	)
	if err != nil {
		return Memo{}, fmt.Errorf("query memo: %w", err)
	}
	defer rows.Close()

	var matches []Memo
	for rows.Next() {
		m, err := scanMemo(rows)
		if err != nil {
			return Memo{}, err
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return Memo{}, fmt.Errorf("scan memos: %w", err)
	}

	switch len(matches) {
	case 0:
		return Memo{}, ErrNotFound
	case 1:
		return matches[0], nil
	default:
		return Memo{}, ErrAmbiguousID
	}
}

// ListFilter narrows List results. Zero values mean no filtering;
// Limit <= 0 means no limit.
type ListFilter struct {
	Tag        string
	PinnedOnly bool
	Limit      int
}

// List returns memos newest first, optionally filtered.
func (s *Store) List(f ListFilter) ([]Memo, error) {
	query := `SELECT id, text, tag, pinned, created_at FROM memos WHERE 1=1`
	var args []any

	if f.Tag != "" {
		query += ` AND tag = ?`
		args = append(args, f.Tag)
	}
	if f.PinnedOnly {
		query += ` AND pinned = 1`
	}
	query += ` ORDER BY created_at DESC, id`
	if f.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, f.Limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list memos: %w", err)
	}
	defer rows.Close()

	var memos []Memo
	for rows.Next() {
		m, err := scanMemo(rows)
		if err != nil {
			return nil, err
		}
		memos = append(memos, m)
	}
	return memos, rows.Err()
}

// Delete removes the memo matching the id prefix.
func (s *Store) Delete(idPrefix string) error {
	m, err := s.Get(idPrefix)
	if err != nil {
		return err
	}

	if _, err := s.db.Exec(`DELETE FROM memos WHERE id = ?`, m.ID); err != nil {
		return fmt.Errorf("delete memo: %w", err)
	}

	logrus.WithField("id", m.ID).Debug("store: memo deleted")
	return nil
}

// SetPinned updates the pinned state of the memo matching the id
// prefix.
func (s *Store) SetPinned(idPrefix string, pinned bool) error {
	m, err := s.Get(idPrefix)
	if err != nil {
		return err
	}

	if _, err := s.db.Exec(`UPDATE memos SET pinned = ? WHERE id = ?`, boolToInt(pinned), m.ID); err != nil {
		return fmt.Errorf("update memo: %w", err)
	}
	return nil
}

// Count returns the total number of stored memos.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM memos`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count memos: %w", err)
	}
	return n, nil
}

func scanMemo(rows *sql.Rows) (Memo, error) {
	var m Memo
	var pinned int
	var created string

	if err := rows.Scan(&m.ID, &m.Text, &m.Tag, &pinned, &created); err != nil {
		return Memo{}, fmt.Errorf("scan memo: %w", err)
	}

	m.Pinned = pinned != 0
	if t, err := time.Parse(time.RFC3339, created); err == nil {
		m.CreatedAt = t
	}
	return m, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
