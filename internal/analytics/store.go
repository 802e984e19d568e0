// Package analytics is the privacy-conscious visitor tracking store. IP
// addresses are hashed with a per-process salt before they are written, and
// nothing a visitor types into the contact form is recorded.
package analytics

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Visit is one tracked page request.
type Visit struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

// Interaction is one click on an interactive control.
type Interaction struct {
	Section   string    `json:"section"`
	Action    string    `json:"action"`
	Target    string    `json:"target"`
	HashedIP  string    `json:"-"`
	Timestamp time.Time `json:"timestamp"`
}

type InteractionStat struct {
	Section string `json:"section"`
	Action  string `json:"action"`
	Target  string `json:"target"`
	Count   int64  `json:"count"`
}

type Stats struct {
	TotalVisits        int64             `json:"total_visits"`
	UniqueVisitors     int64             `json:"unique_visitors"`
	VisitsToday        int64             `json:"visits_today"`
	VisitsThisWeek     int64             `json:"visits_this_week"`
	ContactSubmissions int64             `json:"contact_submissions"`
	TopInteractions    []InteractionStat `json:"top_interactions"`
	RecentVisits       []Visit           `json:"recent_visits"`
}

const schema = `
CREATE TABLE IF NOT EXISTS visits (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	hashed_ip TEXT NOT NULL,
	user_agent TEXT,
	path TEXT,
	ts INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS visits_ts ON visits(ts);
CREATE TABLE IF NOT EXISTS interactions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	section TEXT NOT NULL,
	action TEXT NOT NULL,
	target TEXT,
	hashed_ip TEXT NOT NULL,
	ts INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS interactions_ts ON interactions(ts);
`

// Store persists visits and interactions in SQLite.
type Store struct {
	db   *sql.DB
	salt string
	now  func() time.Time
}

// Open opens (creating if needed) the database at dsn.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open analytics db: %w", err)
	}
	// SQLite serializes writers; one connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping analytics db: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create analytics schema: %w", err)
	}

	return &Store{db: db, salt: newSalt(), now: time.Now}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func newSalt() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("analytics: cannot read random salt: %v", err))
	}
	return hex.EncodeToString(b)
}

// HashIP returns a stable, truncated hash of ip for this process.
func (s *Store) HashIP(ip string) string {
	h := sha256.New()
	h.Write([]byte(ip + s.salt))
	return hex.EncodeToString(h.Sum(nil))[:16]
}

func (s *Store) RecordVisit(ctx context.Context, v Visit) error {
	if v.Timestamp.IsZero() {
		v.Timestamp = s.now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO visits (hashed_ip, user_agent, path, ts) VALUES (?, ?, ?, ?)`,
		v.HashedIP, v.UserAgent, v.Path, v.Timestamp.Unix())
	if err != nil {
		return fmt.Errorf("record visit: %w", err)
	}
	return nil
}

func (s *Store) RecordInteraction(ctx context.Context, in Interaction) error {
	if in.Timestamp.IsZero() {
		in.Timestamp = s.now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO interactions (section, action, target, hashed_ip, ts) VALUES (?, ?, ?, ?, ?)`,
		in.Section, in.Action, in.Target, in.HashedIP, in.Timestamp.Unix())
	if err != nil {
		return fmt.Errorf("record interaction: %w", err)
	}
	return nil
}

// Stats gathers the dashboard numbers.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	now := s.now().UTC()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	weekAgo := now.Add(-7 * 24 * time.Hour)

	stats := &Stats{}
	counts := []struct {
		dst   *int64
		query string
		args  []any
	}{
		{&stats.TotalVisits, `SELECT COUNT(*) FROM visits`, nil},
		{&stats.UniqueVisitors, `SELECT COUNT(DISTINCT hashed_ip) FROM visits`, nil},
		{&stats.VisitsToday, `SELECT COUNT(*) FROM visits WHERE ts >= ?`, []any{startOfDay.Unix()}},
		{&stats.VisitsThisWeek, `SELECT COUNT(*) FROM visits WHERE ts >= ?`, []any{weekAgo.Unix()}},
		{&stats.ContactSubmissions, `SELECT COUNT(*) FROM interactions WHERE section = 'contact' AND action = 'submit'`, nil},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query, c.args...).Scan(c.dst); err != nil {
			return nil, fmt.Errorf("stats: %w", err)
		}
	}

	top, err := s.TopInteractions(ctx, 10)
	if err != nil {
		return nil, err
	}
	stats.TopInteractions = top

	recent, err := s.RecentVisits(ctx, 50)
	if err != nil {
		return nil, err
	}
	stats.RecentVisits = recent

	return stats, nil
}

func (s *Store) TopInteractions(ctx context.Context, limit int) ([]InteractionStat, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT section, action, COALESCE(target, ''), COUNT(*) AS n
		FROM interactions
		GROUP BY section, action, target
		ORDER BY n DESC, section, action, target
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("top interactions: %w", err)
	}
	defer rows.Close()

	var out []InteractionStat
	for rows.Next() {
		var st InteractionStat
		if err := rows.Scan(&st.Section, &st.Action, &st.Target, &st.Count); err != nil {
			return nil, fmt.Errorf("top interactions: %w", err)
		}
		out = append(out, st)
	}
	return out, rows.Err()
}

func (s *Store) RecentVisits(ctx context.Context, limit int) ([]Visit, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, hashed_ip, COALESCE(user_agent, ''), COALESCE(path, ''), ts
		FROM visits
		ORDER BY ts DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent visits: %w", err)
	}
	defer rows.Close()

	var out []Visit
	for rows.Next() {
		var v Visit
		var ts int64
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &ts); err != nil {
			return nil, fmt.Errorf("recent visits: %w", err)
		}
		v.Timestamp = time.Unix(ts, 0).UTC()
		out = append(out, v)
	}
	return out, rows.Err()
}

// Cleanup deletes visits and interactions older than retention and returns
// the number of rows removed.
func (s *Store) Cleanup(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := s.now().Add(-retention).Unix()

	var total int64
	for _, table := range []string{"visits", "interactions"} {
		res, err := s.db.ExecContext(ctx, `DELETE FROM `+table+` WHERE ts < ?`, cutoff)
		if err != nil {
			return total, fmt.Errorf("cleanup %s: %w", table, err)
		}
		n, _ := res.RowsAffected()
		total += n
	}
	return total, nil
}
