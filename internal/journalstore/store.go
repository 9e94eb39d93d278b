// Package journalstore persists analyzed life situations in SQLite so a
// consumer can rehydrate the engine's in-memory journal across restarts.
// The engine itself never touches this package; durability is a caller
// concern.
package journalstore

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/tsawler/selah"
)

// refSeparator joins suggested verse references into one column.
const refSeparator = "|"

// timeLayout is RFC3339 with a fixed nine-digit fraction so created_at sorts
// chronologically as a string. RFC3339Nano trims trailing zeros, which puts
// whole-second stamps after fractional ones within the same second. Reads
// still parse with RFC3339Nano, which accepts both forms.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Store provides SQLite-backed persistence for analyzed situations.
type Store struct {
	db     *sql.DB
	lookup selah.ScriptureLookup
}

// Open opens (creating if needed) the SQLite database at path.
func Open(path string) (*sql.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("open: path is empty")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open: ping: %w", err)
	}
	return db, nil
}

// New returns a Store bound to an existing database handle. Verse text is
// rehydrated through the supplied lookup; nil means the engine's curated
// lookup.
func New(db *sql.DB, lookup selah.ScriptureLookup) (*Store, error) {
	if db == nil {
		return nil, fmt.Errorf("new store: db is nil")
	}
	if lookup == nil {
		lookup = selah.NewCuratedLookup()
	}
	return &Store{db: db, lookup: lookup}, nil
}

// SaveSituation inserts one analyzed situation.
func (s *Store) SaveSituation(ls selah.LifeSituation) error {
	if ls.ID == "" {
		return fmt.Errorf("save situation: id is empty")
	}

	emotions := make([]string, 0, len(ls.DetectedEmotions))
	for _, state := range ls.DetectedEmotions {
		emotions = append(emotions, string(state))
	}
	refs := make([]string, 0, len(ls.SuggestedVerses))
	for _, verse := range ls.SuggestedVerses {
		refs = append(refs, verse.Reference.String())
	}

	_, err := s.db.Exec(`INSERT INTO situations
		(id, text, dominant, emotions, confidence, guidance, verse_refs, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		ls.ID,
		ls.Text,
		string(ls.DominantEmotion),
		strings.Join(emotions, ","),
		ls.Confidence,
		ls.GuidancePrompt,
		strings.Join(refs, refSeparator),
		ls.Timestamp.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("save situation: insert: %w", err)
	}
	return nil
}

// RecentSituations returns up to limit of the most recent situations in
// insertion order, oldest first, ready to seed the engine's journal.
func (s *Store) RecentSituations(limit int) ([]selah.LifeSituation, error) {
	if limit <= 0 {
		limit = 100
	}

	// created_at is fixed width, so string order is chronological; rowid
	// breaks ties between identical timestamps.
	rows, err := s.db.Query(`SELECT id, text, dominant, emotions, confidence, guidance, verse_refs, created_at
		FROM situations ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent situations: query: %w", err)
	}
	defer rows.Close()

	var out []selah.LifeSituation
	for rows.Next() {
		var (
			ls        selah.LifeSituation
			dominant  string
			emotions  string
			verseRefs string
			createdAt string
		)
		err = rows.Scan(&ls.ID, &ls.Text, &dominant, &emotions, &ls.Confidence, &ls.GuidancePrompt, &verseRefs, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("recent situations: scan: %w", err)
		}

		ls.DominantEmotion = selah.EmotionalState(dominant)
		ls.DetectedEmotions = splitEmotions(emotions)
		ls.SuggestedVerses = s.rehydrateVerses(verseRefs)
		ls.Timestamp, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("recent situations: parse created_at: %w", err)
		}

		out = append(out, ls)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("recent situations: rows: %w", err)
	}

	// The query returns newest first; the journal seeds oldest first.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

// Count returns the number of persisted situations.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM situations`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count situations: %w", err)
	}
	return n, nil
}

// splitEmotions parses the comma-joined detected emotions column.
func splitEmotions(joined string) []selah.EmotionalState {
	if joined == "" {
		return nil
	}
	parts := strings.Split(joined, ",")
	states := make([]selah.EmotionalState, 0, len(parts))
	for _, p := range parts {
		states = append(states, selah.EmotionalState(p))
	}
	return states
}

// rehydrateVerses rebuilds curated verses from their stored references.
// References the lookup cannot resolve keep an empty text rather than
// failing: the reference itself is still useful to the caller.
func (s *Store) rehydrateVerses(joined string) []selah.CuratedVerse {
	if joined == "" {
		return nil
	}
	parts := strings.Split(joined, refSeparator)
	verses := make([]selah.CuratedVerse, 0, len(parts))
	for _, p := range parts {
		ref := selah.ParseReference(p)
		text, _ := s.lookup.ResolveText(ref)
		verses = append(verses, selah.CuratedVerse{Text: text, Reference: ref})
	}
	return verses
}
