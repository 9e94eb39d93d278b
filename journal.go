package selah

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bbalet/stopwords"
	"gonum.org/v1/gonum/stat"
)

const (
	// defaultJournalCapacity bounds the history journal.
	defaultJournalCapacity = 100

	// defaultWindowDays is the trailing window for trend queries when the
	// caller does not supply one.
	defaultWindowDays = 30

	// defaultThemeLimit caps how many recurring terms a trend report
	// carries.
	defaultThemeLimit = 5
)

// historyJournal is an append-only, capacity-bounded log of past analyses
// with FIFO eviction. A single RWMutex gives the single-writer /
// multi-reader discipline the engine needs: the writer appends fully-built
// values, readers copy snapshots, and no reader can observe a
// partially-constructed entry.
type historyJournal struct {
	mu       sync.RWMutex
	capacity int
	entries  []LifeSituation
}

func newHistoryJournal(capacity int) *historyJournal {
	if capacity <= 0 {
		capacity = defaultJournalCapacity
	}
	return &historyJournal{
		capacity: capacity,
		entries:  make([]LifeSituation, 0, capacity),
	}
}

// cloneSituation returns a copy whose slice fields share no memory with the
// input, so journal entries cannot be reached through values held by
// callers.
func cloneSituation(ls LifeSituation) LifeSituation {
	ls.DetectedEmotions = append([]EmotionalState(nil), ls.DetectedEmotions...)
	ls.SuggestedVerses = append([]CuratedVerse(nil), ls.SuggestedVerses...)
	return ls
}

// append records a completed analysis, dropping the oldest entries once the
// capacity is exceeded.
func (j *historyJournal) append(ls LifeSituation) {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.entries = append(j.entries, cloneSituation(ls))
	if len(j.entries) > j.capacity {
		j.entries = j.entries[len(j.entries)-j.capacity:]
	}
}

// seed replaces the journal contents with a rehydrated history, oldest
// first, keeping only the most recent entries when the seed exceeds the
// capacity.
func (j *historyJournal) seed(history []LifeSituation) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if len(history) > j.capacity {
		history = history[len(history)-j.capacity:]
	}
	j.entries = j.entries[:0]
	for _, ls := range history {
		j.entries = append(j.entries, cloneSituation(ls))
	}
}

// snapshot returns a copy of the journal in insertion order, oldest first.
// The copies share no memory with the journal, so the caller may mutate
// them freely.
func (j *historyJournal) snapshot() []LifeSituation {
	j.mu.RLock()
	defer j.mu.RUnlock()

	out := make([]LifeSituation, len(j.entries))
	for i, entry := range j.entries {
		out[i] = cloneSituation(entry)
	}
	return out
}

// since returns the entries with timestamps strictly after the cutoff, in
// insertion order. The entries alias the journal and must not be mutated;
// the trend helpers only read them.
func (j *historyJournal) since(cutoff time.Time) []LifeSituation {
	j.mu.RLock()
	defer j.mu.RUnlock()

	var out []LifeSituation
	for _, entry := range j.entries {
		if entry.Timestamp.After(cutoff) {
			out = append(out, entry)
		}
	}
	return out
}

// count reports the current entry count.
func (j *historyJournal) count() int {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return len(j.entries)
}

// countEmotions tallies entries by dominant emotion, ordered by descending
// count. Equal counts keep state declaration order, which makes the result
// deterministic.
func countEmotions(entries []LifeSituation) []EmotionCount {
	tally := make(map[EmotionalState]int, len(AllEmotionalStates))
	for _, entry := range entries {
		tally[entry.DominantEmotion]++
	}

	counts := make([]EmotionCount, 0, len(tally))
	for _, state := range AllEmotionalStates {
		if n := tally[state]; n > 0 {
			counts = append(counts, EmotionCount{State: state, Count: n})
		}
	}
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}

// topThemes counts the recurring non-stopword terms across entry texts and
// returns the most frequent ones, ties alphabetical.
func topThemes(entries []LifeSituation, limit int) []ThemeCount {
	tally := make(map[string]int)
	for _, entry := range entries {
		cleaned := stopwords.CleanString(entry.Text, "en", false)
		for _, term := range strings.Fields(cleaned) {
			tally[term]++
		}
	}

	themes := make([]ThemeCount, 0, len(tally))
	for term, n := range tally {
		themes = append(themes, ThemeCount{Term: term, Count: n})
	}
	sort.Slice(themes, func(i, j int) bool {
		if themes[i].Count != themes[j].Count {
			return themes[i].Count > themes[j].Count
		}
		return themes[i].Term < themes[j].Term
	})
	if limit > 0 && len(themes) > limit {
		themes = themes[:limit]
	}
	return themes
}

// confidenceStats computes the mean and sample standard deviation of entry
// confidences. The deviation needs at least two samples; below that it
// reports 0.
func confidenceStats(entries []LifeSituation) (mean, stddev float64) {
	if len(entries) == 0 {
		return 0, 0
	}
	xs := make([]float64, len(entries))
	for i, entry := range entries {
		xs[i] = entry.Confidence
	}
	mean = stat.Mean(xs, nil)
	if len(xs) > 1 {
		stddev = stat.StdDev(xs, nil)
	}
	return mean, stddev
}
