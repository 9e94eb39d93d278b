package selah

import "fmt"

// A ScriptureLookup resolves a verse reference to its text.
//
// The engine itself never needs one: recommendations come from the curated
// offline table. Consumers that persist journal contents can use a lookup
// to rehydrate verse text from stored references.
type ScriptureLookup interface {
	ResolveText(ref VerseReference) (string, bool)
}

// CuratedLookup is a ScriptureLookup over the engine's curated guidance
// table. It resolves exactly the references the engine can recommend;
// everything else reports false.
type CuratedLookup struct {
	texts map[string]string
}

// NewCuratedLookup indexes the curated guidance table.
func NewCuratedLookup() *CuratedLookup {
	texts := make(map[string]string)
	for _, verses := range guidanceVerses {
		for _, v := range verses {
			texts[lookupKey(v.Reference)] = v.Text
		}
	}
	return &CuratedLookup{texts: texts}
}

// ResolveText implements ScriptureLookup.
func (l *CuratedLookup) ResolveText(ref VerseReference) (string, bool) {
	text, ok := l.texts[lookupKey(ref)]
	return text, ok
}

// lookupKey normalizes a reference for indexing: canonical book ID plus
// chapter and verse, so alternate book spellings resolve to the same verse.
func lookupKey(ref VerseReference) string {
	return fmt.Sprintf("%s %d:%d", ref.ID(), ref.Chapter, ref.Verse)
}
