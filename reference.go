package selah

import (
	"fmt"
	"strconv"
	"strings"
)

// A BookID is the canonical lowercase identifier of a book in the 66-book
// Protestant canon.
type BookID string

// UnknownBook is the sentinel ID for names outside the canon. Lookup is
// lossy rather than failing: a bad name never produces an error.
const UnknownBook BookID = "unknown"

// A VerseReference locates a single verse within the canon.
type VerseReference struct {
	Book    string // Book name as written in the reference.
	Chapter int    // 1-based chapter number.
	Verse   int    // 1-based verse number.
}

// String renders the reference in "Book Chapter:Verse" form.
func (r VerseReference) String() string {
	return fmt.Sprintf("%s %d:%d", r.Book, r.Chapter, r.Verse)
}

// ID resolves the reference's book name against the canon table,
// case-insensitively. Unrecognized names resolve to UnknownBook.
func (r VerseReference) ID() BookID {
	return CanonicalBook(r.Book)
}

// ParseReference parses a "Book[ Book...] Chapter:Verse" string.
//
// The chapter:verse pair is the final whitespace-delimited token, split on
// ":"; every token before it forms the book name. Missing, malformed, or
// non-positive numbers default to 1. Parsing never fails.
func ParseReference(ref string) VerseReference {
	parts := strings.Fields(ref)
	if len(parts) == 0 {
		return VerseReference{Chapter: 1, Verse: 1}
	}

	book := strings.Join(parts[:len(parts)-1], " ")

	cv := strings.SplitN(parts[len(parts)-1], ":", 2)
	chapter := positiveAtoi(cv[0])
	verse := 1
	if len(cv) == 2 {
		verse = positiveAtoi(cv[1])
	}

	return VerseReference{Book: book, Chapter: chapter, Verse: verse}
}

// positiveAtoi parses a 1-based number, defaulting to 1 on any failure.
func positiveAtoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// CanonicalBook maps a book name onto its canonical ID, case-insensitively.
// Names outside the canon resolve to UnknownBook.
func CanonicalBook(name string) BookID {
	if id, ok := canonByName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return id
	}
	return UnknownBook
}

// canonBook pairs a canonical ID with its display name.
type canonBook struct {
	ID   BookID
	Name string
}

// canonBooks lists the 66-book canon in biblical order.
var canonBooks = []canonBook{
	// ── Old Testament ──
	{"genesis", "Genesis"},
	{"exodus", "Exodus"},
	{"leviticus", "Leviticus"},
	{"numbers", "Numbers"},
	{"deuteronomy", "Deuteronomy"},
	{"joshua", "Joshua"},
	{"judges", "Judges"},
	{"ruth", "Ruth"},
	{"1-samuel", "1 Samuel"},
	{"2-samuel", "2 Samuel"},
	{"1-kings", "1 Kings"},
	{"2-kings", "2 Kings"},
	{"1-chronicles", "1 Chronicles"},
	{"2-chronicles", "2 Chronicles"},
	{"ezra", "Ezra"},
	{"nehemiah", "Nehemiah"},
	{"esther", "Esther"},
	{"job", "Job"},
	{"psalms", "Psalms"},
	{"proverbs", "Proverbs"},
	{"ecclesiastes", "Ecclesiastes"},
	{"song-of-solomon", "Song of Solomon"},
	{"isaiah", "Isaiah"},
	{"jeremiah", "Jeremiah"},
	{"lamentations", "Lamentations"},
	{"ezekiel", "Ezekiel"},
	{"daniel", "Daniel"},
	{"hosea", "Hosea"},
	{"joel", "Joel"},
	{"amos", "Amos"},
	{"obadiah", "Obadiah"},
	{"jonah", "Jonah"},
	{"micah", "Micah"},
	{"nahum", "Nahum"},
	{"habakkuk", "Habakkuk"},
	{"zephaniah", "Zephaniah"},
	{"haggai", "Haggai"},
	{"zechariah", "Zechariah"},
	{"malachi", "Malachi"},

	// ── New Testament ──
	{"matthew", "Matthew"},
	{"mark", "Mark"},
	{"luke", "Luke"},
	{"john", "John"},
	{"acts", "Acts"},
	{"romans", "Romans"},
	{"1-corinthians", "1 Corinthians"},
	{"2-corinthians", "2 Corinthians"},
	{"galatians", "Galatians"},
	{"ephesians", "Ephesians"},
	{"philippians", "Philippians"},
	{"colossians", "Colossians"},
	{"1-thessalonians", "1 Thessalonians"},
	{"2-thessalonians", "2 Thessalonians"},
	{"1-timothy", "1 Timothy"},
	{"2-timothy", "2 Timothy"},
	{"titus", "Titus"},
	{"philemon", "Philemon"},
	{"hebrews", "Hebrews"},
	{"james", "James"},
	{"1-peter", "1 Peter"},
	{"2-peter", "2 Peter"},
	{"1-john", "1 John"},
	{"2-john", "2 John"},
	{"3-john", "3 John"},
	{"jude", "Jude"},
	{"revelation", "Revelation"},
}

// canonAliases maps common alternate spellings onto canonical IDs.
var canonAliases = map[string]BookID{
	"psalm":         "psalms",
	"song of songs": "song-of-solomon",
	"canticles":     "song-of-solomon",
}

// canonByName indexes the canon for case-insensitive name lookup.
var canonByName = func() map[string]BookID {
	m := make(map[string]BookID, len(canonBooks)+len(canonAliases))
	for _, b := range canonBooks {
		m[strings.ToLower(b.Name)] = b.ID
	}
	for alias, id := range canonAliases {
		m[alias] = id
	}
	return m
}()
