package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/tsawler/selah"
	"github.com/tsawler/selah/internal/journalstore"
)

// Version is the current CLI version string.
const Version = "v1.0"

// PrintHelp prints the CLI usage and examples.
func PrintHelp() {
	fmt.Print(`Selah: emotional context analysis with scripture recommendations

Usage:
  selah <command> [args]

Commands:
  help, h        Show this help
  version, -v    Show version
  analyze, a     Analyze a life situation and suggest verses
  journey, j     Show the recorded emotional journey
  trends, t      Summarize emotions over a trailing window

Syntax:
  selah analyze [-category <category>] [text]
  selah journey [limit]
  selah trends [days]

Categories:
  relationships, growth, challenges, purpose, spiritual

Examples:
  selah analyze "I am so anxious about my deadline"
  selah analyze -category relationships "We keep arguing about money"
  selah journey 10
  selah trends 7

Environment:
  SELAH_DB             Journal database path (default selah.db)
  SELAH_HISTORY_LIMIT  Entries kept in memory (default 100)
  SELAH_LOG_LEVEL      debug, info, warn, or error (default warn)
`)
}

// newLogger builds the stderr logger at the configured level.
func newLogger(level string) *log.Logger {
	logger := log.New(os.Stderr)
	switch strings.ToLower(level) {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "info":
		logger.SetLevel(log.InfoLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.WarnLevel)
	}
	return logger
}

// openStore opens the SQLite-backed journal store and returns a close function.
func openStore(cfg Config) (*journalstore.Store, func(), error) {
	sqlDB, err := journalstore.Open(cfg.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open db: %w", err)
	}

	if err := journalstore.Migrate(sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, nil, fmt.Errorf("migrate db: %w", err)
	}

	st, err := journalstore.New(sqlDB, nil)
	if err != nil {
		_ = sqlDB.Close()
		return nil, nil, fmt.Errorf("new store: %w", err)
	}

	closeFn := func() {
		_ = sqlDB.Close()
	}
	return st, closeFn, nil
}

// newAnalyzer builds an analyzer seeded with the persisted journal.
func newAnalyzer(cfg Config, st *journalstore.Store, logger *log.Logger) *selah.Analyzer {
	history, err := st.RecentSituations(cfg.HistoryLimit)
	if err != nil {
		logger.Warn("could not load journal history", "err", err)
	}
	return selah.NewAnalyzer(
		selah.WithLogger(logger),
		selah.WithCapacity(cfg.HistoryLimit),
		selah.WithHistory(history),
	)
}

// parseCategory maps a CLI argument onto a life category.
func parseCategory(s string) (selah.LifeCategory, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, category := range selah.AllLifeCategories {
		if s == string(category) {
			return category, true
		}
	}
	return "", false
}

// cmdAnalyze classifies a situation, prints recommended verses, and records
// the entry in the journal.
func cmdAnalyze(args []string) int {
	var category selah.LifeCategory
	haveCategory := false
	if len(args) > 0 && (args[0] == "-category" || args[0] == "--category") {
		if len(args) < 2 {
			fmt.Fprintln(os.Stderr, "analyze: -category needs a value")
			return 2
		}
		var ok bool
		category, ok = parseCategory(args[1])
		if !ok {
			fmt.Fprintf(os.Stderr, "analyze: unknown category %q\n", args[1])
			return 2
		}
		haveCategory = true
		args = args[2:]
	}

	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		fmt.Print("What's on your heart? ")
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Fprintf(os.Stderr, "analyze: read: %v\n", err)
			return 1
		}
		text = strings.TrimSpace(line)
	}
	if text == "" {
		fmt.Fprintln(os.Stderr, "analyze: text is empty")
		return 1
	}

	cfg := loadConfig()
	logger := newLogger(cfg.LogLevel)

	st, closeDB, err := openStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "analyze: %v\n", err)
		return 1
	}
	defer closeDB()

	analyzer := newAnalyzer(cfg, st, logger)
	situation := analyzer.Analyze(text)

	fmt.Printf("Dominant emotion: %s (confidence %.2f)\n", situation.DominantEmotion, situation.Confidence)
	if len(situation.DetectedEmotions) > 1 {
		others := make([]string, 0, len(situation.DetectedEmotions)-1)
		for _, state := range situation.DetectedEmotions[1:] {
			others = append(others, string(state))
		}
		fmt.Printf("Also detected: %s\n", strings.Join(others, ", "))
	}
	fmt.Printf("\n%s\n", situation.GuidancePrompt)

	recs := analyzer.VersesForMood(situation.DominantEmotion)
	if haveCategory {
		recs = analyzer.VersesForCategory(category, situation.DominantEmotion)
	}
	printRecommendations(recs)

	if err := st.SaveSituation(situation); err != nil {
		fmt.Fprintf(os.Stderr, "analyze: save: %v\n", err)
		return 1
	}
	return 0
}

// printRecommendations writes scored verses to stdout, strongest first.
func printRecommendations(recs []selah.VerseRecommendation) {
	if len(recs) == 0 {
		return
	}
	fmt.Println()
	fmt.Println("Recommended verses:")
	for i, rec := range recs {
		fmt.Printf("%d. %s (relevance %.2f)\n", i+1, rec.Verse.Reference.String(), rec.RelevanceScore)
		fmt.Printf("   %s\n", rec.Verse.Text)
		fmt.Printf("   %s\n", rec.Reason)
		if rec.Application != "" {
			fmt.Printf("   Apply: %s\n", rec.Application)
		}
	}
}

// cmdJourney prints the persisted emotional journey, oldest first.
func cmdJourney(args []string) int {
	limit := 0
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			fmt.Fprintln(os.Stderr, "journey: invalid limit")
			return 2
		}
		limit = n
	} else if len(args) > 1 {
		fmt.Fprintln(os.Stderr, "journey: usage: `selah journey [limit]`")
		return 2
	}

	cfg := loadConfig()
	if limit == 0 {
		limit = cfg.HistoryLimit
	}

	st, closeDB, err := openStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "journey: %v\n", err)
		return 1
	}
	defer closeDB()

	situations, err := st.RecentSituations(limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "journey: %v\n", err)
		return 1
	}
	if len(situations) == 0 {
		fmt.Println("No journal entries yet.")
		return 0
	}

	total, err := st.Count()
	if err != nil {
		fmt.Fprintf(os.Stderr, "journey: %v\n", err)
		return 1
	}

	overview := func(s string) string {
		s = strings.ReplaceAll(s, "\n", " ")
		s = strings.TrimSpace(s)
		const max = 60
		if len(s) <= max {
			return s
		}
		return s[:max-1] + "…"
	}

	fmt.Printf("%-17s %-10s %-6s %s\n", "WHEN", "EMOTION", "CONF", "OVERVIEW")
	for _, ls := range situations {
		fmt.Printf("%-17s %-10s %-6.2f %s\n",
			ls.Timestamp.UTC().Format("2006-01-02 15:04"),
			ls.DominantEmotion,
			ls.Confidence,
			overview(ls.Text),
		)
	}
	if total > len(situations) {
		fmt.Printf("\nShowing the last %d of %d entries.\n", len(situations), total)
	}
	return 0
}

// cmdTrends summarizes the journal over a trailing day window.
func cmdTrends(args []string) int {
	days := 0
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			fmt.Fprintln(os.Stderr, "trends: invalid day count")
			return 2
		}
		days = n
	} else if len(args) > 1 {
		fmt.Fprintln(os.Stderr, "trends: usage: `selah trends [days]`")
		return 2
	}

	cfg := loadConfig()
	logger := newLogger(cfg.LogLevel)

	st, closeDB, err := openStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "trends: %v\n", err)
		return 1
	}
	defer closeDB()

	analyzer := newAnalyzer(cfg, st, logger)
	report := analyzer.Trends(days)

	fmt.Printf("Last %d days: %d entries\n", report.WindowDays, report.Entries)
	if report.Entries == 0 {
		return 0
	}

	fmt.Println()
	fmt.Println("Emotions:")
	for _, count := range report.Counts {
		fmt.Printf("  %-10s x%d\n", count.State, count.Count)
	}
	fmt.Printf("\nConfidence: mean %.2f, stddev %.2f\n", report.MeanConfidence, report.StdDevConfidence)

	if len(report.TopThemes) > 0 {
		terms := make([]string, 0, len(report.TopThemes))
		for _, theme := range report.TopThemes {
			terms = append(terms, theme.Term)
		}
		fmt.Printf("Recurring themes: %s\n", strings.Join(terms, ", "))
	}
	return 0
}

// main dispatches CLI commands to their corresponding handlers.
func main() {
	// Load .env if present; the real environment wins.
	_ = godotenv.Load()

	args := os.Args[1:]
	if len(args) == 0 {
		PrintHelp()
		return
	}

	cmd := args[0]
	rest := args[1:]

	switch cmd {
	case "help", "h":
		PrintHelp()
		return

	case "version", "-v":
		fmt.Println("Selah " + Version)
		return

	case "analyze", "a":
		os.Exit(cmdAnalyze(rest))

	case "journey", "j":
		os.Exit(cmdJourney(rest))

	case "trends", "t":
		os.Exit(cmdTrends(rest))

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		PrintHelp()
		os.Exit(2)
	}
}
