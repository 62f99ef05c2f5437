package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/mopben/coursematch/internal/ai"
	"github.com/mopben/coursematch/internal/catalog"
	"github.com/mopben/coursematch/internal/config"
	"github.com/mopben/coursematch/internal/match"
	"github.com/mopben/coursematch/internal/recommend"
	"github.com/mopben/coursematch/internal/schedule"
	"github.com/mopben/coursematch/internal/store"
	"github.com/mopben/coursematch/internal/tui"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "coursematch",
	Short: "Course recommendations that fit your schedule",
	Long:  "coursematch takes your current schedule and interests in plain text, filters out courses with time conflicts, and ranks the rest by relevance.",
}

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend courses for a schedule and interests",
	RunE:  runRecommend,
}

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Find courses interactively",
	RunE:  runMatch,
}

var parseCmd = &cobra.Command{
	Use:   "parse [schedule text]",
	Short: "Show how schedule text is understood",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runParse,
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the loaded course catalog",
	RunE:  runCatalog,
}

var importCmd = &cobra.Command{
	Use:   "import [catalog.csv]",
	Short: "Import a CSV catalog into the local cache",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Open config file in your editor",
	RunE:  runConfig,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	recommendCmd.Flags().StringP("schedule", "s", "", "Current schedule as free text")
	recommendCmd.Flags().String("schedule-ics", "", "Import current schedule from an iCalendar URL or file")
	recommendCmd.Flags().StringP("interests", "i", "", "Interests as free text")
	recommendCmd.Flags().String("difficulty", match.Any, "Filter by difficulty")
	recommendCmd.Flags().String("ge-area", match.Any, "Filter by GE area")
	recommendCmd.Flags().Int("min-credits", 0, "Minimum credits (0 = any)")
	recommendCmd.Flags().Int("max-credits", 0, "Maximum credits (0 = any)")
	recommendCmd.Flags().Int("limit", 0, "Maximum results")
	recommendCmd.Flags().String("catalog", "", "Catalog CSV path (overrides config and cache)")

	matchCmd.Flags().String("catalog", "", "Catalog CSV path (overrides config and cache)")
	catalogCmd.Flags().String("catalog", "", "Catalog CSV path (overrides config and cache)")

	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func newProvider(cfg *config.Config, logger *slog.Logger) ai.Provider {
	switch cfg.AI.Provider {
	case "claude-cli":
		return ai.NewClaudeCLI(cfg.AI.Model, logger)
	case "openai-api":
		return ai.NewOpenAIAPI(cfg.AI.APIKey, cfg.AI.Model, logger)
	default:
		return nil // engine defaults to the deterministic provider
	}
}

// loadCatalog resolves the catalog in precedence order: explicit flag, the
// configured CSV path, the sqlite cache, the built-in sample.
func loadCatalog(cfg *config.Config, flagPath string) ([]catalog.Course, error) {
	if flagPath != "" {
		return catalog.LoadCSV(flagPath)
	}
	if cfg.Catalog.Path != "" {
		return catalog.LoadCSV(cfg.Catalog.Path)
	}

	dbPath, err := store.DefaultPath()
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(dbPath); err == nil {
		db, err := store.Open(dbPath)
		if err != nil {
			return nil, err
		}
		defer db.Close()

		n, err := db.CountCourses()
		if err != nil {
			return nil, err
		}
		if n > 0 {
			return db.ListCourses()
		}
	}

	return catalog.Sample(), nil
}

func newEngine(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) (*recommend.Engine, []catalog.Course, error) {
	catalogPath, _ := cmd.Flags().GetString("catalog")
	courses, err := loadCatalog(cfg, catalogPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading catalog: %w", err)
	}

	limit := cfg.Recommend.Limit
	if cmd.Flags().Lookup("limit") != nil {
		if v, _ := cmd.Flags().GetInt("limit"); v > 0 {
			limit = v
		}
	}

	engine := recommend.New(courses, recommend.Options{
		Provider: newProvider(cfg, logger),
		Timeout:  cfg.AI.Timeout(),
		Limit:    limit,
		Logger:   logger,
	})
	return engine, courses, nil
}

func runRecommend(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger()

	engine, _, err := newEngine(cmd, cfg, logger)
	if err != nil {
		return err
	}

	scheduleText, _ := cmd.Flags().GetString("schedule")
	icsSource, _ := cmd.Flags().GetString("schedule-ics")
	interests, _ := cmd.Flags().GetString("interests")
	difficulty, _ := cmd.Flags().GetString("difficulty")
	geArea, _ := cmd.Flags().GetString("ge-area")
	minCredits, _ := cmd.Flags().GetInt("min-credits")
	maxCredits, _ := cmd.Flags().GetInt("max-credits")

	filters := match.Filters{
		Difficulty: difficulty,
		GEArea:     geArea,
		MinCredits: minCredits,
		MaxCredits: maxCredits,
	}

	ctx := context.Background()

	var sessions []schedule.Session
	if icsSource != "" {
		sessions, err = schedule.ImportICS(ctx, icsSource)
		if err != nil {
			return fmt.Errorf("importing schedule: %w", err)
		}
	} else {
		sessions = engine.ExtractSchedule(ctx, scheduleText)
	}

	recs, err := engine.RecommendForSessions(ctx, sessions, interests, filters)
	switch {
	case err == recommend.ErrNoInterests:
		return fmt.Errorf("no interests supplied — pass --interests")
	case err == recommend.ErrEmptyCatalog:
		return fmt.Errorf("no course data loaded — run 'coursematch import' first")
	case err != nil:
		return err
	}

	if len(sessions) > 0 {
		fmt.Println("Understood schedule:")
		for _, s := range sessions {
			fmt.Printf("  %s\n", s)
		}
		fmt.Println()
	}

	if len(recs) == 0 {
		fmt.Println("No courses fit your schedule and interests.")
		return nil
	}

	for i, rec := range recs {
		fmt.Printf("%d. %s — %s\n", i+1, rec.Course.Code, rec.Course.Title)
		fmt.Printf("   %s %s  •  %s  •  %d credits  •  %s\n",
			rec.Course.Days, rec.Course.TimeDisplay(), rec.Course.GEArea, rec.Course.Credits, rec.Course.Difficulty)
		if len(rec.MatchedTerms) > 0 {
			fmt.Printf("   matches: %s\n", strings.Join(rec.MatchedTerms, ", "))
		}
		if rec.Explanation != "" {
			fmt.Printf("   %s\n", rec.Explanation)
		}
	}
	return nil
}

func runMatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger()

	engine, courses, err := newEngine(cmd, cfg, logger)
	if err != nil {
		return err
	}

	app := tui.NewApp(engine, catalog.GEAreas(courses))
	if _, err := tea.NewProgram(app).Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}

func runParse(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")
	sessions := schedule.ParseSchedule(text)
	if len(sessions) == 0 {
		fmt.Println("No sessions understood.")
		return nil
	}
	for _, s := range sessions {
		fmt.Println(s)
	}
	return nil
}

func runCatalog(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	catalogPath, _ := cmd.Flags().GetString("catalog")
	courses, err := loadCatalog(cfg, catalogPath)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	for _, c := range courses {
		fmt.Printf("%-12s %-45s %s %s\n", c.Code, c.Title, c.Days, c.TimeDisplay())
	}
	fmt.Printf("\n%d courses\n", len(courses))
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	courses, err := catalog.LoadCSV(args[0])
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}
	if len(courses) == 0 {
		return fmt.Errorf("catalog %s has no courses", args[0])
	}

	dbPath, err := store.DefaultPath()
	if err != nil {
		return err
	}
	db, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if err := db.ReplaceCourses(courses); err != nil {
		return fmt.Errorf("importing catalog: %w", err)
	}

	fmt.Printf("Imported %d courses from %s\n", len(courses), args[0])
	return nil
}

func runConfig(cmd *cobra.Command, args []string) error {
	if err := config.EnsureConfigDir(); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	configPath, err := config.ConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := config.DefaultConfig()
		data, err := toml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("marshaling default config: %w", err)
		}
		if err := os.WriteFile(configPath, data, 0644); err != nil {
			return fmt.Errorf("writing default config: %w", err)
		}
	}

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vi"
	}

	c := exec.Command(editor, configPath)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	return c.Run()
}
