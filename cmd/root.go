package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"

	"github.com/abhisek/notequiz/internal/llm"
	"github.com/abhisek/notequiz/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "notequiz",
	Short: "Turn study notes into vetted quizzes",
	Long: "notequiz generates question/answer quizzes from your notes with an LLM,\n" +
		"scores each attempt and regenerates until the quiz is good enough.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(cmd)
	},
}

// Execute runs the root command. Ctrl-C cancels the command context, which
// stops a running workflow between phases.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides NOTEQUIZ_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file (default $XDG_CONFIG_HOME/notequiz/config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format: text or json")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(notesCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// setupLogging installs the process-wide slog logger on stderr.
func setupLogging(cmd *cobra.Command) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	format, _ := cmd.Flags().GetString("log-format")

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch format {
	case "text", "":
		handler = slog.NewTextHandler(os.Stderr, opts)
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	default:
		return fmt.Errorf("unknown log format %q (want text or json)", format)
	}
	slog.SetDefault(slog.New(handler))
	return nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then NOTEQUIZ_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore resolves the database path and opens it.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// loadLLMConfig applies the config file and environment. With neither
// naming a usable provider, well-known API key variables are probed.
func loadLLMConfig(cmd *cobra.Command) (llm.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	required := path != ""
	if path == "" {
		var err error
		if path, err = llm.DefaultConfigPath(); err != nil {
			return llm.Config{}, err
		}
	}

	cfg, err := llm.LoadConfig(path, required)
	if err != nil {
		return llm.Config{}, err
	}
	if cfg.Validate() != nil && os.Getenv("NOTEQUIZ_LLM_PROVIDER") == "" {
		if discovered, ok := llm.DiscoverConfig(); ok {
			discovered.Retry = cfg.Retry
			discovered.Timeout = cfg.Timeout
			return discovered, nil
		}
	}
	return cfg, nil
}

// newCompleter builds the text completion service, recording every call
// in the store's event log.
func newCompleter(ctx context.Context, cmd *cobra.Command, st *store.Store) (*llm.TextCompleter, error) {
	cfg, err := loadLLMConfig(cmd)
	if err != nil {
		return nil, fmt.Errorf("load LLM config: %w", err)
	}
	provider, err := llm.NewProvider(ctx, cfg, st.EventRepo(), slog.Default())
	if err != nil {
		return nil, fmt.Errorf("LLM provider not configured: %w", err)
	}
	return llm.NewTextCompleter(provider, llm.CompletionOptionsFrom(cfg)), nil
}

// parseID parses a positive integer command argument.
func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid ID %q", arg)
	}
	return id, nil
}
