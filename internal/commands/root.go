// Package commands provides the CLI surface for chat-insights.
package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/chat-insights/internal/analyzer"
	"github.com/nguyentantai21042004/chat-insights/internal/config"
	"github.com/nguyentantai21042004/chat-insights/internal/logger"
	"github.com/nguyentantai21042004/chat-insights/internal/processor"
	"github.com/nguyentantai21042004/chat-insights/internal/summarizer"
	"github.com/nguyentantai21042004/chat-insights/internal/watcher"
)

var (
	// Global flags
	configFlag  string
	topKFlag    int
	scopeFlag   string
	reportsFlag string
	watchFlag   bool

	// Version info (set at build time)
	Version   = "0.1.0"
	BuildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "chatinsights [folder]",
	Short: "Summarize User/AI chat transcripts in a folder",
	Long: `chatinsights reads plain-text chat transcripts between a User and an AI
speaker, computes message statistics, extracts the most characteristic
keywords and a topic phrase, and prints one summary block per file.

Files that cannot be read or parsed are skipped with a diagnostic; the
run fails only when the folder itself is missing.

Examples:
  chatinsights ./chat_logs              Summarize every .txt transcript
  chatinsights --top-k 8 ./chat_logs    Report eight keywords per file
  chatinsights --scope all ./chat_logs  Pick the topic from all messages
  chatinsights --docx reports ./logs    Also write .docx reports
  chatinsights --watch ./chat_logs      Keep running, summarize new files`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if v, _ := cmd.Flags().GetBool("version"); v {
			fmt.Printf("chatinsights %s (built %s)\n", Version, BuildTime)
			return nil
		}
		return run(args)
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&configFlag, "config", "c", "", "Path to YAML config file")
	rootCmd.Flags().IntVarP(&topKFlag, "top-k", "k", 0, "Number of keywords to report (default 5)")
	rootCmd.Flags().StringVar(&scopeFlag, "scope", "", "Topic extraction scope: user or all")
	rootCmd.Flags().StringVar(&reportsFlag, "docx", "", "Directory to write .docx reports into")
	rootCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "Watch the folder and summarize new transcripts")
	rootCmd.Flags().BoolP("version", "v", false, "Show version and exit")
}

func run(args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	folder := cfg.Paths.Logs
	if len(args) > 0 {
		folder = args[0]
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log := logger.New(cfg.Logging.Level)
	proc := processor.New(cfg, analyzer.New(cfg, nil), summarizer.New(), log, os.Stdout)

	if err := proc.ProcessAll(ctx, folder); err != nil {
		return err
	}

	if !watchFlag {
		return nil
	}

	w, err := watcher.New(folder, proc.Process, log, cfg.Watch.MaxConcurrent)
	if err != nil {
		return err
	}
	defer w.Stop()

	log.Info(ctx, "Press Ctrl+C to stop")
	if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// loadConfig loads --config if given, falls back to config.yaml when it
// exists, and otherwise runs on defaults.
func loadConfig() (*config.Config, error) {
	path := configFlag
	if path == "" {
		if _, err := os.Stat(config.DefaultPath); err != nil {
			return config.Default(), nil
		}
		path = config.DefaultPath
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func applyFlags(cfg *config.Config) {
	if topKFlag > 0 {
		cfg.Analysis.TopK = topKFlag
	}
	if scopeFlag != "" {
		cfg.Analysis.TopicScope = scopeFlag
	}
	if reportsFlag != "" {
		cfg.Paths.Reports = reportsFlag
	}
}
