package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	swimrankings "github.com/MauroDruwel/Swimrankings"
	"github.com/MauroDruwel/Swimrankings/internal/configutil"
)

// Config tunes the scraper; every field falls back to the scraper's
// built-in default when zero.
type Config struct {
	BaseURL       string  `json:"base_url"`
	MaxRequests   int     `json:"max_requests"`
	WindowSeconds float64 `json:"window_seconds"`
	MaxAgeSeconds float64 `json:"max_age_seconds"`
	StaleOnError  bool    `json:"stale_on_error"`
}

var (
	configPath *string
	debug      *bool

	scraper *swimrankings.Scraper
)

var rootCmd = &cobra.Command{
	Use:   "swimrankings-cli",
	Short: "swimrankings-cli queries swimrankings.net from the command line.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initSlog(*debug)
		scraper = createScraper(*configPath)
	},
}

func init() {
	configPath = rootCmd.PersistentFlags().String(
		"config", "swimrankings.json5", "The scraper configuration file to read.")
	debug = rootCmd.PersistentFlags().Bool(
		"debug", false, "Enable debug logging.")
}

func initSlog(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
	slog.SetDefault(logger)
}

func createScraper(configPath string) *swimrankings.Scraper {
	cfg, err := configutil.Read[Config](configPath)
	if err != nil && !os.IsNotExist(err) {
		fatal("failed to read config", err)
	}

	s, err := swimrankings.New(swimrankings.Options{
		BaseURL:      cfg.BaseURL,
		MaxRequests:  cfg.MaxRequests,
		Window:       time.Duration(cfg.WindowSeconds * float64(time.Second)),
		MaxAge:       time.Duration(cfg.MaxAgeSeconds * float64(time.Second)),
		StaleOnError: cfg.StaleOnError,
	})
	if err != nil {
		fatal("failed to initialize scraper", err)
	}
	return s
}

func fatal(message string, err error) {
	slog.Error(message, "err", err.Error())
	os.Exit(1)
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
