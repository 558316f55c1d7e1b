package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/lorem/config"
	"github.com/s0up4200/lorem/loremipsum"
)

var (
	cfgFile   string
	cfg       *config.Config
	logger    = zerolog.Nop()
	generator loremipsum.Generator

	version   = "dev"
	buildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "lorem",
	Short: "Generate lorem ipsum placeholder text",
	Long: `lorem fetches generated lorem ipsum placeholder text from the api-ninjas
API, prints it, and can copy it to the clipboard.

The API key is read from the config file (api.key) or the LOREM_API_KEY
environment variable.`,
	SilenceUsage: true,
}

// SetVersion records build information for the version and update commands
func SetVersion(v, bt string) {
	version = v
	buildTime = bt
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.SilenceErrors = true
}

// initializeApp loads the configuration and builds the generator pipeline
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging, os.Stderr)

	client, err := loremipsum.NewClient(cfg.API.Key, logger,
		loremipsum.WithBaseURL(cfg.API.URL),
		loremipsum.WithTimeout(cfg.API.Timeout),
		loremipsum.WithUserAgent(userAgent(cfg.API.UserAgent)),
	)
	if err != nil {
		return fmt.Errorf("failed to create api-ninjas client: %w", err)
	}

	generator = loremipsum.NewUseCase(loremipsum.NewRepository(client, logger))

	logger.Debug().
		Str("url", cfg.API.URL).
		Dur("timeout", cfg.API.Timeout).
		Msg("Generator ready")

	return nil
}

// userAgent appends the build version to the configured user agent
func userAgent(base string) string {
	if base == "" {
		base = loremipsum.DefaultUserAgent
	}
	return base + "/" + version
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig, out *os.File) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(out).Level(level).With().Timestamp().Logger()
	}

	// Console format
	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isTerminal(out),
	}

	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
