package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/itunesapi/config"
	"github.com/s0up4200/itunesapi/filter"
	"github.com/s0up4200/itunesapi/transport"
)

var (
	cfgFile   string
	cfg       *config.Config
	logger    zerolog.Logger
	connector transport.Connector

	// Command flags
	outputFormat string
	filterExpr   string
	preset       string
	urlOnly      bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "itunesapi",
	Short: "Query the iTunes Search, Lookup and Feed Generator APIs",
	Long: `itunesapi is a CLI for the public iTunes catalog endpoints.

It searches the catalog by keyword, looks items up by identifier, reads the
ranked lists of the Feed Generator and prints the Genre-ID appendix.`,
	PersistentPreRunE: initializeApp,
	SilenceUsage:      true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "output format: table or json (default from config)")
}

// initializeApp initializes the configuration, the logger and the connector
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Override output format from command line if specified
	if cmd.Flags().Changed("output") {
		if outputFormat != "table" && outputFormat != "json" {
			return fmt.Errorf("invalid output format: %s (must be 'table' or 'json')", outputFormat)
		}
		cfg.Output.Format = outputFormat
	}

	opts := []transport.Option{
		transport.WithTimeout(cfg.HTTP.Timeout),
		transport.WithLogger(logger),
	}
	if cfg.HTTP.UserAgent != "" {
		opts = append(opts, transport.WithUserAgent(cfg.HTTP.UserAgent))
	}
	connector = transport.NewHTTPConnector(opts...)

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "trace":
		level = zerolog.TraceLevel
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format, no colour when stderr is redirected
	fd := os.Stderr.Fd()
	tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !tty,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// commandContext carries the logger so request builders can log through zerolog.Ctx
func commandContext(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return logger.WithContext(ctx)
}

// getFilterExpression determines the filter expression to use
func getFilterExpression() (string, error) {
	// Priority: command line filter > preset > none
	if filterExpr != "" {
		return filterExpr, nil
	}

	if preset != "" {
		if expression, ok := cfg.Filters[strings.ToLower(preset)]; ok {
			return expression, nil
		}
		return "", fmt.Errorf("preset '%s' not found in config", preset)
	}

	return "", nil
}

// compileFilter returns nil when no filter was requested
func compileFilter() (*filter.Filter, error) {
	expression, err := getFilterExpression()
	if err != nil || expression == "" {
		return nil, err
	}

	f, err := filter.Compile(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}
	logger.Debug().Str("filter", f.String()).Msg("Filter compiled")
	return f, nil
}

// addFilterFlags registers the flags shared by the commands that return catalog results
func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression applied to the results")
	cmd.Flags().StringVarP(&preset, "preset", "p", "", "use a saved filter from config")
}

// addURLOnlyFlag registers --url-only
func addURLOnlyFlag(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&urlOnly, "url-only", false, "print the request URL without fetching it")
}
