// Package cmd holds the portfolio command line.
package cmd

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/config"
)

//nolint:gochecknoglobals // Cobra boilerplate
var verbose bool

//nolint:gochecknoglobals // Cobra boilerplate
var contentPath string

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Serve a single-page personal portfolio",
	Long: `portfolio serves a single-page personal portfolio: hero, projects showcase,
skills panel, contact section and a projects gallery modal.

Content comes from a TOML file (--content or PORTFOLIO_CONTENT) or, when none
is given, from the profile compiled into the binary.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringVar(&contentPath, "content", "", "content TOML file (default $PORTFOLIO_CONTENT, else built-in)")
}

// newLogger builds the process logger. --verbose wins over LOG_LEVEL.
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	lvl, err := config.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if verbose {
		lvl = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// resolveContentPath prefers the flag over the environment.
func resolveContentPath(cfg config.Config) string {
	if contentPath != "" {
		return contentPath
	}
	return cfg.ContentPath
}
