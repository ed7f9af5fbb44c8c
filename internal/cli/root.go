// Package cli implements the etymology command-line tool.
package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/etymology-backend/internal/app"
	"github.com/heartmarshall/etymology-backend/internal/config"
	"github.com/heartmarshall/etymology-backend/internal/domain"
)

// lookupService is the part of the pipeline the lookup command uses.
type lookupService interface {
	FindEtymologicalConnections(ctx context.Context, word, lang string, bypassCache bool) (*domain.EtymologyResult, error)
	SelectConnections(pool []domain.Connection, maxCount int, prioritizeRoots bool) []domain.Connection
}

// serviceFactory builds the lookup pipeline for a loaded configuration.
type serviceFactory func(cfg *config.Config, logger *slog.Logger) lookupService

func defaultFactory(cfg *config.Config, logger *slog.Logger) lookupService {
	svc, _ := app.NewEtymologyService(cfg, logger)
	return svc
}

type rootOptions struct {
	configPath string
	verbose    bool
	factory    serviceFactory
}

// NewRootCmd creates the etymology command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(defaultFactory)
}

func newRootCmd(factory serviceFactory) *cobra.Command {
	opts := &rootOptions{factory: factory}

	root := &cobra.Command{
		Use:   "etymology",
		Short: "Look up etymological connections between words",
		Long: `Look up the etymological connections of a word across Wiktionary,
a dictionary API and an etymology dictionary, or inspect the offline
cognate tables and language classification.

Examples:
  etymology lookup mother
  etymology lookup Wasser --lang de --max 5 --json
  etymology cognates night --targets de,la,grc
  etymology classify "Old English" got ine-pro`,
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to a YAML config file (default: $CONFIG_PATH or ./config.yaml)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log pipeline progress to stderr")

	root.AddCommand(
		newLookupCmd(opts),
		newCognatesCmd(),
		newClassifyCmd(),
	)
	return root
}

// loadConfig reads configuration for commands that reach the network.
// Logs go to stderr at warn level unless --verbose is set.
func (o *rootOptions) loadConfig(stderr io.Writer) (*config.Config, *slog.Logger, error) {
	cfg, err := loadFrom(o.configPath)
	if err != nil {
		return nil, nil, err
	}
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	return cfg, logger, nil
}

func loadFrom(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFrom(path)
}
