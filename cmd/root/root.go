// Package root contains the root command for the application.
package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lmercier/finpipe/internal/classifier"
	"lmercier/finpipe/internal/common"
	"lmercier/finpipe/internal/config"
	"lmercier/finpipe/internal/logging"
	"lmercier/finpipe/internal/pipeline"
	"lmercier/finpipe/internal/schema"
	"lmercier/finpipe/internal/store"
)

var (
	// Log is the shared logger instance for commands.
	Log = logging.GetLogger()

	// Cfg is the loaded application configuration, available to all
	// subcommands after PersistentPreRun.
	Cfg *config.Config

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "finpipe",
		Short: "Normalize, deduplicate and classify bank CSV exports.",
		Long: `finpipe ingests loosely-structured bank statement CSV exports, maps them
onto a canonical transaction schema, removes internal self-transfers and
assigns category labels using keyword, fuzzy and optional remote-enrichment
matching.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to finpipe!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.InitializeConfig()
			if err != nil {
				return err
			}
			Cfg = cfg
			Log = config.ConfigureLogging(cfg)
			common.SetLogger(Log)
			common.SetDelimiter([]rune(cfg.CSV.Delimiter)[0])
			return nil
		},
	}
)

// Init initializes the root command flags.
func Init() {
	Cmd.PersistentFlags().StringP("output", "o", "", "Output CSV file")
	Cmd.PersistentFlags().Bool("enrich", false, "Enable remote enrichment fallback")
}

// BuildPipeline assembles the pipeline from the loaded configuration.
// The cache lives for the process, so repeated commands in one invocation
// share enrichment answers.
func BuildPipeline() (*pipeline.Pipeline, *classifier.Classifier, error) {
	if Cfg == nil {
		return nil, nil, fmt.Errorf("configuration not initialized")
	}

	ruleStore := store.NewRuleStore(Cfg.Rules.KeywordsFile, Cfg.Rules.FuzzyFile, Log)

	var enricher classifier.Enricher
	if httpEnricher := classifier.NewHTTPEnricher(
		Cfg.Enrichment.URL,
		Cfg.Enrichment.APIKey,
		Cfg.EnrichmentTimeout(),
		Log,
	); httpEnricher != nil {
		enricher = httpEnricher
	}

	cls, err := classifier.New(ruleStore, enricher, enrichmentCache, Log)
	if err != nil {
		return nil, nil, err
	}

	p := pipeline.New(schema.NewNormalizer(Log), cls, Cfg.Dedup.ToleranceDays, Log)
	return p, cls, nil
}

// enrichmentCache memoizes remote lookups for the process lifetime.
var enrichmentCache = classifier.NewMemoryCache()

// Exit prints an error and terminates with a non-zero status.
func Exit(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}
