// Package process implements the process command: ingest one or more bank
// CSV exports and emit the classified canonical table.
package process

import (
	"os"

	"github.com/spf13/cobra"

	"lmercier/finpipe/cmd/root"
	"lmercier/finpipe/internal/common"
	"lmercier/finpipe/internal/logging"
	"lmercier/finpipe/internal/pipeline"
	"lmercier/finpipe/internal/report"
)

var (
	useSample   bool
	showSummary bool
)

// Cmd is the process command.
var Cmd = &cobra.Command{
	Use:   "process [files...]",
	Short: "Normalize, deduplicate, clean and classify bank CSV exports",
	Long: `Process reads one or more bank statement CSV exports, maps them onto the
canonical schema, removes internal self-transfers across the whole batch,
cleans the rows and assigns category labels. The result is written as CSV to
the --output file or stdout.`,
	RunE: runProcess,
}

func init() {
	Cmd.Flags().BoolVar(&useSample, "sample", false, "Process the built-in sample dataset")
	Cmd.Flags().BoolVar(&showSummary, "summary", false, "Print an aggregate summary to stderr")
}

func runProcess(cmd *cobra.Command, args []string) error {
	payloads, err := collectPayloads(args)
	if err != nil {
		return err
	}

	p, _, err := root.BuildPipeline()
	if err != nil {
		return err
	}

	enrich, _ := cmd.Flags().GetBool("enrich")
	useEnrichment := enrich || root.Cfg.Enrichment.Enabled

	txs, err := p.Process(cmd.Context(), payloads, useEnrichment)
	if err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	if output != "" {
		if err := common.WriteTransactionsToCSV(txs, output); err != nil {
			return err
		}
		root.Log.WithFields(
			logging.Field{Key: "file", Value: output},
			logging.Field{Key: "rows", Value: len(txs)},
		).Info("Wrote classified transactions")
	} else {
		if err := common.MarshalTransactions(txs, os.Stdout); err != nil {
			return err
		}
	}

	if showSummary {
		summary := report.Summarize(txs)
		if err := summary.Write(os.Stderr); err != nil {
			return err
		}
	}
	return nil
}

func collectPayloads(args []string) ([]pipeline.FilePayload, error) {
	if useSample {
		return []pipeline.FilePayload{pipeline.SamplePayload()}, nil
	}

	payloads := make([]pipeline.FilePayload, 0, len(args))
	for _, path := range args {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		payloads = append(payloads, pipeline.FilePayload{Name: path, Content: content})
	}
	return payloads, nil
}
