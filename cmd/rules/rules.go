// Package rules implements the rules command: export the active
// classification rule tables to editable YAML files.
package rules

import (
	"github.com/spf13/cobra"

	"lmercier/finpipe/cmd/root"
	"lmercier/finpipe/internal/logging"
	"lmercier/finpipe/internal/store"
)

var (
	keywordsOut string
	fuzzyOut    string
)

// Cmd is the rules command.
var Cmd = &cobra.Command{
	Use:   "rules",
	Short: "Inspect and export the classification rule tables",
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the active keyword and fuzzy rule tables to YAML files",
	Long: `Export writes the rule tables the classifier is currently using (the
configured files, or the built-in defaults when none are configured) to YAML
files that can be edited and pointed at via rules.keywords_file and
rules.fuzzy_file.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&keywordsOut, "keywords", "keywords.yaml", "Destination file for the keyword table")
	exportCmd.Flags().StringVar(&fuzzyOut, "fuzzy", "fuzzy.yaml", "Destination file for the fuzzy-target table")
	Cmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	src := store.NewRuleStore(root.Cfg.Rules.KeywordsFile, root.Cfg.Rules.FuzzyFile, root.Log)
	dst := store.NewRuleStore(keywordsOut, fuzzyOut, root.Log)

	if err := exportRules(src, dst); err != nil {
		return err
	}

	root.Log.WithFields(
		logging.Field{Key: "keywords", Value: keywordsOut},
		logging.Field{Key: "fuzzy", Value: fuzzyOut},
	).Info("Exported classification rules")
	return nil
}

// exportRules copies the active tables from src to dst, preserving rule
// order.
func exportRules(src, dst *store.RuleStore) error {
	keywordRules, err := src.LoadKeywordRules()
	if err != nil {
		return err
	}
	if err := dst.SaveKeywordRules(keywordRules); err != nil {
		return err
	}

	fuzzyTargets, err := src.LoadFuzzyTargets()
	if err != nil {
		return err
	}
	return dst.SaveFuzzyTargets(fuzzyTargets)
}
