// Package classify implements the classify command: resolve the category
// pair for a single transaction description.
package classify

import (
	"fmt"

	"github.com/spf13/cobra"

	"lmercier/finpipe/cmd/root"
	"lmercier/finpipe/internal/models"
)

var asEarning bool

// Cmd is the classify command.
var Cmd = &cobra.Command{
	Use:   "classify <description>",
	Short: "Classify a single transaction description",
	Args:  cobra.ExactArgs(1),
	RunE:  runClassify,
}

func init() {
	Cmd.Flags().BoolVar(&asEarning, "earning", false, "Treat the transaction as an inflow for the fallback rule")
}

func runClassify(cmd *cobra.Command, args []string) error {
	_, cls, err := root.BuildPipeline()
	if err != nil {
		return err
	}

	class := models.ClassExpenses
	if asEarning {
		class = models.ClassEarnings
	}

	enrich, _ := cmd.Flags().GetBool("enrich")
	useEnrichment := enrich || root.Cfg.Enrichment.Enabled

	label := cls.ClassifyDescription(cmd.Context(), args[0], class, useEnrichment)
	fmt.Printf("%s / %s\n", label.Category, label.SubCategory)
	return nil
}
