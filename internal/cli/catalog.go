package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mkravtsov/soundproof-estimator/internal/logging"
)

var catalogJSON bool

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the loaded treatment catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logging.New()
		eng := buildEngine(log)

		items := eng.Catalog().All()
		if catalogJSON {
			return printJSON(items)
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "KEY\tSURFACE\tTIER\tDB\tSTC\tUNIT COST")
		for _, t := range items {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%.0f\t%d\t%.2f\n",
				t.Key, t.SurfaceClass, t.Tier, t.SoundReductionDB, t.STCRating, t.TotalUnitCost)
		}
		return tw.Flush()
	},
}

func init() {
	catalogCmd.Flags().BoolVar(&catalogJSON, "json", false, "Print full catalog as JSON")
	RootCmd.AddCommand(catalogCmd)
}
