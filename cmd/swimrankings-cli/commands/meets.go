package commands

import (
	"github.com/spf13/cobra"

	"github.com/MauroDruwel/Swimrankings/cmd/swimrankings-cli/utils"
)

var (
	listNation *string
	listPeriod *string
)

func init() {
	listNation = meetsListCmd.Flags().String(
		"nation", "", "A nation id as returned by `meets nations`, or empty for all.")
	listPeriod = meetsListCmd.Flags().String(
		"period", "", "A period id as returned by `meets periods`, or empty for recent meets.")

	meetsCmd.AddCommand(meetsListCmd)
	meetsCmd.AddCommand(meetsNationsCmd)
	meetsCmd.AddCommand(meetsPeriodsCmd)
	rootCmd.AddCommand(meetsCmd)
}

var meetsCmd = &cobra.Command{
	Use:   "meets",
	Short: "Queries the meet listing pages.",
}

var meetsListCmd = &cobra.Command{
	Use:   "list [--nation <id>] [--period <id>]",
	Short: "Lists meets for a period, optionally narrowed to a nation.",
	Run: func(cmd *cobra.Command, args []string) {
		records, err := scraper.Meets().List(cmd.Context(), *listNation, *listPeriod)
		if err != nil {
			fatal("failed to fetch meet list", err)
		}
		utils.RenderRecords([]string{
			"meet_id", "meet_date", "meet_city", "meet_name", "course_length",
		}, records)
	},
}

var meetsNationsCmd = &cobra.Command{
	Use:   "nations",
	Short: "Lists the nations meets can be filtered by.",
	Run: func(cmd *cobra.Command, args []string) {
		records, err := scraper.Meets().Nations(cmd.Context())
		if err != nil {
			fatal("failed to fetch nations", err)
		}
		utils.RenderRecords([]string{"nation_id", "nation_name"}, records)
	},
}

var meetsPeriodsCmd = &cobra.Command{
	Use:   "periods",
	Short: "Lists the time periods meets can be listed for.",
	Run: func(cmd *cobra.Command, args []string) {
		records, err := scraper.Meets().TimePeriods(cmd.Context())
		if err != nil {
			fatal("failed to fetch time periods", err)
		}
		utils.RenderRecords([]string{"period_id", "period_name"}, records)
	},
}
