package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/MauroDruwel/Swimrankings/cmd/swimrankings-cli/utils"
)

var athleteSeason *string

func init() {
	athleteSeason = athleteBestsCmd.Flags().String(
		"season", "", "A season year like 2024, or empty for all seasons.")

	athleteCmd.AddCommand(athleteBestsCmd)
	athleteCmd.AddCommand(athleteDetailsCmd)
	athleteCmd.AddCommand(athleteMeetsCmd)
	rootCmd.AddCommand(athleteCmd)
}

func parseID(arg string) int {
	id, err := strconv.Atoi(arg)
	if err != nil {
		fatal("invalid id", err)
	}
	return id
}

var athleteCmd = &cobra.Command{
	Use:   "athlete",
	Short: "Queries one athlete's detail pages.",
}

var athleteBestsCmd = &cobra.Command{
	Use:   "bests <athlete id> [--season <year>]",
	Short: "Lists an athlete's personal best per event and course.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		records, err := scraper.Athlete(parseID(args[0])).
			PersonalBests(cmd.Context(), *athleteSeason)
		if err != nil {
			fatal("failed to fetch personal bests", err)
		}
		utils.RenderRecords([]string{
			"result_id", "event_name", "course_length", "time", "FINA Points",
		}, records)
	},
}

var athleteDetailsCmd = &cobra.Command{
	Use:   "details <athlete id>",
	Short: "Shows an athlete's identity block.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		records, err := scraper.Athlete(parseID(args[0])).PersonalDetails(cmd.Context())
		if err != nil {
			fatal("failed to fetch personal details", err)
		}

		t := utils.NewTable()
		for _, record := range records {
			for key, value := range record {
				t.AppendRow([]any{key, value})
			}
		}
		t.Render()
	},
}

var athleteMeetsCmd = &cobra.Command{
	Use:   "meets <athlete id>",
	Short: "Lists the meets an athlete participated in.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		records, err := scraper.Athlete(parseID(args[0])).Meets(cmd.Context())
		if err != nil {
			fatal("failed to fetch athlete meets", err)
		}
		utils.RenderRecords([]string{
			"meet_id", "meet_date", "meet_city", "meet_name",
		}, records)
	},
}
