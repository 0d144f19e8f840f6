package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/MauroDruwel/Swimrankings/cmd/swimrankings-cli/utils"
)

var (
	racesEvent    *string
	racesGender   *string
	resultsEvent  *string
	resultsGender *string
	resultsRace   *int
)

func init() {
	racesEvent = meetRacesCmd.Flags().String(
		"event", "", "The event id as returned by `meet events`.")
	racesGender = meetRacesCmd.Flags().String(
		"gender", "m", "The gender of the event (m or f).")
	meetRacesCmd.MarkFlagRequired("event")

	resultsEvent = meetResultsCmd.Flags().String(
		"event", "", "The event id as returned by `meet events`.")
	resultsGender = meetResultsCmd.Flags().String(
		"gender", "m", "The gender of the event (m or f).")
	resultsRace = meetResultsCmd.Flags().Int(
		"race", 1, "The race number as returned by `meet races`.")
	meetResultsCmd.MarkFlagRequired("event")

	meetCmd.AddCommand(meetClubsCmd)
	meetCmd.AddCommand(meetEventsCmd)
	meetCmd.AddCommand(meetRacesCmd)
	meetCmd.AddCommand(meetResultsCmd)
	rootCmd.AddCommand(meetCmd)
}

var meetCmd = &cobra.Command{
	Use:   "meet",
	Short: "Queries one meet's detail pages.",
}

var meetClubsCmd = &cobra.Command{
	Use:   "clubs <meet id>",
	Short: "Lists the clubs that participated in a meet.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		records, err := scraper.Meet(parseID(args[0])).Clubs(cmd.Context())
		if err != nil {
			fatal("failed to fetch meet clubs", err)
		}
		utils.RenderRecords([]string{"club_id", "club_name"}, records)
	},
}

var meetEventsCmd = &cobra.Command{
	Use:   "events <meet id>",
	Short: "Lists the events swum at a meet.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		records, err := scraper.Meet(parseID(args[0])).Events(cmd.Context())
		if err != nil {
			fatal("failed to fetch meet events", err)
		}
		utils.RenderRecords([]string{"event_id", "event_gender", "event_name"}, records)
	},
}

var meetRacesCmd = &cobra.Command{
	Use:   "races <meet id> --event <event id> [--gender m|f]",
	Short: "Lists the races swum for one event of a meet.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		records, err := scraper.Meet(parseID(args[0])).
			Races(cmd.Context(), *racesEvent, parseGender(*racesGender))
		if err != nil {
			fatal("failed to fetch meet races", err)
		}
		utils.RenderRecords([]string{"race_id", "race_name"}, records)
	},
}

var meetResultsCmd = &cobra.Command{
	Use:   "results <meet id> --event <event id> [--gender m|f] [--race <n>]",
	Short: "Lists the results of one race of one event.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		records, err := scraper.Meet(parseID(args[0])).
			Results(cmd.Context(), *resultsEvent, parseGender(*resultsGender), *resultsRace)
		if err != nil {
			fatal("failed to fetch meet results", err)
		}

		// split_times is a slice, flatten it for display
		for _, record := range records {
			if splits, ok := record["split_times"].([]string); ok {
				record["split_times"] = strings.Join(splits, ", ")
			}
		}
		utils.RenderRecords([]string{
			"result_id", "athlete_id", "name", "club_name", "time", "split_times",
		}, records)
	},
}
