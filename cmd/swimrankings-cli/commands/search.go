package commands

import (
	"github.com/spf13/cobra"

	swimrankings "github.com/MauroDruwel/Swimrankings"
	"github.com/MauroDruwel/Swimrankings/cmd/swimrankings-cli/utils"
)

var (
	searchClub   *int
	searchGender *string
)

func init() {
	searchClub = searchCmd.Flags().Int(
		"club", 0, "Restrict the search to one club id.")
	searchGender = searchCmd.Flags().String(
		"gender", "", "Restrict the search to one gender (m or f).")
	rootCmd.AddCommand(searchCmd)
}

func parseGender(s string) swimrankings.Gender {
	switch s {
	case "m":
		return swimrankings.GenderMale
	case "f":
		return swimrankings.GenderFemale
	default:
		return swimrankings.GenderAny
	}
}

var searchCmd = &cobra.Command{
	Use:   "search <last name>",
	Short: "Searches athletes by last name.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		records, err := scraper.SearchAthletes(cmd.Context(), args[0], swimrankings.SearchFilter{
			ClubID: *searchClub,
			Gender: parseGender(*searchGender),
		})
		if err != nil {
			fatal("failed to search athletes", err)
		}
		utils.RenderRecords([]string{
			"athlete_id", "name", "birth_year", "gender", "country_code", "club_name",
		}, records)
	},
}
