package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	swimrankings "github.com/MauroDruwel/Swimrankings"
	"github.com/MauroDruwel/Swimrankings/cmd/swimrankings-cli/utils"
)

var clubRoster *string

func init() {
	clubRoster = clubAthletesCmd.Flags().String(
		"roster", "current", "Which roster to list: current, men or women.")

	clubCmd.AddCommand(clubAthletesCmd)
	rootCmd.AddCommand(clubCmd)
}

var clubCmd = &cobra.Command{
	Use:   "club",
	Short: "Queries one club's ranking pages.",
}

func parseRoster(s string) swimrankings.Roster {
	switch s {
	case "current":
		return swimrankings.RosterCurrent
	case "men":
		return swimrankings.RosterAllMen
	case "women":
		return swimrankings.RosterAllWomen
	default:
		fatal("invalid roster", fmt.Errorf("unknown roster %q", s))
		return swimrankings.RosterCurrent
	}
}

var clubAthletesCmd = &cobra.Command{
	Use:   "athletes <club id> [--roster current|men|women]",
	Short: "Lists the athletes registered with a club.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		records, err := scraper.Club(parseID(args[0])).
			Athletes(cmd.Context(), parseRoster(*clubRoster))
		if err != nil {
			fatal("failed to fetch club athletes", err)
		}
		utils.RenderRecords([]string{"athlete_id", "athlete_name"}, records)
	},
}
