package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	resultCmd.AddCommand(resultTimeCmd)
	rootCmd.AddCommand(resultCmd)
}

var resultCmd = &cobra.Command{
	Use:   "result",
	Short: "Queries one individual result.",
}

var resultTimeCmd = &cobra.Command{
	Use:   "time <result id>",
	Short: "Shows the swim time of one result.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		swimTime, err := scraper.Result(parseID(args[0])).Time(cmd.Context())
		if err != nil {
			fatal("failed to fetch result", err)
		}
		if swimTime == "" {
			fmt.Println("no time recorded")
			return
		}
		fmt.Println(swimTime)
	},
}
