package cmd

import (
	"fmt"
	"os"

	"github.com/mxdubois/sportsball/cmd/bench"
	"github.com/mxdubois/sportsball/cmd/play"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sportsball",
	Short: "Turn-taking demo driven by a dynamically-resized priority queue",
	Long:  `SPORTSBALL! substitutes players into a game in priority order, using a step-resized binary heap that breaks priority ties by arrival order.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(play.Command())
	rootCmd.AddCommand(bench.Command())
}
