package play

import (
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/mxdubois/sportsball/cmd/internal/cmdutil"
	"github.com/mxdubois/sportsball/game"
	"github.com/mxdubois/sportsball/pqueue"
	"github.com/spf13/cobra"
)

func Command() *cobra.Command {
	settings := pqueue.DefaultSettings()
	cmd := &cobra.Command{
		Use:   "play <roster-file>",
		Short: "Plays a game from a roster file.",
		Long: `Plays a game from a roster file. Each line is either "name/priority",
queueing that player, or "GO!", substituting the highest-priority queued
player into the game.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := cmdutil.Logger()
			if err != nil {
				return err
			}
			start := time.Now()

			f, err := os.Open(args[0])
			if err != nil {
				return errors.Wrapf(err, "opening roster file %q", args[0])
			}
			defer f.Close()

			summary, err := game.Play(logger, f, cmd.OutOrStdout(), settings)
			if err != nil {
				return err
			}
			logger.Info().
				Int("players_left", summary.PlayersLeft).
				Int("resizes", summary.Resizes).
				Int("turns", summary.Turns).
				Dur("elapsed", time.Since(start)).
				Msg("game over")
			return nil
		},
	}
	cmd.PersistentFlags().IntVar(
		&settings.InitialCapacity,
		"initial-capacity",
		settings.InitialCapacity,
		"number of players the queue holds before its first resize",
	)
	cmd.PersistentFlags().IntVar(
		&settings.GrowthStep,
		"step-size",
		settings.GrowthStep,
		"number of slots added to the queue each time it fills up",
	)
	cmdutil.RegisterLoggerFlags(cmd)
	return cmd
}
