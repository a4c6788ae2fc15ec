package bench

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mxdubois/sportsball/cmd/internal/cmdutil"
	"github.com/mxdubois/sportsball/game"
	"github.com/mxdubois/sportsball/pqueue"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func Command() *cobra.Command {
	var (
		workers int
		ops     int
		seed    int64
	)
	settings := pqueue.DefaultSettings()
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Runs synthetic rosters against independent player queues.",
		Long: `Runs synthetic rosters against independent player queues, one queue per
worker, to exercise growth and shrink behavior under churn. Progress is
exported on the metrics endpoint.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := cmdutil.Logger()
			if err != nil {
				return err
			}
			logger = logger.With().Str("run_id", uuid.New().String()).Logger()
			cmdutil.RunMetricsServer(logger)
			start := time.Now()

			g, _ := errgroup.WithContext(context.Background())
			for w := 0; w < workers; w++ {
				w := w
				g.Go(func() error {
					rng := rand.New(rand.NewSource(seed + int64(w)))
					summary, err := game.Play(
						logger, strings.NewReader(roster(rng, w, ops)), io.Discard, settings,
					)
					if err != nil {
						return err
					}
					logger.Info().
						Int("worker", w).
						Int("players_left", summary.PlayersLeft).
						Int("resizes", summary.Resizes).
						Int("turns", summary.Turns).
						Msg("worker done")
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
			logger.Info().
				Int("workers", workers).
				Dur("elapsed", time.Since(start)).
				Msg("bench complete")
			return nil
		},
	}
	cmd.PersistentFlags().IntVar(
		&workers,
		"workers",
		4,
		"number of concurrent workers, each with its own queue",
	)
	cmd.PersistentFlags().IntVar(
		&ops,
		"ops",
		100000,
		"number of roster lines each worker plays",
	)
	cmd.PersistentFlags().Int64Var(
		&seed,
		"seed",
		time.Now().UnixNano(),
		"base seed for the synthetic rosters",
	)
	cmd.PersistentFlags().IntVar(
		&settings.InitialCapacity,
		"initial-capacity",
		settings.InitialCapacity,
		"number of players each queue holds before its first resize",
	)
	cmd.PersistentFlags().IntVar(
		&settings.GrowthStep,
		"step-size",
		settings.GrowthStep,
		"number of slots added to a queue each time it fills up",
	)
	cmdutil.RegisterLoggerFlags(cmd)
	cmdutil.RegisterMetricsFlags(cmd)
	return cmd
}

// roster generates a synthetic roster: roughly one substitution for every
// two arrivals, so the queue both grows and drains.
func roster(rng *rand.Rand, worker, ops int) string {
	var sb strings.Builder
	for i := 0; i < ops; i++ {
		if rng.Intn(3) == 0 {
			sb.WriteString(game.SubPlayerToken)
			sb.WriteByte('\n')
		} else {
			fmt.Fprintf(&sb, "player-%d-%d/%d\n", worker, i, rng.Intn(200)-100)
		}
	}
	return sb.String()
}
