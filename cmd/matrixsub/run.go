package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/robstonner/mediapipe"
	"github.com/robstonner/mediapipe/pkg/calculators"
	"github.com/robstonner/mediapipe/pkg/domain"
	"github.com/robstonner/mediapipe/pkg/matrix"
	"github.com/robstonner/mediapipe/pkg/registry"
)

var (
	flagRows      int
	flagCols      int
	flagFrames    int
	flagInterval  int64
	flagStreamTag string
	flagSeed      int64
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the MatrixSubtract node over randomly generated frames",
	RunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

		if flagRows <= 0 || flagCols <= 0 {
			return fmt.Errorf("rows and cols must be positive, got %dx%d", flagRows, flagCols)
		}
		streamTag := domain.Tag(flagStreamTag)
		if !streamTag.Valid() {
			return fmt.Errorf("unknown stream tag %q (use %s or %s)", flagStreamTag, domain.TagMinuend, domain.TagSubtrahend)
		}
		sideTag := domain.TagSubtrahend
		if streamTag == domain.TagSubtrahend {
			sideTag = domain.TagMinuend
		}

		calc, err := registry.Default.New(calculators.MatrixSubtractName)
		if err != nil {
			return err
		}
		node, err := mediapipe.NewNode("subtract", calc,
			[]domain.Tag{streamTag}, []domain.Tag{sideTag},
			mediapipe.WithLogger(logger))
		if err != nil {
			return err
		}

		rng := rand.New(rand.NewSource(flagSeed))
		side := randomMatrix(rng, flagRows, flagCols)
		logger.Info("side input", "tag", string(sideTag), "rows", flagRows, "cols", flagCols)
		fmt.Printf("side (%s):\n%v\n\n", sideTag, side)

		if err := node.Open(cmd.Context(), map[domain.Tag]domain.Packet{
			sideTag: domain.NewPacket(side, 0),
		}); err != nil {
			return err
		}

		frames := make([]domain.Packet, 0, flagFrames)
		for i := 0; i < flagFrames; i++ {
			frames = append(frames, domain.NewPacket(
				randomMatrix(rng, flagRows, flagCols),
				domain.Timestamp(int64(i)*flagInterval)))
		}

		runner := &mediapipe.FrameRunner{Output: os.Stdout, StopOnError: true}
		_, err = runner.Run(cmd.Context(), node, frames)
		return err
	},
}

func randomMatrix(rng *rand.Rand, rows, cols int) *matrix.Dense {
	m, err := matrix.NewDense(rows, cols)
	if err != nil {
		// Flag validation happens before generation; reaching this is a bug.
		panic(err)
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			_ = m.Set(i, j, float64(rng.Intn(19)-9))
		}
	}
	return m
}

func init() {
	runCmd.Flags().IntVar(&flagRows, "rows", 2, "Matrix row count")
	runCmd.Flags().IntVar(&flagCols, "cols", 3, "Matrix column count")
	runCmd.Flags().IntVar(&flagFrames, "frames", 5, "Number of streamed frames to generate")
	runCmd.Flags().Int64Var(&flagInterval, "interval", 33333, "Timestamp step between frames, in microseconds")
	runCmd.Flags().StringVar(&flagStreamTag, "stream-tag", string(domain.TagMinuend), "Tag on the streamed input (MINUEND or SUBTRAHEND)")
	runCmd.Flags().Int64Var(&flagSeed, "seed", 1, "Random seed for generated matrices")
	rootCmd.AddCommand(runCmd)
}
