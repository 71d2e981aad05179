package mediapipe_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/robstonner/mediapipe"
	"github.com/robstonner/mediapipe/pkg/calculators"
	"github.com/robstonner/mediapipe/pkg/domain"
	"github.com/robstonner/mediapipe/pkg/matrix"
)

func openSubtractNode(t *testing.T, opts ...mediapipe.Option) *mediapipe.Node {
	t.Helper()
	node, err := mediapipe.NewNode("subtract", calculators.NewMatrixSubtract(),
		[]domain.Tag{domain.TagMinuend}, []domain.Tag{domain.TagSubtrahend}, opts...)
	if err != nil {
		t.Fatalf("NewNode failed: %v", err)
	}
	side, _ := matrix.FromRows([][]float64{{1, 1}})
	if err := node.Open(context.Background(), map[domain.Tag]domain.Packet{
		domain.TagSubtrahend: domain.NewPacket(side, 0),
	}); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	return node
}

func TestNewNode_ConfigurationError(t *testing.T) {
	_, err := mediapipe.NewNode("subtract", calculators.NewMatrixSubtract(),
		[]domain.Tag{domain.TagMinuend}, []domain.Tag{domain.TagMinuend})
	if !errors.Is(err, domain.ErrConfiguration) {
		t.Errorf("Expected ErrConfiguration, got %v", err)
	}
}

func TestFrameRunner(t *testing.T) {
	node := openSubtractNode(t)

	frame := func(vals []float64, at domain.Timestamp) domain.Packet {
		m, err := matrix.FromRows([][]float64{vals})
		if err != nil {
			t.Fatalf("FromRows failed: %v", err)
		}
		return domain.NewPacket(m, at)
	}

	t.Run("Preserves Frame Timestamps", func(t *testing.T) {
		runner := &mediapipe.FrameRunner{}
		outs, err := runner.Run(context.Background(), node, []domain.Packet{
			frame([]float64{5, 3}, 0),
			frame([]float64{6, 4}, 100),
			frame([]float64{7, 5}, 250),
		})
		if err != nil {
			t.Fatalf("Run failed: %v", err)
		}
		if len(outs) != 3 {
			t.Fatalf("Expected 3 outputs, got %d", len(outs))
		}
		for i, want := range []domain.Timestamp{0, 100, 250} {
			if outs[i].Timestamp() != want {
				t.Errorf("Output %d at %d, want %d", i, outs[i].Timestamp(), want)
			}
		}
	})

	t.Run("Skips Failed Frames", func(t *testing.T) {
		bad, _ := matrix.FromRows([][]float64{{1}, {2}})
		runner := &mediapipe.FrameRunner{}
		outs, err := runner.Run(context.Background(), node, []domain.Packet{
			frame([]float64{5, 3}, 0),
			domain.NewPacket(bad, 10),
			frame([]float64{6, 4}, 20),
		})
		if !errors.Is(err, domain.ErrInvalidArgument) {
			t.Errorf("Expected ErrInvalidArgument surfaced, got %v", err)
		}
		if len(outs) != 2 {
			t.Errorf("Expected the 2 good frames, got %d outputs", len(outs))
		}
	})

	t.Run("Stop On Error", func(t *testing.T) {
		bad, _ := matrix.FromRows([][]float64{{1}, {2}})
		runner := &mediapipe.FrameRunner{StopOnError: true}
		outs, err := runner.Run(context.Background(), node, []domain.Packet{
			domain.NewPacket(bad, 10),
			frame([]float64{6, 4}, 20),
		})
		if err == nil {
			t.Fatal("Expected error")
		}
		if len(outs) != 0 {
			t.Errorf("Expected no outputs after aborting, got %d", len(outs))
		}
	})

	t.Run("Writes Output", func(t *testing.T) {
		var buf strings.Builder
		runner := &mediapipe.FrameRunner{Output: &buf}
		if _, err := runner.Run(context.Background(), node, []domain.Packet{frame([]float64{5, 3}, 7)}); err != nil {
			t.Fatalf("Run failed: %v", err)
		}
		if !strings.Contains(buf.String(), "frame 7:") {
			t.Errorf("Expected rendered frame header, got %q", buf.String())
		}
	})
}
