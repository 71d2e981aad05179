package mediapipe

import (
	"context"
	"fmt"
	"io"

	"github.com/robstonner/mediapipe/pkg/domain"
)

// FrameRunner drives a Node over an ordered sequence of frames. It decouples
// the frame loop from the frontend: set Output for human-readable results,
// or leave it nil and consume the returned packets.
type FrameRunner struct {
	Output io.Writer

	// StopOnError aborts the run at the first failed invocation. When false,
	// failed frames are skipped and the run continues, mirroring a host that
	// treats invalid-argument failures as droppable.
	StopOnError bool
}

// Run opens nothing; the caller is expected to have opened the node. It
// processes frames in order and returns the emitted packets. With
// StopOnError unset, the returned error is the last failure observed, if any.
func (r *FrameRunner) Run(ctx context.Context, node *Node, frames []domain.Packet) ([]domain.Packet, error) {
	var outputs []domain.Packet
	var lastErr error

	for _, frame := range frames {
		out, err := node.Process(ctx, frame)
		if err != nil {
			if r.StopOnError {
				return outputs, err
			}
			lastErr = err
			continue
		}
		outputs = append(outputs, out)

		if r.Output != nil {
			fmt.Fprintf(r.Output, "frame %d:\n%v\n", out.Timestamp(), out.Value())
		}
	}
	return outputs, lastErr
}
