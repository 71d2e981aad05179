package mediapipe

import (
	"context"
	"log/slog"

	"github.com/robstonner/mediapipe/internal/runtime"
	"github.com/robstonner/mediapipe/pkg/calculator"
	"github.com/robstonner/mediapipe/pkg/domain"
)

// Version is the library version, injected at build time for releases.
var Version = "0.1.0-dev"

// Node is the high-level handle to one hosted calculator. It wraps the
// internal runtime host and provides a simplified API for consumers.
type Node struct {
	host        *runtime.Host
	hooks       domain.LifecycleHooks
	logger      *slog.Logger
	runtimeOpts []runtime.Option
}

// Option defines a functional option for configuring a Node.
type Option func(*Node)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(n *Node) {
		n.hooks = hooks
	}
}

// WithLogger sets the structured logger used by the host.
func WithLogger(l *slog.Logger) Option {
	return func(n *Node) {
		n.logger = l
	}
}

// NewNode validates the wiring (stream and side-input tags) against the
// calculator's contract and returns a ready-to-open node. A non-nil error
// is a graph-construction failure; match it with errors.Is against
// domain.ErrConfiguration.
func NewNode(name string, calc calculator.Calculator, streamTags, sideTags []domain.Tag, opts ...Option) (*Node, error) {
	n := &Node{}
	for _, opt := range opts {
		opt(n)
	}

	if n.logger != nil {
		n.runtimeOpts = append(n.runtimeOpts, runtime.WithLogger(n.logger))
	}
	n.runtimeOpts = append(n.runtimeOpts, runtime.WithHooks(n.hooks))

	host, err := runtime.NewHost(name, calc, streamTags, sideTags, n.runtimeOpts...)
	if err != nil {
		return nil, err
	}
	n.host = host
	return n, nil
}

// Open delivers the side-input packets and freezes the node's
// configuration. Must be called once before the first Process.
func (n *Node) Open(ctx context.Context, side map[domain.Tag]domain.Packet) error {
	return n.host.Open(ctx, side)
}

// Process runs one invocation for the given frame and returns the emitted
// packet, stamped per the node's declared offset. An error classified as
// domain.ErrInvalidArgument fails this frame only.
func (n *Node) Process(ctx context.Context, frame domain.Packet) (domain.Packet, error) {
	return n.host.Process(ctx, frame)
}

// Contract exposes the accepted port contract for introspection.
func (n *Node) Contract() *calculator.Contract {
	return n.host.Contract()
}
