// Package runtime hosts a single calculator node: it assembles and checks
// the port contract, opens the node, and dispatches one frame per call.
// It is deliberately not a graph engine. There is no scheduler, no
// multi-node wiring, and no cross-frame ordering beyond the caller's own
// call order.
package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robstonner/mediapipe/pkg/calculator"
	"github.com/robstonner/mediapipe/pkg/domain"
)

// Host drives one calculator through its lifecycle. It is not safe for
// concurrent use; the hosted node expects one invocation at a time.
type Host struct {
	name     string
	calc     calculator.Calculator
	contract *calculator.Contract
	side     map[domain.Tag]domain.Packet
	offset   domain.Timestamp
	opened   bool
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
}

// Option configures a Host.
type Option func(*Host)

// WithLogger sets the structured logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(h *Host) {
		h.logger = l
	}
}

// WithHooks registers observability callbacks.
func WithHooks(hooks domain.LifecycleHooks) Option {
	return func(h *Host) {
		h.hooks = hooks
	}
}

// NewHost validates the wiring against the calculator's contract. A non-nil
// error here is a construction failure: the node must not be invoked.
func NewHost(name string, calc calculator.Calculator, streamTags, sideTags []domain.Tag, opts ...Option) (*Host, error) {
	h := &Host{
		name:   name,
		calc:   calc,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}

	for _, tag := range append(append([]domain.Tag{}, streamTags...), sideTags...) {
		if !tag.Valid() {
			return nil, fmt.Errorf("%w: unknown tag %q on node %s", domain.ErrConfiguration, tag, name)
		}
	}

	contract := calculator.NewContract(streamTags, sideTags)
	if err := calc.Contract(contract); err != nil {
		return nil, fmt.Errorf("contract for node %s: %w", name, err)
	}
	if err := checkContract(name, contract); err != nil {
		return nil, err
	}

	h.contract = contract
	h.logger.Debug("contract accepted",
		"node", name,
		"stream_inputs", contract.StreamInputCount(),
		"side_inputs", contract.SideInputCount(),
		"outputs", len(contract.Outputs()))
	return h, nil
}

// checkContract enforces what the engine promises the node: every declared
// port left the contract call typed.
func checkContract(name string, c *calculator.Contract) error {
	// This host dispatches one frame to one streamed port.
	if c.StreamInputCount() != 1 {
		return fmt.Errorf("%w: host supports exactly one streamed input, node %s declares %d", domain.ErrConfiguration, name, c.StreamInputCount())
	}
	for _, p := range c.StreamInputs() {
		if p.Type == calculator.TypeUnset {
			return fmt.Errorf("%w: node %s left stream input %s untyped", domain.ErrConfiguration, name, p.Tag)
		}
	}
	for _, p := range c.SideInputs() {
		if p.Type == calculator.TypeUnset {
			return fmt.Errorf("%w: node %s left side input %s untyped", domain.ErrConfiguration, name, p.Tag)
		}
	}
	if len(c.Outputs()) == 0 {
		return fmt.Errorf("%w: node %s declares no outputs", domain.ErrConfiguration, name)
	}
	return nil
}

// Open delivers the side packets and runs the node's Open once. Every
// declared side port must receive a non-empty packet: side-input
// availability is a startup precondition here, not a per-frame check.
func (h *Host) Open(ctx context.Context, side map[domain.Tag]domain.Packet) error {
	if h.opened {
		return fmt.Errorf("%w: node %s already open", domain.ErrConfiguration, h.name)
	}
	for _, p := range h.contract.SideInputs() {
		if side[p.Tag].IsEmpty() {
			return fmt.Errorf("%w: side input %s for node %s has no packet", domain.ErrConfiguration, p.Tag, h.name)
		}
	}

	h.side = side
	cc := calculator.NewContext(h.contract, side, 0)
	if err := h.calc.Open(cc); err != nil {
		return fmt.Errorf("open node %s: %w", h.name, err)
	}
	h.offset = cc.Offset()
	h.opened = true

	h.fire(ctx, h.hooks.OnOpen, &domain.InvocationEvent{
		WallTime:   time.Now(),
		Type:       domain.EventOpen,
		Calculator: h.name,
	})
	h.logger.Debug("node open", "node", h.name, "offset", h.offset)
	return nil
}

// Process runs one invocation for the given frame and returns the single
// emitted packet. On error nothing is emitted and the frame is dropped;
// whether to retry or abort is the caller's policy.
func (h *Host) Process(ctx context.Context, frame domain.Packet) (domain.Packet, error) {
	if !h.opened {
		return domain.Packet{}, fmt.Errorf("%w: node %s processed before open", domain.ErrConfiguration, h.name)
	}

	cc := calculator.NewContext(h.contract, h.side, h.offset)
	cc.SetFrame(h.contract.StreamInputs()[0].Tag, frame)

	if err := h.calc.Process(cc); err != nil {
		h.fire(ctx, h.hooks.OnInvocationError, &domain.InvocationEvent{
			WallTime:   time.Now(),
			Type:       domain.EventInvocationFail,
			Calculator: h.name,
			Frame:      frame.Timestamp(),
			Err:        err,
		})
		h.logger.Warn("invocation failed", "node", h.name, "frame", frame.Timestamp(), "error", err)
		return domain.Packet{}, fmt.Errorf("process node %s at %d: %w", h.name, frame.Timestamp(), err)
	}

	outs := cc.Outputs()
	if len(outs) != 1 {
		return domain.Packet{}, fmt.Errorf("%w: node %s emitted %d packets, want 1", domain.ErrInvalidArgument, h.name, len(outs))
	}

	h.fire(ctx, h.hooks.OnInvocation, &domain.InvocationEvent{
		WallTime:   time.Now(),
		Type:       domain.EventInvocation,
		Calculator: h.name,
		Frame:      frame.Timestamp(),
	})
	return outs[0], nil
}

// Contract exposes the accepted contract for introspection.
func (h *Host) Contract() *calculator.Contract {
	return h.contract
}

func (h *Host) fire(ctx context.Context, hook func(context.Context, *domain.InvocationEvent), e *domain.InvocationEvent) {
	if hook != nil {
		hook(ctx, e)
	}
}
