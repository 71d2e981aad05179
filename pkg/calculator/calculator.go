package calculator

// Calculator is a single node in a dataflow graph. Implementations must be
// safe to call in the host's lifecycle order (Contract, Open, then Process
// per frame) but need no internal locking: the host never overlaps calls on
// one instance.
type Calculator interface {
	// Contract validates the ports the graph wiring declared for this node
	// and stamps their packet types. A domain.ErrConfiguration return halts
	// graph assembly.
	Contract(c *Contract) error

	// Open runs once before the first frame, after the contract is accepted.
	// Configuration derived here (offsets, port bindings) is immutable for
	// the node's lifetime.
	Open(cc *Context) error

	// Process handles one frame. A domain.ErrInvalidArgument return fails
	// this invocation only and emits nothing.
	Process(cc *Context) error
}
