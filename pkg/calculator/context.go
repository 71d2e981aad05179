package calculator

import (
	"github.com/robstonner/mediapipe/pkg/domain"
)

// Context is the view of one host call (Open or a single frame) the node
// gets to work with: typed access to the current inputs, the frame
// timestamp, and the output slot. The host builds a fresh Context per call;
// only the offset declared during Open survives across frames.
type Context struct {
	contract *Contract
	stream   map[domain.Tag]domain.Packet
	side     map[domain.Tag]domain.Packet
	frame    domain.Timestamp
	offset   domain.Timestamp
	outputs  []domain.Packet
}

// NewContext binds a context to an accepted contract and the side packets
// delivered for the run. The host seeds offset from the Open context so the
// declaration carries over to frame contexts.
func NewContext(contract *Contract, side map[domain.Tag]domain.Packet, offset domain.Timestamp) *Context {
	return &Context{
		contract: contract,
		stream:   make(map[domain.Tag]domain.Packet),
		side:     side,
		offset:   offset,
	}
}

// Contract returns the accepted port contract.
func (cc *Context) Contract() *Contract { return cc.contract }

// SetFrame installs the streamed packet for the current invocation.
func (cc *Context) SetFrame(tag domain.Tag, p domain.Packet) {
	cc.stream[tag] = p
	cc.frame = p.Timestamp()
}

// StreamInput returns the current frame's packet on the streamed port with
// the given tag. An unknown tag yields an empty packet.
func (cc *Context) StreamInput(tag domain.Tag) domain.Packet {
	return cc.stream[tag]
}

// SideInput returns the side packet delivered for the given tag. An unknown
// tag yields an empty packet.
func (cc *Context) SideInput(tag domain.Tag) domain.Packet {
	return cc.side[tag]
}

// InputTimestamp returns the timestamp of the frame being processed.
func (cc *Context) InputTimestamp() domain.Timestamp {
	return cc.frame
}

// SetOffset declares the fixed difference between input and output
// timestamps. Zero means outputs are emitted at the input's timestamp.
// Meaningful only during Open.
func (cc *Context) SetOffset(d domain.Timestamp) {
	cc.offset = d
}

// Offset returns the declared output timestamp offset.
func (cc *Context) Offset() domain.Timestamp {
	return cc.offset
}

// Emit hands one output value to the host, stamped with the input timestamp
// plus the declared offset. Ownership of the value transfers to the host.
func (cc *Context) Emit(value any) {
	cc.outputs = append(cc.outputs, domain.NewPacket(value, cc.frame+cc.offset))
}

// Outputs returns the packets emitted during this call.
func (cc *Context) Outputs() []domain.Packet {
	return cc.outputs
}
