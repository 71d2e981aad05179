package calculator

import (
	"github.com/robstonner/mediapipe/pkg/domain"
)

// PacketType declares what a port carries. Ports start untyped; the node's
// Contract call must stamp every declared port before the host will run it.
type PacketType int

const (
	TypeUnset PacketType = iota
	TypeMatrix
)

// Port is one declared port slot: its wiring tag and its stamped type.
// Output ports are untagged.
type Port struct {
	Tag  domain.Tag
	Type PacketType
}

// Contract captures the ports the graph wiring attached to a node. The host
// builds it from the wiring; the node validates it and stamps types in its
// Contract method. It is immutable after graph assembly.
type Contract struct {
	streamInputs []Port
	sideInputs   []Port
	outputs      []Port
}

// NewContract builds a contract from the tags wired to the node's streamed
// and side-input ports.
func NewContract(streamTags, sideTags []domain.Tag) *Contract {
	c := &Contract{}
	for _, tag := range streamTags {
		c.streamInputs = append(c.streamInputs, Port{Tag: tag})
	}
	for _, tag := range sideTags {
		c.sideInputs = append(c.sideInputs, Port{Tag: tag})
	}
	return c
}

// StreamInputCount returns the number of streamed input ports declared.
func (c *Contract) StreamInputCount() int { return len(c.streamInputs) }

// SideInputCount returns the number of side-input ports declared.
func (c *Contract) SideInputCount() int { return len(c.sideInputs) }

// HasStreamInput reports whether a streamed input port carries the tag.
func (c *Contract) HasStreamInput(tag domain.Tag) bool {
	return findPort(c.streamInputs, tag) >= 0
}

// HasSideInput reports whether a side-input port carries the tag.
func (c *Contract) HasSideInput(tag domain.Tag) bool {
	return findPort(c.sideInputs, tag) >= 0
}

// SetStreamInputType stamps the packet type of the streamed port with the
// given tag. Missing tags are ignored; the host verifies afterwards that no
// port was left unstamped.
func (c *Contract) SetStreamInputType(tag domain.Tag, t PacketType) {
	if i := findPort(c.streamInputs, tag); i >= 0 {
		c.streamInputs[i].Type = t
	}
}

// SetSideInputType stamps the packet type of the side port with the given tag.
func (c *Contract) SetSideInputType(tag domain.Tag, t PacketType) {
	if i := findPort(c.sideInputs, tag); i >= 0 {
		c.sideInputs[i].Type = t
	}
}

// AddOutput declares one untagged output port of the given type.
func (c *Contract) AddOutput(t PacketType) {
	c.outputs = append(c.outputs, Port{Type: t})
}

// StreamInputs returns the declared streamed input ports.
func (c *Contract) StreamInputs() []Port { return c.streamInputs }

// SideInputs returns the declared side-input ports.
func (c *Contract) SideInputs() []Port { return c.sideInputs }

// Outputs returns the declared output ports.
func (c *Contract) Outputs() []Port { return c.outputs }

func findPort(ports []Port, tag domain.Tag) int {
	for i, p := range ports {
		if p.Tag == tag {
			return i
		}
	}
	return -1
}
