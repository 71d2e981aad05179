package calculators

import (
	"fmt"

	"github.com/robstonner/mediapipe/pkg/calculator"
	"github.com/robstonner/mediapipe/pkg/domain"
	"github.com/robstonner/mediapipe/pkg/matrix"
	"github.com/robstonner/mediapipe/pkg/registry"
)

// MatrixSubtractName is the registry name of the MatrixSubtract calculator.
const MatrixSubtractName = "MatrixSubtract"

func init() {
	registry.Register(MatrixSubtractName, func() calculator.Calculator {
		return NewMatrixSubtract()
	})
}

// Orientation says which operand arrives on the streamed port. It is fixed
// at Open and never changes for the node's lifetime.
type Orientation int

const (
	// StreamIsMinuend: output = streamed - side.
	StreamIsMinuend Orientation = iota
	// StreamIsSubtrahend: output = side - streamed.
	StreamIsSubtrahend
)

// MatrixSubtract subtracts the streamed matrix from the side-input matrix or
// vice versa, depending on which port the wiring tagged as the minuend. Both
// matrices must have the same dimensions; the output is emitted at the
// streamed frame's timestamp.
//
// Example wiring:
//
//	stream input:  MINUEND:input_matrix
//	side input:    SUBTRAHEND:side_matrix
//	output:        output_matrix
//
// or the reverse tag assignment.
type MatrixSubtract struct {
	orientation Orientation
	streamTag   domain.Tag
	sideTag     domain.Tag
}

// NewMatrixSubtract returns an unconfigured MatrixSubtract node.
func NewMatrixSubtract() *MatrixSubtract {
	return &MatrixSubtract{}
}

// Contract accepts exactly one streamed input and one side input, tagged
// with complementary MINUEND/SUBTRAHEND roles in either assignment, and
// declares one untagged matrix output.
func (c *MatrixSubtract) Contract(con *calculator.Contract) error {
	if con.StreamInputCount() != 1 || con.SideInputCount() != 1 {
		return fmt.Errorf("%w: matrix subtract only accepts exactly one input stream and one input side packet", domain.ErrConfiguration)
	}
	switch {
	case con.HasStreamInput(domain.TagMinuend) && con.HasSideInput(domain.TagSubtrahend):
		con.SetStreamInputType(domain.TagMinuend, calculator.TypeMatrix)
		con.SetSideInputType(domain.TagSubtrahend, calculator.TypeMatrix)
	case con.HasStreamInput(domain.TagSubtrahend) && con.HasSideInput(domain.TagMinuend):
		con.SetStreamInputType(domain.TagSubtrahend, calculator.TypeMatrix)
		con.SetSideInputType(domain.TagMinuend, calculator.TypeMatrix)
	default:
		return fmt.Errorf("%w: must specify exactly one minuend and one subtrahend", domain.ErrConfiguration)
	}
	con.AddOutput(calculator.TypeMatrix)
	return nil
}

// Open declares the zero timestamp offset (output at the input's time) and
// resolves port binding once, so Process never looks tags up again.
func (c *MatrixSubtract) Open(cc *calculator.Context) error {
	cc.SetOffset(0)
	if cc.Contract().HasStreamInput(domain.TagMinuend) {
		c.orientation = StreamIsMinuend
		c.streamTag, c.sideTag = domain.TagMinuend, domain.TagSubtrahend
	} else {
		c.orientation = StreamIsSubtrahend
		c.streamTag, c.sideTag = domain.TagSubtrahend, domain.TagMinuend
	}
	return nil
}

// Process performs one subtraction and emits the result. A dimension
// mismatch fails the invocation without emitting.
func (c *MatrixSubtract) Process(cc *calculator.Context) error {
	in, err := domain.As[*matrix.Dense](cc.StreamInput(c.streamTag))
	if err != nil {
		return fmt.Errorf("stream input %s: %w", c.streamTag, err)
	}
	side, err := domain.As[*matrix.Dense](cc.SideInput(c.sideTag))
	if err != nil {
		return fmt.Errorf("side input %s: %w", c.sideTag, err)
	}
	if !in.SameShape(side) {
		return fmt.Errorf("%w: input matrix and the input side matrix must have the same dimension (%dx%d vs %dx%d)",
			domain.ErrInvalidArgument, in.Rows(), in.Cols(), side.Rows(), side.Cols())
	}

	var out *matrix.Dense
	if c.orientation == StreamIsMinuend {
		out, err = in.Sub(side)
	} else {
		out, err = side.Sub(in)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidArgument, err)
	}

	cc.Emit(out)
	return nil
}
