package calculators_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robstonner/mediapipe/internal/runtime"
	"github.com/robstonner/mediapipe/pkg/calculators"
	"github.com/robstonner/mediapipe/pkg/domain"
	"github.com/robstonner/mediapipe/pkg/matrix"
	"github.com/robstonner/mediapipe/pkg/registry"
)

func mustMatrix(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)
	return m
}

// runOnce wires a MatrixSubtract node with the given tag assignment, opens
// it with the side matrix, and processes one frame.
func runOnce(t *testing.T, streamTag, sideTag domain.Tag, stream, side *matrix.Dense, at domain.Timestamp) (domain.Packet, error) {
	t.Helper()
	h, err := runtime.NewHost("subtract", calculators.NewMatrixSubtract(),
		[]domain.Tag{streamTag}, []domain.Tag{sideTag})
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, h.Open(ctx, map[domain.Tag]domain.Packet{
		sideTag: domain.NewPacket(side, 0),
	}))
	return h.Process(ctx, domain.NewPacket(stream, at))
}

func TestMatrixSubtract_StreamIsMinuend(t *testing.T) {
	stream := mustMatrix(t, [][]float64{{5, 3}})
	side := mustMatrix(t, [][]float64{{2, 1}})

	out, err := runOnce(t, domain.TagMinuend, domain.TagSubtrahend, stream, side, 1000)
	require.NoError(t, err)

	got, err := domain.As[*matrix.Dense](out)
	require.NoError(t, err)
	assert.True(t, got.Equal(mustMatrix(t, [][]float64{{3, 2}})), "output = stream - side, got %s", got)
	assert.Equal(t, domain.Timestamp(1000), out.Timestamp())
}

func TestMatrixSubtract_StreamIsSubtrahend(t *testing.T) {
	stream := mustMatrix(t, [][]float64{{5, 3}})
	side := mustMatrix(t, [][]float64{{2, 1}})

	out, err := runOnce(t, domain.TagSubtrahend, domain.TagMinuend, stream, side, 1000)
	require.NoError(t, err)

	got, err := domain.As[*matrix.Dense](out)
	require.NoError(t, err)
	assert.True(t, got.Equal(mustMatrix(t, [][]float64{{-3, -2}})), "output = side - stream, got %s", got)
}

func TestMatrixSubtract_DimensionMismatch(t *testing.T) {
	stream := mustMatrix(t, [][]float64{{1, 2}, {3, 4}})
	side := mustMatrix(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	out, err := runOnce(t, domain.TagMinuend, domain.TagSubtrahend, stream, side, 0)
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.True(t, out.IsEmpty(), "no output on a failed invocation")
}

func TestMatrixSubtract_NilMatrixFrame(t *testing.T) {
	h, err := runtime.NewHost("subtract", calculators.NewMatrixSubtract(),
		[]domain.Tag{domain.TagMinuend}, []domain.Tag{domain.TagSubtrahend})
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, h.Open(ctx, map[domain.Tag]domain.Packet{
		domain.TagSubtrahend: domain.NewPacket(mustMatrix(t, [][]float64{{1}}), 0),
	}))

	// A frame whose payload is a nil *matrix.Dense must fail the invocation,
	// not crash the host.
	out, err := h.Process(ctx, domain.NewPacket((*matrix.Dense)(nil), 50))
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.True(t, out.IsEmpty())
}

func TestMatrixSubtract_Contract(t *testing.T) {
	cases := []struct {
		name       string
		streamTags []domain.Tag
		sideTags   []domain.Tag
		ok         bool
	}{
		{"Minuend Streamed", []domain.Tag{domain.TagMinuend}, []domain.Tag{domain.TagSubtrahend}, true},
		{"Subtrahend Streamed", []domain.Tag{domain.TagSubtrahend}, []domain.Tag{domain.TagMinuend}, true},
		{"Both Minuend", []domain.Tag{domain.TagMinuend}, []domain.Tag{domain.TagMinuend}, false},
		{"Both Subtrahend", []domain.Tag{domain.TagSubtrahend}, []domain.Tag{domain.TagSubtrahend}, false},
		{"No Side Input", []domain.Tag{domain.TagMinuend}, nil, false},
		{"No Stream Input", nil, []domain.Tag{domain.TagSubtrahend}, false},
		{"Extra Stream Port", []domain.Tag{domain.TagMinuend, domain.TagSubtrahend}, []domain.Tag{domain.TagSubtrahend}, false},
		{"Extra Side Port", []domain.Tag{domain.TagMinuend}, []domain.Tag{domain.TagSubtrahend, domain.TagMinuend}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := runtime.NewHost("subtract", calculators.NewMatrixSubtract(), tc.streamTags, tc.sideTags)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, domain.ErrConfiguration)
			}
		})
	}
}

func TestMatrixSubtract_Idempotent(t *testing.T) {
	h, err := runtime.NewHost("subtract", calculators.NewMatrixSubtract(),
		[]domain.Tag{domain.TagMinuend}, []domain.Tag{domain.TagSubtrahend})
	require.NoError(t, err)

	ctx := context.Background()
	side := mustMatrix(t, [][]float64{{2, 1}, {0, -4}})
	require.NoError(t, h.Open(ctx, map[domain.Tag]domain.Packet{
		domain.TagSubtrahend: domain.NewPacket(side, 0),
	}))

	stream := mustMatrix(t, [][]float64{{5, 3}, {7, 7}})
	first, err := h.Process(ctx, domain.NewPacket(stream, 42))
	require.NoError(t, err)
	second, err := h.Process(ctx, domain.NewPacket(stream, 42))
	require.NoError(t, err)

	a, err := domain.As[*matrix.Dense](first)
	require.NoError(t, err)
	b, err := domain.As[*matrix.Dense](second)
	require.NoError(t, err)
	assert.True(t, a.Equal(b), "identical inputs must yield identical outputs")
	assert.Equal(t, first.Timestamp(), second.Timestamp())
}

func TestMatrixSubtract_TimestampPassthrough(t *testing.T) {
	h, err := runtime.NewHost("subtract", calculators.NewMatrixSubtract(),
		[]domain.Tag{domain.TagMinuend}, []domain.Tag{domain.TagSubtrahend})
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, h.Open(ctx, map[domain.Tag]domain.Packet{
		domain.TagSubtrahend: domain.NewPacket(mustMatrix(t, [][]float64{{1}}), 0),
	}))

	for _, at := range []domain.Timestamp{0, 1, 33333, 1 << 40} {
		out, err := h.Process(ctx, domain.NewPacket(mustMatrix(t, [][]float64{{9}}), at))
		require.NoError(t, err)
		assert.Equal(t, at, out.Timestamp(), "output timestamp must equal the streamed input's")
	}
}

func TestMatrixSubtract_Registered(t *testing.T) {
	calc, err := registry.Default.New(calculators.MatrixSubtractName)
	require.NoError(t, err)
	require.IsType(t, &calculators.MatrixSubtract{}, calc)

	h, err := runtime.NewHost("from-registry", calc,
		[]domain.Tag{domain.TagMinuend}, []domain.Tag{domain.TagSubtrahend})
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, h.Open(ctx, map[domain.Tag]domain.Packet{
		domain.TagSubtrahend: domain.NewPacket(mustMatrix(t, [][]float64{{1}}), 0),
	}))
	out, err := h.Process(ctx, domain.NewPacket(mustMatrix(t, [][]float64{{3}}), 7))
	require.NoError(t, err)

	got, err := domain.As[*matrix.Dense](out)
	require.NoError(t, err)
	v, err := got.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, float64(2), v)
}
