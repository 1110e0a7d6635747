package costmat_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arcrouting/vrproute/internal/costmat"
)

func TestNew_RejectsNonPositiveDimension(t *testing.T) {
	_, err := costmat.New(0)
	require.ErrorIs(t, err, costmat.ErrInvalidDimensions)
}

func TestMatrix_SetAndAtRoundTrip(t *testing.T) {
	m, err := costmat.New(3)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 2, 42))

	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, int64(42), v)

	v, err = m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, int64(0), v)
}

func TestMatrix_AtRejectsOutOfBounds(t *testing.T) {
	m, err := costmat.New(2)
	require.NoError(t, err)
	_, err = m.At(2, 0)
	require.ErrorIs(t, err, costmat.ErrIndexOutOfBounds)
	_, err = m.At(0, -1)
	require.ErrorIs(t, err, costmat.ErrIndexOutOfBounds)
}

func TestFromFunc_FillsEveryCell(t *testing.T) {
	m, err := costmat.FromFunc(4, func(i, j int) int64 { return int64(i + j) })
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			require.Equal(t, int64(i+j), v)
		}
	}
}

func TestMatrix_CloneIsIndependent(t *testing.T) {
	m, err := costmat.FromFunc(2, func(i, j int) int64 { return 1 })
	require.NoError(t, err)
	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 99))

	orig, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, int64(1), orig)

	cloned, err := clone.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, int64(99), cloned)
}

func TestMatrix_EvaluatorMatchesAt(t *testing.T) {
	m, err := costmat.FromFunc(3, func(i, j int) int64 { return int64(i*10 + j) })
	require.NoError(t, err)
	eval := m.Evaluator()
	require.Equal(t, int64(12), eval(1, 2))
	require.Equal(t, int64(0), eval(5, 5)) // out of bounds reads as 0
}
