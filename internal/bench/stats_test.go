package bench

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCalcFitnessStats(t *testing.T) {
	s := CalcFitnessStats([]int{3, 9, 6})
	require.Equal(t, 3, s.N)
	require.Equal(t, 9, s.Best)
	require.InDelta(t, 6.0, s.Mean, 1e-9)
	require.InDelta(t, 3.0, s.Std, 1e-9)

	s = CalcFitnessStats([]int{5})
	require.Equal(t, 5, s.Best)
	require.Equal(t, 0.0, s.Std)

	s = CalcFitnessStats(nil)
	require.Equal(t, 0, s.N)
}

func TestCalcTimeStats(t *testing.T) {
	s := CalcTimeStats([]float64{2.0, 8.0, 5.0})
	require.Equal(t, 3, s.N)
	require.InDelta(t, 2.0, s.Best, 1e-9)
	require.InDelta(t, 5.0, s.Mean, 1e-9)
	require.InDelta(t, 3.0, s.Std, 1e-9)

	s = CalcTimeStats([]float64{4.2})
	require.InDelta(t, 4.2, s.Best, 1e-9)
	require.Equal(t, 0.0, s.Std)
}
