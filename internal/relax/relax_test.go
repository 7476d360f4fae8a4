package relax

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"multiKnapsack/internal/knapsack"
)

func TestDualPricesSingleKnapsack(t *testing.T) {
	// min 4w при 2w >= 6, 4w >= 4, w >= 0  =>  w* = 3
	inst, err := knapsack.NewInstance(2, 1,
		[]int{2, 4},
		[]int{4},
		[]int{6, 4},
	)
	require.NoError(t, err)

	w, err := DualPrices(inst)
	require.NoError(t, err)
	require.Len(t, w, 1)
	require.InDelta(t, 3.0, w[0], 1e-8)
}

func TestDualPricesTwoKnapsacks(t *testing.T) {
	// Ограничения разделяются по рюкзакам:
	// min 3w1+2w2 при 3w1 >= 6, 2w2 >= 4  =>  w* = (2, 2)
	inst, err := knapsack.NewInstance(2, 2,
		[]int{3, 0, 0, 2},
		[]int{3, 2},
		[]int{6, 4},
	)
	require.NoError(t, err)

	w, err := DualPrices(inst)
	require.NoError(t, err)
	require.Len(t, w, 2)
	require.InDelta(t, 2.0, w[0], 1e-8)
	require.InDelta(t, 2.0, w[1], 1e-8)
}

func TestUtilityOrderAscending(t *testing.T) {
	inst, err := knapsack.NewInstance(2, 1,
		[]int{2, 4},
		[]int{4},
		[]int{6, 4},
	)
	require.NoError(t, err)

	// w* = 3: полезности [6/6, 4/12] = [1, 1/3] => по возрастанию [1, 0]
	order, err := UtilityOrder(inst)
	require.NoError(t, err)
	require.Equal(t, []int{1, 0}, order)
}

func TestUtilityOrderPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	inst := knapsack.RandomInstance(10, 3, 0.5, rng)

	order, err := UtilityOrder(inst)
	require.NoError(t, err)
	require.Len(t, order, 10)

	sorted := append([]int(nil), order...)
	sort.Ints(sorted)
	for j, v := range sorted {
		require.Equal(t, j, v)
	}
}

func TestInfeasibleRelaxation(t *testing.T) {
	// Предмет с положительной прибылью и нулевой стоимостью делает
	// двойственную задачу недопустимой.
	inst, err := knapsack.NewInstance(1, 1,
		[]int{0},
		[]int{10},
		[]int{5},
	)
	require.NoError(t, err)

	_, err = DualPrices(inst)
	require.Error(t, err)

	_, err = UtilityOrder(inst)
	require.Error(t, err)
}
