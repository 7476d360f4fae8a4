package ga

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Ранжирование по возрастанию полезности для scenarioInstance:
// предмет 0 наименее полезен, предмет 1 наиболее полезен.
var scenarioOrder = []int{0, 2, 3, 1}

func TestSimpleRepairZeroesInfeasible(t *testing.T) {
	inst := scenarioInstance(t)
	used := make([]int, inst.Knapsacks)

	x := []int{1, 1, 1, 1} // суммарная стоимость 1400 > 700
	require.NoError(t, applyRepair(x, used, inst, RepairSimple, nil))
	require.Equal(t, []int{0, 0, 0, 0}, x)
	require.Equal(t, []int{0}, used)
}

func TestSimpleRepairKeepsFeasible(t *testing.T) {
	inst := scenarioInstance(t)
	used := make([]int, inst.Knapsacks)

	x := []int{0, 1, 0, 1} // стоимость 700 <= 700
	require.NoError(t, applyRepair(x, used, inst, RepairSimple, nil))
	require.Equal(t, []int{0, 1, 0, 1}, x)
	require.Equal(t, []int{700}, used)
}

func TestFancyRepairDropAdd(t *testing.T) {
	inst := scenarioInstance(t)
	used := make([]int, inst.Knapsacks)

	// Фаза удаления выбрасывает предметы 0 и 2 (наименее полезные),
	// фаза добавления ничего не добавляет: остаток вместимости нулевой.
	x := []int{1, 1, 1, 1}
	require.NoError(t, applyRepair(x, used, inst, RepairFancy, scenarioOrder))
	require.Equal(t, []int{0, 1, 0, 1}, x)
	require.True(t, inst.Fits(used))
}

func TestFancyRepairIdempotentOnMaximal(t *testing.T) {
	inst := scenarioInstance(t)
	used := make([]int, inst.Knapsacks)

	x := []int{0, 1, 0, 1}
	require.NoError(t, applyRepair(x, used, inst, RepairFancy, scenarioOrder))
	require.Equal(t, []int{0, 1, 0, 1}, x)
}

func TestFancyRepairFillsSlack(t *testing.T) {
	inst := scenarioInstance(t)
	used := make([]int, inst.Knapsacks)

	x := []int{0, 0, 0, 0}
	require.NoError(t, applyRepair(x, used, inst, RepairFancy, scenarioOrder))
	require.Equal(t, []int{0, 1, 0, 1}, x)
	require.Equal(t, []int{700}, used)
}

func TestFancyRepairNeverRemovesFromFeasible(t *testing.T) {
	inst := scenarioInstance(t)
	used := make([]int, inst.Knapsacks)

	x := []int{0, 1, 0, 0}
	require.NoError(t, applyRepair(x, used, inst, RepairFancy, scenarioOrder))
	require.Equal(t, 1, x[1], "фаза добавления не должна снимать выбранный предмет")
	require.True(t, inst.Fits(used))
}

func TestRepairUnknownStrategy(t *testing.T) {
	inst := scenarioInstance(t)
	used := make([]int, inst.Knapsacks)

	err := applyRepair([]int{0, 0, 0, 0}, used, inst, RepairStrategy("bogus"), nil)
	require.Error(t, err)
}
