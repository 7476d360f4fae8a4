package knapsack

import (
	"errors"
	"fmt"
	"math/rand"
)

type Instance struct {
	Items     int
	Knapsacks int
	// Costs length must be Knapsacks*Items.
	Costs      []int
	Capacities []int
	Profits    []int
}

func NewInstance(items, knapsacks int, costs, capacities, profits []int) (*Instance, error) {
	inst := &Instance{
		Items:      items,
		Knapsacks:  knapsacks,
		Costs:      costs,
		Capacities: capacities,
		Profits:    profits,
	}
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return inst, nil
}

func (inst *Instance) Validate() error {
	if inst == nil {
		return errors.New("instance is nil")
	}
	if inst.Items <= 0 {
		return fmt.Errorf("items must be > 0 (got %d)", inst.Items)
	}
	if inst.Knapsacks <= 0 {
		return fmt.Errorf("knapsacks must be > 0 (got %d)", inst.Knapsacks)
	}
	if len(inst.Costs) != inst.Knapsacks*inst.Items {
		return fmt.Errorf("costs length must be knapsacks*items=%d (got %d)", inst.Knapsacks*inst.Items, len(inst.Costs))
	}
	if len(inst.Capacities) != inst.Knapsacks {
		return fmt.Errorf("capacities length must be %d (got %d)", inst.Knapsacks, len(inst.Capacities))
	}
	if len(inst.Profits) != inst.Items {
		return fmt.Errorf("profits length must be %d (got %d)", inst.Items, len(inst.Profits))
	}
	for i, v := range inst.Costs {
		if v < 0 {
			return fmt.Errorf("costs[%d] must be >= 0 (got %d)", i, v)
		}
	}
	for i, v := range inst.Capacities {
		if v < 0 {
			return fmt.Errorf("capacities[%d] must be >= 0 (got %d)", i, v)
		}
	}
	for j, v := range inst.Profits {
		if v < 0 {
			return fmt.Errorf("profits[%d] must be >= 0 (got %d)", j, v)
		}
	}
	return nil
}

func (inst *Instance) Cost(knapsack, item int) int {
	return inst.Costs[knapsack*inst.Items+item]
}

// Usage fills used with the per-knapsack resource consumption of selection x.
// used length must be Knapsacks, x length must be Items.
func (inst *Instance) Usage(x []int, used []int) {
	for i := 0; i < inst.Knapsacks; i++ {
		sum := 0
		for j := 0; j < inst.Items; j++ {
			sum += inst.Cost(i, j) * x[j]
		}
		used[i] = sum
	}
}

// Fits reports whether the usage vector stays within every capacity.
func (inst *Instance) Fits(used []int) bool {
	for i := 0; i < inst.Knapsacks; i++ {
		if used[i] > inst.Capacities[i] {
			return false
		}
	}
	return true
}

// CanAdd reports whether selecting item keeps every knapsack within capacity.
func (inst *Instance) CanAdd(used []int, item int) bool {
	for i := 0; i < inst.Knapsacks; i++ {
		if used[i]+inst.Cost(i, item) > inst.Capacities[i] {
			return false
		}
	}
	return true
}

func (inst *Instance) Add(used []int, item int) {
	for i := 0; i < inst.Knapsacks; i++ {
		used[i] += inst.Cost(i, item)
	}
}

func (inst *Instance) Remove(used []int, item int) {
	for i := 0; i < inst.Knapsacks; i++ {
		used[i] -= inst.Cost(i, item)
	}
}

// RandomInstance generates an instance with costs drawn uniformly from
// [0,1000), capacities tightened to alpha times the row sum and profits
// proportional to the mean item cost.
func RandomInstance(items, knapsacks int, alpha float64, rng *rand.Rand) *Instance {
	if rng == nil {
		panic("генератор случайных чисел не инициализирован (nil)")
	}
	if alpha <= 0 || alpha >= 1 {
		panic("invalid tightness ratio")
	}
	costs := make([]int, knapsacks*items)
	for i := range costs {
		costs[i] = rng.Intn(1000)
	}

	inst := &Instance{
		Items:      items,
		Knapsacks:  knapsacks,
		Costs:      costs,
		Capacities: make([]int, knapsacks),
		Profits:    make([]int, items),
	}

	for i := 0; i < knapsacks; i++ {
		rowSum := 0
		for j := 0; j < items; j++ {
			rowSum += inst.Cost(i, j)
		}
		inst.Capacities[i] = int(alpha * float64(rowSum))
	}

	for j := 0; j < items; j++ {
		colSum := 0
		for i := 0; i < knapsacks; i++ {
			colSum += inst.Cost(i, j)
		}
		mean := float64(colSum) / float64(knapsacks)
		inst.Profits[j] = int(mean * rng.Float64())
	}

	if err := inst.Validate(); err != nil {
		panic(err)
	}
	return inst
}
