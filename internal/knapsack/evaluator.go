package knapsack

import "fmt"

type Evaluator struct {
	inst *Instance
}

func NewEvaluator(inst *Instance) (*Evaluator, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return &Evaluator{inst: inst}, nil
}

func (e *Evaluator) Fitness(x []int) (int, error) {
	if e == nil || e.inst == nil {
		return 0, fmt.Errorf("nil evaluator")
	}
	if err := ValidateSelection(x, e.inst.Items); err != nil {
		return 0, err
	}
	sum := 0
	for j, v := range x {
		sum += e.inst.Profits[j] * v
	}
	return sum, nil
}

func (e *Evaluator) MustFitness(x []int) int {
	f, err := e.Fitness(x)
	if err != nil {
		panic(err)
	}
	return f
}

// PopulationFitness evaluates every row of pop into fitness.
// fitness length must equal len(pop).
func (e *Evaluator) PopulationFitness(pop [][]int, fitness []int) error {
	if len(fitness) != len(pop) {
		return fmt.Errorf("fitness length must be %d (got %d)", len(pop), len(fitness))
	}
	for i, row := range pop {
		f, err := e.Fitness(row)
		if err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
		fitness[i] = f
	}
	return nil
}
