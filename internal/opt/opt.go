package opt

import (
	"context"
	"time"

	"multiKnapsack/internal/knapsack"
)

type Optimizer interface {
	Solve(ctx context.Context, inst *knapsack.Instance) (Result, error)
}

type Result struct {
	BestSelection []int
	BestFitness   int

	// Поитерационные записи: лучшая приспособленность, лучшее решение
	// и затраченное время. Все три массива одинаковой длины.
	FitnessRecord   []int
	SelectionRecord [][]int
	StepDurations   []time.Duration

	Evaluations int
	Iterations  int
	Duration    time.Duration
	Meta        map[string]any
}
