package ga

import (
	"time"

	"multiKnapsack/internal/opt"
)

func ToOptResult(
	fitnessRecord []int,
	selectionRecord [][]int,
	stepDurations []time.Duration,
	evals, iters int,
	meta map[string]any,
) opt.Result {
	res := opt.Result{
		FitnessRecord:   fitnessRecord,
		SelectionRecord: selectionRecord,
		StepDurations:   stepDurations,
		Evaluations:     evals,
		Iterations:      iters,
		Meta:            meta,
	}
	if len(fitnessRecord) > 0 {
		res.BestFitness = fitnessRecord[len(fitnessRecord)-1]
		last := selectionRecord[len(selectionRecord)-1]
		res.BestSelection = append([]int(nil), last...)
	}
	return res
}
