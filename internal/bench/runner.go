package bench

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"
	"github.com/sourcegraph/conc/pool"

	"multiKnapsack/internal/knapsack"
	"multiKnapsack/internal/opt"
)

type Algorithm struct {
	Name    string
	Factory func(seed int64) opt.Optimizer
}

type Case struct {
	Items        int
	Knapsacks    int
	Alpha        float64
	InstanceSeed int64
}

type Record struct {
	Algo      string
	Items     int
	Knapsacks int
	Alpha     float64
	Runs      int

	TimeBestMs float64
	TimeMeanMs float64
	TimeStdMs  float64

	FitnessBest int
	FitnessMean float64
	FitnessStd  float64

	// History — поитерационная запись лучшей приспособленности
	// лучшего из прогонов; потребляется экспортом для построения графиков.
	History []int
}

type Runner struct {
	Runs          int
	BaseSeed      int64
	PerRunTimeout time.Duration // 0 = no timeout
	Parallel      int           // количество одновременных прогонов; <= 0 — последовательно
	Log           zerolog.Logger
}

func (r Runner) RunCase(ctx context.Context, c Case, algo Algorithm) (Record, error) {
	if r.Runs <= 0 {
		return Record{}, fmt.Errorf("количество запусков должно быть > 0 (получено %d)", r.Runs)
	}

	instRng := randForSeed(c.InstanceSeed)
	inst := knapsack.RandomInstance(c.Items, c.Knapsacks, c.Alpha, instRng)

	type outcome struct {
		fitness int
		timeMs  float64
		history []int
	}
	outcomes := make([]outcome, r.Runs)

	workers := r.Parallel
	if workers <= 0 {
		workers = 1
	}

	// Экземпляр задачи неизменяем после генерации и безопасно
	// разделяется между параллельными прогонами; у каждого прогона
	// собственный оптимизатор со своим сидом.
	p := pool.New().WithErrors().WithMaxGoroutines(workers)
	for i := 0; i < r.Runs; i++ {
		p.Go(func() error {
			runSeed := r.BaseSeed + int64(i)

			op := algo.Factory(runSeed)

			runCtx := ctx
			cancel := func() {}
			if r.PerRunTimeout > 0 {
				runCtx, cancel = context.WithTimeout(ctx, r.PerRunTimeout)
			}
			defer cancel()

			start := time.Now()
			res, err := op.Solve(runCtx, inst)
			dur := time.Since(start)

			if err != nil && runCtx.Err() != nil {
				return fmt.Errorf("run %d: cancelled/timeout: %w", i, err)
			}
			if err != nil {
				return fmt.Errorf("run %d: solve error: %w", i, err)
			}
			if err := knapsack.ValidateSelection(res.BestSelection, inst.Items); err != nil {
				return fmt.Errorf("run %d: invalid best selection: %w", i, err)
			}

			outcomes[i] = outcome{
				fitness: res.BestFitness,
				timeMs:  float64(dur.Microseconds()) / 1000.0,
				history: res.FitnessRecord,
			}

			r.Log.Debug().
				Str("algo", algo.Name).
				Int("run", i).
				Int64("seed", runSeed).
				Int("fitness", res.BestFitness).
				Dur("elapsed", dur).
				Msg("прогон завершён")
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return Record{}, err
	}

	fitnesses := make([]int, r.Runs)
	timesMs := make([]float64, r.Runs)
	for i, o := range outcomes {
		fitnesses[i] = o.fitness
		timesMs[i] = o.timeMs
	}
	history := outcomes[bestIndex(fitnesses)].history

	fStats := CalcFitnessStats(fitnesses)
	tStats := CalcTimeStats(timesMs)

	return Record{
		Algo:      algo.Name,
		Items:     c.Items,
		Knapsacks: c.Knapsacks,
		Alpha:     c.Alpha,
		Runs:      r.Runs,

		TimeBestMs: tStats.Best,
		TimeMeanMs: tStats.Mean,
		TimeStdMs:  tStats.Std,

		FitnessBest: fStats.Best,
		FitnessMean: fStats.Mean,
		FitnessStd:  fStats.Std,

		History: history,
	}, nil
}

// bestIndex возвращает индекс максимальной приспособленности.
func bestIndex(fitnesses []int) int {
	best := 0
	for i, v := range fitnesses {
		if v > fitnesses[best] {
			best = i
		}
	}
	return best
}

func randForSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
