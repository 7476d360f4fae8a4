package sa

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"multiKnapsack/internal/knapsack"
	"multiKnapsack/internal/opt"
)

// Solver - структура реализации алгоритма имитации отжига
// над бинарными векторами выбора предметов.
type Solver struct {
	Cfg Config
	Rng *rand.Rand
}

// New возвращает новый SA-солвер с валидацией конфигурации, с использованием инициализированного генератора случайных чисел.
// Используется в фабриках.
func New(cfg Config, rng *rand.Rand) (*Solver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("генератор случайных чисел не инициализирован (nil)")
	}
	return &Solver{Cfg: cfg, Rng: rng}, nil
}

// Solve — реализация эвристики.
// Окрестность — инверсия одного бита; переход, нарушающий ограничения
// вместимости, отклоняется, поэтому текущее решение всегда допустимо.
func (s *Solver) Solve(ctx context.Context, inst *knapsack.Instance) (opt.Result, error) {
	start := time.Now()

	if err := inst.Validate(); err != nil {
		return opt.Result{}, err
	}
	if err := s.Cfg.Validate(); err != nil {
		return opt.Result{}, err
	}
	if s.Rng == nil {
		return opt.Result{}, fmt.Errorf("генератор случайных чисел не инициализирован (nil)")
	}

	eval, err := knapsack.NewEvaluator(inst)
	if err != nil {
		return opt.Result{}, err
	}

	n := inst.Items

	maxIter := s.Cfg.Iterations
	if maxIter <= 0 {
		maxIter = s.Cfg.IterationsPerItem * n
	}

	// Текущее решение и его потребление ресурсов
	curr := make([]int, n)
	used := make([]int, inst.Knapsacks)
	perm := make([]int, n)

	// Инициализация случайным допустимым решением
	randomGreedy(curr, used, perm, inst, s.Rng)

	currFit := eval.MustFitness(curr)
	bestFit := currFit
	best := append([]int(nil), curr...)

	fitnessRecord := make([]int, 0, maxIter)
	selectionRecord := make([][]int, 0, maxIter)
	stepDurations := make([]time.Duration, 0, maxIter)

	fitnessRecord = append(fitnessRecord, bestFit)
	selectionRecord = append(selectionRecord, best)
	stepDurations = append(stepDurations, time.Since(start))

	evals := 1
	T := s.Cfg.InitialTemp

	finish := func(iters int, meta map[string]any) opt.Result {
		return opt.Result{
			BestSelection:   append([]int(nil), best...),
			BestFitness:     bestFit,
			FitnessRecord:   fitnessRecord,
			SelectionRecord: selectionRecord,
			StepDurations:   stepDurations,
			Evaluations:     evals,
			Iterations:      iters,
			Duration:        time.Since(start),
			Meta:            meta,
		}
	}

	for iter := 1; iter < maxIter && T > s.Cfg.FinalTemp; iter++ {
		stepStart := time.Now()

		// Для поддержки отмены через context
		if err := ctx.Err(); err != nil {
			return finish(iter, map[string]any{
				"stopped": "context",
				"T":       T,
			}), err
		}

		// Соседнее решение: инверсия случайного бита
		j := s.Rng.Intn(n)

		accept := false
		delta := 0
		if curr[j] == 1 {
			// Удаление предмета всегда допустимо, но ухудшает прибыль;
			// принимается по критерию Метрополиса
			delta = -inst.Profits[j]
			if p := math.Exp(float64(delta) / T); s.Rng.Float64() < p {
				accept = true
			}
			if accept {
				curr[j] = 0
				inst.Remove(used, j)
			}
		} else if inst.CanAdd(used, j) {
			// Добавление не ухудшает прибыль, принимается всегда
			delta = inst.Profits[j]
			accept = true
			curr[j] = 1
			inst.Add(used, j)
		}

		if accept {
			currFit += delta
			evals++

			// Обновление глобально лучшего решения
			if currFit > bestFit {
				bestFit = currFit
				best = append([]int(nil), curr...)
			}
		}

		fitnessRecord = append(fitnessRecord, bestFit)
		selectionRecord = append(selectionRecord, best)
		stepDurations = append(stepDurations, time.Since(stepStart))

		// Охлаждение температуры
		T *= s.Cfg.Alpha
	}

	return finish(len(fitnessRecord), map[string]any{
		"initial_temp": s.Cfg.InitialTemp,
		"final_temp":   s.Cfg.FinalTemp,
		"alpha":        s.Cfg.Alpha,
	}), nil
}

// randomGreedy строит случайное допустимое решение: предметы в случайном
// порядке добавляются, пока очередной помещается во все рюкзаки.
func randomGreedy(x, used, perm []int, inst *knapsack.Instance, rng *rand.Rand) {
	for j := range x {
		x[j] = 0
	}
	for i := range used {
		used[i] = 0
	}
	for j := range perm {
		perm[j] = j
	}
	for i := len(perm) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		perm[i], perm[j] = perm[j], perm[i]
	}

	for i := len(perm) - 1; i >= 0; i-- {
		j := perm[i]
		if !inst.CanAdd(used, j) {
			break
		}
		x[j] = 1
		inst.Add(used, j)
	}
}
