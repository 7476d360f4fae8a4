package ga

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"multiKnapsack/internal/knapsack"
	"multiKnapsack/internal/opt"
	"multiKnapsack/internal/relax"
)

// Solver — реализация генетического алгоритма Чу-Бизли
// для многомерной задачи о рюкзаке.
type Solver struct {
	Cfg Config
	Rng *rand.Rand
}

// New возвращает новый GA-солвер с валидацией конфигурации, с использованием инициализированного генератора случайных чисел.
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
func (s *Solver) Solve(ctx context.Context, inst *knapsack.Instance) (opt.Result, error) {
	start := time.Now()

	// Проверка корректности входных данных и конфигурации
	if err := inst.Validate(); err != nil {
		return opt.Result{}, err
	}
	if err := s.Cfg.Validate(); err != nil {
		return opt.Result{}, err
	}
	if s.Rng == nil {
		return opt.Result{}, fmt.Errorf("генератор случайных чисел не инициализирован (nil)")
	}

	// Оценщик приспособленности (суммарной прибыли) решений
	eval, err := knapsack.NewEvaluator(inst)
	if err != nil {
		return opt.Result{}, err
	}

	n := inst.Items
	popSize := s.Cfg.Population

	// Популяция одним непрерывным буфером
	backing := make([]int, popSize*n)
	pop := make([][]int, popSize)
	for i := 0; i < popSize; i++ {
		pop[i] = backing[i*n : (i+1)*n]
	}

	// Рабочие буферы, выносимые из цикла:
	// used — потребление ресурсов, perm — порядок перебора предметов,
	// pool — кандидаты турнирного отбора, child — потомок
	used := make([]int, inst.Knapsacks)
	perm := make([]int, n)
	pool := make([]int, popSize)
	child := make([]int, n)

	// Инициализация начальной популяции допустимыми решениями
	for i := 0; i < popSize; i++ {
		initChromosome(pop[i], used, perm, inst, s.Rng)

		// САНИТАРНАЯ ПРОВЕРКА
		if !inst.Fits(used) {
			return opt.Result{}, fmt.Errorf("%w: инициализация породила недопустимое решение", ErrInvariantViolation)
		}
	}

	// Пакетная оценка приспособленности начальной популяции
	fitness := make([]int, popSize)
	if err := eval.PopulationFitness(pop, fitness); err != nil {
		return opt.Result{}, err
	}
	evaluations := popSize

	// Предобработка LP-релаксации выполняется один раз за прогон
	order, err := relax.UtilityOrder(inst)
	if err != nil {
		return opt.Result{}, fmt.Errorf("предобработка оператора восстановления: %w", err)
	}

	// Поиск лучшего решения в начальной популяции
	best := 0
	for i := 1; i < popSize; i++ {
		if fitness[i] > fitness[best] {
			best = i
		}
	}

	// Записи по итерациям
	total := s.Cfg.Iterations
	fitnessRecord := make([]int, total)
	selectionRecord := make([][]int, total)
	stepDurations := make([]time.Duration, total)

	fitnessRecord[0] = fitness[best]
	selectionRecord[0] = append([]int(nil), pop[best]...)
	stepDurations[0] = time.Since(start)

	for t := 1; t < total; t++ {
		stepStart := time.Now()

		// Для поддержки отмены через context
		if err := ctx.Err(); err != nil {
			res := ToOptResult(
				fitnessRecord[:t],
				selectionRecord[:t],
				stepDurations[:t],
				evaluations,
				t,
				map[string]any{"stopped": "context"},
			)
			res.Duration = time.Since(start)
			return res, err
		}

		// Перенос записей предыдущей итерации (элитизм)
		fitnessRecord[t] = fitnessRecord[t-1]
		selectionRecord[t] = selectionRecord[t-1]

		// Генерация потомка: отбор, кроссовер, мутация, восстановление.
		// Потомок, совпадающий с членом популяции, отбрасывается и
		// генерируется заново.
		attempts := 0
		for {
			attempts++
			if s.Cfg.MaxChildAttempts > 0 && attempts > s.Cfg.MaxChildAttempts {
				return opt.Result{}, fmt.Errorf("%w (итерация %d, лимит %d)", ErrStalled, t, s.Cfg.MaxChildAttempts)
			}

			p1, p2 := tournamentPair(fitness, pool, s.Rng)
			uniformCrossover(pop[p1], pop[p2], child, s.Rng)
			mutate(child, s.Rng)
			if err := applyRepair(child, used, inst, s.Cfg.Repair, order); err != nil {
				return opt.Result{}, err
			}

			if !containsRow(pop, child) {
				break
			}
		}

		childFitness := eval.MustFitness(child)
		evaluations++

		replaceWorst(pop, fitness, child, childFitness)

		// Обновление записи лучшего решения
		if childFitness > fitnessRecord[t] {
			fitnessRecord[t] = childFitness
			selectionRecord[t] = append([]int(nil), child...)
		}

		stepDurations[t] = time.Since(stepStart)
	}

	res := ToOptResult(
		fitnessRecord,
		selectionRecord,
		stepDurations,
		evaluations,
		total,
		map[string]any{
			"population": s.Cfg.Population,
			"iterations": s.Cfg.Iterations,
			"repair":     string(s.Cfg.Repair),
		},
	)
	res.Duration = time.Since(start)
	return res, nil
}

// replaceWorst замещает худшего члена популяции потомком при строгом
// улучшении приспособленности, синхронно обновляя вектор приспособленности.
// Возвращает индекс худшей строки и признак выполненной замены.
func replaceWorst(pop [][]int, fitness []int, child []int, childFitness int) (int, bool) {
	worst := 0
	for i := 1; i < len(fitness); i++ {
		if fitness[i] < fitness[worst] {
			worst = i
		}
	}
	if childFitness > fitness[worst] {
		copy(pop[worst], child)
		fitness[worst] = childFitness
		return worst, true
	}
	return worst, false
}
