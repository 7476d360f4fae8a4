package ga

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"multiKnapsack/internal/knapsack"
)

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	bad := cfg
	bad.Population = 3
	require.Error(t, bad.Validate())

	bad = cfg
	bad.Iterations = 0
	require.Error(t, bad.Validate())

	bad = cfg
	bad.MaxChildAttempts = -1
	require.Error(t, bad.Validate())

	bad = cfg
	bad.Repair = "bogus"
	require.Error(t, bad.Validate())
}

func TestNew(t *testing.T) {
	_, err := New(DefaultConfig(), nil)
	require.Error(t, err)

	_, err = New(Config{}, rand.New(rand.NewSource(1)))
	require.Error(t, err)

	s, err := New(DefaultConfig(), rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.NotNil(t, s)
}

func newFixture(t *testing.T, repair RepairStrategy, seed int64) (*knapsack.Instance, Config, int64) {
	t.Helper()
	return knapsack.RandomInstance(30, 3, 0.5, rand.New(rand.NewSource(seed))),
		Config{
			Population:       20,
			Iterations:       150,
			Repair:           repair,
			MaxChildAttempts: 0,
		},
		seed
}

func TestSolveRecords(t *testing.T) {
	for _, repair := range []RepairStrategy{RepairSimple, RepairFancy} {
		t.Run(string(repair), func(t *testing.T) {
			inst, cfg, seed := newFixture(t, repair, 11)

			s, err := New(cfg, rand.New(rand.NewSource(seed)))
			require.NoError(t, err)

			res, err := s.Solve(context.Background(), inst)
			require.NoError(t, err)

			require.Len(t, res.FitnessRecord, cfg.Iterations)
			require.Len(t, res.SelectionRecord, cfg.Iterations)
			require.Len(t, res.StepDurations, cfg.Iterations)
			require.Equal(t, cfg.Iterations, res.Iterations)

			eval, err := knapsack.NewEvaluator(inst)
			require.NoError(t, err)
			used := make([]int, inst.Knapsacks)

			for tt := 0; tt < cfg.Iterations; tt++ {
				// Монотонность элитизма
				if tt > 0 {
					require.GreaterOrEqual(t, res.FitnessRecord[tt], res.FitnessRecord[tt-1])
				}

				// Каждая записанная особь допустима, её приспособленность
				// согласована с записью
				sel := res.SelectionRecord[tt]
				require.NoError(t, knapsack.ValidateSelection(sel, inst.Items))
				inst.Usage(sel, used)
				require.True(t, inst.Fits(used), "iteration %d: usage %v", tt, used)

				f, err := eval.Fitness(sel)
				require.NoError(t, err)
				require.Equal(t, res.FitnessRecord[tt], f)
			}

			require.Equal(t, res.FitnessRecord[cfg.Iterations-1], res.BestFitness)
			require.Equal(t, res.SelectionRecord[cfg.Iterations-1], res.BestSelection)
		})
	}
}

func TestReplaceWorst(t *testing.T) {
	pop := [][]int{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
	fitness := []int{50, 80, 30, 60}

	// Потомок строго лучше худшего: замещается строка 2, её запись
	// в векторе приспособленности пересчитана, остальные строки не тронуты
	child := []int{0, 1, 0, 1}
	idx, replaced := replaceWorst(pop, fitness, child, 140)
	require.True(t, replaced)
	require.Equal(t, 2, idx)
	require.Equal(t, []int{0, 1, 0, 1}, pop[2])
	require.Equal(t, []int{50, 80, 140, 60}, fitness)
	require.Equal(t, []int{1, 0, 0, 0}, pop[0])
	require.Equal(t, []int{0, 1, 0, 0}, pop[1])
	require.Equal(t, []int{0, 0, 0, 1}, pop[3])

	// Потомок не лучше худшего (нестрогое сравнение): популяция
	// и вектор приспособленности неизменны
	idx, replaced = replaceWorst(pop, fitness, []int{1, 1, 0, 0}, 50)
	require.False(t, replaced)
	require.Equal(t, 0, idx)
	require.Equal(t, []int{1, 0, 0, 0}, pop[0])
	require.Equal(t, []int{50, 80, 140, 60}, fitness)
}

func TestSolveDuplicateRejectionStall(t *testing.T) {
	// Единственное допустимое решение — пустое: предмет не помещается.
	// Любой потомок после простого восстановления дублирует популяцию,
	// лимит попыток исчерпывается.
	inst, err := knapsack.NewInstance(1, 1,
		[]int{10},
		[]int{5},
		[]int{7},
	)
	require.NoError(t, err)

	cfg := Config{
		Population:       4,
		Iterations:       5,
		Repair:           RepairSimple,
		MaxChildAttempts: 20,
	}
	s, err := New(cfg, rand.New(rand.NewSource(9)))
	require.NoError(t, err)

	_, err = s.Solve(context.Background(), inst)
	require.ErrorIs(t, err, ErrStalled)
}

func TestSolveContextCancelled(t *testing.T) {
	inst, cfg, seed := newFixture(t, RepairFancy, 13)

	s, err := New(cfg, rand.New(rand.NewSource(seed)))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := s.Solve(ctx, inst)
	require.ErrorIs(t, err, context.Canceled)
	require.Len(t, res.FitnessRecord, 1)
	require.Equal(t, "context", res.Meta["stopped"])
}
