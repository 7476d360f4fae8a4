package relax

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"multiKnapsack/internal/knapsack"
)

// DualPrices решает двойственную задачу LP-релаксации рюкзака:
//
//	min bᵀw  при  rᵀw >= p,  w >= 0
//
// Оптимальный вектор w — теневые цены ограничений вместимости.
// Задача приводится к стандартной форме добавлением избыточных
// переменных s: [-rᵀ | I] · [w; s] = -p.
func DualPrices(inst *knapsack.Instance) ([]float64, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	m := inst.Knapsacks
	n := inst.Items

	c := make([]float64, m+n)
	for i := 0; i < m; i++ {
		c[i] = float64(inst.Capacities[i])
	}

	a := mat.NewDense(n, m+n, nil)
	b := make([]float64, n)
	for j := 0; j < n; j++ {
		for i := 0; i < m; i++ {
			a.Set(j, i, -float64(inst.Cost(i, j)))
		}
		a.Set(j, m+j, 1)
		b[j] = -float64(inst.Profits[j])
	}

	_, x, err := lp.Simplex(c, a, b, 0, nil)
	if err != nil {
		return nil, fmt.Errorf("решение двойственной LP-релаксации: %w", err)
	}

	w := make([]float64, m)
	copy(w, x[:m])
	return w, nil
}

// UtilityOrder возвращает перестановку индексов предметов по возрастанию
// полезности p_j / Σ_i w_i·r_ij, где w — теневые цены из DualPrices.
// Суммирование идёт по всем m рюкзакам.
func UtilityOrder(inst *knapsack.Instance) ([]int, error) {
	w, err := DualPrices(inst)
	if err != nil {
		return nil, err
	}
	n := inst.Items

	util := make([]float64, n)
	for j := 0; j < n; j++ {
		denom := 0.0
		for i := 0; i < inst.Knapsacks; i++ {
			denom += w[i] * float64(inst.Cost(i, j))
		}
		if denom > 0 {
			util[j] = float64(inst.Profits[j]) / denom
		} else {
			// Предмет без взвешенной стоимости берётся в последнюю очередь
			// фазы удаления и в первую — фазы добавления.
			util[j] = math.Inf(1)
		}
	}

	order := make([]int, n)
	for j := range order {
		order[j] = j
	}
	sort.Slice(order, func(a, b int) bool {
		return util[order[a]] < util[order[b]]
	})
	return order, nil
}
