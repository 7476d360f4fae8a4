package ga

import (
	"math/rand"

	"multiKnapsack/internal/knapsack"
)

// initChromosome строит случайное допустимое решение жадным способом:
// предметы перебираются в случайном порядке и добавляются, пока очередной
// предмет помещается во все рюкзаки. Перебор останавливается на первом
// неподходящем предмете, что даёт разный уровень заполнения решений.
// x и perm имеют длину Items, used — длину Knapsacks.
func initChromosome(x, used, perm []int, inst *knapsack.Instance, rng *rand.Rand) {
	for j := range x {
		x[j] = 0
	}
	for i := range used {
		used[i] = 0
	}
	for j := range perm {
		perm[j] = j
	}
	shuffle(perm, rng)

	for i := len(perm) - 1; i >= 0; i-- {
		j := perm[i]
		if !inst.CanAdd(used, j) {
			break
		}
		x[j] = 1
		inst.Add(used, j)
	}
}

// shuffle выполняет случайную перестановку элементов.
func shuffle(p []int, rng *rand.Rand) {
	for i := len(p) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}
}

// tournamentPair реализует бинарный турнирный отбор (T = 2).
// Из популяции без возвращения выбираются четыре различных индекса,
// разбитые на две непересекающиеся пары; победитель каждой пары — особь
// с наибольшей приспособленностью. Индексы родителей всегда различны.
// pool — рабочий буфер длины len(fitness).
func tournamentPair(fitness []int, pool []int, rng *rand.Rand) (int, int) {
	k := len(fitness)
	for i := range pool {
		pool[i] = i
	}
	for i := 0; i < 4; i++ {
		j := i + rng.Intn(k-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	parent1 := pool[0]
	if fitness[pool[1]] > fitness[parent1] {
		parent1 = pool[1]
	}
	parent2 := pool[2]
	if fitness[pool[3]] > fitness[parent2] {
		parent2 = pool[3]
	}
	return parent1, parent2
}

// uniformCrossover реализует равномерный кроссовер: каждый бит потомка
// берётся из первого или второго родителя по результату броска монеты.
func uniformCrossover(parent1, parent2, child []int, rng *rand.Rand) {
	for i := range child {
		if rng.Intn(2) == 0 {
			child[i] = parent1[i]
		} else {
			child[i] = parent2[i]
		}
	}
}

// mutate с вероятностью 1/2 инвертирует один случайный бит потомка.
func mutate(child []int, rng *rand.Rand) {
	if rng.Intn(2) == 1 {
		return
	}
	i := rng.Intn(len(child))
	child[i] = 1 - child[i]
}

// containsRow проверяет, что потомок бит в бит совпадает
// с одним из членов популяции.
func containsRow(pop [][]int, x []int) bool {
	for _, row := range pop {
		same := true
		for j := range row {
			if row[j] != x[j] {
				same = false
				break
			}
		}
		if same {
			return true
		}
	}
	return false
}
