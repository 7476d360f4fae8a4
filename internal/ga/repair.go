package ga

import (
	"errors"
	"fmt"

	"multiKnapsack/internal/knapsack"
)

var (
	// ErrInvariantViolation - решение покинуло инициализацию или
	// восстановление в недопустимом состоянии. Дефект алгоритма,
	// прогон прерывается без попытки исправления.
	ErrInvariantViolation = errors.New("решение нарушает ограничения вместимости")

	// ErrStalled - исчерпан лимит попыток сгенерировать потомка,
	// отличного от всех членов популяции.
	ErrStalled = errors.New("исчерпан лимит попыток генерации уникального потомка")
)

// applyRepair приводит потомка x к допустимому виду выбранной стратегией.
//
// Простая стратегия обнуляет недопустимое решение целиком; допустимое
// возвращается без изменений.
//
// Стратегия Чу-Бизли работает по ранжированию order (возрастание
// полезности): фаза удаления выбрасывает наименее полезные из выбранных
// предметов до восстановления допустимости, фаза добавления заполняет
// остаток вместимости наиболее полезными из невыбранных.
//
// used — рабочий буфер длины Knapsacks; после возврата содержит
// потребление ресурсов итогового решения.
func applyRepair(x, used []int, inst *knapsack.Instance, strategy RepairStrategy, order []int) error {
	inst.Usage(x, used)

	switch strategy {
	case RepairSimple:
		if !inst.Fits(used) {
			for j := range x {
				x[j] = 0
			}
			inst.Usage(x, used)
		}
		return nil

	case RepairFancy:
		// Фаза удаления
		for j := 0; !inst.Fits(used); j++ {
			it := order[j]
			if x[it] == 1 {
				x[it] = 0
				inst.Remove(used, it)
			}
		}

		// Фаза добавления
		for j := len(order) - 1; j >= 0; j-- {
			it := order[j]
			if x[it] == 0 && inst.CanAdd(used, it) {
				x[it] = 1
				inst.Add(used, it)
			}
		}

		// САНИТАРНАЯ ПРОВЕРКА
		if !inst.Fits(used) {
			return fmt.Errorf("%w: после восстановления стратегией %q", ErrInvariantViolation, strategy)
		}
		return nil

	default:
		return fmt.Errorf(
			"оператор восстановления должен быть либо %q, либо %q (получено %q)",
			RepairSimple,
			RepairFancy,
			strategy,
		)
	}
}
