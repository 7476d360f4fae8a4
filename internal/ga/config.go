package ga

import "fmt"

// Стратегия восстановления допустимости потомка
type RepairStrategy string

const (
	RepairSimple RepairStrategy = "simple"
	RepairFancy  RepairStrategy = "fancy"
)

type Config struct {
	Population int
	Iterations int

	Repair RepairStrategy

	// MaxChildAttempts ограничивает число попыток сгенерировать потомка,
	// отличного от всех членов популяции. 0 — без ограничения.
	MaxChildAttempts int
}

func (c Config) Validate() error {
	if c.Population < 4 {
		return fmt.Errorf(
			"размер популяции должен быть >= 4 для бинарного турнирного отбора (получено %d)",
			c.Population,
		)
	}
	if c.Iterations <= 0 {
		return fmt.Errorf(
			"количество итераций должно быть > 0 (получено %d)",
			c.Iterations,
		)
	}
	if c.MaxChildAttempts < 0 {
		return fmt.Errorf(
			"лимит попыток генерации потомка должен быть >= 0 (получено %d)",
			c.MaxChildAttempts,
		)
	}
	switch c.Repair {
	case RepairSimple, RepairFancy:
		// ok
	default:
		return fmt.Errorf(
			"оператор восстановления должен быть либо %q, либо %q (получено %q)",
			RepairSimple,
			RepairFancy,
			c.Repair,
		)
	}
	return nil
}

func DefaultConfig() Config {
	return Config{
		Population:       100,
		Iterations:       10_000,
		Repair:           RepairFancy,
		MaxChildAttempts: 10_000,
	}
}
