package sa

import "fmt"

type Config struct {
	Iterations        int
	IterationsPerItem int

	InitialTemp float64
	FinalTemp   float64
	Alpha       float64
}

func DefaultConfig() Config {
	return Config{
		Iterations:        0,
		IterationsPerItem: 100,

		InitialTemp: 2000.0,
		FinalTemp:   0.5,
		Alpha:       0.995,
	}
}

func (c Config) Validate() error {
	if c.Iterations <= 0 && c.IterationsPerItem <= 0 {
		return fmt.Errorf(
			"должно быть задано Iterations > 0 или IterationsPerItem > 0",
		)
	}
	if c.InitialTemp <= 0 {
		return fmt.Errorf(
			"InitialTemp должно быть > 0 (получено %f)",
			c.InitialTemp,
		)
	}
	if c.FinalTemp <= 0 {
		return fmt.Errorf(
			"FinalTemp должно быть > 0 (получено %f)",
			c.FinalTemp,
		)
	}
	if c.FinalTemp >= c.InitialTemp {
		return fmt.Errorf(
			"FinalTemp должно быть < InitialTemp (получено %f >= %f)",
			c.FinalTemp,
			c.InitialTemp,
		)
	}
	if c.Alpha <= 0 || c.Alpha >= 1 {
		return fmt.Errorf(
			"alpha должно лежать в интервале (0,1) (получено %f)",
			c.Alpha,
		)
	}
	return nil
}
