package knapsack

import "fmt"

func ValidateSelection(x []int, n int) error {
	if len(x) != n {
		return fmt.Errorf("selection length must be %d (got %d)", n, len(x))
	}
	for j, v := range x {
		if v != 0 && v != 1 {
			return fmt.Errorf("selection[%d]=%d must be 0 or 1", j, v)
		}
	}
	return nil
}
