package bench

import "gonum.org/v1/gonum/stat"

// FitnessStats — сводка по итоговой приспособленности прогонов.
// Best — максимум (задача на максимизацию прибыли).
type FitnessStats struct {
	N    int
	Best int
	Mean float64
	Std  float64
}

func CalcFitnessStats(values []int) FitnessStats {
	s := FitnessStats{N: len(values)}
	if s.N == 0 {
		return s
	}

	best := values[0]
	fs := make([]float64, s.N)
	for i, v := range values {
		if v > best {
			best = v
		}
		fs[i] = float64(v)
	}

	s.Best = best
	s.Mean = stat.Mean(fs, nil)
	if s.N >= 2 {
		s.Std = stat.StdDev(fs, nil)
	}
	return s
}

// TimeStats — сводка по времени прогонов. Best — минимум.
type TimeStats struct {
	N    int
	Best float64
	Mean float64
	Std  float64
}

func CalcTimeStats(values []float64) TimeStats {
	s := TimeStats{N: len(values)}
	if s.N == 0 {
		return s
	}

	best := values[0]
	for _, v := range values {
		if v < best {
			best = v
		}
	}

	s.Best = best
	s.Mean = stat.Mean(values, nil)
	if s.N >= 2 {
		s.Std = stat.StdDev(values, nil)
	}
	return s
}
