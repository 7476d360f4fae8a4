package bench

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
)

// WriteSummaryCSV записывает сводную таблицу прогонов.
func WriteSummaryCSV(path string, records []Record) error {
	w, closeFn, err := createCSV(path)
	if err != nil {
		return err
	}
	defer closeFn()

	header := []string{
		"algo", "items", "knapsacks", "alpha", "runs",
		"time_best_ms", "time_mean_ms", "time_std_ms",
		"fitness_best", "fitness_mean", "fitness_std",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range records {
		row := []string{
			r.Algo,
			itoa(r.Items),
			itoa(r.Knapsacks),
			ftoa(r.Alpha),
			itoa(r.Runs),

			ftoa(r.TimeBestMs),
			ftoa(r.TimeMeanMs),
			ftoa(r.TimeStdMs),

			itoa(r.FitnessBest),
			ftoa(r.FitnessMean),
			ftoa(r.FitnessStd),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return flush(w)
}

// WriteHistoryCSV записывает поитерационные кривые приспособленности:
// столбец iteration и по столбцу на каждую запись. Более короткие кривые
// дополняются пустыми ячейками.
func WriteHistoryCSV(path string, records []Record) error {
	w, closeFn, err := createCSV(path)
	if err != nil {
		return err
	}
	defer closeFn()

	header := make([]string, 0, len(records)+1)
	header = append(header, "iteration")
	maxLen := 0
	for _, r := range records {
		header = append(header, r.Algo)
		if len(r.History) > maxLen {
			maxLen = len(r.History)
		}
	}
	if err := w.Write(header); err != nil {
		return err
	}

	row := make([]string, len(records)+1)
	for t := 0; t < maxLen; t++ {
		row[0] = itoa(t)
		for i, r := range records {
			if t < len(r.History) {
				row[i+1] = itoa(r.History[t])
			} else {
				row[i+1] = ""
			}
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return flush(w)
}

func createCSV(path string) (*csv.Writer, func(), error) {
	if err := os.MkdirAll(dirOf(path), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	w := csv.NewWriter(f)
	return w, func() { f.Close() }, nil
}

func flush(w *csv.Writer) error {
	w.Flush()
	return w.Error()
}

func dirOf(path string) string {
	d := filepath.Dir(path)
	if d == "." {
		return ""
	}
	return d
}

func itoa(v int) string { return strconv.Itoa(v) }

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
