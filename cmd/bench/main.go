package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"

	"multiKnapsack/internal/bench"
	"multiKnapsack/internal/ga"
	"multiKnapsack/internal/opt"
	"multiKnapsack/internal/sa"
)

// Значения по умолчанию, переопределяемые переменными окружения.
// Флаги командной строки имеют приоритет над окружением.
type defaults struct {
	Out          string `env:"MKP_OUT" envDefault:"artifacts/results.csv"`
	HistoryOut   string `env:"MKP_HISTORY_OUT" envDefault:"artifacts/history.csv"`
	Cases        string `env:"MKP_CASES" envDefault:"100x5x0.75"`
	Algos        string `env:"MKP_ALGOS" envDefault:"GA-simple,GA-fancy,SA"`
	Runs         int    `env:"MKP_RUNS" envDefault:"30"`
	Seed         int64  `env:"MKP_SEED" envDefault:"1000"`
	InstanceSeed int64  `env:"MKP_INSTANCE_SEED" envDefault:"777"`
	Parallel     int    `env:"MKP_PARALLEL" envDefault:"1"`
	Verbose      bool   `env:"MKP_VERBOSE" envDefault:"false"`
}

// Фабрики

func newGAFactory(cfg ga.Config) func(seed int64) opt.Optimizer {
	return func(seed int64) opt.Optimizer {
		solver, _ := ga.New(cfg, rand.New(rand.NewSource(seed)))
		return solver
	}
}

func newSAFactory(cfg sa.Config) func(seed int64) opt.Optimizer {
	return func(seed int64) opt.Optimizer {
		solver, _ := sa.New(cfg, rand.New(rand.NewSource(seed)))
		return solver
	}
}

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		With().Timestamp().Logger()

	var def defaults
	if err := env.Parse(&def); err != nil {
		log.Fatal().Err(err).Msg("Конфликт в переменных окружения")
	}

	// CLI флаги для настройки параметров алгоритмов и политики запуска
	var (
		out          = flag.String("out", def.Out, "путь к сводному CSV-файлу")
		historyOut   = flag.String("history_out", def.HistoryOut, "путь к CSV-файлу поитерационных кривых приспособленности")
		cases        = flag.String("cases", def.Cases, "конфигурации: предметы x рюкзаки x коэффициент заполненности (через запятую)")
		algos        = flag.String("algos", def.Algos, "список алгоритмов: GA-simple, GA-fancy, SA (через запятую)")
		runs         = flag.Int("runs", def.Runs, "количество запусков каждого алгоритма (с разными сидами)")
		baseSeed     = flag.Int64("seed", def.Seed, "базовый сид для запусков алгоритмов")
		instanceSeed = flag.Int64("instance_seed", def.InstanceSeed, "базовый сид для генерации экземпляров задачи (фиксирован для конфигурации)")
		parallel     = flag.Int("parallel", def.Parallel, "количество одновременных прогонов")
		perRunTO     = flag.Duration("per_run_timeout", 0, "таймаут одного запуска; 0 — без ограничения")
		verbose      = flag.Bool("v", def.Verbose, "подробный вывод (уровень debug)")

		// --- Генетический алгоритм ---
		gaPop      = flag.Int("ga_pop", 100, "размер популяции")
		gaIter     = flag.Int("ga_iter", 10_000, "количество итераций")
		gaAttempts = flag.Int("ga_attempts", 10_000, "лимит попыток генерации уникального потомка (0 — без ограничения)")

		// --- Алгоритм имитации отжига ---
		saIterPerItem = flag.Int("sa_iter_per_item", 100, "количество итераций на один предмет (используется, если sa_iter == 0)")
		saIter        = flag.Int("sa_iter", 0, "общее количество итераций (0 => sa_iter_per_item × nItems)")
		saT0          = flag.Float64("sa_t0", 2000.0, "начальная температура")
		saTmin        = flag.Float64("sa_tmin", 0.5, "конечная температура")
		saAlpha       = flag.Float64("sa_alpha", 0.995, "коэффициент охлаждения (alpha)")
	)
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	ctx := context.Background()

	parsed, err := parseCases(*cases, *instanceSeed)
	if err != nil {
		log.Fatal().Err(err).Msg("Конфликт в списке конфигураций")
	}

	gaSimpleCfg := ga.Config{
		Population:       *gaPop,
		Iterations:       *gaIter,
		Repair:           ga.RepairSimple,
		MaxChildAttempts: *gaAttempts,
	}
	if err := gaSimpleCfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Конфликт в конфигурации генетического алгоритма")
	}
	gaFancyCfg := gaSimpleCfg
	gaFancyCfg.Repair = ga.RepairFancy

	saCfg := sa.Config{
		Iterations:        *saIter,
		IterationsPerItem: *saIterPerItem,
		InitialTemp:       *saT0,
		FinalTemp:         *saTmin,
		Alpha:             *saAlpha,
	}
	if err := saCfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Конфликт в конфигурации алгоритма имитации отжига")
	}

	available := map[string]bench.Algorithm{
		"GA-simple": {Name: "GA-simple", Factory: newGAFactory(gaSimpleCfg)},
		"GA-fancy":  {Name: "GA-fancy", Factory: newGAFactory(gaFancyCfg)},
		"SA":        {Name: "SA", Factory: newSAFactory(saCfg)},
	}

	var selected []bench.Algorithm
	for _, a := range splitCSV(*algos) {
		al, ok := available[a]
		if !ok {
			log.Fatal().Str("algo", a).Strs("available", keys(available)).Msg("Алгоритм не предоставлен в программе")
		}
		selected = append(selected, al)
	}

	runner := bench.Runner{
		Runs:          *runs,
		BaseSeed:      *baseSeed,
		PerRunTimeout: *perRunTO,
		Parallel:      *parallel,
		Log:           log,
	}

	var records []bench.Record
	for _, c := range parsed {
		for _, a := range selected {
			log.Info().
				Str("algo", a.Name).
				Int("items", c.Items).
				Int("knapsacks", c.Knapsacks).
				Float64("alpha", c.Alpha).
				Int("runs", runner.Runs).
				Msg("Запущен алгоритм")

			rec, err := runner.RunCase(ctx, c, a)
			if err != nil {
				log.Fatal().Err(err).Msg("Ошибка")
			}
			records = append(records, rec)

			log.Info().
				Int("fitness_best", rec.FitnessBest).
				Float64("fitness_mean", rec.FitnessMean).
				Float64("fitness_std", rec.FitnessStd).
				Float64("time_mean_ms", rec.TimeMeanMs).
				Float64("time_std_ms", rec.TimeStdMs).
				Msg("Результаты")
		}
	}

	if err := bench.WriteSummaryCSV(*out, records); err != nil {
		log.Fatal().Err(err).Msg("Ошибка при записи сводного CSV")
	}
	if err := bench.WriteHistoryCSV(*historyOut, records); err != nil {
		log.Fatal().Err(err).Msg("Ошибка при записи CSV кривых приспособленности")
	}
	log.Info().Str("summary", *out).Str("history", *historyOut).Msg("Сохранено")
}

// helpers

func parseCases(s string, baseInstanceSeed int64) ([]bench.Case, error) {
	parts := splitCSV(s)
	cases := make([]bench.Case, 0, len(parts))

	for i, p := range parts {
		nm := strings.Split(p, "x")
		if len(nm) != 3 {
			return nil, fmt.Errorf("конфигурация %q невалидной схемы, пример: 100x5x0.75", p)
		}
		items, err := atoiStrict(nm[0])
		if err != nil {
			return nil, fmt.Errorf("конфигурация %q: ошибка парсинга количества предметов: %w", p, err)
		}
		knapsacks, err := atoiStrict(nm[1])
		if err != nil {
			return nil, fmt.Errorf("конфигурация %q: ошибка парсинга количества рюкзаков: %w", p, err)
		}
		alpha, err := strconv.ParseFloat(strings.TrimSpace(nm[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("конфигурация %q: ошибка парсинга коэффициента заполненности: %w", p, err)
		}
		if items <= 0 || knapsacks <= 0 {
			return nil, fmt.Errorf("конфигурация %q: количество предметов и рюкзаков должно быть > 0", p)
		}
		if alpha <= 0 || alpha >= 1 {
			return nil, fmt.Errorf("конфигурация %q: коэффициент заполненности должен лежать в интервале (0,1)", p)
		}

		seed := baseInstanceSeed + int64(i)*10_000 + int64(items)*100 + int64(knapsacks)

		cases = append(cases, bench.Case{
			Items:        items,
			Knapsacks:    knapsacks,
			Alpha:        alpha,
			InstanceSeed: seed,
		})
	}

	return cases, nil
}

func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func atoiStrict(s string) (int, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return v, nil
}

func keys(m map[string]bench.Algorithm) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
