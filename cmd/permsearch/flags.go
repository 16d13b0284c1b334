package main

import "github.com/urfave/cli"

func commonFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{Name: "config, c", Usage: "путь к YAML-файлу конфигурации"},
		cli.BoolFlag{Name: "verbose, v", Usage: "подробный журнал (уровень debug)"},
	}
}

func solveFlags() []cli.Flag {
	return append(commonFlags(),
		cli.StringFlag{Name: "problem, p", Value: "jobs", Usage: "тип задачи: jobs | tour"},
		cli.StringFlag{Name: "durations", Usage: "длительности работ через запятую (для jobs)"},
		cli.StringFlag{Name: "matrix", Usage: "YAML/JSON-файл с матрицей расстояний (для tour)"},
		cli.Int64Flag{Name: "seed, s", Usage: "сид генератора случайных чисел (по умолчанию из конфигурации)"},
		cli.StringFlag{Name: "plot", Usage: "сохранить график истории стоимости (.png, .svg, .pdf)"},
		cli.IntFlag{Name: "log-every", Value: 0, Usage: "журналировать каждую N-ю итерацию/поколение (0 — только итог)"},
		cli.DurationFlag{Name: "timeout", Usage: "ограничение времени поиска; 0 — без ограничения"},
	)
}

func annealFlags() []cli.Flag {
	return []cli.Flag{
		cli.Float64Flag{Name: "t0", Usage: "начальная температура"},
		cli.Float64Flag{Name: "tmin", Usage: "конечная температура (порог остановки)"},
		cli.Float64Flag{Name: "alpha", Usage: "коэффициент охлаждения (alpha)"},
		cli.IntFlag{Name: "max-iter", Usage: "ограничение числа итераций (0 — без ограничения)"},
	}
}

func geneticFlags() []cli.Flag {
	return []cli.Flag{
		cli.IntFlag{Name: "pop", Usage: "размер популяции"},
		cli.IntFlag{Name: "gen", Usage: "количество поколений"},
		cli.IntFlag{Name: "elite", Usage: "размер элиты"},
		cli.Float64Flag{Name: "cx", Usage: "вероятность применения кроссовера"},
		cli.Float64Flag{Name: "mut", Usage: "вероятность мутации"},
		cli.StringFlag{Name: "selection", Usage: "метод отбора: roulette | rank | tournament"},
		cli.StringFlag{Name: "crossover", Usage: "кроссовер: single-point | two-point | uniform | order"},
		cli.IntFlag{Name: "tournament", Usage: "размер турнира"},
		cli.Float64Flag{Name: "eps", Usage: "сдвиг fitness = 1/(cost+eps); 0 — нулевая стоимость запрещена"},
	}
}

func benchFlags() []cli.Flag {
	return append(commonFlags(),
		cli.IntFlag{Name: "runs", Usage: "количество запусков каждого алгоритма (с разными сидами)"},
		cli.Int64Flag{Name: "seed", Usage: "базовый сид для запусков алгоритмов"},
		cli.Int64Flag{Name: "instance-seed", Usage: "базовый сид для генерации экземпляров"},
		cli.IntFlag{Name: "workers", Usage: "число одновременно выполняемых независимых запусков"},
		cli.DurationFlag{Name: "per-run-timeout", Usage: "таймаут одного запуска; 0 — без ограничения"},
		cli.StringFlag{Name: "cases", Usage: "экземпляры kind:size через запятую, например jobs:20,tour:30"},
		cli.StringFlag{Name: "algos", Usage: "список алгоритмов: SA, GA (через запятую)"},
		cli.StringFlag{Name: "out", Usage: "путь к выходному CSV-файлу"},
	)
}
