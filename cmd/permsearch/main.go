package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()
	app.Name = "permsearch"
	app.Usage = "имитация отжига и генетический алгоритм для перестановочных задач"
	app.Version = "0.1.0"
	app.Commands = []cli.Command{
		{
			Name:   "anneal",
			Usage:  "решить задачу алгоритмом имитации отжига",
			Flags:  append(solveFlags(), annealFlags()...),
			Action: runAnneal,
		},
		{
			Name:   "genetic",
			Usage:  "решить задачу генетическим алгоритмом",
			Flags:  append(solveFlags(), geneticFlags()...),
			Action: runGenetic,
		},
		{
			Name:   "bench",
			Usage:  "серия запусков на случайных экземплярах с записью статистики в CSV",
			Flags:  benchFlags(),
			Action: runBench,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Ошибка:", err)
		os.Exit(1)
	}
}

func newLogger(c *cli.Context) *slog.Logger {
	level := slog.LevelInfo
	if c.Bool("verbose") {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// configError завершает программу с кодом 2, как ошибки конфигурации в bench.
func configError(format string, args ...any) error {
	return cli.NewExitError(fmt.Sprintf("Конфликт в конфигурации: "+format, args...), 2)
}
