package sa

import (
	"fmt"
	"math"
)

type Config struct {
	InitialTemp float64
	// FinalTemp - порог остановки: поиск завершается, когда T <= FinalTemp.
	FinalTemp float64
	Alpha     float64

	// MaxIterations - дополнительное ограничение числа итераций (0 — без ограничения).
	MaxIterations int
}

func DefaultConfig() Config {
	return Config{
		InitialTemp: 1000.0,
		FinalTemp:   1.0,
		Alpha:       0.99,
	}
}

func (c Config) Validate() error {
	if c.InitialTemp <= 0 || math.IsInf(c.InitialTemp, 0) || math.IsNaN(c.InitialTemp) {
		return fmt.Errorf(
			"InitialTemp должно быть конечным и > 0 (получено %f)",
			c.InitialTemp,
		)
	}
	if c.FinalTemp <= 0 || math.IsInf(c.FinalTemp, 0) || math.IsNaN(c.FinalTemp) {
		return fmt.Errorf(
			"FinalTemp должно быть конечным и > 0 (получено %f)",
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
	if c.Alpha <= 0 || c.Alpha >= 1 || math.IsNaN(c.Alpha) {
		return fmt.Errorf(
			"alpha должно лежать в интервале (0,1) (получено %f)",
			c.Alpha,
		)
	}
	if c.MaxIterations < 0 {
		return fmt.Errorf(
			"MaxIterations должно быть >= 0 (получено %d)",
			c.MaxIterations,
		)
	}
	return nil
}

// PlannedIterations - число итераций геометрического охлаждения от InitialTemp
// до FinalTemp: ceil(log(FinalTemp/InitialTemp) / log(Alpha)).
// Фактическое число итераций может отличаться на единицу из-за округления.
// Если значение не представимо в int, возвращается math.MaxInt.
func (c Config) PlannedIterations() int {
	// Разность логарифмов не обнуляется при очень малом отношении температур.
	f := math.Ceil((math.Log(c.FinalTemp) - math.Log(c.InitialTemp)) / math.Log(c.Alpha))
	k := math.MaxInt
	if !math.IsNaN(f) && f < math.MaxInt {
		k = int(max(f, 0))
	}
	if c.MaxIterations > 0 && c.MaxIterations < k {
		return c.MaxIterations
	}
	return k
}
