package problem

// Instances used by the command line defaults and the end-to-end tests.
var (
	ExampleDurations5 = []int{4, 6, 2, 7, 3}

	// High-variance durations: long and short jobs interleaved.
	ExampleDurations12 = []int{50, 2, 70, 1, 60, 3, 80, 4, 90, 5, 100, 6}

	ExampleMatrix4 = [][]int{
		{0, 2, 9, 10},
		{1, 0, 6, 4},
		{15, 7, 0, 8},
		{6, 3, 12, 0},
	}
)
