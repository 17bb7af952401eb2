package crossover

import (
	"github.com/nathanhack/secded/benchmarking"
	"github.com/nathanhack/secded/cmd/internal/tools/bsc"
	"github.com/spf13/cobra"
)

var (
	Trials           uint
	ErrorProbability []float64
	Threads          uint
)

const typeInfo = "BSC:crossover"

var CrossoverRun = func(cmd *cobra.Command, args []string) {
	bsc.Simulate(args, typeInfo, ErrorProbability, int(Trials), int(Threads), benchmarking.BSCChannel)
}
