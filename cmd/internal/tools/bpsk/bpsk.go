package bpsk

import (
	"github.com/nathanhack/secded/benchmarking"
	"github.com/nathanhack/secded/cmd/internal/tools/bsc"
	"github.com/spf13/cobra"
)

var (
	Trials  uint
	EbN0    []float64
	Threads uint
)

const typeInfo = "BPSK:hard"

var BpskRun = func(cmd *cobra.Command, args []string) {
	//after the hard decision the bpsk channel is a bsc so it shares the driver
	bsc.Simulate(args, typeInfo, EbN0, int(Trials), int(Threads), benchmarking.BPSKChannel)
}
