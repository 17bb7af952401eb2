package bsc

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nathanhack/secded/benchmarking"
	"github.com/nathanhack/secded/cmd/internal/tools"
	"github.com/sirupsen/logrus"
)

// Simulate loads the ECC_JSON_FILE and RESULT_JSON named in args, runs the
// simulation for every x and saves the results.
func Simulate(args []string, typeInfo string, xs []float64, trials, threads int, channelFor func(x float64) benchmarking.Channel) {
	if len(args) != 2 {
		fmt.Println("requires both ECC_JSON_FILE RESULT_JSON")
		return
	}

	//first get the ECC to use
	code, err := tools.LoadCode(args[0])
	if err != nil {
		fmt.Println(err)
		return
	}

	//next we see if the RESULT_JSON exists if so we load it and validate we're running it against the right thing
	data, err := tools.PrepareResults(args[1], typeInfo, code)
	if err != nil {
		fmt.Println(err)
		return
	}
	logrus.Debugf("simulating %v over %v for %v trials", code, xs, trials)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case sig := <-sigs:
			fmt.Println()
			fmt.Println(sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	tools.RunSimulation(ctx, data, code, xs, trials, threads, channelFor, args[1])

	err = tools.SaveResults(args[1], data)
	if err != nil {
		fmt.Println(err)
	}
}
