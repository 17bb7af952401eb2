package cmd

import (
	"fmt"
	"strings"

	"github.com/nathanhack/secded/cmd/internal/tools"
	"github.com/nathanhack/secded/cmd/internal/tools/bpsk"
	"github.com/nathanhack/secded/cmd/internal/tools/bsc/crossover"
	"github.com/nathanhack/secded/cmd/internal/tools/bsc/flips"
	"github.com/nathanhack/secded/cmd/internal/tools/chart"
	"github.com/nathanhack/secded/cmd/internal/tools/csv"

	"github.com/spf13/cobra"
)

// toolsCmd represents the tools command
var toolsCmd = &cobra.Command{
	Use:     "tools",
	Aliases: []string{"t"},
	Short:   "Tools for ECCs",
	Long:    `Tools for ECCs`,
}

// toolsChansimCmd represents the chansim command
var toolsChansimCmd = &cobra.Command{
	Use:     "chansim",
	Aliases: []string{"cs", "c"},
	Short:   "Channel simulators",
	Long:    `Channel simulators for SEC-DED codes`,
}

// toolsBscCmd represents the bsc command
var toolsBscCmd = &cobra.Command{
	Use:   "bsc",
	Short: "Binary symmetric channel simulators",
	Long:  `Binary symmetric channel simulators for SEC-DED codes`,
}

// toolsCrossoverCmd represents the crossover command
var toolsCrossoverCmd = &cobra.Command{
	Use:     "crossover ECC_JSON_FILE RESULT_JSON",
	Aliases: []string{"p"},
	Short:   "A BSC simulator flipping each bit with a crossover probability",
	Long:    `A BSC simulator flipping each bit with a crossover probability`,
	Run:     crossover.CrossoverRun,
}

// toolsFlipsCmd represents the flips command
var toolsFlipsCmd = &cobra.Command{
	Use:     "flips ECC_JSON_FILE RESULT_JSON",
	Aliases: []string{"f"},
	Short:   "A BSC simulator flipping an exact number of bits per codeword",
	Long:    `A BSC simulator flipping an exact number of distinct bits per codeword`,
	Run:     flips.FlipsRun,
}

// toolsBpskCmd represents the bpsk command
var toolsBpskCmd = &cobra.Command{
	Use:   "bpsk ECC_JSON_FILE RESULT_JSON",
	Short: "A BPSK over AWGN simulator with hard decisions",
	Long:  `A BPSK over AWGN simulator with hard decisions, swept over E_b/N_0`,
	Run:   bpsk.BpskRun,
}

// toolsResultsCmd represents the results command
var toolsResultsCmd = &cobra.Command{
	Use:     "results",
	Aliases: []string{"r"},
	Short:   "A tool to organize results for graphing and comparison",
	Long:    `A tool to organize results for graphing and comparison`,
}

// toolsCSVCmd represents the csv command
var toolsCSVCmd = &cobra.Command{
	Use:     "csv RESULTS_JSON [RESULTS_JSON] ...",
	Aliases: []string{"c"},
	Short:   "Export to a CSV file",
	Long:    `Export to a CSV file`,
	Run:     csv.CSVRun,
}

// toolsChartCmd represents the chart command
var toolsChartCmd = &cobra.Command{
	Use:   "chart RESULTS_JSON [RESULTS_JSON] ...",
	Short: "Export to an html bar chart",
	Long:  `Export to an html bar chart`,
	Run:   chart.ChartRun,
}

func init() {
	rateUsage := fmt.Sprintf("the rate to output: %v", strings.Join(tools.Rates, ", "))

	rootCmd.AddCommand(toolsCmd)
	toolsCmd.AddCommand(toolsChansimCmd)
	toolsCmd.AddCommand(toolsResultsCmd)

	toolsChansimCmd.AddCommand(toolsBscCmd)

	toolsBscCmd.AddCommand(toolsCrossoverCmd)
	toolsCrossoverCmd.Flags().UintVarP(&crossover.Trials, "trials", "t", 100_000, "the number of trials per step")
	toolsCrossoverCmd.Flags().Float64SliceVarP(&crossover.ErrorProbability, "probability", "p", []float64{0.001, 0.005, 0.01, 0.02, 0.05, 0.10}, "probability of crossover errors to test [0, 0.5]")
	toolsCrossoverCmd.Flags().UintVar(&crossover.Threads, "threads", 0, "number of threads to use (0 means to use the # of threads equal to the # of CPUs)")

	toolsBscCmd.AddCommand(toolsFlipsCmd)
	toolsFlipsCmd.Flags().UintVarP(&flips.Trials, "trials", "t", 100_000, "the number of trials per step")
	toolsFlipsCmd.Flags().IntSliceVarP(&flips.Flips, "flips", "f", []int{0, 1, 2, 3}, "number of distinct bits to flip per codeword")
	toolsFlipsCmd.Flags().UintVar(&flips.Threads, "threads", 0, "number of threads to use (0 means to use the # of threads equal to the # of CPUs)")

	toolsChansimCmd.AddCommand(toolsBpskCmd)
	toolsBpskCmd.Flags().UintVarP(&bpsk.Trials, "trials", "t", 100_000, "the number of trials per step")
	toolsBpskCmd.Flags().Float64SliceVarP(&bpsk.EbN0, "ebn0", "e", []float64{0.5, 1, 2, 4, 8}, "E_b/N_0 values to test (linear, >0)")
	toolsBpskCmd.Flags().UintVar(&bpsk.Threads, "threads", 0, "number of threads to use (0 means to use the # of threads equal to the # of CPUs)")

	toolsResultsCmd.AddCommand(toolsCSVCmd)
	toolsCSVCmd.Flags().StringVarP(&csv.OutputFile, "output", "o", "results.csv", "filename of the combined csv")
	toolsCSVCmd.Flags().StringVar(&csv.Rate, "rate", "codeword", rateUsage)

	toolsResultsCmd.AddCommand(toolsChartCmd)
	toolsChartCmd.Flags().StringVarP(&chart.OutputFile, "output", "o", "results.html", "filename of the html chart")
	toolsChartCmd.Flags().StringVar(&chart.Rate, "rate", "codeword", rateUsage)
}
