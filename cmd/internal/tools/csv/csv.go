package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/nathanhack/secded/cmd/internal/tools"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

var OutputFile string
var Rate string

var CSVRun = func(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		fmt.Println("requires at least one RESULTS_JSON")
		return
	}

	stats := make([]*tools.SimulationStats, len(args))
	var err error
	for i, resultFile := range args {
		stats[i], err = tools.LoadResults(resultFile)
		if err != nil {
			fmt.Println(err)
			return
		}
		if stats[i] == nil {
			fmt.Printf("results file %v does not exist\n", resultFile)
			return
		}
	}

	f, err := os.Create(OutputFile)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer f.Close()

	if err := Write(f, args, stats, Rate); err != nil {
		fmt.Println(err)
	}
}

// Write writes one row per results file and one column per x value
// holding the named rate.
func Write(out io.Writer, names []string, stats []*tools.SimulationStats, rate string) error {
	w := csv.NewWriter(out)
	defer w.Flush()

	//first write headers
	xs := XValues(stats)
	header := []string{"Results File"}
	for _, x := range xs {
		header = append(header, fmt.Sprintf("%v", x))
	}

	err := w.Write(header)
	if err != nil {
		return err
	}

	for i, s := range stats {
		record := make([]string, len(header))
		record[0] = strings.TrimSuffix(names[i], filepath.Ext(names[i]))

		for j, x := range xs {
			v, has := s.Stats[x]
			if !has {
				continue
			}
			value, err := tools.Rate(v, rate)
			if err != nil {
				return err
			}
			record[j+1] = fmt.Sprintf("%v", value)
		}

		err = w.Write(record)
		if err != nil {
			return err
		}
	}
	return nil
}

// XValues is the sorted union of the x values in stats.
func XValues(stats []*tools.SimulationStats) []float64 {
	seen := make(map[float64]bool)
	xs := make([]float64, 0)
	for _, s := range stats {
		for x := range s.Stats {
			if !seen[x] {
				seen[x] = true
				xs = append(xs, x)
			}
		}
	}
	slices.Sort(xs)
	return xs
}
