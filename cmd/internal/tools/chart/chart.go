package chart

import (
	"fmt"
	"io"
	"os"

	"github.com/nathanhack/secded/cmd/internal/tools"
	"github.com/nathanhack/secded/cmd/internal/tools/csv"
	"github.com/spf13/cobra"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

var OutputFile string
var Rate string

var ChartRun = func(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		fmt.Println("requires at least one RESULTS_JSON")
		return
	}

	// loop through all the results files and collect data needed for displaying
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

	if err := Render(f, args, stats, Rate); err != nil {
		fmt.Println(err)
	}
}

// Render writes an html bar chart of the named rate, one series per results file.
func Render(w io.Writer, names []string, stats []*tools.SimulationStats, rate string) error {
	//now make the x axis values
	xvalues := csv.XValues(stats)
	xnames := make([]string, len(xvalues))
	for i, x := range xvalues {
		xnames[i] = fmt.Sprint(x)
	}

	// create a new bar instance
	bar := charts.NewBar()
	// set some global options like Title/Legend/ToolTip or anything else
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Results",
			Subtitle: fmt.Sprintf("%v rate", rate),
			Left:     "20%",
		}),
		charts.WithLegendOpts(opts.Legend{Show: true,
			Orient: "vertical",
			Right:  "0",
			Top:    "top",
			Type:   "scroll",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      "Channel",
			SplitLine: &opts.SplitLine{Show: true},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      "Rate",
			SplitLine: &opts.SplitLine{Show: true},
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
	)

	bar.SetXAxis(xnames)

	// Put data into instance
	for i, s := range stats {
		data, err := series(s, xvalues, rate)
		if err != nil {
			return err
		}
		bar.AddSeries(names[i], data)
	}

	return bar.Render(w)
}

func series(stat *tools.SimulationStats, values []float64, rate string) ([]opts.BarData, error) {
	results := make([]opts.BarData, len(values))
	null := opts.BarData{Value: nil}
	for i, v := range values {
		x, has := stat.Stats[v]
		if !has {
			results[i] = null
			continue
		}

		value, err := tools.Rate(x, rate)
		if err != nil {
			return nil, err
		}
		results[i] = opts.BarData{
			Value: value,
		}
	}
	return results, nil
}
