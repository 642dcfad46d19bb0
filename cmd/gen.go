package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"chartspec/internal/chartspec"
	"chartspec/internal/ingest"
)

var genFlags struct {
	csvPath     string
	recordsPath string
	chartType   string
	title       string
	stacked     bool
	legend      string
	xLabel      string
	yLabel      string
	chartJS     bool
	out         string
}

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Build a chart spec from a local CSV or JSON file and print it",
	Long: `gen runs the chart pipeline once, offline. Exactly one of --csv or
--records must be given; "-" reads from stdin. By default the validated chart
specification is printed as JSON; --chartjs prints the Chart.js renderer
configuration derived from it instead.`,
	RunE: runGen,
}

func init() {
	genCmd.Flags().StringVar(&genFlags.csvPath, "csv", "", "CSV file to chart (- for stdin)")
	genCmd.Flags().StringVar(&genFlags.recordsPath, "records", "", "JSON records file to chart (- for stdin)")
	genCmd.Flags().StringVar(&genFlags.chartType, "type", "bar", "chart type (bar|line|pie|doughnut|radar|polar|area)")
	genCmd.Flags().StringVar(&genFlags.title, "title", "", "chart title")
	genCmd.Flags().BoolVar(&genFlags.stacked, "stacked", false, "stack series (bar and area charts only)")
	genCmd.Flags().StringVar(&genFlags.legend, "legend", "", "legend position (top|bottom|left|right|none)")
	genCmd.Flags().StringVar(&genFlags.xLabel, "x-label", "", "x axis label")
	genCmd.Flags().StringVar(&genFlags.yLabel, "y-label", "", "y axis label")
	genCmd.Flags().BoolVar(&genFlags.chartJS, "chartjs", false, "print the Chart.js renderer config instead of the spec")
	genCmd.Flags().StringVar(&genFlags.out, "out", "", "write output to this file instead of stdout")

	rootCmd.AddCommand(genCmd)
}

func runGen(cmd *cobra.Command, _ []string) error {
	if (genFlags.csvPath == "") == (genFlags.recordsPath == "") {
		return fmt.Errorf("exactly one of --csv or --records is required")
	}

	var (
		labels   []string
		datasets []chartspec.Dataset
	)
	if genFlags.csvPath != "" {
		raw, err := readInput(genFlags.csvPath)
		if err != nil {
			return err
		}
		labels, datasets, err = ingest.FromCSV(raw)
		if err != nil {
			return err
		}
	} else {
		raw, err := readInput(genFlags.recordsPath)
		if err != nil {
			return err
		}
		labels, datasets, err = ingest.FromRecords(raw)
		if err != nil {
			return err
		}
	}

	spec, err := chartspec.New(chartspec.Params{
		ChartType:      genFlags.chartType,
		Title:          genFlags.title,
		Labels:         labels,
		Datasets:       datasets,
		Stacked:        genFlags.stacked,
		LegendPosition: genFlags.legend,
		XAxisLabel:     genFlags.xLabel,
		YAxisLabel:     genFlags.yLabel,
	})
	if err != nil {
		return err
	}

	var payload any = spec
	if genFlags.chartJS {
		payload = spec.ChartJS()
	}
	out, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}

	if genFlags.out != "" {
		return os.WriteFile(genFlags.out, append(out, '\n'), 0o644)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

func readInput(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
