package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/statkit/statkit/internal/descstat"
	"github.com/statkit/statkit/internal/parse"
	"github.com/statkit/statkit/internal/render"
)

var computeOutputFormat string

func newComputeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compute <dataset>",
		Short: "Compute statistics over a comma-separated dataset",
		Long: `Compute descriptive statistics over a dataset given as a single
comma-separated argument, e.g.:

  statkit compute "1,2,2,3,3,3"

The report covers mean, median, mode, range, population variance and
standard deviation.`,
		Args: cobra.ExactArgs(1),
		RunE: computeCommandE,
	}

	cmd.Flags().StringVarP(&computeOutputFormat, "format", "f", "text", "Output format: text, json or yaml")

	return cmd
}

func computeCommandE(cmd *cobra.Command, args []string) error {
	switch computeOutputFormat {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("unsupported format %q: must be text, json or yaml", computeOutputFormat)
	}

	values, err := parse.Line(args[0])
	if err != nil {
		return err
	}

	calc := descstat.NewExtended(values)
	slog.Debug("dataset parsed", "size", calc.Size())

	report, err := renderReport(calc.Summary(), computeOutputFormat)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), report)
	return nil
}

// renderReport formats a summary in the requested output format. Shared
// by the compute and prompt commands.
func renderReport(s descstat.ExtendedSummary, format string) (string, error) {
	switch format {
	case "json":
		return render.JSON(s)
	case "yaml":
		return render.YAML(s)
	default:
		return render.Text(s), nil
	}
}
