package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"github.com/statkit/statkit/internal/descstat"
	"github.com/statkit/statkit/internal/parse"
	"github.com/statkit/statkit/internal/render"
	"golang.org/x/term"
)

func newPromptCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Interactively enter datasets and view their statistics",
		Long: `Repeatedly prompt for a comma-separated dataset and print its
statistics. Enter 'q' or 'quit' to exit.`,
		RunE: promptCommandE,
	}

	return cmd
}

func promptCommandE(cmd *cobra.Command, _ []string) error {
	in := cmd.InOrStdin()
	out := cmd.OutOrStdout()

	ask := lineAsker(in, out)
	for {
		line, err := ask()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if parse.IsQuit(line) {
			return nil
		}

		values, err := parse.Line(line)
		if err != nil {
			// Invalid input re-prompts; it never reaches the calculator.
			fmt.Fprintln(out, err)
			continue
		}

		calc := descstat.NewExtended(values)
		slog.Debug("dataset entered", "size", calc.Size())
		fmt.Fprintln(out, render.Text(calc.Summary()))
	}
}

// lineAsker returns a function that yields one dataset line per call.
// A real terminal gets a huh input form; piped input (e.g., tests,
// scripts) falls back to plain line reading so the loop stays
// scriptable.
func lineAsker(in io.Reader, out io.Writer) func() (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return func() (string, error) {
			return askDataset(f, out)
		}
	}

	scanner := bufio.NewScanner(in)
	return func() (string, error) {
		fmt.Fprint(out, "Dataset (comma-separated integers, 'q' to quit): ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", err
			}
			return "", io.EOF
		}
		return scanner.Text(), nil
	}
}

// askDataset runs a single-input huh form to collect one dataset line.
func askDataset(in *os.File, out io.Writer) (string, error) {
	var line string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Dataset").
				Description("Comma-separated integers (e.g. 1,2,3,4,5), or 'q' to quit").
				Placeholder("1,2,3,4,5").
				Value(&line),
		),
	).
		WithInput(in).
		WithOutput(out)

	if err := form.Run(); err != nil {
		return "", fmt.Errorf("prompt failed: %w", err)
	}

	return line, nil
}
