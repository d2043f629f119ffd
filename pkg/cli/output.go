package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

type OutputFormat string

const (
	OutputTable OutputFormat = "table"
	OutputJSON  OutputFormat = "json"
	OutputYAML  OutputFormat = "yaml"
)

type OutputOptions struct {
	Format OutputFormat
	Quiet  bool
	Writer io.Writer
}

func NewOutputOptions() *OutputOptions {
	return &OutputOptions{
		Format: OutputTable,
		Quiet:  false,
		Writer: os.Stdout,
	}
}

// Table is a pre-rendered tabular view built by the individual
// commands; the generic formatters only handle JSON and YAML.
type Table struct {
	Headers []string
	Rows    [][]string
}

func (t Table) String() string {
	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, strings.Join(t.Headers, "\t"))
	fmt.Fprintln(w, strings.Join(makeSeparators(len(t.Headers)), "\t"))
	for _, row := range t.Rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}

	w.Flush()
	return sb.String()
}

func makeSeparators(count int) []string {
	seps := make([]string, count)
	for i := range seps {
		seps[i] = strings.Repeat("-", 10)
	}
	return seps
}

func FormatOutput(data any, format OutputFormat) (string, error) {
	switch format {
	case OutputYAML:
		b, err := yaml.Marshal(data)
		if err != nil {
			return "", fmt.Errorf("marshal YAML: %w", err)
		}
		return string(b), nil
	default:
		b, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return "", fmt.Errorf("marshal JSON: %w", err)
		}
		return string(b) + "\n", nil
	}
}

// PrintOutput writes data as JSON or YAML. Table-format callers build a
// Table and use PrintTable instead.
func PrintOutput(data any, opts *OutputOptions) error {
	if opts.Quiet {
		return nil
	}

	output, err := FormatOutput(data, opts.Format)
	if err != nil {
		return err
	}

	fmt.Fprint(opts.Writer, output)
	return nil
}

func PrintTable(t Table, opts *OutputOptions) {
	if opts.Quiet {
		return
	}
	fmt.Fprint(opts.Writer, t.String())
}

func PrintError(err error, opts *OutputOptions) {
	switch opts.Format {
	case OutputJSON:
		data := map[string]any{
			"success": false,
			"error":   map[string]string{"message": err.Error()},
		}
		b, _ := json.MarshalIndent(data, "", "  ")
		fmt.Fprintln(os.Stderr, string(b))
	case OutputYAML:
		data := map[string]any{
			"success": false,
			"error":   map[string]string{"message": err.Error()},
		}
		b, _ := yaml.Marshal(data)
		fmt.Fprint(os.Stderr, string(b))
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}

func PrintSuccess(message string, opts *OutputOptions) {
	if opts.Quiet {
		return
	}

	switch opts.Format {
	case OutputJSON:
		data := map[string]any{"success": true, "message": message}
		b, _ := json.MarshalIndent(data, "", "  ")
		fmt.Fprintln(opts.Writer, string(b))
	case OutputYAML:
		data := map[string]any{"success": true, "message": message}
		b, _ := yaml.Marshal(data)
		fmt.Fprint(opts.Writer, string(b))
	default:
		fmt.Fprintln(opts.Writer, message)
	}
}
