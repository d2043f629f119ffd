package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/antoniocali/wollama/pkg/catalog"
)

func NewCatalogCommand(root *RootCommand) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Model catalog commands",
		Long: `Inspect the model recommendation catalog.

The catalog is a static list of records; these commands show it in
plain catalog order, without hardware ranking.`,
	}

	cmd.AddCommand(NewCatalogListCommand(root))
	cmd.AddCommand(NewCatalogGetCommand(root))
	cmd.AddCommand(NewCatalogValidateCommand(root))

	return cmd
}

func NewCatalogListCommand(root *RootCommand) *cobra.Command {
	var purpose string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List catalog records",
		Example: `  # List the whole catalog
  wollama catalog list

  # Only coding models
  wollama catalog list --purpose coding`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalogList(cmd.Context(), root, catalog.Purpose(purpose))
		},
	}

	cmd.Flags().StringVarP(&purpose, "purpose", "p", "", "Filter by purpose")

	return cmd
}

func runCatalogList(ctx context.Context, root *RootCommand, purpose catalog.Purpose) error {
	opts := root.OutputOptions()

	records, err := root.Store().List(ctx)
	if err != nil {
		PrintError(err, opts)
		return fmt.Errorf("list catalog: %w", err)
	}

	if purpose != "" {
		filtered := records[:0:0]
		for _, r := range records {
			if r.Purpose == purpose {
				filtered = append(filtered, r)
			}
		}
		records = filtered
	}

	if opts.Format != OutputTable {
		return PrintOutput(map[string]any{"records": records, "total": len(records)}, opts)
	}

	if len(records) == 0 {
		PrintSuccess("No records", opts)
		return nil
	}

	t := Table{Headers: []string{"ID", "MODEL", "PROVIDER", "PURPOSE", "TOOLS", "MIN RAM", "MIN CORES"}}
	for _, r := range records {
		minRAM, minCores := "", ""
		if h := r.HardwareHint; h != nil {
			if h.MinRAMGB > 0 {
				minRAM = strconv.FormatFloat(h.MinRAMGB, 'f', -1, 64) + "GB"
			}
			if h.MinCores > 0 {
				minCores = strconv.Itoa(h.MinCores)
			}
		}
		t.Rows = append(t.Rows, []string{
			r.ID,
			r.DisplayLabel(),
			r.Provider,
			string(r.Purpose),
			boolMark(r.SupportsTools),
			minRAM,
			minCores,
		})
	}
	PrintTable(t, opts)
	return nil
}

func NewCatalogGetCommand(root *RootCommand) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <record-id>",
		Short: "Show one catalog record",
		Example: `  # Show a record with its links and hardware hint
  wollama catalog get llama3.1-8b`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalogGet(cmd.Context(), root, args[0])
		},
	}

	return cmd
}

func runCatalogGet(ctx context.Context, root *RootCommand, id string) error {
	opts := root.OutputOptions()

	record, err := root.Store().Get(ctx, id)
	if err != nil {
		PrintError(err, opts)
		return fmt.Errorf("get record %s: %w", id, err)
	}

	if opts.Format != OutputTable {
		return PrintOutput(record, opts)
	}

	t := Table{Headers: []string{"FIELD", "VALUE"}}
	t.Rows = append(t.Rows,
		[]string{"id", record.ID},
		[]string{"model", record.ModelName},
		[]string{"name", record.DisplayLabel()},
		[]string{"provider", record.Provider},
		[]string{"purpose", string(record.Purpose)},
		[]string{"tools", boolMark(record.SupportsTools)},
	)
	if h := record.HardwareHint; h != nil {
		t.Rows = append(t.Rows,
			[]string{"arch", string(h.Arch)},
			[]string{"min ram", fmt.Sprintf("%gGB", h.MinRAMGB)},
			[]string{"min cores", strconv.Itoa(h.MinCores)},
		)
	}
	for _, rec := range record.RecommendedFor {
		t.Rows = append(t.Rows, []string{"recommended for", rec})
	}
	if record.Notes != "" {
		t.Rows = append(t.Rows, []string{"notes", record.Notes})
	}
	for kind, url := range record.Links {
		t.Rows = append(t.Rows, []string{"link:" + kind, url})
	}
	PrintTable(t, opts)
	return nil
}

func NewCatalogValidateCommand(root *RootCommand) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <path>",
		Short: "Validate a catalog JSON file or directory",
		Long: `Check a catalog file or directory for malformed records before
pointing --catalog at it. Validation covers the identity fields only;
every other field may be absent.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalogValidate(root, args[0])
		},
	}

	return cmd
}

func runCatalogValidate(root *RootCommand, path string) error {
	opts := root.OutputOptions()

	records, err := catalog.LoadPath(path)
	if err != nil {
		PrintError(err, opts)
		return fmt.Errorf("validate %s: %w", path, err)
	}

	PrintSuccess(fmt.Sprintf("%s: %d valid records", path, len(records)), opts)
	return nil
}
