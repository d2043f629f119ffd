package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/antoniocali/wollama/pkg/browse"
	"github.com/antoniocali/wollama/pkg/catalog"
)

func NewBrowseCommand(root *RootCommand) *cobra.Command {
	var (
		search  string
		purpose string
		tools   bool
		noTools bool
		pages   int
		all     bool
	)

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse ranked model recommendations",
		Long: `Browse the model catalog ranked against the detected hardware
profile. Records are revealed a page at a time; --pages and --all
control how much of the ranking is shown.`,
		Example: `  # Top page of recommendations for this machine
  wollama browse

  # Coding models that support tool calling, two pages
  wollama browse --purpose coding --tools --pages 2

  # Search across names, providers and notes
  wollama browse --search "llama"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if tools && noTools {
				return fmt.Errorf("--tools and --no-tools are mutually exclusive")
			}

			crit := browse.Criteria{
				Search:  search,
				Purpose: catalog.Purpose(purpose),
			}
			if tools {
				v := true
				crit.Tools = &v
			}
			if noTools {
				v := false
				crit.Tools = &v
			}

			return runBrowse(root, crit, pages, all)
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "Substring search (case-insensitive)")
	cmd.Flags().StringVarP(&purpose, "purpose", "p", "", "Filter by purpose (general, coding, ...)")
	cmd.Flags().BoolVar(&tools, "tools", false, "Only models with tool-calling support")
	cmd.Flags().BoolVar(&noTools, "no-tools", false, "Only models without tool-calling support")
	cmd.Flags().IntVar(&pages, "pages", 1, "Number of pages to reveal")
	cmd.Flags().BoolVar(&all, "all", false, "Reveal the entire ranking")

	return cmd
}

func runBrowse(root *RootCommand, crit browse.Criteria, pages int, all bool) error {
	opts := root.OutputOptions()

	sess := browse.NewSession(root.Records(), root.Profile(),
		browse.WithPageSize(root.Config().Browse.PageSize))
	sess.SetCriteria(crit)

	// The first page is revealed by construction; each further page is
	// one reveal step, stopping naturally at the end of the ranking.
	if all {
		for sess.RevealMore() != nil {
		}
	} else {
		for i := 1; i < pages; i++ {
			if sess.RevealMore() == nil {
				break
			}
		}
	}

	win := sess.Window()

	if opts.Format != OutputTable {
		return PrintOutput(win, opts)
	}

	if win.Total == 0 {
		PrintSuccess("No matches", opts)
		return nil
	}

	PrintTable(browseTable(win), opts)
	if win.Remaining > 0 {
		pageSize := root.Config().Browse.PageSize
		shown := (win.Revealed + pageSize - 1) / pageSize
		PrintSuccess(fmt.Sprintf("%d more (rerun with --pages %d or --all)",
			win.Remaining, shown+1), opts)
	}
	return nil
}

// browseTable renders the whole revealed window [0, revealed) in one
// pass; initial page and later reveals share this renderer.
func browseTable(win browse.Window) Table {
	t := Table{Headers: []string{"", "SCORE", "MODEL", "PROVIDER", "PURPOSE", "TOOLS", "NOTES"}}

	for _, sr := range win.Records {
		mark := ""
		if sr.BestMatch {
			mark = "*"
		}
		t.Rows = append(t.Rows, []string{
			mark,
			strconv.Itoa(sr.Score),
			sr.Record.DisplayLabel(),
			sr.Record.Provider,
			string(sr.Record.Purpose),
			boolMark(sr.Record.SupportsTools),
			sr.Record.Notes,
		})
	}
	return t
}

func boolMark(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
