package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewHardwareCommand(root *RootCommand) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hardware",
		Short: "Show the detected hardware profile",
		Long: `Show the coarse hardware profile used to rank the catalog.

Detection is best-effort: fields that could not be probed are simply
omitted and contribute nothing to ranking.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHardware(root)
		},
	}

	return cmd
}

func runHardware(root *RootCommand) error {
	opts := root.OutputOptions()

	profile := root.Profile()
	if profile == nil {
		PrintSuccess("No hardware profile (detection disabled or failed); ranking is neutral", opts)
		return nil
	}

	if opts.Format != OutputTable {
		return PrintOutput(profile, opts)
	}

	t := Table{Headers: []string{"FIELD", "VALUE"}}
	t.Rows = append(t.Rows, []string{"os", string(profile.OS)})
	if profile.HasCores() {
		t.Rows = append(t.Rows, []string{"cpu cores", fmt.Sprintf("%d", profile.CPUCores)})
	}
	if profile.HasMemory() {
		t.Rows = append(t.Rows, []string{"approx memory", fmt.Sprintf("%.1fGB", profile.ApproxMemoryGB)})
	}
	t.Rows = append(t.Rows, []string{"apple silicon", boolMark(profile.IsAppleSilicon)})
	if profile.HasGPU() {
		t.Rows = append(t.Rows, []string{"gpu", profile.GPUDescriptor})
	}
	PrintTable(t, opts)
	return nil
}
