package main

import (
	"fmt"

	"github.com/philipparndt/gomeasure/internal/config"
	"github.com/philipparndt/gomeasure/internal/measurement"
	"github.com/philipparndt/gomeasure/pkg/geo"
	"github.com/spf13/cobra"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the configured radius presets with their circle area",
	Args:  cobra.NoArgs,
	Run:   runPresets,
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}

func runPresets(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-8s %-26s %s\n", "Preset", "Area", "Perimeter")
	for _, r := range cfg.RadiusPresets {
		area := geo.CircleArea(r)
		perimeter := geo.CirclePerimeter(r)
		fmt.Fprintf(out, "%-8s %-26s %s\n", config.PresetLabel(r), measurement.DualArea(&area), measurement.DualLength(&perimeter))
	}
}
