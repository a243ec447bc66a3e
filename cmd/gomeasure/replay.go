package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/philipparndt/gomeasure/internal/app"
	"github.com/philipparndt/gomeasure/internal/export"
	"github.com/spf13/cobra"
)

var (
	replayExport string
	replayWatch  bool
	replayQuiet  bool
)

var replayCmd = &cobra.Command{
	Use:   "replay <script.yaml>",
	Short: "Replay a recorded drawing session",
	Long: `Replay a YAML script of pointer events (click, down, up, move) and session
actions (start, cancel, finish, clear, preset, radius, tool) through the interaction
router, printing every step and the final measurement.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)

	replayCmd.Flags().StringVarP(&replayExport, "export", "e", "", "Export the final shape: geojson, kml or polyline")
	replayCmd.Flags().BoolVarP(&replayWatch, "watch", "w", false, "Replay again whenever the script changes")
	replayCmd.Flags().BoolVarP(&replayQuiet, "quiet", "q", false, "Only print the final measurement")
}

func runReplay(cmd *cobra.Command, args []string) error {
	path := args[0]
	out := cmd.OutOrStdout()

	var format export.Format
	if replayExport != "" {
		f, err := export.ParseFormat(replayExport)
		if err != nil {
			return err
		}
		format = f
	}

	script, err := app.LoadScript(path)
	if err != nil {
		return err
	}
	if err := replayOnce(out, script, format); err != nil {
		if !replayWatch {
			return err
		}
		logger.Error("replay failed", "error", err)
	}

	if !replayWatch {
		return nil
	}

	fw, err := app.WatchScript(path, 500*time.Millisecond, logger, func(script *app.Script, err error) {
		if err != nil {
			logger.Error("failed to load script", "error", err)
			return
		}
		fmt.Fprintln(out)
		if err := replayOnce(out, script, format); err != nil {
			logger.Error("replay failed", "error", err)
		}
	})
	if err != nil {
		return err
	}
	defer fw.Close()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	return nil
}

// replayOnce runs the script on a fresh app so watch runs never share a session
func replayOnce(out io.Writer, script *app.Script, format export.Format) error {
	a, err := app.New(cfg, logger)
	if err != nil {
		return err
	}

	results, err := a.Replay(script)
	if !replayQuiet {
		for _, r := range results {
			fmt.Fprintln(out, r)
		}
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\nFinal %s (%s)\n", a.Session.Tool(), a.Session.Mode())
	for _, line := range a.Lines() {
		fmt.Fprintln(out, line)
	}
	if b, ok := a.FitBounds(); ok {
		fmt.Fprintf(out, "Fit bounds: SW %s  NE %s\n", b.SouthWest, b.NorthEast)
	}

	if format != "" {
		fmt.Fprintln(out)
		if err := export.Write(out, format, a.Session.Shape(), a.Session.Measurement()); err != nil {
			return fmt.Errorf("export: %w", err)
		}
	}
	return nil
}
