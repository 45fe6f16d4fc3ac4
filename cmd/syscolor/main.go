// Command syscolor inspects the Windows system colors from the command
// line.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"git.sr.ht/~ogden/syscolor"
)

var unavailable = lipgloss.NewStyle().Faint(true)

func main() {
	var verbose bool
	root := &cobra.Command{
		Use:   "syscolor",
		Short: "Inspect the system's UI colors",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if !verbose {
				return
			}
			handler := tint.NewHandler(os.Stderr, &tint.Options{
				Level:      slog.LevelDebug,
				TimeFormat: "15:04:05.000",
			})
			syscolor.SetLogger(slog.New(handler))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log probe activity")
	root.AddCommand(listCmd(), getCmd(), watchCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func swatch(c syscolor.Color) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(c.String())).Render("      ")
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every system color",
		Run: func(cmd *cobra.Command, args []string) {
			for _, index := range syscolor.Indices() {
				color, ok := syscolor.Get(index)
				if !ok {
					fmt.Printf("%-24s %s\n", index, unavailable.Render("not available"))
					continue
				}
				fmt.Printf("%-24s %s %s\n", index, color, swatch(color))
			}
		},
	}
}

func getCmd() *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "get <name>",
		Short: "Print one system color",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, ok := syscolor.ParseIndex(args[0])
			if !ok {
				return fmt.Errorf("unknown color %q", args[0])
			}
			color, ok := syscolor.Get(index)
			if !ok {
				return fmt.Errorf("%s is not available on this system", index)
			}
			if raw {
				fmt.Printf("0x%08X\n", color.Raw())
				return nil
			}
			fmt.Printf("%s %s\n", color, swatch(color))
			return nil
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print the packed COLORREF value")
	return cmd
}

func watchCmd() *cobra.Command {
	var interval time.Duration
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Report system color changes",
		Long: "Watch polls every available color and prints a line when a value\n" +
			"changes, for example after switching the system theme. Which colors\n" +
			"exist is decided once at startup; only their values are re-read.",
		Run: func(cmd *cobra.Command, args []string) {
			last := make(map[syscolor.Index]syscolor.Color)
			for _, index := range syscolor.Indices() {
				color, ok := syscolor.Get(index)
				if !ok {
					continue
				}
				last[index] = color
				fmt.Printf("%-24s %s %s\n", index, color, swatch(color))
			}
			if len(last) == 0 {
				fmt.Println("no system colors available")
				return
			}
			ticker := time.NewTicker(interval)
			defer ticker.Stop()
			for range ticker.C {
				for index, prev := range last {
					color, ok := syscolor.Get(index)
					if !ok || color == prev {
						continue
					}
					last[index] = color
					fmt.Printf("%-24s %s -> %s %s\n", index, prev, color, swatch(color))
				}
			}
		},
	}
	cmd.Flags().DurationVar(&interval, "interval", time.Second, "poll interval")
	return cmd
}
