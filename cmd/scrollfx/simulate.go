package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/edwinsyarief/scrollfx"
	"github.com/spf13/cobra"
)

var (
	simulateWidth  float64
	simulateHeight float64
	simulateStep   float64
	simulateTo     float64
	simulateAnchor float64
)

// simulateCmd prints wordmark frames without opening a window
var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Print the wordmark style frames over a range of scroll offsets",
	Long: `Computes the wordmark metrics for the given viewport and prints the
interpolated style frame at every step of the scroll range, with a
color swatch per frame.

Example:
  scrollfx simulate --width 375 --height 812 --step 25`,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().Float64Var(&simulateWidth, "width", 1920, "Viewport width in px")
	simulateCmd.Flags().Float64Var(&simulateHeight, "height", 1080, "Viewport height in px")
	simulateCmd.Flags().Float64Var(&simulateStep, "step", 50, "Scroll step in px")
	simulateCmd.Flags().Float64Var(&simulateTo, "to", 500, "Last scroll offset in px")
	simulateCmd.Flags().Float64Var(&simulateAnchor, "anchor", -1, "Header anchor center in px (negative uses the fallback)")
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FAFAFA"))
	cellStyle   = lipgloss.NewStyle().PaddingRight(2)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C6C6C")).PaddingRight(2)
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")).MarginBottom(1)
)

var simulateColumns = []struct {
	title string
	width int
}{
	{"scroll", 8},
	{"font px", 9},
	{"spacing em", 12},
	{"margin em", 11},
	{"top px", 9},
	{"color", 10},
	{"", 4},
	{"opacity", 9},
	{"visible", 9},
	{"header", 7},
}

func runSimulate(cmd *cobra.Command, args []string) error {
	if !(simulateStep > 0) {
		return fmt.Errorf("step must be positive, got %v", simulateStep)
	}

	options, err := optionsFromConfig(cfg)
	if err != nil {
		return err
	}
	ctrl, err := scrollfx.New(options)
	if err != nil {
		return fmt.Errorf("failed to create controller: %w", err)
	}
	ctrl.NotifyViewport(simulateWidth, simulateHeight)
	if simulateAnchor >= 0 {
		ctrl.NotifyAnchor(simulateAnchor)
	}

	wordmark := ctrl.Wordmark()
	m := wordmark.Metrics()
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf(
		"%s on %.0fx%.0f (%s): hero %.1fpx / %.4fem, header %.0fpx / %.2fem",
		wordmark.Label(), simulateWidth, simulateHeight, m.Class,
		m.HeroFontSize, m.HeroSpacing, m.HeaderFontSize, m.HeaderSpacing,
	)))

	cells := make([]string, len(simulateColumns))
	for i, column := range simulateColumns {
		cells[i] = headerStyle.Width(column.width).Render(column.title)
	}
	fmt.Fprintln(out, lipgloss.JoinHorizontal(lipgloss.Top, cells...))

	for scroll := 0.0; scroll <= simulateTo; scroll += simulateStep {
		ctrl.NotifyScroll(scroll)
		frame := wordmark.Frame()
		values := []string{
			fmt.Sprintf("%.0f", scroll),
			fmt.Sprintf("%.2f", frame.FontSize),
			fmt.Sprintf("%.4f", frame.LetterSpacing),
			fmt.Sprintf("%.4f", frame.MarginRight()),
			fmt.Sprintf("%.2f", frame.Top),
			frame.ColorHex(),
			"",
			fmt.Sprintf("%.3f", frame.Opacity),
			fmt.Sprintf("%t", wordmark.Visible()),
			fmt.Sprintf("%t", wordmark.HeaderSolid()),
		}
		style := cellStyle
		if !wordmark.Visible() {
			style = dimStyle
		}
		for i, value := range values {
			width := simulateColumns[i].width
			if simulateColumns[i].title == "" {
				swatch := lipgloss.NewStyle().Background(lipgloss.Color(frame.ColorHex()))
				cells[i] = lipgloss.NewStyle().Width(width).Render(swatch.Render(strings.Repeat(" ", 2)))
				continue
			}
			cells[i] = style.Width(width).Render(value)
		}
		fmt.Fprintln(out, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return nil
}
