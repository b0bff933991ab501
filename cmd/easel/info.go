package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/phanxgames/easel"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	keyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(16)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print the resolved configuration",
	Long:  `Shows the configuration after the search order is applied, and where the virtual framebuffer lands in the configured window.`,
	Args:  cobra.NoArgs,
	RunE:  runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(flagConfig)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderInfo(cfg))
	return nil
}

// renderInfo formats cfg and its letterbox rectangle as a styled table.
func renderInfo(cfg Config) string {
	r := easel.Letterbox(
		float64(cfg.Virtual.Width), float64(cfg.Virtual.Height),
		float64(cfg.Window.Width), float64(cfg.Window.Height))

	source := cfg.Source
	if source == "" {
		source = builtinSource
	}

	rows := [][2]string{
		{"config", source},
		{"title", cfg.Title},
		{"window", fmt.Sprintf("%dx%d", cfg.Window.Width, cfg.Window.Height)},
		{"virtual", fmt.Sprintf("%dx%d", cfg.Virtual.Width, cfg.Virtual.Height)},
		{"letterbox", fmt.Sprintf("%.0f,%.0f %.0fx%.0f", r.X, r.Y, r.Width, r.Height)},
		{"frame skip", fmt.Sprintf("%d (%d updates/s)", cfg.FrameSkip, 60/(cfg.FrameSkip+1))},
		{"debug", fmt.Sprint(cfg.Debug || flagDebug)},
		{"screenshots", cfg.ScreenshotDir},
	}
	lines := []string{headerStyle.Render("easel")}
	for _, row := range rows {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			keyStyle.Render(row[0]), valueStyle.Render(row[1])))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
