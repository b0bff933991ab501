// easel draws the demo scene of the easel rendering core, either headless to
// a PNG or in a window.
//
// Usage:
//
//	easel render --out frame.png   - Render one frame without a GPU
//	easel run                      - Open a window and animate the demo
//	easel info                     - Show the resolved configuration
//
// Global flags:
//
//	--config <path>  - Config file (default: ./configs/easel.yaml, then built-in)
//	--debug          - Log shader builds, resizes and frame statistics
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/phanxgames/easel"
)

var (
	flagConfig string
	flagDebug  bool
)

// logger is the CLI logger. It is also installed as the easel logger.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "easel",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "easel",
	Short: "Demo and tooling for the easel 2D rendering core",
	Long: `easel renders a demo scene through the easel canvas.

Available commands:
  render  - Draw one frame on the software device and write a PNG
  run     - Open a window and animate the demo scene
  info    - Print the resolved configuration and letterbox

Examples:
  easel render --out frame.png --width 1920 --height 600
  easel render --progress 0.4 --out loading.png
  easel run --config ./my-easel.yaml
  easel info`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagDebug {
			logger.SetLevel(log.DebugLevel)
		}
		easel.SetLogger(logger)
	},
}

// applyDebug raises the log level when the config file enables debug mode.
func applyDebug(cfg Config) {
	if cfg.Debug {
		logger.SetLevel(log.DebugLevel)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to an easel.yaml config file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log debug output and frame statistics")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(infoCmd)
}
