package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
	"github.com/vovakirdan/flappy-dragon/internal/platform/tui"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Flappy Dragon",
	Long: `Start the game. The playfield is a fixed 80x50 character grid;
terminals larger than that get the field centered, smaller terminals
will clip it.

Examples:
  flappy-dragon play
  flappy-dragon play --seed 42
  flappy-dragon play --config ./my-config.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to host config YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy-dragon",
	})

	host, err := config.Load(flagConfig)
	if err != nil {
		logger.Fatal("could not load config", "error", err)
	}
	if host.TickRate <= 0 {
		host.TickRate = config.Default().TickRate
	}

	runtime := core.DefaultConfig()
	runtime.TickRate = host.TickRate
	runtime.Seed = flagSeed
	if flagFPS > 0 {
		runtime.TickRate = flagFPS
	}

	// Warn when the terminal cannot fit the fixed playfield
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if w < runtime.ScreenW || h < runtime.ScreenH {
			logger.Warn("terminal smaller than the playfield, display will clip",
				"terminal", fmt.Sprintf("%dx%d", w, h),
				"playfield", fmt.Sprintf("%dx%d", runtime.ScreenW, runtime.ScreenH))
		}
	}

	if err := tui.Run(runtime, host); err != nil {
		logger.Fatal("game exited with error", "error", err)
	}
}
