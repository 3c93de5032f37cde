// flappy-dragon is a terminal rendition of the Flappy Dragon arcade game:
// guide a dragon through gaps in oncoming walls for as long as you can.
//
// Usage:
//
//	flappy-dragon play           - Play the game
//
// Global flags:
//
//	--fps <rate>    - Render tick rate (default: from config, 60)
//	--seed <value>  - RNG seed for reproducible obstacle placement
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS  int
	flagSeed int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy-dragon",
	Short: "Flappy Dragon - dodge the walls, flap to survive",
	Long: `Flappy Dragon is a terminal arcade game. The dragon falls under
gravity; flap to climb and steer it through the gap in each oncoming
wall. The gaps shrink as your score grows.

Controls:
  Space      - Flap
  P          - Start / restart
  Q          - Quit (menu and game over screen)
  Ctrl+C     - Quit immediately

Examples:
  flappy-dragon play
  flappy-dragon play --fps 30
  flappy-dragon play --config ./my-config.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Render tick rate (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.AddCommand(playCmd)
}
