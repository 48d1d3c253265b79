// liuyao is the main CLI: divine (cast a reading), bazi (四柱 conversion),
// hexagrams (catalog listing), history (saved readings), serve (MCP server).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"liuyao/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	logLevel  string
	logFormat string
}

var rootCmd = &cobra.Command{
	Use:   "liuyao",
	Short: "Liu Yao (六爻) hexagram divination engine",
	Long: "liuyao casts and annotates six-line hexagram readings: 納甲 pillars,\n" +
		"六親 kinship, 伏神 hidden gods, date-interaction marks and 三合局 detection,\n" +
		"rendered as fixed-width or mobile charts.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logging.Init(logging.LevelFromString(rootFlags.logLevel), rootFlags.logFormat)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rootFlags.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	pf.StringVar(&rootFlags.logFormat, "log-format", "text", "Log format (text, json)")

	rootCmd.AddCommand(divineCmd)
	rootCmd.AddCommand(baziCmd)
	rootCmd.AddCommand(hexagramsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
