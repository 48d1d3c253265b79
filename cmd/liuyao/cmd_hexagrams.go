package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"liuyao/internal/format"
	"liuyao/internal/hexagram"
)

var hexagramsFlags struct {
	palace   string
	markdown bool
}

var hexagramsCmd = &cobra.Command{
	Use:   "hexagrams",
	Short: "List the 64-hexagram catalog",
	RunE:  runHexagrams,
}

func init() {
	f := hexagramsCmd.Flags()
	f.StringVar(&hexagramsFlags.palace, "palace", "", "Only list one palace (乾, 坎, 艮, 震, 巽, 離, 坤, 兌)")
	f.BoolVar(&hexagramsFlags.markdown, "markdown", false, "Render as a Markdown table")
}

func runHexagrams(cmd *cobra.Command, _ []string) error {
	mode := format.ASCII
	if hexagramsFlags.markdown {
		mode = format.Markdown
	}

	tb := format.NewTable(mode)
	tb.Header("Code", "Name", "Palace", "Element", "世", "應", "Structure")

	count := 0
	for _, h := range hexagram.All() {
		if hexagramsFlags.palace != "" && h.Palace.String() != hexagramsFlags.palace {
			continue
		}
		tb.Row(h.Code, h.Name, h.Palace.String(), h.Element.String(), h.Shi, h.Ying, h.Structure)
		count++
	}
	if count == 0 {
		return fmt.Errorf("no hexagrams for palace %q", hexagramsFlags.palace)
	}

	fmt.Fprintln(cmd.OutOrStdout(), tb.String())
	return nil
}
