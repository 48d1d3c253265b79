package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"liuyao/internal/calendar"
	"liuyao/internal/engine"
	"liuyao/internal/format"
)

var baziFlags struct {
	shensha bool
}

var baziCmd = &cobra.Command{
	Use:   "bazi <date-time>",
	Short: "Convert a civil date-time to the four GanZhi pillars",
	Long: `Converts a civil date-time ("YYYY/MM/DD HH:MM[:SS]", slash or dash) to
the four pillars via the lunar calendar, with the void branches of the day.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBazi,
}

func init() {
	baziCmd.Flags().BoolVar(&baziFlags.shensha, "shensha", false, "Also list the spirit map for the moment")
}

func runBazi(cmd *cobra.Command, args []string) error {
	bz, err := calendar.BaZiFromString(calendar.LunarConverter{}, strings.Join(args, " "))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, bz.String())
	fmt.Fprintf(out, "旬空: %s%s\n", bz.Void1, bz.Void2)

	if baziFlags.shensha {
		ss := engine.BuildShenSha(bz)
		tb := format.NewTable(format.ASCII)
		tb.Header("神煞", "地支")
		for _, cat := range engine.ShenShaCategories {
			branches := make([]string, len(ss[cat]))
			for i, b := range ss[cat] {
				branches[i] = b.String()
			}
			tb.Row(cat, strings.Join(branches, "、"))
		}
		fmt.Fprintln(out, tb.String())
	}
	return nil
}
