package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"liuyao/internal/engine"
	"liuyao/internal/format"
	"liuyao/internal/ganzhi"
	"liuyao/internal/render"
	"liuyao/internal/store"
)

var historyFlags struct {
	dbPath   string
	limit    int
	id       int64
	deleteID int64
	markdown bool
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved readings, or show/delete one by ID",
	RunE:  runHistory,
}

func init() {
	f := historyCmd.Flags()
	f.StringVar(&historyFlags.dbPath, "db", store.DefaultDBPath, "History DB path")
	f.IntVar(&historyFlags.limit, "limit", 20, "Max readings to list (0 = all)")
	f.Int64Var(&historyFlags.id, "id", 0, "Show one reading in full")
	f.Int64Var(&historyFlags.deleteID, "delete", 0, "Delete one reading")
	f.BoolVar(&historyFlags.markdown, "markdown", false, "Render the listing as a Markdown table")
}

func runHistory(cmd *cobra.Command, _ []string) error {
	st, err := store.Open(historyFlags.dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	out := cmd.OutOrStdout()

	if historyFlags.deleteID != 0 {
		if err := st.DeleteReading(historyFlags.deleteID); err != nil {
			return fmt.Errorf("delete reading: %w", err)
		}
		fmt.Fprintf(out, "Deleted reading #%d\n", historyFlags.deleteID)
		return nil
	}

	if historyFlags.id != 0 {
		return showReading(cmd, st, historyFlags.id)
	}

	readings, err := st.ListReadings(historyFlags.limit)
	if err != nil {
		return fmt.Errorf("list readings: %w", err)
	}
	if len(readings) == 0 {
		fmt.Fprintln(out, "No saved readings.")
		return nil
	}

	mode := format.ASCII
	if historyFlags.markdown {
		mode = format.Markdown
	}
	tb := format.NewTable(mode)
	tb.Header("ID", "Saved", "Question", "Code", "Lines", "三合局")
	tb.Columns(
		format.ColumnConfig{Number: 1, Align: format.AlignRight},
		format.ColumnConfig{Number: 3, MaxWidth: 40},
	)
	for _, r := range readings {
		tb.Row(r.ID, r.CreatedAt, format.Truncate(r.Question, 20), r.Code, format.FmtLines(r.Lines), r.SanHeJu)
	}
	fmt.Fprintln(out, tb.String())
	return nil
}

// showReading re-casts a saved reading from its stored inputs and prints the
// full chart.
func showReading(cmd *cobra.Command, st store.Store, id int64) error {
	r, err := st.GetReading(id)
	if err != nil {
		return fmt.Errorf("get reading: %w", err)
	}
	if r == nil {
		return fmt.Errorf("reading #%d not found", id)
	}

	bz, err := baZiFromKey(r.BaZiKey)
	if err != nil {
		return fmt.Errorf("reading #%d: %w", id, err)
	}
	result, err := engine.New(nil).Divine(r.Code, bz, r.Lines)
	if err != nil {
		return fmt.Errorf("reading #%d: %w", id, err)
	}

	out := cmd.OutOrStdout()
	if r.Question != "" {
		fmt.Fprintf(out, "問: %s\n", r.Question)
	}
	fmt.Fprintf(out, "Saved: %s\n\n", r.CreatedAt)
	opts := render.DefaultReportOptions
	opts.Persona = false
	fmt.Fprint(out, render.Report(result, opts))
	return nil
}

func baZiFromKey(key string) (ganzhi.BaZi, error) {
	parts := strings.Split(key, "_")
	if len(parts) != 4 {
		return ganzhi.BaZi{}, fmt.Errorf("bad pillar key %q", key)
	}
	var ps [4]ganzhi.Pillar
	for i, s := range parts {
		p, err := ganzhi.ParsePillar(s)
		if err != nil {
			return ganzhi.BaZi{}, fmt.Errorf("bad pillar key %q: %w", key, err)
		}
		ps[i] = p
	}
	return ganzhi.NewBaZi(ps[0], ps[1], ps[2], ps[3]), nil
}
