package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"liuyao/internal/calendar"
	"liuyao/internal/chart"
	"liuyao/internal/engine"
	"liuyao/internal/render"
	"liuyao/internal/store"
)

var divineFlags struct {
	file     string
	code     string
	date     string
	pillars  []string
	lines    []int
	question string
	view     string
	persona  bool
	compact  bool
	noTags   bool
	asJSON   bool
	save     bool
	dbPath   string
}

var divineCmd = &cobra.Command{
	Use:   "divine",
	Short: "Cast a reading for a hexagram and a moment",
	Long: `Casts a Liu Yao reading. The moment comes from --date (converted through
the lunar calendar) or from four explicit --pillars; a request file (-f)
can carry the same fields as YAML or JSON.`,
	RunE: runDivine,
}

func init() {
	f := divineCmd.Flags()
	f.StringVarP(&divineFlags.file, "file", "f", "", "Request file (YAML/JSON)")
	f.StringVar(&divineFlags.code, "code", "", "Main hexagram: 6 chars of 0/1, bottom line first")
	f.StringVar(&divineFlags.date, "date", "", "Civil date-time, e.g. 2025/12/01 19:00")
	f.StringSliceVar(&divineFlags.pillars, "pillars", nil, "Four pillars year,month,day,hour (e.g. 乙巳,丁亥,甲子,甲戌)")
	f.IntSliceVar(&divineFlags.lines, "lines", nil, "Changing-line positions (1-6)")
	f.StringVar(&divineFlags.question, "question", "", "Question text, stored with --save")
	f.StringVar(&divineFlags.view, "view", "desktop", "Chart layout (desktop, mobile)")
	f.BoolVar(&divineFlags.persona, "persona", false, "Append the grandmaster analysis prompt")
	f.BoolVar(&divineFlags.compact, "compact", false, "Narrow line glyphs for constrained panes")
	f.BoolVar(&divineFlags.noTags, "no-tags", false, "Hide auxiliary spirit tags on lines")
	f.BoolVar(&divineFlags.asJSON, "json", false, "Print the chart as JSON instead of text")
	f.BoolVar(&divineFlags.save, "save", false, "Save the reading to the history store")
	f.StringVar(&divineFlags.dbPath, "db", store.DefaultDBPath, "History DB path")
}

// divineRequest merges the request file (if any) with the command flags;
// flags win.
func divineRequest() (*chart.Request, error) {
	req := &chart.Request{}
	if divineFlags.file != "" {
		loaded, err := chart.LoadFromPath(divineFlags.file)
		if err != nil {
			return nil, err
		}
		req = loaded
	}
	if divineFlags.code != "" {
		req.Code = divineFlags.code
	}
	if divineFlags.date != "" {
		req.Date = divineFlags.date
		req.Pillars = nil
	}
	if len(divineFlags.pillars) > 0 {
		req.Pillars = divineFlags.pillars
		req.Date = ""
	}
	if len(divineFlags.lines) > 0 {
		req.Lines = divineFlags.lines
	}
	if divineFlags.question != "" {
		req.Question = divineFlags.question
	}
	return req, nil
}

func runDivine(cmd *cobra.Command, _ []string) error {
	req, err := divineRequest()
	if err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return err
	}
	bz, err := req.Moment(calendar.LunarConverter{})
	if err != nil {
		return err
	}

	diviner := engine.New(engine.NewMemoryCache())
	result, err := diviner.Divine(req.Code, bz, req.Lines)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if divineFlags.asJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal chart: %w", err)
		}
		fmt.Fprintln(out, string(data))
	} else {
		opts := render.ReportOptions{
			Options: render.Options{
				ShowShenSha: !divineFlags.noTags,
				Compact:     divineFlags.compact,
			},
			View:    render.ViewDesktop,
			Persona: divineFlags.persona,
		}
		if divineFlags.view == "mobile" {
			opts.View = render.ViewMobile
		}
		fmt.Fprint(out, render.Report(result, opts))
	}

	if divineFlags.save {
		id, err := saveReading(req, result)
		if err != nil {
			return fmt.Errorf("save reading: %w", err)
		}
		fmt.Fprintf(out, "Saved reading #%d\n", id)
	}
	return nil
}

func saveReading(req *chart.Request, result *engine.Chart) (int64, error) {
	st, err := store.Open(divineFlags.dbPath)
	if err != nil {
		return 0, err
	}
	defer st.Close()

	payload, err := json.Marshal(result)
	if err != nil {
		return 0, err
	}
	r := &store.Reading{
		Question:  req.Question,
		DateInput: req.Date,
		Code:      result.Code,
		Changed:   result.ChangedCode,
		Lines:     result.ChangingLines,
		BaZiKey:   result.BaZi.Key(),
		SanHeJu:   result.SanHeJu,
		Chart:     payload,
	}
	return st.SaveReading(r)
}
