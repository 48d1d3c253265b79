// Package mcp exposes the divination engine over the Model Context Protocol
// so agent hosts can cast and read hexagrams through stdio tools.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"liuyao/internal/calendar"
	"liuyao/internal/engine"
	"liuyao/internal/ganzhi"
	"liuyao/internal/hexagram"
	"liuyao/internal/logging"
	"liuyao/internal/render"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP SDK server around a shared Diviner and calendar
// converter. Tools are stateless; the only shared state is the shen sha cache
// inside the Diviner, which is safe for concurrent calls.
type Server struct {
	MCPServer *sdkmcp.Server

	diviner   *engine.Diviner
	converter calendar.Converter
}

// NewServer creates an MCP server with the divination tools registered.
func NewServer() *Server {
	s := &Server{
		diviner:   engine.New(engine.NewMemoryCache()),
		converter: calendar.LunarConverter{},
	}
	s.MCPServer = sdkmcp.NewServer(
		&sdkmcp.Implementation{Name: "liuyao", Version: "dev"},
		nil,
	)
	s.registerTools()
	return s
}

func (s *Server) registerTools() {
	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "divine",
		Description: "Cast a Liu Yao reading: six-line hexagram code plus the moment (date or four pillars) and optional changing lines. Returns the rendered chart and the structured reading.",
	}, s.handleDivine)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "lookup_hexagram",
		Description: "Look up one of the 64 hexagrams by its 6-character binary code (bottom line first).",
	}, s.handleLookupHexagram)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "solar_to_bazi",
		Description: "Convert a civil date-time (YYYY/MM/DD HH:MM[:SS]) to the four GanZhi pillars with void branches.",
	}, s.handleSolarToBazi)
}

// --- Tool input/output types ---

type divineInput struct {
	Code    string   `json:"code" jsonschema:"main hexagram as 6 chars of 0/1, bottom line first"`
	Date    string   `json:"date,omitempty" jsonschema:"civil date-time YYYY/MM/DD HH:MM[:SS]; mutually exclusive with pillars"`
	Pillars []string `json:"pillars,omitempty" jsonschema:"four GanZhi pillars year,month,day,hour (e.g. 乙巳 丁亥 甲子 甲戌)"`
	Lines   []int    `json:"lines,omitempty" jsonschema:"changing line positions 1-6"`
	View    string   `json:"view,omitempty" jsonschema:"chart layout: desktop (default) or mobile"`
	Persona bool     `json:"persona,omitempty" jsonschema:"append the grandmaster analysis prompt after the chart"`
}

// divineOutput carries the chart as a decoded JSON object rather than
// *engine.Chart: the SDK infers the output schema by reflection and validates
// results against it, and Chart's pillar fields marshal as strings ("甲子")
// while reflection would declare them objects.
type divineOutput struct {
	Report string         `json:"report"`
	Chart  map[string]any `json:"chart"`
}

type lookupHexagramInput struct {
	Code string `json:"code" jsonschema:"6-character binary hexagram code, bottom line first"`
}

type lookupHexagramOutput struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	DetailedName string `json:"detailed_name"`
	Meaning      string `json:"meaning"`
	Palace       string `json:"palace"`
	Element      string `json:"element"`
	Shi          int    `json:"shi"`
	Ying         int    `json:"ying"`
	Structure    string `json:"structure,omitempty"`
}

type solarToBaziInput struct {
	Date string `json:"date" jsonschema:"civil date-time YYYY/MM/DD HH:MM[:SS], slash or dash separated"`
}

type solarToBaziOutput struct {
	BaZi  string `json:"bazi"`
	Year  string `json:"year"`
	Month string `json:"month"`
	Day   string `json:"day"`
	Hour  string `json:"hour"`
	Voids string `json:"voids"`
}

// --- Tool handlers ---

func (s *Server) handleDivine(ctx context.Context, _ *sdkmcp.CallToolRequest, input divineInput) (*sdkmcp.CallToolResult, divineOutput, error) {
	logger := logging.New("mcp")

	var chart *engine.Chart
	var err error
	switch {
	case len(input.Pillars) > 0:
		if input.Date != "" {
			return nil, divineOutput{}, fmt.Errorf("date and pillars are mutually exclusive")
		}
		bz, perr := parsePillars(input.Pillars)
		if perr != nil {
			return nil, divineOutput{}, perr
		}
		chart, err = s.diviner.Divine(input.Code, bz, input.Lines)
	case input.Date != "":
		chart, err = s.diviner.DivineFromDate(input.Code, input.Date, s.converter, input.Lines)
	default:
		return nil, divineOutput{}, fmt.Errorf("need a date or four pillars")
	}
	if err != nil {
		return nil, divineOutput{}, fmt.Errorf("divine: %w", err)
	}

	opts := render.DefaultReportOptions
	opts.Persona = input.Persona
	if strings.EqualFold(input.View, string(render.ViewMobile)) {
		opts.View = render.ViewMobile
	}

	payload, err := chartObject(chart)
	if err != nil {
		return nil, divineOutput{}, fmt.Errorf("encode chart: %w", err)
	}

	logger.Info("reading cast", "code", input.Code, "changing", len(input.Lines), "view", string(opts.View))
	return nil, divineOutput{
		Report: render.Report(chart, opts),
		Chart:  payload,
	}, nil
}

// chartObject round-trips the chart through its JSON form.
func chartObject(chart *engine.Chart) (map[string]any, error) {
	data, err := json.Marshal(chart)
	if err != nil {
		return nil, err
	}
	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, err
	}
	return obj, nil
}

func (s *Server) handleLookupHexagram(_ context.Context, _ *sdkmcp.CallToolRequest, input lookupHexagramInput) (*sdkmcp.CallToolResult, lookupHexagramOutput, error) {
	h, ok := hexagram.Lookup(input.Code)
	if !ok {
		if err := hexagram.ValidateCode(input.Code); err != nil {
			return nil, lookupHexagramOutput{}, err
		}
		return nil, lookupHexagramOutput{}, fmt.Errorf("unknown hexagram code %q", input.Code)
	}
	return nil, lookupHexagramOutput{
		Code:         h.Code,
		Name:         h.Name,
		DetailedName: h.DetailedName(),
		Meaning:      h.Meaning,
		Palace:       h.Palace.String(),
		Element:      h.Element.String(),
		Shi:          h.Shi,
		Ying:         h.Ying,
		Structure:    h.Structure,
	}, nil
}

func (s *Server) handleSolarToBazi(_ context.Context, _ *sdkmcp.CallToolRequest, input solarToBaziInput) (*sdkmcp.CallToolResult, solarToBaziOutput, error) {
	bz, err := calendar.BaZiFromString(s.converter, input.Date)
	if err != nil {
		return nil, solarToBaziOutput{}, err
	}
	return nil, solarToBaziOutput{
		BaZi:  bz.String(),
		Year:  bz.Year.String(),
		Month: bz.Month.String(),
		Day:   bz.Day.String(),
		Hour:  bz.Hour.String(),
		Voids: bz.Void1.String() + bz.Void2.String(),
	}, nil
}

func parsePillars(in []string) (ganzhi.BaZi, error) {
	if len(in) != 4 {
		return ganzhi.BaZi{}, fmt.Errorf("need 4 pillars, got %d", len(in))
	}
	var ps [4]ganzhi.Pillar
	for i, s := range in {
		p, err := ganzhi.ParsePillar(s)
		if err != nil {
			return ganzhi.BaZi{}, fmt.Errorf("pillar %d: %w", i+1, err)
		}
		ps[i] = p
	}
	return ganzhi.NewBaZi(ps[0], ps[1], ps[2], ps[3]), nil
}
