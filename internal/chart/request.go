// Package chart defines the reading request: what to cast, for which moment.
// Requests load from YAML or JSON files and resolve their moment either from
// explicit pillars or through a calendar conversion.
package chart

import (
	"errors"
	"fmt"

	"liuyao/internal/calendar"
	"liuyao/internal/ganzhi"
)

// Request is the input of one reading.
type Request struct {
	// Question is free-form context carried into saved history.
	Question string `json:"question,omitempty" yaml:"question,omitempty"`
	// Code is the main hexagram, 6 characters of '0'/'1', bottom line first.
	Code string `json:"code" yaml:"code"`
	// Lines lists changing-line positions (1-6).
	Lines []int `json:"lines,omitempty" yaml:"lines,omitempty"`
	// Date is a civil date-time ("YYYY/MM/DD HH:MM[:SS]") to convert into
	// pillars. Mutually exclusive with Pillars.
	Date string `json:"date,omitempty" yaml:"date,omitempty"`
	// Pillars gives the four pillars directly, year month day hour, e.g.
	// ["乙巳", "丁亥", "甲子", "甲戌"].
	Pillars []string `json:"pillars,omitempty" yaml:"pillars,omitempty"`
}

// ErrNoMoment means the request carries neither a date nor pillars.
var ErrNoMoment = errors.New("request needs a date or four pillars")

// Validate checks the request shape without resolving the calendar.
func (r *Request) Validate() error {
	if len(r.Code) != 6 {
		return fmt.Errorf("hexagram code must be 6 characters, got %q", r.Code)
	}
	for _, c := range r.Code {
		if c != '0' && c != '1' {
			return fmt.Errorf("hexagram code must be binary, got %q", r.Code)
		}
	}
	for _, n := range r.Lines {
		if n < 1 || n > 6 {
			return fmt.Errorf("changing line %d out of range", n)
		}
	}
	if r.Date == "" && len(r.Pillars) == 0 {
		return ErrNoMoment
	}
	if r.Date != "" && len(r.Pillars) > 0 {
		return errors.New("date and pillars are mutually exclusive")
	}
	if len(r.Pillars) > 0 && len(r.Pillars) != 4 {
		return fmt.Errorf("need 4 pillars, got %d", len(r.Pillars))
	}
	return nil
}

// Moment resolves the request's four pillars, converting the date through
// conv when no explicit pillars are given.
func (r *Request) Moment(conv calendar.Converter) (ganzhi.BaZi, error) {
	if err := r.Validate(); err != nil {
		return ganzhi.BaZi{}, err
	}
	if len(r.Pillars) == 4 {
		var parsed [4]ganzhi.Pillar
		for i, s := range r.Pillars {
			p, err := ganzhi.ParsePillar(s)
			if err != nil {
				return ganzhi.BaZi{}, fmt.Errorf("pillar %d: %w", i+1, err)
			}
			parsed[i] = p
		}
		return ganzhi.NewBaZi(parsed[0], parsed[1], parsed[2], parsed[3]), nil
	}
	return calendar.BaZiFromString(conv, r.Date)
}
