// Package calendar converts civil (solar) date-times into the four ganzhi
// pillars a reading needs. The conversion itself is delegated to the
// lunar-go almanac; a Converter interface keeps the engine testable without
// it.
package calendar

import (
	"errors"
	"fmt"
	"strings"
	"time"

	lunar "github.com/6tail/lunar-go/calendar"

	"liuyao/internal/ganzhi"
)

// ErrUnavailable means no calendar backend is configured.
var ErrUnavailable = errors.New("calendar conversion unavailable")

// ErrInvalidDate means the input date-time could not be parsed.
var ErrInvalidDate = errors.New("invalid date")

// Converter derives the four pillars for a moment in civil time.
type Converter interface {
	Convert(t time.Time) (ganzhi.BaZi, error)
}

// LunarConverter computes pillars through the lunar-go almanac. The zero
// value is ready to use.
type LunarConverter struct{}

func (LunarConverter) Convert(t time.Time) (ganzhi.BaZi, error) {
	solar := lunar.NewSolar(t.Year(), int(t.Month()), t.Day(),
		t.Hour(), t.Minute(), t.Second())
	eight := solar.GetLunar().GetEightChar()

	parse := func(name, s string) (ganzhi.Pillar, error) {
		p, err := ganzhi.ParsePillar(s)
		if err != nil {
			return ganzhi.Pillar{}, fmt.Errorf("%s pillar from almanac: %w", name, err)
		}
		return p, nil
	}
	year, err := parse("year", eight.GetYear())
	if err != nil {
		return ganzhi.BaZi{}, err
	}
	month, err := parse("month", eight.GetMonth())
	if err != nil {
		return ganzhi.BaZi{}, err
	}
	day, err := parse("day", eight.GetDay())
	if err != nil {
		return ganzhi.BaZi{}, err
	}
	hour, err := parse("hour", eight.GetTime())
	if err != nil {
		return ganzhi.BaZi{}, err
	}
	return ganzhi.NewBaZi(year, month, day, hour), nil
}

// Unavailable rejects every conversion with ErrUnavailable. It stands in
// where readings must supply explicit pillars.
type Unavailable struct{}

func (Unavailable) Convert(time.Time) (ganzhi.BaZi, error) {
	return ganzhi.BaZi{}, ErrUnavailable
}

// dateLayouts in trial order; slash and dash separators, optional seconds.
var dateLayouts = []string{
	"2006/01/02 15:04:05",
	"2006/01/02 15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// ParseDateTime accepts "YYYY/MM/DD HH:MM[:SS]" with either slash or dash
// date separators.
func ParseDateTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// BaZiFromString parses a date-time string and converts it with c.
func BaZiFromString(c Converter, s string) (ganzhi.BaZi, error) {
	t, err := ParseDateTime(s)
	if err != nil {
		return ganzhi.BaZi{}, err
	}
	return c.Convert(t)
}
