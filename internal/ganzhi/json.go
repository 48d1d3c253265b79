package ganzhi

import (
	"encoding/json"
	"fmt"
)

// Pillars marshal as their two-character string form, e.g. "甲子".

func (p Pillar) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *Pillar) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*p = Pillar{}
		return nil
	}
	parsed, err := ParsePillar(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

type baziJSON struct {
	Year    string   `json:"year"`
	Month   string   `json:"month"`
	Day     string   `json:"day"`
	Hour    string   `json:"hour"`
	XunKong []string `json:"xunKong"`
}

func (bz BaZi) MarshalJSON() ([]byte, error) {
	return json.Marshal(baziJSON{
		Year:    bz.Year.String(),
		Month:   bz.Month.String(),
		Day:     bz.Day.String(),
		Hour:    bz.Hour.String(),
		XunKong: []string{string(bz.Void1), string(bz.Void2)},
	})
}

// UnmarshalJSON rebuilds the four pillars and re-derives the void branches
// from the day pillar, ignoring any stored xunKong values.
func (bz *BaZi) UnmarshalJSON(data []byte) error {
	var raw baziJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parse := func(name, s string) (Pillar, error) {
		p, err := ParsePillar(s)
		if err != nil {
			return Pillar{}, fmt.Errorf("%s pillar: %w", name, err)
		}
		return p, nil
	}
	year, err := parse("year", raw.Year)
	if err != nil {
		return err
	}
	month, err := parse("month", raw.Month)
	if err != nil {
		return err
	}
	day, err := parse("day", raw.Day)
	if err != nil {
		return err
	}
	hour, err := parse("hour", raw.Hour)
	if err != nil {
		return err
	}
	*bz = NewBaZi(year, month, day, hour)
	return nil
}
