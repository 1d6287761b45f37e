package domain

import (
	"sort"
	"strings"
	"time"
)

// ChannelType classifies an inventory channel by how its capacity is sold
type ChannelType string

const (
	// TypeAudio is podcast/radio inventory sold in spots per flight
	TypeAudio ChannelType = "AUDIO"
	// TypeDisplay is site display inventory sold in impressions per flight
	TypeDisplay ChannelType = "DISPLAY"
	// TypeBespokeESend is a dedicated e-send on a distribution list; one
	// send per selected date.
	TypeBespokeESend ChannelType = "BESPOKE_ESEND"
	// TypeAdsInESend is an ad slot inside a regular editorial e-send
	TypeAdsInESend ChannelType = "ADS_IN_ESEND"
	// TypeEmail is the legacy alias for bespoke e-sends kept for rows
	// created before the split into bespoke/ads types.
	TypeEmail ChannelType = "EMAIL"
)

// Valid returns true for a known channel type
func (t ChannelType) Valid() bool {
	switch t {
	case TypeAudio, TypeDisplay, TypeBespokeESend, TypeAdsInESend, TypeEmail:
		return true
	}
	return false
}

// IsEmail returns true for any email-based type, where capacity is
// consumed per send date rather than per flight.
func (t ChannelType) IsEmail() bool {
	return t == TypeBespokeESend || t == TypeAdsInESend || t == TypeEmail
}

// IsBespoke returns true for dedicated e-sends, including the legacy
// EMAIL alias. Bespoke sends are subject to the booking rules (Sunday
// blackout, department exclusivity, weekly and monthly caps).
func (t ChannelType) IsBespoke() bool {
	return t == TypeBespokeESend || t == TypeEmail
}

// Cadence is the set of weekdays an editorial e-send publishes on.
// An empty cadence means the channel publishes every day.
type Cadence []time.Weekday

// weekdayNames maps the stored csv tokens to weekdays
var weekdayNames = map[string]time.Weekday{
	"sun": time.Sunday,
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
}

// ParseCadence parses a stored cadence string ("fri", "mon,tue,wed").
// Unknown tokens are ignored; empty input yields an empty cadence.
func ParseCadence(s string) Cadence {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	var c Cadence
	for _, tok := range strings.Split(s, ",") {
		if wd, ok := weekdayNames[strings.ToLower(strings.TrimSpace(tok))]; ok {
			c = append(c, wd)
		}
	}
	sort.Slice(c, func(i, j int) bool { return c[i] < c[j] })
	return c
}

// Publishes returns true if the channel sends on the given weekday.
// An empty cadence publishes every day.
func (c Cadence) Publishes(d time.Weekday) bool {
	if len(c) == 0 {
		return true
	}
	for _, wd := range c {
		if wd == d {
			return true
		}
	}
	return false
}

// String renders the cadence in its stored csv form
func (c Cadence) String() string {
	if len(c) == 0 {
		return ""
	}
	tokens := make([]string, 0, len(c))
	for _, wd := range c {
		for name, v := range weekdayNames {
			if v == wd {
				tokens = append(tokens, name)
				break
			}
		}
	}
	return strings.Join(tokens, ",")
}

// Channel is a sellable inventory channel. TotalCapacity is the daily
// capacity for email types and the per-flight total for audio/display.
type Channel struct {
	ID            string
	Name          string
	Type          ChannelType
	TotalCapacity int
	Unit          string
	Cadence       Cadence
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
