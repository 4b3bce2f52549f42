package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ActivityRule is the per-type policy for an activity: how many participants fit
// in one turn and the youngest participant admitted.
// swagger:model ActivityRule
type ActivityRule struct {
	TurnCapacity int `json:"turn_capacity"`
	MinAge       int `json:"min_age"`
}

// DefaultRule applies to activities whose name matches no entry of the rule table.
var DefaultRule = ActivityRule{TurnCapacity: 12, MinAge: 0}

type ruleEntry struct {
	pattern string
	rule    ActivityRule
}

// Checked in order, first match wins.
var ruleTable = []ruleEntry{
	{pattern: "palestra", rule: ActivityRule{TurnCapacity: 12, MinAge: 12}},
	{pattern: "jardin", rule: ActivityRule{TurnCapacity: 12, MinAge: 0}},
	{pattern: "safari", rule: ActivityRule{TurnCapacity: 8, MinAge: 0}},
	{pattern: "tirolesa", rule: ActivityRule{TurnCapacity: 10, MinAge: 8}},
}

// RuleFor returns the rule of the first table entry contained in the activity
// name, compared case and accent insensitively.
func RuleFor(name string) ActivityRule {
	normalized := normalizeName(name)
	for _, e := range ruleTable {
		if strings.Contains(normalized, e.pattern) {
			return e.rule
		}
	}
	return DefaultRule
}

// TurnCapacity is the authoritative per-slot cap for an activity. It shadows the
// activity's stored Capacity.
func TurnCapacity(name string) int {
	return RuleFor(name).TurnCapacity
}

// MinAge is the minimum participant age for an activity.
func MinAge(name string) int {
	return RuleFor(name).MinAge
}

func normalizeName(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, name)
	if err != nil {
		out = name
	}
	return strings.ToLower(out)
}
