package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRuleFor(t *testing.T) {
	tests := []struct {
		name         string
		activity     string
		wantCapacity int
		wantMinAge   int
	}{
		{"tirolesa", "Tirolesa", 10, 8},
		{"tirolesa upper case inside name", "Gran TIROLESA del Lago", 10, 8},
		{"palestra", "Palestra", 12, 12},
		{"safari", "Safari nocturno", 8, 0},
		{"jardineria", "Jardinería", 12, 0},
		{"jardin with accent", "Jardín Botánico", 12, 0},
		{"unrecognized", "Yoga Matutino", 12, 0},
		{"empty", "", 12, 0},
		{"first match wins", "Palestra y Tirolesa", 12, 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCapacity, TurnCapacity(tt.activity))
			assert.Equal(t, tt.wantMinAge, MinAge(tt.activity))
			assert.Equal(t, ActivityRule{TurnCapacity: tt.wantCapacity, MinAge: tt.wantMinAge}, RuleFor(tt.activity))
		})
	}
}
