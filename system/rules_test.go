package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShippedRules(t *testing.T) {
	r, err := LoadRules("rules.tengo", nil)
	require.NoError(t, err)
	d := DefaultRules()

	assert.Equal(t, "rules.tengo", r.Name)
	assert.Equal(t, d.GoodiePoints(), r.GoodiePoints())
	assert.Equal(t, d.LifeStep(), r.LifeStep())

	tests := []struct {
		name string
		got  func(*Rules) int
		want int
	}{
		{"time bonus", func(r *Rules) int { return r.TimeBonus(75) }, 3750},
		{"no time left", func(r *Rules) int { return r.TimeBonus(0) }, 0},
		{"negative time", func(r *Rules) int { return r.TimeBonus(-4) }, 0},
		{"death on level 3", func(r *Rules) int { return r.DeathPenalty(3) }, 600},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got(r), "script")
			assert.Equal(t, tt.want, tt.got(d), "built-in")
		})
	}
}

func TestCustomRules(t *testing.T) {
	src := `
goodie_points := 5
life_step := 500
time_bonus := func(s) { return s * 2 }
death_penalty := func(level) { return 0 }
`
	r, err := NewRules([]byte(src), nil)
	require.NoError(t, err)

	assert.Equal(t, 5, r.GoodiePoints())
	assert.Equal(t, 500, r.LifeStep())
	assert.Equal(t, 20, r.TimeBonus(10))
	assert.Zero(t, r.DeathPenalty(9))
}

func TestRulesScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"syntax", "goodie_points := "},
		{"missing function", "goodie_points := 1\nlife_step := 2\ntime_bonus := func(s) { return s }\n"},
		{"zero life step", "goodie_points := 1\nlife_step := 0\ntime_bonus := func(s) { return s }\ndeath_penalty := func(l) { return l }\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRules([]byte(tt.src), nil)
			assert.Error(t, err)
		})
	}

	_, err := LoadRules("missing.tengo", nil)
	assert.Error(t, err)
}
