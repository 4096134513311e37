package system

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/spookymaze/obj"
	"github.com/milk9111/spookymaze/prefabs"
	"go.uber.org/zap"
)

const (
	defaultTimeBonus    = 50
	defaultDeathPenalty = 200
)

const rulesDispatchScript = `
if __call == "time_bonus" {
	__result = time_bonus(__arg)
} else if __call == "death_penalty" {
	__result = death_penalty(__arg)
}
`

// Rules is the score rule set. It implements obj.ScoreRules and adds the
// end-of-level rules. A nil script falls back to the built-in values.
type Rules struct {
	Name string

	compiled     *tengo.Compiled
	goodiePoints int
	lifeStep     int
	log          *zap.Logger
}

var _ obj.ScoreRules = (*Rules)(nil)

// DefaultRules is the rule set used when no script is available.
func DefaultRules() *Rules {
	d := obj.DefaultRules{}
	return &Rules{
		goodiePoints: d.GoodiePoints(),
		lifeStep:     d.LifeStep(),
		log:          zap.NewNop(),
	}
}

// LoadRules compiles the named script from prefabs/scripts.
func LoadRules(name string, log *zap.Logger) (*Rules, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("rules: load %s: %w", name, err)
	}
	r, err := NewRules(src, log)
	if err != nil {
		return nil, fmt.Errorf("rules: %s: %w", name, err)
	}
	r.Name = name
	return r, nil
}

// NewRules compiles a rules script. The script must define goodie_points,
// life_step, time_bonus(seconds) and death_penalty(level).
func NewRules(src []byte, log *zap.Logger) (*Rules, error) {
	if log == nil {
		log = zap.NewNop()
	}

	script := tengo.NewScript(append(append([]byte{}, src...), rulesDispatchScript...))
	_ = script.Add("__call", "")
	_ = script.Add("__arg", 0)
	_ = script.Add("__result", 0)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, err
	}
	if err := compiled.Run(); err != nil {
		return nil, err
	}

	r := &Rules{compiled: compiled, log: log}
	for _, name := range []string{"goodie_points", "life_step", "time_bonus", "death_penalty"} {
		if !compiled.IsDefined(name) {
			return nil, fmt.Errorf("missing %s", name)
		}
	}
	r.goodiePoints = compiled.Get("goodie_points").Int()
	r.lifeStep = compiled.Get("life_step").Int()
	if r.goodiePoints < 0 || r.lifeStep <= 0 {
		return nil, fmt.Errorf("goodie_points must be >= 0 and life_step > 0")
	}
	return r, nil
}

func (r *Rules) GoodiePoints() int { return r.goodiePoints }
func (r *Rules) LifeStep() int     { return r.lifeStep }

// TimeBonus is the score for finishing a level with seconds left.
func (r *Rules) TimeBonus(seconds int) int {
	if v, ok := r.call("time_bonus", seconds); ok {
		return v
	}
	return max(seconds, 0) * defaultTimeBonus
}

// DeathPenalty is the score lost when dying on level.
func (r *Rules) DeathPenalty(level int) int {
	if v, ok := r.call("death_penalty", level); ok {
		return v
	}
	return level * defaultDeathPenalty
}

func (r *Rules) call(fn string, arg int) (int, bool) {
	if r == nil || r.compiled == nil {
		return 0, false
	}
	if err := r.compiled.Set("__call", fn); err != nil {
		r.log.Warn("rules: set call", zap.String("fn", fn), zap.Error(err))
		return 0, false
	}
	if err := r.compiled.Set("__arg", arg); err != nil {
		r.log.Warn("rules: set arg", zap.String("fn", fn), zap.Error(err))
		return 0, false
	}
	if err := r.compiled.Run(); err != nil {
		r.log.Warn("rules: run", zap.String("fn", fn), zap.Error(err))
		return 0, false
	}
	return r.compiled.Get("__result").Int(), true
}
