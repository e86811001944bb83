package sand

import (
	"strconv"

	"github.com/burakssen/sandbox/internal/core"
)

// Parameters reports the active configuration grouped for the HUD.
func (w *World) Parameters() core.ParameterSnapshot {
	groups := []core.ParameterGroup{{
		Name: "World",
		Params: []core.Parameter{
			core.IntParam("w", "Width", w.cfg.Width),
			core.IntParam("h", "Height", w.cfg.Height),
			{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Value: strconv.FormatInt(w.cfg.Seed, 10)},
		},
	}}
	index := map[string]int{}
	for _, def := range paramDefs {
		gi, ok := index[def.group]
		if !ok {
			gi = len(groups)
			index[def.group] = gi
			groups = append(groups, core.ParameterGroup{Name: def.group})
		}
		groups[gi].Params = append(groups[gi].Params, core.FloatParam(def.key, def.label, *def.field(&w.cfg.Params)))
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the rule constants adjustable at runtime.
func (w *World) ParameterControls() []core.ParameterControl {
	controls := make([]core.ParameterControl, 0, len(paramDefs))
	for _, def := range paramDefs {
		controls = append(controls, core.ParameterControl{
			Key:    def.key,
			Label:  def.label,
			Type:   core.ParamTypeFloat,
			Step:   def.step,
			Min:    def.min,
			Max:    def.max,
			HasMin: true,
			HasMax: true,
		})
	}
	return controls
}

// SetFloatParameter updates a rule constant. The new value applies from the
// next Step.
func (w *World) SetFloatParameter(key string, value float64) bool {
	if !w.cfg.Params.Set(key, value) {
		return false
	}
	p := &w.cfg.Params
	switch key {
	case "fire_lifetime_min":
		if p.FireLifetimeMax < p.FireLifetimeMin {
			p.FireLifetimeMax = p.FireLifetimeMin
		}
	case "fire_lifetime_max":
		if p.FireLifetimeMin > p.FireLifetimeMax {
			p.FireLifetimeMin = p.FireLifetimeMax
		}
	}
	return true
}
