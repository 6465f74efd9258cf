package sand

import (
	"strconv"

	"mad-sand/internal/core"
)

// Parameters reports the world settings and live counters for the HUD.
func (w *World) Parameters() core.ParameterSnapshot {
	cfg := w.cfg
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", cfg.Width),
				intParam("h", "Height", cfg.Height),
				intParam("brush", "Brush", cfg.Brush),
				int64Param("seed", "Seed", cfg.Seed),
				stringParam("edge", "Edge policy", cfg.Edge.String()),
			},
		},
		{
			Name: "Color",
			Params: []core.Parameter{
				floatParam("hue", "Hue", w.Hue()),
				floatParam("hue_step", "Hue step", cfg.Palette.HueStep),
				intParam("jitter", "Jitter", cfg.Palette.Jitter),
			},
		},
		{
			Name: "State",
			Params: []core.Parameter{
				intParam("grains", "Grains", w.grid.Occupied()),
				intParam("poured", "Poured", w.poured),
				intParam("ticks", "Ticks", w.ticks),
				intParam("moves", "Moves", w.moves),
				boolParam("polarity_left", "Left first", w.polarityLeft),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.FormatInt(value, 10)}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', 2, 64)}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeBool, Value: strconv.FormatBool(value)}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeString, Value: value}
}
