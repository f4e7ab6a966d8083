package life

import (
	"strconv"

	"layout-life/internal/core"
)

// Parameters reports the configuration and live counters for display.
func (l *Life) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("n", "Size", l.cur.Size()),
				{Key: "layout", Label: "Layout", Type: core.ParamTypeString, Value: l.Layout().String()},
				floatParam("density", "Soup density", l.cfg.Density),
				intParam("seed", "Seed", int(l.cfg.Seed)),
			},
		},
		{
			Name: "State",
			Params: []core.Parameter{
				{Key: "generation", Label: "Generation", Type: core.ParamTypeInt, Value: strconv.FormatUint(l.generation, 10)},
				intParam("population", "Population", l.Population()),
			},
		},
	}}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
