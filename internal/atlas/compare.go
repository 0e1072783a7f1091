package atlas

import (
	"fmt"

	"github.com/piwi3910/atlaspack/internal/model"
)

// ComparisonScenario defines a named set of settings to compare.
type ComparisonScenario struct {
	Name     string
	Settings model.AtlasSettings
	Optimize bool // run the genetic order search instead of the plain heuristic
}

// ComparisonResult holds the layout and computed statistics for a
// single scenario.
type ComparisonResult struct {
	Scenario     ComparisonScenario
	Layout       model.AtlasLayout
	Width        int
	Height       int
	Efficiency   float64
	WastePercent float64
	Err          error
}

// CompareScenarios builds a layout for each scenario and returns the
// results in scenario order, enabling side-by-side comparison of
// different packing parameters.
func CompareScenarios(scenarios []ComparisonScenario, sprites []model.Sprite) []ComparisonResult {
	results := make([]ComparisonResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		var layout model.AtlasLayout
		var err error
		if scenario.Optimize {
			layout, err = OptimizeOrder(scenario.Settings, sprites)
		} else {
			layout, err = Build(scenario.Settings, sprites)
		}

		result := ComparisonResult{Scenario: scenario, Layout: layout, Err: err}
		if err == nil {
			result.Width = layout.Width
			result.Height = layout.Height
			result.Efficiency = layout.Efficiency()
			result.WastePercent = 100.0 - layout.Efficiency()
		}
		results = append(results, result)
	}

	return results
}

// BuildDefaultScenarios generates a set of comparison scenarios based
// on the current settings, varying key parameters to show what-if
// alternatives.
func BuildDefaultScenarios(base model.AtlasSettings) []ComparisonScenario {
	scenarios := []ComparisonScenario{
		{Name: "Current Settings", Settings: base},
		{Name: "Optimized Order", Settings: base, Optimize: true},
	}

	if base.Spacing > 0 {
		noSpacing := base
		noSpacing.Spacing = 0
		scenarios = append(scenarios, ComparisonScenario{
			Name:     "No Spacing",
			Settings: noSpacing,
		})
	} else {
		spaced := base
		spaced.Spacing = 2
		scenarios = append(scenarios, ComparisonScenario{
			Name:     fmt.Sprintf("Spacing %dpx", spaced.Spacing),
			Settings: spaced,
		})
	}

	toggled := base
	toggled.PowerOfTwo = !base.PowerOfTwo
	name := "Power-of-Two Off"
	if toggled.PowerOfTwo {
		name = "Power-of-Two On"
	}
	scenarios = append(scenarios, ComparisonScenario{Name: name, Settings: toggled})

	return scenarios
}
