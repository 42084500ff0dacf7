package forecast

import "fmt"

// SnowCondition classifies the expected surface and precipitation character
// of one forecast layer. The zero value is CloudyClear.
type SnowCondition int

const (
	ConditionCloudyClear SnowCondition = iota
	ConditionChampagnePowder
	ConditionPowder
	ConditionSnow
	ConditionWetSnowSleet
	ConditionRain
)

var conditionLabels = map[SnowCondition]string{
	ConditionCloudyClear:     "Cloudy/Clear",
	ConditionChampagnePowder: "Champagne Powder",
	ConditionPowder:          "Powder",
	ConditionSnow:            "Snow",
	ConditionWetSnowSleet:    "Wet Snow/Sleet",
	ConditionRain:            "Rain",
}

var conditionIcons = map[SnowCondition]string{
	ConditionCloudyClear:     "☁️",
	ConditionChampagnePowder: "❄️💎",
	ConditionPowder:          "❄️",
	ConditionSnow:            "🌨️",
	ConditionWetSnowSleet:    "💧❄️",
	ConditionRain:            "🌧️",
}

func (c SnowCondition) String() string {
	if label, ok := conditionLabels[c]; ok {
		return label
	}
	return fmt.Sprintf("Unknown (%d)", int(c))
}

// Icon returns the display symbol for the condition.
func (c SnowCondition) Icon() string {
	if icon, ok := conditionIcons[c]; ok {
		return icon
	}
	return ""
}

// MinMeasurablePrecipitationMm is the threshold below which a period counts
// as dry regardless of temperature.
const MinMeasurablePrecipitationMm = 0.1

// Classify maps a temperature/precipitation pair to a snow condition.
// Dry periods are always CloudyClear; wet periods fall into temperature
// bands whose boundaries are inclusive on the upper side.
func Classify(tempC, precipMm float64) SnowCondition {
	if precipMm < MinMeasurablePrecipitationMm {
		return ConditionCloudyClear
	}

	switch {
	case tempC <= -12:
		return ConditionChampagnePowder
	case tempC <= -3:
		return ConditionPowder
	case tempC <= 0.5:
		return ConditionSnow
	case tempC <= 2.0:
		return ConditionWetSnowSleet
	default:
		return ConditionRain
	}
}
