package forecast

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		tempC    float64
		precipMm float64
		expected SnowCondition
	}{
		{"dry and frigid", -20, 0.0, ConditionCloudyClear},
		{"dry and warm", 5, 0.05, ConditionCloudyClear},
		{"dry just below threshold", 0, 0.0999, ConditionCloudyClear},
		{"wet at threshold", -20, 0.1, ConditionChampagnePowder},
		{"champagne powder boundary", -12, 5.0, ConditionChampagnePowder},
		{"deep cold storm", -25, 3.0, ConditionChampagnePowder},
		{"just above champagne boundary", -11.999, 5.0, ConditionPowder},
		{"powder band", -5, 2.5, ConditionPowder},
		{"powder boundary", -3, 5.0, ConditionPowder},
		{"snow band", -1, 2.5, ConditionSnow},
		{"snow boundary", 0.5, 5.0, ConditionSnow},
		{"just above snow boundary", 0.51, 5.0, ConditionWetSnowSleet},
		{"wet snow boundary", 2.0, 5.0, ConditionWetSnowSleet},
		{"just above wet snow boundary", 2.01, 5.0, ConditionRain},
		{"warm storm", 10, 12.0, ConditionRain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Classify(tt.tempC, tt.precipMm)
			if result != tt.expected {
				t.Errorf("Classify(%v, %v) = %v, want %v", tt.tempC, tt.precipMm, result, tt.expected)
			}
		})
	}
}

func TestSnowCondition_String(t *testing.T) {
	tests := []struct {
		condition SnowCondition
		expected  string
	}{
		{ConditionCloudyClear, "Cloudy/Clear"},
		{ConditionChampagnePowder, "Champagne Powder"},
		{ConditionPowder, "Powder"},
		{ConditionSnow, "Snow"},
		{ConditionWetSnowSleet, "Wet Snow/Sleet"},
		{ConditionRain, "Rain"},
		{SnowCondition(99), "Unknown (99)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			result := tt.condition.String()
			if result != tt.expected {
				t.Errorf("SnowCondition(%d).String() = %q, want %q", tt.condition, result, tt.expected)
			}
		})
	}
}

func TestSnowCondition_Icon(t *testing.T) {
	tests := []struct {
		name      string
		condition SnowCondition
		expected  string
	}{
		{"cloudy/clear", ConditionCloudyClear, "☁️"},
		{"champagne powder", ConditionChampagnePowder, "❄️💎"},
		{"powder", ConditionPowder, "❄️"},
		{"snow", ConditionSnow, "🌨️"},
		{"wet snow/sleet", ConditionWetSnowSleet, "💧❄️"},
		{"rain", ConditionRain, "🌧️"},
		{"unknown", SnowCondition(99), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.condition.Icon()
			if result != tt.expected {
				t.Errorf("SnowCondition(%d).Icon() = %q, want %q", tt.condition, result, tt.expected)
			}
		})
	}
}

// Classification always pairs a known label with a known icon; the classifier
// never produces an unlabeled value.
func TestClassify_AlwaysLabeled(t *testing.T) {
	temps := []float64{-30, -12, -11.999, -3, -2.999, 0.5, 0.51, 2.0, 2.01, 15}
	precips := []float64{0.0, 0.05, 0.1, 2.5, 40}

	for _, temp := range temps {
		for _, precip := range precips {
			c := Classify(temp, precip)
			if c.Icon() == "" {
				t.Errorf("Classify(%v, %v) = %v has no icon", temp, precip, c)
			}
			if _, ok := conditionLabels[c]; !ok {
				t.Errorf("Classify(%v, %v) = %v has no label", temp, precip, c)
			}
		}
	}
}
