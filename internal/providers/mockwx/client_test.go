package mockwx

import (
	"io"
	"log/slog"
	"testing"
)

func newTestClient() *Client {
	return NewClient(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestClient_GetBaseSeries_Length(t *testing.T) {
	tests := []struct {
		name    string
		periods int
		want    int
	}{
		{"negative", -1, 0},
		{"zero", 0, 0},
		{"one", 1, 1},
		{"full pattern", 5, 5},
		{"beyond pattern", 8, 8},
		{"max periods", 12, 12},
	}

	client := newTestClient()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			series, err := client.GetBaseSeries(tt.periods)
			if err != nil {
				t.Fatalf("GetBaseSeries(%d) returned error: %v", tt.periods, err)
			}
			if len(series) != tt.want {
				t.Errorf("GetBaseSeries(%d) returned %d samples, want %d", tt.periods, len(series), tt.want)
			}
		})
	}
}

func TestClient_GetBaseSeries_CyclesPattern(t *testing.T) {
	client := newTestClient()

	series, err := client.GetBaseSeries(8)
	if err != nil {
		t.Fatalf("GetBaseSeries returned error: %v", err)
	}

	for i := 5; i < len(series); i++ {
		if series[i] != series[i-5] {
			t.Errorf("sample %d = %+v, want repeat of sample %d = %+v", i, series[i], i-5, series[i-5])
		}
	}
}

func TestClient_GetBaseSeries_NonNegativePrecipitation(t *testing.T) {
	client := newTestClient()

	series, err := client.GetBaseSeries(12)
	if err != nil {
		t.Fatalf("GetBaseSeries returned error: %v", err)
	}

	for i, sample := range series {
		if sample.PrecipitationMm < 0 {
			t.Errorf("sample %d has negative precipitation %v", i, sample.PrecipitationMm)
		}
	}
}
