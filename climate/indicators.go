package climate

import "fmt"

// Indicator describes one selectable climate variable: the normalized
// column key, a display label, and the raw-value companion column shown in
// tooltips (empty when no raw counterpart exists).
type Indicator struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	RawKey string `json:"raw_key,omitempty"`
}

// GlobalIndicators lists the selectable indicators of the global monthly
// table, in display order.
func GlobalIndicators() []Indicator {
	return []Indicator{
		{Key: "norm_co2", Label: "CO₂ Anomaly (Mt)", RawKey: "co2_anomaly"},
		{Key: "norm_land_ocean_temp", Label: "Land-Ocean Temp Anomaly (°C)", RawKey: "land_ocean_anomaly"},
		{Key: "norm_land_temp", Label: "Land Temp Anomaly (°C)", RawKey: "land_anomaly"},
		{Key: "norm_sea_level", Label: "Sea Level (mm)", RawKey: "msl_mm"},
	}
}

// RawCompanion returns the raw-value column paired with a normalized
// indicator key, or "" when none exists.
func RawCompanion(key string) string {
	for _, ind := range GlobalIndicators() {
		if ind.Key == key {
			return ind.RawKey
		}
	}
	return ""
}

// Hemisphere selects the northern or southern subset of the hemispheric
// table.
type Hemisphere string

const (
	North Hemisphere = "north"
	South Hemisphere = "south"
)

// ParseHemisphere validates a hemisphere name from the API.
func ParseHemisphere(s string) (Hemisphere, error) {
	switch Hemisphere(s) {
	case North, South:
		return Hemisphere(s), nil
	default:
		return "", fmt.Errorf("unknown hemisphere %q", s)
	}
}

// HemisphereIndicators lists the animated indicators for one hemisphere.
// The hemispheric table carries normalized columns only, so there are no
// raw companions.
func HemisphereIndicators(h Hemisphere) []Indicator {
	prefix := "norm_" + string(h) + "_"
	side := "NH"
	if h == South {
		side = "SH"
	}
	return []Indicator{
		{Key: prefix + "co2", Label: "CO₂ Anomaly (" + side + ")"},
		{Key: prefix + "land", Label: "Land Temp (" + side + ")"},
		{Key: prefix + "land_ocean", Label: "Land-Ocean Temp (" + side + ")"},
		{Key: "norm_msl_" + string(h), Label: "Sea Level (" + side + ")"},
	}
}
