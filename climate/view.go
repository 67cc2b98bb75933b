package climate

import (
	"fmt"
	"time"
)

// Mode is the temporal granularity of the indicator chart.
type Mode int

const (
	Monthly Mode = iota
	Seasonal
)

func (m Mode) String() string {
	if m == Seasonal {
		return "seasonal"
	}
	return "monthly"
}

// ParseMode validates a granularity name from the API.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "monthly", "Monthly":
		return Monthly, nil
	case "seasonal", "Seasonal":
		return Seasonal, nil
	default:
		return Monthly, fmt.Errorf("unknown view mode %q", s)
	}
}

// ViewRequest selects what the indicator chart shows.
type ViewRequest struct {
	Mode       Mode
	FromYear   int
	ToYear     int
	Indicators []string
}

// PlotPoint is one point of the plot-ready frame. X is the axis label: a
// calendar date (day 15) in monthly mode, "<Season> <year>" in seasonal
// mode. Values holds the selected normalized columns plus raw companions.
type PlotPoint struct {
	X      string             `json:"x"`
	Year   int                `json:"year"`
	Values map[string]float64 `json:"values"`
}

// PlotFrame is the filtered, plot-ready table handed to the chart.
type PlotFrame struct {
	Mode    Mode        `json:"-"`
	Columns []string    `json:"columns"`
	Points  []PlotPoint `json:"points"`
}

// monthLabel anchors a (year, month) on the monthly axis at day 15.
func monthLabel(year, month int) string {
	return time.Date(year, time.Month(month), 15, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
}

// BuildPlotFrame filters the window [req.FromYear, req.ToYear] (inclusive;
// an inverted range gives an empty frame), keeps the selected columns plus
// their raw companions where the source carries them, drops any row missing
// one of those values, and places the policy-event annotations that fall
// inside the produced axis. Output ordering is fully determined by the
// inputs.
func BuildPlotFrame(monthly Table, seasonal SeasonalTable, req ViewRequest) (PlotFrame, []Annotation) {
	columns := make([]string, 0, 2*len(req.Indicators))
	columns = append(columns, req.Indicators...)
	for _, key := range req.Indicators {
		if raw := RawCompanion(key); raw != "" && monthly.HasColumn(raw) {
			columns = append(columns, raw)
		}
	}

	frame := PlotFrame{Mode: req.Mode, Columns: columns, Points: make([]PlotPoint, 0)}

	if req.Mode == Monthly {
		for _, r := range monthly.Rows {
			if r.Year < req.FromYear || r.Year > req.ToYear {
				continue
			}
			if p, ok := pickValues(r.Values, columns); ok {
				frame.Points = append(frame.Points, PlotPoint{
					X:      monthLabel(r.Year, r.Month),
					Year:   r.Year,
					Values: p,
				})
			}
		}
	} else {
		for _, r := range seasonal.Rows {
			if r.Year < req.FromYear || r.Year > req.ToYear {
				continue
			}
			if p, ok := pickValues(r.Values, columns); ok {
				frame.Points = append(frame.Points, PlotPoint{
					X:      fmt.Sprintf("%s %d", r.Season, r.Year),
					Year:   r.Year,
					Values: p,
				})
			}
		}
	}

	return frame, placeAnnotations(frame, req)
}

// pickValues extracts the requested columns from a row; ok is false when
// any column is missing (drop-incomplete policy).
func pickValues(values map[string]float64, columns []string) (map[string]float64, bool) {
	out := make(map[string]float64, len(columns))
	for _, col := range columns {
		v, ok := values[col]
		if !ok {
			return nil, false
		}
		out[col] = v
	}
	return out, true
}

// placeAnnotations maps the event catalog onto the frame's axis. Events
// outside the window, or whose seasonal label did not survive filtering,
// are silently omitted.
func placeAnnotations(frame PlotFrame, req ViewRequest) []Annotation {
	annotations := make([]Annotation, 0, len(PolicyEvents))
	for _, ev := range PolicyEvents {
		if ev.Year < req.FromYear || ev.Year > req.ToYear {
			continue
		}
		if req.Mode == Monthly {
			annotations = append(annotations, Annotation{
				Label: ev.Label,
				X:     monthLabel(ev.Year, ev.Month),
				Year:  ev.Year,
			})
			continue
		}
		season, err := SeasonOf(ev.Month)
		if err != nil {
			continue
		}
		label := fmt.Sprintf("%s %d", season, ev.Year)
		for _, p := range frame.Points {
			if p.X == label {
				annotations = append(annotations, Annotation{Label: ev.Label, X: label, Year: ev.Year})
				break
			}
		}
	}
	return annotations
}
