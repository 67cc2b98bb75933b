package climate

import "fmt"

// Season is a meteorological season derived from the calendar month.
// The zero value is DJF; values are ordered DJF < MAM < JJA < SON, which is
// the display order for seasonal charts.
type Season int

const (
	DJF Season = iota
	MAM
	JJA
	SON
)

var seasonNames = [...]string{"DJF", "MAM", "JJA", "SON"}

// Seasons lists all seasons in their fixed chart order.
var Seasons = [...]Season{DJF, MAM, JJA, SON}

func (s Season) String() string {
	if s < DJF || s > SON {
		return fmt.Sprintf("Season(%d)", int(s))
	}
	return seasonNames[s]
}

// ErrInvalidMonth reports a month outside 1..12.
var ErrInvalidMonth = fmt.Errorf("month out of range 1..12")

// SeasonOf maps a calendar month to its season: Dec/Jan/Feb -> DJF,
// Mar-May -> MAM, Jun-Aug -> JJA, Sep-Nov -> SON.
func SeasonOf(month int) (Season, error) {
	switch month {
	case 12, 1, 2:
		return DJF, nil
	case 3, 4, 5:
		return MAM, nil
	case 6, 7, 8:
		return JJA, nil
	case 9, 10, 11:
		return SON, nil
	default:
		return DJF, fmt.Errorf("%w: %d", ErrInvalidMonth, month)
	}
}
