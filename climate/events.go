package climate

// Event is a policy event annotated on the charts.
type Event struct {
	Year  int
	Month int
	Label string
}

// PolicyEvents is the fixed annotation catalog.
var PolicyEvents = []Event{
	{Year: 1997, Month: 12, Label: "Kyoto Protocol"},
	{Year: 2015, Month: 12, Label: "Paris Agreement"},
	{Year: 2020, Month: 4, Label: "COVID Drop"},
}

// Annotation is an event marker mapped onto the active time axis.
type Annotation struct {
	Label string `json:"label"`
	X     string `json:"x"`
	Year  int    `json:"year"`
}
