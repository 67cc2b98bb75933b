package climate

// Catalog bundles the loaded tables with their derived aggregates. It is
// built once at startup and read-only afterwards, so handlers may share it
// without locking.
type Catalog struct {
	Global      Table
	Seasonal    SeasonalTable
	Hemispheric Table
	HemiYearly  YearTable
}

// NewCatalog precomputes the seasonal aggregate of the global table and the
// per-year means of the hemispheric table.
func NewCatalog(global, hemispheric Table) *Catalog {
	return &Catalog{
		Global:      global,
		Seasonal:    BuildSeasonalAggregate(global),
		Hemispheric: hemispheric,
		HemiYearly:  hemispheric.GroupByYear(),
	}
}

// View builds the indicator chart payload: the plot frame, its event
// annotations, and the pairwise correlation summary over the same frame.
func (c *Catalog) View(req ViewRequest) (PlotFrame, []Annotation, []CorrelationResult) {
	frame, annotations := BuildPlotFrame(c.Global, c.Seasonal, req)
	return frame, annotations, Summarize(frame, req.Indicators)
}

// Frames builds the animated-chart sequence for one hemisphere's selection.
func (c *Catalog) Frames(indicators []string) ([]Frame, error) {
	return BuildFrames(c.HemiYearly, indicators)
}
