package simulation

// Table maps durations to their statistics, preserving the order of the input
// duration grid. It is the final artifact handed to presentation.
type Table struct {
	order []float64
	stats map[float64]DurationStatistics
}

// NewTable creates an empty statistics table.
func NewTable() *Table {
	return &Table{stats: make(map[float64]DurationStatistics)}
}

// Add inserts or replaces the record for its duration. First insertion fixes
// the duration's position in iteration order.
func (t *Table) Add(s DurationStatistics) {
	if _, exists := t.stats[s.Years]; !exists {
		t.order = append(t.order, s.Years)
	}
	t.stats[s.Years] = s
}

// Get returns the record for a duration.
func (t *Table) Get(years float64) (DurationStatistics, bool) {
	s, ok := t.stats[years]
	return s, ok
}

// Durations returns the durations in insertion order.
func (t *Table) Durations() []float64 {
	out := make([]float64, len(t.order))
	copy(out, t.order)
	return out
}

// Stats returns all records in insertion order.
func (t *Table) Stats() []DurationStatistics {
	out := make([]DurationStatistics, 0, len(t.order))
	for _, y := range t.order {
		out = append(out, t.stats[y])
	}
	return out
}

// Len returns the number of durations in the table.
func (t *Table) Len() int {
	return len(t.order)
}
