package registrant

// AllEvents selects every record regardless of its event.
const AllEvents = "all"

// Result is the output of one processing pass.
type Result struct {
	RowsRead          int
	RowsSkipped       int
	Iftar             []IftarRecord
	Programming       []ProgrammingRecord
	IftarEvents       []string
	ProgrammingEvents []string
}

// FilterIftar returns the iftar records for event, or all of them for AllEvents.
func (r *Result) FilterIftar(event string) []IftarRecord {
	if event == AllEvents {
		return r.Iftar
	}
	filtered := make([]IftarRecord, 0, len(r.Iftar))
	for _, record := range r.Iftar {
		if record.Event == event {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

// FilterProgramming returns the programming records for event, or all of them for AllEvents.
func (r *Result) FilterProgramming(event string) []ProgrammingRecord {
	if event == AllEvents {
		return r.Programming
	}
	filtered := make([]ProgrammingRecord, 0, len(r.Programming))
	for _, record := range r.Programming {
		if record.Event == event {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

// Accumulator folds classified rows into per-category collections. Events are
// tracked separately from the records, distinct and in first-seen order.
type Accumulator struct {
	result          Result
	iftarSeen       map[string]struct{}
	programmingSeen map[string]struct{}
}

func NewAccumulator() *Accumulator {
	return &Accumulator{
		result: Result{
			Iftar:             []IftarRecord{},
			Programming:       []ProgrammingRecord{},
			IftarEvents:       []string{},
			ProgrammingEvents: []string{},
		},
		iftarSeen:       make(map[string]struct{}),
		programmingSeen: make(map[string]struct{}),
	}
}

func (a *Accumulator) Add(outcome Outcome) {
	a.result.RowsRead++

	switch {
	case outcome.Category == CategoryIftar && outcome.Iftar != nil:
		a.result.Iftar = append(a.result.Iftar, *outcome.Iftar)
		a.result.IftarEvents = addEvent(a.result.IftarEvents, a.iftarSeen, outcome.Iftar.Event)
	case outcome.Category == CategoryProgramming && outcome.Programming != nil:
		a.result.Programming = append(a.result.Programming, *outcome.Programming)
		a.result.ProgrammingEvents = addEvent(a.result.ProgrammingEvents, a.programmingSeen, outcome.Programming.Event)
	default:
		a.result.RowsSkipped++
	}
}

// Merge appends another result, keeping first-seen event order across both.
func (a *Accumulator) Merge(other *Result) {
	if other == nil {
		return
	}
	a.result.RowsRead += other.RowsRead
	a.result.RowsSkipped += other.RowsSkipped
	a.result.Iftar = append(a.result.Iftar, other.Iftar...)
	a.result.Programming = append(a.result.Programming, other.Programming...)
	for _, event := range other.IftarEvents {
		a.result.IftarEvents = addEvent(a.result.IftarEvents, a.iftarSeen, event)
	}
	for _, event := range other.ProgrammingEvents {
		a.result.ProgrammingEvents = addEvent(a.result.ProgrammingEvents, a.programmingSeen, event)
	}
}

// Result returns a snapshot; later Add calls do not change it.
func (a *Accumulator) Result() *Result {
	snapshot := a.result
	snapshot.Iftar = append([]IftarRecord{}, a.result.Iftar...)
	snapshot.Programming = append([]ProgrammingRecord{}, a.result.Programming...)
	snapshot.IftarEvents = append([]string{}, a.result.IftarEvents...)
	snapshot.ProgrammingEvents = append([]string{}, a.result.ProgrammingEvents...)
	return &snapshot
}

func addEvent(events []string, seen map[string]struct{}, event string) []string {
	if event == "" {
		return events
	}
	if _, ok := seen[event]; ok {
		return events
	}
	seen[event] = struct{}{}
	return append(events, event)
}
