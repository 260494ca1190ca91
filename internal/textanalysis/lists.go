package textanalysis

// StatementList collects feedback statements in order, dropping duplicates.
type StatementList struct {
	items []string
	seen  map[string]bool
}

// NewStatementList returns an empty list.
func NewStatementList() *StatementList {
	return &StatementList{seen: make(map[string]bool)}
}

// Add appends s unless it is empty or already present.
func (l *StatementList) Add(s string) {
	if s == "" || l.seen[s] {
		return
	}
	l.seen[s] = true
	l.items = append(l.items, s)
}

// AddIf appends s when cond holds.
func (l *StatementList) AddIf(cond bool, s string) {
	if cond {
		l.Add(s)
	}
}

// Len returns the number of statements collected.
func (l *StatementList) Len() int {
	return len(l.items)
}

// Fill appends fillers in order until the list holds at least minCount
// statements or the fillers run out.
func (l *StatementList) Fill(minCount int, fillers []string) {
	for _, f := range fillers {
		if len(l.items) >= minCount {
			return
		}
		l.Add(f)
	}
}

// Items returns at most maxCount statements. A non-positive maxCount means no
// limit.
func (l *StatementList) Items(maxCount int) []string {
	n := len(l.items)
	if maxCount > 0 && n > maxCount {
		n = maxCount
	}
	out := make([]string, n)
	copy(out, l.items[:n])
	return out
}
