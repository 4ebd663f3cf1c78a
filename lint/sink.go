package lint

// Sink accumulates the diagnostics of one run in arrival order. Diagnostics
// are never removed.
type Sink struct {
	diagnostics []Diagnostic
}

// Add appends d.
func (s *Sink) Add(d Diagnostic) {
	s.diagnostics = append(s.diagnostics, d)
}

// Len returns the number of diagnostics collected so far.
func (s *Sink) Len() int {
	return len(s.diagnostics)
}

// Diagnostics returns a copy of the collected diagnostics.
func (s *Sink) Diagnostics() []Diagnostic {
	if len(s.diagnostics) == 0 {
		return nil
	}
	out := make([]Diagnostic, len(s.diagnostics))
	copy(out, s.diagnostics)
	return out
}
