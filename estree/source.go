package estree

import (
	"sort"
	"strings"
)

// SourceCode is the text a tree was parsed from, indexed by line for offset
// to position conversion. Offsets and columns are in bytes.
type SourceCode struct {
	text       string
	lineStarts []int
}

// NewSourceCode indexes text. Lines end at "\n"; a preceding "\r" stays part
// of the line.
func NewSourceCode(text string) *SourceCode {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &SourceCode{text: text, lineStarts: starts}
}

// Text returns the whole source.
func (s *SourceCode) Text() string {
	return s.text
}

// Slice returns the text covered by r, clamped to the source bounds.
func (s *SourceCode) Slice(r Range) string {
	start, end := s.clamp(r.Start()), s.clamp(r.End())
	if start >= end {
		return ""
	}
	return s.text[start:end]
}

// GetText returns the source text of n.
func (s *SourceCode) GetText(n Node) string {
	if n == nil {
		return ""
	}
	return s.Slice(n.Range())
}

// Lines returns the source split into lines.
func (s *SourceCode) Lines() []string {
	return strings.Split(s.text, "\n")
}

// Position converts a byte offset into a line/column position.
func (s *SourceCode) Position(offset int) Position {
	offset = s.clamp(offset)
	line := sort.Search(len(s.lineStarts), func(i int) bool {
		return s.lineStarts[i] > offset
	}) - 1
	return Position{Line: line + 1, Column: offset - s.lineStarts[line]}
}

// Offset converts a line/column position into a byte offset.
func (s *SourceCode) Offset(p Position) int {
	if p.Line < 1 {
		return 0
	}
	if p.Line > len(s.lineStarts) {
		return len(s.text)
	}
	return s.clamp(s.lineStarts[p.Line-1] + p.Column)
}

// Location converts a range into a line/column span.
func (s *SourceCode) Location(r Range) SourceLocation {
	return SourceLocation{Start: s.Position(r.Start()), End: s.Position(r.End())}
}

func (s *SourceCode) clamp(offset int) int {
	switch {
	case offset < 0:
		return 0
	case offset > len(s.text):
		return len(s.text)
	default:
		return offset
	}
}
