package cursor

// Memory is a headless Model.
// It stores the caret in memory and records every placement.
type Memory struct {
	anchor Anchor
	active bool

	// Positions tracks every SetPosition call for assertions.
	Positions []Position
}

// NewMemory creates a caret with an active selection at offset.
func NewMemory(offset int) *Memory {
	return &Memory{anchor: Anchor{Offset: offset}, active: true}
}

// Anchor returns the current caret.
func (m *Memory) Anchor() (Anchor, bool) {
	return m.anchor, m.active
}

// SetPosition places the caret. The caret becomes active and its anchor is
// the placed offset from the start of the content, flagged InExceeded for the
// Exceeded region.
func (m *Memory) SetPosition(p Position, keptLen int) {
	m.Positions = append(m.Positions, p)
	m.anchor = Anchor{Offset: Absolute(p, keptLen), InExceeded: p.Region == Exceeded}
	m.active = true
}

// MoveTo sets the anchor directly, as a user click would.
func (m *Memory) MoveTo(a Anchor) {
	m.anchor = a
	m.active = true
}

// Clear removes the selection.
func (m *Memory) Clear() {
	m.active = false
}

// Last returns the most recent placement.
func (m *Memory) Last() (Position, bool) {
	if len(m.Positions) == 0 {
		return Position{}, false
	}
	return m.Positions[len(m.Positions)-1], true
}
