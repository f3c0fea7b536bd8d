// Package cursor remaps a caret across an editor whose content was rewritten
// into a kept region followed by an exceeded region.
//
// Offsets are UTF-16 code units. An Anchor is measured from the start of the
// whole content; a Position is measured from the start of its region.
// Placement is best effort: a rendering surface may report an anchor offset
// relative to a single text node, so the result can be off within a node
// boundary.
package cursor

// Region identifies which part of the rewritten content holds the caret.
type Region int

const (
	// Kept is the in-limit region.
	Kept Region = iota
	// Exceeded is the overflow region.
	Exceeded
)

// String returns the region's name.
func (r Region) String() string {
	if r == Exceeded {
		return "exceeded"
	}
	return "kept"
}

// Position is a caret placement after a rewrite.
type Position struct {
	Region Region `json:"region"`
	Offset int    `json:"offset"`
}

// Anchor is the caret as observed before a rewrite.
type Anchor struct {
	// Offset is the caret offset from the start of the content.
	Offset int
	// InExceeded is true if the caret sat inside the overflow container.
	InExceeded bool
}

// Model is the caret of an editable surface.
type Model interface {
	// Anchor returns the current caret. ok is false when there is no active
	// selection.
	Anchor() (a Anchor, ok bool)
	// SetPosition places the caret. keptLen is the length of the Kept region
	// the position refers to.
	SetPosition(p Position, keptLen int)
}

// Track computes where the caret goes after the content is rewritten into
// keptLen units of kept text followed by exceededLen units of exceeded text.
//
// An offset within the kept text stays in Kept. A larger offset moves into
// Exceeded, shifted by keptLen. An anchor that was already inside the
// overflow container stays in Exceeded, at its start if the shifted offset
// would fall inside Kept. Offsets are clamped to the target region, and
// Exceeded placement falls back to the end of Kept when there is no exceeded
// text.
func Track(a Anchor, keptLen, exceededLen int) Position {
	offset := max(a.Offset, 0)

	p := Position{Region: Kept, Offset: offset}
	if offset > keptLen || a.InExceeded {
		p = Position{Region: Exceeded, Offset: max(offset-keptLen, 0)}
	}

	if p.Region == Exceeded {
		if exceededLen <= 0 {
			return Position{Region: Kept, Offset: keptLen}
		}
		p.Offset = min(p.Offset, exceededLen)
		return p
	}
	p.Offset = min(p.Offset, keptLen)
	return p
}

// Absolute converts a position into an offset from the start of the content.
// It is the inverse of Track for offsets inside the content.
func Absolute(p Position, keptLen int) int {
	if p.Region == Exceeded {
		return keptLen + p.Offset
	}
	return p.Offset
}

// Relative maps an anchor onto content that is already split into keptLen
// and exceededLen units, clamped to the region it lands in.
func Relative(a Anchor, keptLen, exceededLen int) Position {
	if exceededLen > 0 && (a.InExceeded || a.Offset > keptLen) {
		return Position{Region: Exceeded, Offset: min(max(a.Offset-keptLen, 0), exceededLen)}
	}
	return Position{Region: Kept, Offset: min(max(a.Offset, 0), keptLen)}
}
