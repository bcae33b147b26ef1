// Package focus selects the next navigation-focus target among a window's
// key-navigable widgets.
package focus

import (
	"math"

	"github.com/go-drift/rui/pkg/geom"
)

// Candidate is a widget that may receive navigation focus.
type Candidate struct {
	ID   uint32
	Rect geom.Rect
}

// Next returns the candidate after current in tree order, wrapping around.
// When reverse is set the previous candidate is returned instead. If current
// is not among candidates the first (or last) candidate is chosen.
func Next(candidates []Candidate, current uint32, reverse bool) (uint32, bool) {
	count := len(candidates)
	if count == 0 {
		return 0, false
	}
	delta := 1
	if reverse {
		delta = -1
	}
	index := indexOf(candidates, current)
	if index < 0 {
		if reverse {
			return candidates[count-1].ID, true
		}
		return candidates[0].ID, true
	}
	return candidates[wrapIndex(index+delta, count)].ID, true
}

// InDirection returns the candidate closest to current in direction dir.
//
// Candidates whose centre does not lie beyond current's centre in dir are
// ignored. Among the rest, the distance along dir plus twice the cross-axis
// offset is minimised. If current has no usable geometry, or nothing lies in
// that direction, linear traversal is used.
func InDirection(candidates []Candidate, current uint32, dir geom.Direction) (uint32, bool) {
	index := indexOf(candidates, current)
	if index < 0 || candidates[index].Rect.IsEmpty() {
		return Next(candidates, current, dir.IsReversed())
	}
	source := candidates[index].Rect

	var best uint32
	bestScore := math.MaxInt
	for _, c := range candidates {
		if c.ID == current || c.Rect.IsEmpty() {
			continue
		}
		if !isInDirection(source, c.Rect, dir) {
			continue
		}
		if score := directionalScore(source, c.Rect, dir); score < bestScore {
			bestScore = score
			best = c.ID
		}
	}
	if best == 0 {
		return Next(candidates, current, dir.IsReversed())
	}
	return best, true
}

func indexOf(candidates []Candidate, id uint32) int {
	if id == 0 {
		return -1
	}
	for i, c := range candidates {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// isInDirection checks if target lies in the given direction from source.
func isInDirection(source, target geom.Rect, dir geom.Direction) bool {
	s, t := source.Center(), target.Center()
	switch dir {
	case geom.Up:
		return t.Y < s.Y
	case geom.Down:
		return t.Y > s.Y
	case geom.Left:
		return t.X < s.X
	case geom.Right:
		return t.X > s.X
	}
	return false
}

// directionalScore is lower for better targets.
func directionalScore(source, target geom.Rect, dir geom.Direction) int {
	s, t := source.Center(), target.Center()
	primary := abs(t.Get(dir.IsVertical()) - s.Get(dir.IsVertical()))
	cross := abs(t.Get(!dir.IsVertical()) - s.Get(!dir.IsVertical()))
	// Prefer aligned elements.
	return primary + cross*2
}

// wrapIndex wraps an index to stay within [0, count).
func wrapIndex(index, count int) int {
	index = index % count
	if index < 0 {
		index += count
	}
	return index
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
