// Package minimap projects a floor's door graph onto a grid around the
// current room for display.
package minimap

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"pixelshooter/pkg/engine/world"
	gameworld "pixelshooter/pkg/game/world"
)

// Offset is a room's grid position relative to the current room.
type Offset struct {
	DX, DY int
}

// Layout assigns every room reachable from current a grid offset by
// breadth-first search. Each edge moves one cell in its direction and the
// first visit wins, so a room sits at its shortest-hop position.
func Layout(current int, conns []gameworld.Links) map[int]Offset {
	layout := make(map[int]Offset, len(conns))
	if current < 0 || current >= len(conns) {
		return layout
	}

	visited := mapset.New[int]()
	q := queue.New[int]()
	visited.Put(current)
	layout[current] = Offset{}
	q.Enqueue(current)

	for !q.Empty() {
		room := q.Dequeue()
		at := layout[room]
		for _, d := range world.AllDirections() {
			next := conns[room][d]
			if next == gameworld.NoRoom || next < 0 || next >= len(conns) || visited.Has(next) {
				continue
			}
			visited.Put(next)
			dx, dy := d.Delta()
			layout[next] = Offset{DX: at.DX + dx, DY: at.DY + dy}
			q.Enqueue(next)
		}
	}
	return layout
}

// LayoutFloor is Layout for the floor's current room.
func LayoutFloor(f *gameworld.Floor) map[int]Offset {
	return Layout(f.CurrentRoom, f.Connections)
}

// Bounds returns the smallest and largest offsets in a layout.
func Bounds(layout map[int]Offset) (lo, hi Offset) {
	first := true
	for _, o := range layout {
		if first {
			lo, hi = o, o
			first = false
			continue
		}
		lo.DX = min(lo.DX, o.DX)
		lo.DY = min(lo.DY, o.DY)
		hi.DX = max(hi.DX, o.DX)
		hi.DY = max(hi.DY, o.DY)
	}
	return lo, hi
}
