// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"pixelshooter/pkg/engine/world"
	"pixelshooter/pkg/game/minimap"
	gameworld "pixelshooter/pkg/game/world"
)

const mapDumpFilename = "floor.txt"

// roomSymbol returns the single-character symbol for a room on the dump grid.
func roomSymbol(f *gameworld.Floor, i int) rune {
	room := f.Room(i)
	switch {
	case i == f.CurrentRoom:
		return '@'
	case room.HasStairs:
		return 'S'
	case room.IsBossRoom:
		return 'B'
	case room.Visited:
		return 'o'
	default:
		return '.'
	}
}

// writeGrid writes the minimap projection of f as a character grid. Rooms
// that collide on one cell show the lowest index.
func writeGrid(w io.Writer, f *gameworld.Floor) {
	layout := minimap.LayoutFloor(f)
	lo, hi := minimap.Bounds(layout)

	cells := make(map[minimap.Offset]int, len(layout))
	for room, o := range layout {
		if prev, ok := cells[o]; !ok || room < prev {
			cells[o] = room
		}
	}

	for dy := lo.DY; dy <= hi.DY; dy++ {
		for dx := lo.DX; dx <= hi.DX; dx++ {
			room, ok := cells[minimap.Offset{DX: dx, DY: dy}]
			if !ok {
				fmt.Fprint(w, " ")
				continue
			}
			fmt.Fprintf(w, "%c", roomSymbol(f, room))
		}
		fmt.Fprintln(w)
	}
}

// WriteFloorDump writes a full debug dump of a floor: metadata, legend, the
// minimap grid and one line per room with its template, doors, links and enemies.
func WriteFloorDump(w io.Writer, f *gameworld.Floor, seed int64) error {
	if f == nil {
		return fmt.Errorf("no floor")
	}

	// --- Metadata ---
	fmt.Fprintln(w, "=== FLOOR DUMP DEBUG (rooms, door graph, enemies) ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "floor: %d\n", f.Number)
	fmt.Fprintf(w, "level_seed: %d\n", seed)
	fmt.Fprintf(w, "rooms: %d\n", len(f.Rooms))
	fmt.Fprintf(w, "current_room: %d\n", f.CurrentRoom)
	fmt.Fprintf(w, "boss_defeated: %v\n", f.BossDefeated)
	fmt.Fprintln(w, "")

	// --- Legend ---
	fmt.Fprintln(w, "--- Legend (room symbols) ---")
	fmt.Fprintln(w, "@ = current room  B = boss room  S = stairs  o = visited  . = unvisited")
	fmt.Fprintln(w, "")

	// --- Minimap ---
	fmt.Fprintln(w, "--- Map (relative to current room) ---")
	writeGrid(w, f)
	fmt.Fprintln(w, "")

	// --- Rooms ---
	fmt.Fprintln(w, "--- Rooms ---")
	for i, room := range f.Rooms {
		fmt.Fprintf(w, "  room: %d template: %q size: %.0fx%.0f doors: %s enemies: %d boss: %v visited: %v\n",
			i, room.Template.Name, room.Width, room.Height, room.Doors, len(room.Enemies), room.IsBossRoom, room.Visited)
		for _, d := range world.AllDirections() {
			j := f.Link(i, d)
			if j == gameworld.NoRoom {
				continue
			}
			unmatched := ""
			if !room.Doors.Has(d) {
				unmatched = " (no template door)"
			}
			fmt.Fprintf(w, "    %s -> %d%s\n", d, j, unmatched)
		}
	}
	fmt.Fprintln(w, "")

	if err := f.Validate(); err != nil {
		fmt.Fprintf(w, "validate: %v\n", err)
	} else {
		fmt.Fprintln(w, "validate: ok")
	}
	return nil
}

// DumpFloorToFile writes WriteFloorDump to floor.txt in the working directory
// and returns its absolute path.
func DumpFloorToFile(f *gameworld.Floor, seed int64) (string, error) {
	absPath, err := filepath.Abs(mapDumpFilename)
	if err != nil {
		return "", err
	}

	out, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if err := WriteFloorDump(out, f, seed); err != nil {
		return "", err
	}
	return absPath, nil
}
