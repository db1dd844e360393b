// Package world holds a generated floor: its rooms and the door graph between them.
package world

import (
	"pixelshooter/pkg/engine/physics"
	"pixelshooter/pkg/engine/world"
	"pixelshooter/pkg/game/catalog"
	"pixelshooter/pkg/game/entities"
)

// Room is one instance of a template on a floor. It owns its enemy list so
// combat progress survives leaving and coming back.
type Room struct {
	Index    int
	Template *catalog.Template
	Width    float64
	Height   float64
	Doors    world.Doors
	Enemies  []*entities.Enemy

	IsBossRoom bool
	HasStairs  bool
	Visited    bool
}

// NewRoom instantiates a template with an empty enemy list
func NewRoom(index int, tpl *catalog.Template) *Room {
	return &Room{
		Index:    index,
		Template: tpl,
		Width:    tpl.Width,
		Height:   tpl.Height,
		Doors:    tpl.Doors,
		Enemies:  make([]*entities.Enemy, 0),
	}
}

// Center returns the middle of the room
func (r *Room) Center() physics.Vec2 {
	return physics.Vec2{X: r.Width / 2, Y: r.Height / 2}
}

// Boss returns the boss enemy in this room, or nil
func (r *Room) Boss() *entities.Enemy {
	for _, e := range r.Enemies {
		if e.IsBoss {
			return e
		}
	}
	return nil
}

// RemoveDead drops dead enemies from the room's own list, keeping order,
// and returns the ones removed.
func (r *Room) RemoveDead() []*entities.Enemy {
	var dead []*entities.Enemy
	alive := r.Enemies[:0]
	for _, e := range r.Enemies {
		if e.IsDead() {
			dead = append(dead, e)
			continue
		}
		alive = append(alive, e)
	}
	for i := len(alive); i < len(r.Enemies); i++ {
		r.Enemies[i] = nil
	}
	r.Enemies = alive
	return dead
}

// IsCleared returns true when no enemies remain
func (r *Room) IsCleared() bool {
	return len(r.Enemies) == 0
}
