package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownWorld is returned when a world name is not recognised.
var ErrUnknownWorld = errors.New("unknown world")

// World is a themed setting that determines obstacle and enemy mixes.
type World string

const (
	WorldCloudKingdom  World = "cloud_kingdom"
	WorldCrystalCanyon World = "crystal_canyon"
	WorldFloatingCity  World = "floating_city"
)

// Worlds lists every world in menu order.
func Worlds() []World {
	return []World{WorldCloudKingdom, WorldCrystalCanyon, WorldFloatingCity}
}

// ParseWorld resolves a world name. Dashes, spaces and case are ignored,
// so "Crystal-Canyon" and "CRYSTAL_CANYON" both work.
func ParseWorld(name string) (World, error) {
	norm := strings.ToLower(strings.TrimSpace(name))
	norm = strings.NewReplacer("-", "_", " ", "_").Replace(norm)
	for _, w := range Worlds() {
		if string(w) == norm {
			return w, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownWorld, name)
}

// Title returns the display name of the world.
func (w World) Title() string {
	switch w {
	case WorldCloudKingdom:
		return "Cloud Kingdom"
	case WorldCrystalCanyon:
		return "Crystal Canyon"
	case WorldFloatingCity:
		return "Floating City"
	default:
		return string(w)
	}
}
