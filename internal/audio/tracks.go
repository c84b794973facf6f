package audio

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/vovakirdan/sky-runner/internal/config"
)

// Supported track extensions, in preference order.
var trackExts = []string{".mp3", ".wav"}

// TrackNames returns the base names searched for a world's music, most
// specific first. An empty world returns the menu track.
func TrackNames(world config.World) []string {
	switch world {
	case config.WorldCloudKingdom:
		return []string{"world_cloud", "cloud_kingdom", "cloud"}
	case config.WorldCrystalCanyon:
		return []string{"world_canyon", "crystal_canyon", "crystal", "canyon"}
	case config.WorldFloatingCity:
		return []string{"world_city", "floating_city", "city"}
	default:
		return []string{"menu"}
	}
}

// FindTrack returns the first track in dir matching one of the base names.
// For each name it tries an "_ambient" variant first when ambient is set,
// then the plain name, then a loose match ignoring case, spaces, dashes
// and underscores.
func FindTrack(dir string, names []string, ambient bool) (string, bool) {
	if dir == "" {
		return "", false
	}
	for _, name := range names {
		var bases []string
		if ambient {
			bases = append(bases, name+"_ambient")
		}
		bases = append(bases, name)
		for _, base := range bases {
			for _, ext := range trackExts {
				path := filepath.Join(dir, base+ext)
				if fileExists(path) {
					return path, true
				}
			}
		}
		if path, ok := looseMatch(dir, name); ok {
			return path, true
		}
	}
	return "", false
}

func looseMatch(dir, name string) (string, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}
	want := normalizeTrack(name)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if !isTrackExt(ext) {
			continue
		}
		base := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		if strings.Contains(normalizeTrack(base), want) {
			return filepath.Join(dir, e.Name()), true
		}
	}
	return "", false
}

func normalizeTrack(s string) string {
	return strings.NewReplacer(" ", "", "_", "", "-", "").Replace(strings.ToLower(s))
}

func isTrackExt(ext string) bool {
	for _, e := range trackExts {
		if e == ext {
			return true
		}
	}
	return false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
