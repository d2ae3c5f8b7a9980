package editor

import "github.com/MKhiriev/go-profile-editor/models"

// hasDuplicatePlatforms reports whether two rows with a non-empty value share a name.
// Rows with an empty name are ignored.
func hasDuplicatePlatforms(platforms []models.Platform) bool {
	seen := make(map[string]struct{}, len(platforms))
	for _, p := range platforms {
		if p.Name == "" || p.Value == "" {
			continue
		}
		if _, ok := seen[p.Name]; ok {
			return true
		}
		seen[p.Name] = struct{}{}
	}
	return false
}

// filterPlatforms drops rows with an empty name or an empty value.
// The result is never nil.
func filterPlatforms(platforms []models.Platform) []models.Platform {
	filtered := make([]models.Platform, 0, len(platforms))
	for _, p := range platforms {
		if p.Name == "" || p.Value == "" {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

// NextPlatformName returns the option step positions away from current in
// the ring "" -> PlatformOptions... -> "". A free-text name starts the ring
// from "".
func NextPlatformName(current string, step int) string {
	ring := make([]string, 0, len(PlatformOptions)+1)
	ring = append(ring, "")
	ring = append(ring, PlatformOptions...)

	pos := 0
	for i, name := range ring {
		if name == current {
			pos = i
			break
		}
	}

	n := len(ring)
	return ring[((pos+step)%n+n)%n]
}
