package domain

import "strings"

// RoomFilter criteria for the visible room list
// Пустые Status/Building эквивалентны FilterAll
type RoomFilter struct {
	Status   string
	Building string
	Search   string
}

// Matches returns true if the room passes every criterion of the filter
func (f RoomFilter) Matches(r *Room) bool {
	if r == nil {
		return false
	}

	if !isAll(f.Status) && string(r.Status) != f.Status {
		return false
	}

	if !isAll(f.Building) && r.Building != f.Building {
		return false
	}

	term := strings.ToLower(strings.TrimSpace(f.Search))
	if term == "" {
		return true
	}

	candidates := []string{r.Number, r.Code(), r.Description}
	if r.Tenant != nil {
		candidates = append(candidates, r.Tenant.FullName)
	}

	for _, c := range candidates {
		if c != "" && strings.Contains(strings.ToLower(c), term) {
			return true
		}
	}

	return false
}

// FilterRooms returns the rooms matching the filter in their original order
func FilterRooms(rooms []*Room, f RoomFilter) []*Room {
	result := make([]*Room, 0, len(rooms))
	for _, r := range rooms {
		if f.Matches(r) {
			result = append(result, r)
		}
	}
	return result
}

// Buildings returns distinct building identifiers in order of first appearance
func Buildings(rooms []*Room) []string {
	result := make([]string, 0)
	seen := make(map[string]struct{})
	for _, r := range rooms {
		if _, ok := seen[r.Building]; ok {
			continue
		}
		seen[r.Building] = struct{}{}
		result = append(result, r.Building)
	}
	return result
}

func isAll(v string) bool {
	return v == "" || v == FilterAll
}
