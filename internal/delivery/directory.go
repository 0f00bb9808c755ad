// Package delivery exposes the pickup-point directory behind a narrow
// interface so the mocked lookup can later be replaced by a real carrier
// API.
package delivery

import "pixlumia/internal/domain"

type Directory interface {
	// Search returns the pickup points near a postal code.
	Search(zip string) []domain.RelayPoint
}

// MockDirectory serves a fixed list of relay points; the postal code is
// accepted but never consulted.
type MockDirectory struct{}

var relayPoints = []domain.RelayPoint{
	{ID: "1", Name: "Presse de la Poste", Address: "12 Rue de Rivoli", City: "Paris", ZipCode: "75004", Distance: "0.4 km"},
	{ID: "2", Name: "Alimentation Générale", Address: "45 Boulevard Sébastopol", City: "Paris", ZipCode: "75001", Distance: "1.2 km"},
	{ID: "3", Name: "Tabac Le Khédive", Address: "2 Place de la Bastille", City: "Paris", ZipCode: "75011", Distance: "1.8 km"},
}

func (MockDirectory) Search(zip string) []domain.RelayPoint {
	out := make([]domain.RelayPoint, len(relayPoints))
	copy(out, relayPoints)
	return out
}

// Find returns the relay point with the given id, if any.
func Find(d Directory, id string) (domain.RelayPoint, bool) {
	for _, p := range d.Search("") {
		if p.ID == id {
			return p, true
		}
	}
	return domain.RelayPoint{}, false
}
