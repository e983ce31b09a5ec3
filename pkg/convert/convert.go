// Package convert maps SLF activities onto GPX documents.
package convert

import (
	"github.com/thijzert/slf2gpx/pkg/gpx"
	"github.com/thijzert/slf2gpx/pkg/slf"
)

// Creator is written to the creator attribute of every GPX document
const Creator = "slf2gpx"

// DefaultAuthor is credited in the metadata of every converted document
var DefaultAuthor = gpx.Person{
	Name: "slf2gpx",
	Email: &gpx.Email{
		ID:     "slf2gpx",
		Domain: "users.noreply.github.com",
	},
}

// A Mapper converts activities to GPX documents
type Mapper struct {
	// Credited as the author of each document
	Author gpx.Person
}

// ToGPX converts an activity using DefaultAuthor
func ToGPX(a *slf.Activity, name string) *gpx.GPX {
	return Mapper{Author: DefaultAuthor}.ToGPX(a, name)
}

// ToGPX converts an activity into a GPX document with a single track holding
// a single segment. Every entry becomes one trackpoint, in the same order.
// The name is used verbatim for both the document and the track.
func (m Mapper) ToGPX(a *slf.Activity, name string) *gpx.GPX {
	author := m.Author
	if author.Email != nil {
		email := *author.Email
		author.Email = &email
	}

	return &gpx.GPX{
		Version: gpx.Version,
		Creator: Creator,
		Metadata: &gpx.Metadata{
			Name:   name,
			Author: &author,
		},
		Tracks: []gpx.Track{
			{
				Name: name,
				Segments: []gpx.Segment{
					{Points: trackpoints(a)},
				},
			},
		},
	}
}

func trackpoints(a *slf.Activity) []gpx.Waypoint {
	if a == nil {
		return []gpx.Waypoint{}
	}

	rv := make([]gpx.Waypoint, len(a.Entries))
	for i, e := range a.Entries {
		rv[i] = gpx.Waypoint{
			Latitude:  gpx.Decimal(e.Latitude),
			Longitude: gpx.Decimal(e.Longitude),
			Elevation: gpx.Dec(e.Altitude),
		}
	}
	return rv
}
