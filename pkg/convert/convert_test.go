package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thijzert/slf2gpx/pkg/gpx"
	"github.com/thijzert/slf2gpx/pkg/slf"
)

func activity(entries ...slf.Entry) *slf.Activity {
	return &slf.Activity{
		GeneralInformation: slf.GeneralInformation{Name: "ignored"},
		Entries:            entries,
	}
}

func TestToGPX(t *testing.T) {
	a := activity(
		slf.Entry{Latitude: 47.2093812, Longitude: 11.4607711, Altitude: 1965.2},
		slf.Entry{Latitude: 47.2095, Longitude: 11.46091, Altitude: 1958.75},
		slf.Entry{Latitude: -33.9, Longitude: -70.2, Altitude: 0},
	)

	g := ToGPX(a, "patscherkofel")

	assert.Equal(t, gpx.Version, g.Version)
	assert.Equal(t, Creator, g.Creator)
	require.NotNil(t, g.Metadata)
	assert.Equal(t, "patscherkofel", g.Metadata.Name)
	assert.Equal(t, DefaultAuthor.Name, g.Metadata.Author.Name)
	assert.Equal(t, *DefaultAuthor.Email, *g.Metadata.Author.Email)

	require.Len(t, g.Tracks, 1)
	assert.Equal(t, "patscherkofel", g.Tracks[0].Name)
	require.Len(t, g.Tracks[0].Segments, 1)

	pts := g.Tracks[0].Segments[0].Points
	require.Len(t, pts, len(a.Entries))
	for i, e := range a.Entries {
		assert.Equal(t, e.Latitude, pts[i].Latitude.Float64(), "latitude %d", i)
		assert.Equal(t, e.Longitude, pts[i].Longitude.Float64(), "longitude %d", i)
		require.NotNil(t, pts[i].Elevation)
		assert.Equal(t, e.Altitude, pts[i].Elevation.Float64(), "altitude %d", i)
	}
}

func TestToGPXEmpty(t *testing.T) {
	for _, a := range []*slf.Activity{activity(), nil} {
		g := ToGPX(a, "empty")

		require.Len(t, g.Tracks, 1)
		require.Len(t, g.Tracks[0].Segments, 1)
		assert.NotNil(t, g.Tracks[0].Segments[0].Points)
		assert.Empty(t, g.Tracks[0].Segments[0].Points)
	}
}

func TestToGPXNames(t *testing.T) {
	names := []string{"", "run", "Grünten", "a b.c"}
	for _, name := range names {
		g := ToGPX(activity(), name)
		assert.Equal(t, name, g.Metadata.Name)
		assert.Equal(t, name, g.Tracks[0].Name)
	}

	// Names are copied byte for byte, even when not in normal form
	g := ToGPX(activity(), "Gru\u0308nten")
	assert.Equal(t, "Gru\u0308nten", g.Metadata.Name)
	assert.Equal(t, "Gru\u0308nten", g.Tracks[0].Name)
}

func TestMapperAuthor(t *testing.T) {
	m := Mapper{Author: gpx.Person{Name: "someone", Email: &gpx.Email{ID: "someone", Domain: "example.org"}}}
	g := m.ToGPX(activity(), "x")

	assert.Equal(t, "someone", g.Metadata.Author.Name)

	// The document does not share the mapper's author
	g.Metadata.Author.Email.Domain = "example.com"
	assert.Equal(t, "example.org", m.Author.Email.Domain)
}

func TestToGPXDeterministic(t *testing.T) {
	a := activity(slf.Entry{Latitude: 1, Longitude: 2, Altitude: 3})
	assert.Equal(t, ToGPX(a, "x"), ToGPX(a, "x"))
}
