// Package gpx models the subset of GPX 1.1 that slf2gpx writes: metadata and
// tracks made of segments of trackpoints.
package gpx

import (
	"encoding/xml"
)

// Namespace is the GPX 1.1 XML namespace
const Namespace = "http://www.topografix.com/GPX/1/1"

// Version is the value of the version attribute on every GPX 1.1 document
const Version = "1.1"

// A GPX document
type GPX struct {
	XMLName xml.Name `xml:"http://www.topografix.com/GPX/1/1 gpx"`

	Version string `xml:"version,attr"`

	// The software that created this document
	Creator string `xml:"creator,attr"`

	Metadata *Metadata `xml:"metadata,omitempty"`

	Tracks []Track `xml:"trk"`
}

// Metadata describes the document as a whole
type Metadata struct {
	Name   string  `xml:"name,omitempty"`
	Author *Person `xml:"author,omitempty"`
}

// A Person or organisation
type Person struct {
	Name  string `xml:"name,omitempty"`
	Email *Email `xml:"email,omitempty"`
}

// An Email address, split in two to keep it out of reach of harvesters
type Email struct {
	ID     string `xml:"id,attr"`
	Domain string `xml:"domain,attr"`
}

func (e Email) String() string {
	return e.ID + "@" + e.Domain
}

// A Track is an ordered list of segments describing a path
type Track struct {
	Name     string    `xml:"name,omitempty"`
	Segments []Segment `xml:"trkseg"`
}

// A Segment holds a list of trackpoints which are logically connected in order.
type Segment struct {
	Points []Waypoint `xml:"trkpt"`
}

// A Waypoint is a point with an optional elevation, in metres.
type Waypoint struct {
	Latitude  Decimal  `xml:"lat,attr"`
	Longitude Decimal  `xml:"lon,attr"`
	Elevation *Decimal `xml:"ele,omitempty"`
}

// Points returns every trackpoint in the document, in document order.
func (g *GPX) Points() []Waypoint {
	var rv []Waypoint
	for _, trk := range g.Tracks {
		for _, seg := range trk.Segments {
			rv = append(rv, seg.Points...)
		}
	}
	return rv
}
