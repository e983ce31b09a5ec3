package slf

import (
	"encoding/xml"
)

// An Activity is the root of an SLF document: one recorded trip.
type Activity struct {
	XMLName xml.Name `xml:"Activity"`

	// The format revision written by the device software
	Revision string `xml:"revision,attr,omitempty"`

	// The date the log file was written, in whatever format the device uses
	FileDate string `xml:"fileDate,attr,omitempty"`

	// Information on the device that recorded the activity. Opaque to us.
	Computer *Computer `xml:"Computer,omitempty"`

	GeneralInformation GeneralInformation

	// The recorded samples, in the order they were taken
	Entries []Entry `xml:"Entries>Entry"`
}

// Computer describes the recording device
type Computer struct {
	Unit     string `xml:"unit,attr,omitempty"`
	Serial   string `xml:"serial,attr,omitempty"`
	Activity string `xml:"activityType,attr,omitempty"`
}

// GeneralInformation holds trip level metadata. Only a handful of the fields
// a device may write are modelled; none of them have a place in a GPX track.
type GeneralInformation struct {
	Name      string `xml:"name,omitempty"`
	Sport     string `xml:"sport,omitempty"`
	StartDate string `xml:"startDate,omitempty"`
	Distance  string `xml:"distance,omitempty"`
	Duration  string `xml:"trainingTime,omitempty"`
}

// An Entry is one sampled trackpoint
type Entry struct {
	Latitude  float64 `xml:"latitude,attr"`
	Longitude float64 `xml:"longitude,attr"`
	Altitude  float64 `xml:"altitude,attr"`
}
