package gpx

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// A Decimal is a number that serialises as an xsd:decimal. Plain float64
// values are written by encoding/xml in exponent notation when very small or
// very large, which GPX validators reject.
type Decimal float64

// Dec returns a pointer to a Decimal, for optional fields such as elevation.
func Dec(f float64) *Decimal {
	d := Decimal(f)
	return &d
}

// Float64 returns the decimal as a float
func (d Decimal) Float64() float64 {
	return float64(d)
}

// String formats the decimal with the fewest digits that read back as the same value.
func (d Decimal) String() string {
	return strconv.FormatFloat(float64(d), 'f', -1, 64)
}

func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Decimal) UnmarshalText(b []byte) error {
	s := strings.TrimSpace(string(b))
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return errors.Wrapf(err, "invalid decimal '%s'", s)
	}
	*d = Decimal(f)
	return nil
}
