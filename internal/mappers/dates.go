package mappers

import (
	"fmt"
	"time"
)

// WireDateLayout is the contractual date format at the wire boundary
// (day/month/year, e.g. "17/06/1979").
const WireDateLayout = "02/01/2006"

// ParseWireDate parses a wire-format date into a calendar date.
func ParseWireDate(value string) (time.Time, error) {
	parsed, err := time.Parse(WireDateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q is not in dd/MM/yyyy format", value)
	}
	return parsed, nil
}

// FormatWireDate renders a calendar date back into the wire format.
func FormatWireDate(value time.Time) string {
	return value.Format(WireDateLayout)
}
