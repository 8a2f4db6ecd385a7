package route

import (
	"regexp"
	"strconv"
)

// LocationQuery is the postal code and flat hour offset a view is built for.
type LocationQuery struct {
	PostalCode     string `json:"postal_code"`
	UTCOffsetHours int    `json:"utc_offset_hours"`
}

var localInfoPattern = regexp.MustCompile(`/local_info/(\d+)/(-?\d+)(?:/|$)`)

// ParseLocationAndOffset extracts the postal code and UTC offset from paths such
// as /clients/local_info/92646/-3. The boolean is false when the path carries no
// usable location, which callers must render as an explicit error state.
func ParseLocationAndOffset(path string) (LocationQuery, bool) {
	match := localInfoPattern.FindStringSubmatch(path)
	if match == nil {
		return LocationQuery{}, false
	}

	offset, err := strconv.Atoi(match[2])
	if err != nil {
		return LocationQuery{}, false
	}

	return LocationQuery{
		PostalCode:     match[1],
		UTCOffsetHours: offset,
	}, true
}
