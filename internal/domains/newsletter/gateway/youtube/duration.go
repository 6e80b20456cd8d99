package youtube

import (
	"regexp"
	"strconv"
)

// contentDetails.duration is ISO-8601, e.g. "PT1H2M3S", "PT12M", "P1DT2H".
var isoDurationRegex = regexp.MustCompile(`^P(?:(\d+)D)?T?(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// ParseISODuration converts an ISO-8601 duration string to seconds.
// Unparseable input yields 0, matching the "PT0S" default the fetcher
// uses for absent fields.
func ParseISODuration(iso string) int {
	m := isoDurationRegex.FindStringSubmatch(iso)
	if m == nil {
		return 0
	}

	days := atoiDefault(m[1])
	hours := atoiDefault(m[2])
	minutes := atoiDefault(m[3])
	seconds := atoiDefault(m[4])

	return ((days*24+hours)*60+minutes)*60 + seconds
}

func atoiDefault(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
