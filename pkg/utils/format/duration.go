package format

import (
	"fmt"
	"strconv"
	"strings"
)

// Duration converts seconds to "M:SS" or "H:MM:SS" display format.
func Duration(seconds int) string {
	if seconds < 0 {
		return "0:00"
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// ParseISODuration converts the "PT#H#M#S" subset of ISO-8601 durations, as
// returned by the YouTube Data API, into whole seconds. Absent components are
// zero. Returns 0 for empty or unparseable input.
func ParseISODuration(iso string) int {
	iso = strings.TrimSpace(iso)
	if iso == "" {
		return 0
	}

	rest, ok := strings.CutPrefix(iso, "PT")
	if !ok {
		// "P0D" shows up for live streams; nothing watchable to report.
		return 0
	}

	total := 0
	num := ""
	for _, r := range rest {
		switch {
		case r >= '0' && r <= '9':
			num += string(r)
		case r == 'H' || r == 'M' || r == 'S':
			n, err := strconv.Atoi(num)
			if err != nil {
				return 0
			}
			switch r {
			case 'H':
				total += n * 3600
			case 'M':
				total += n * 60
			case 'S':
				total += n
			}
			num = ""
		default:
			return 0
		}
	}
	return total
}

// ISODuration formats an ISO-8601 duration string for display, e.g.
// "PT1H2M3S" -> "1:02:03". Empty input renders as "0:00".
func ISODuration(iso string) string {
	return Duration(ParseISODuration(iso))
}
