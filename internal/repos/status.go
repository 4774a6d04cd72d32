package repos

import (
	"regexp"
	"strconv"
)

var aheadBehindPattern = regexp.MustCompile(`#\sbranch\.ab\s\+(\d+)\s-(\d+)`)

// ParseAheadBehind extracts the ahead and behind counts from porcelain v2
// status output. Both are zero when there is no upstream header line.
func ParseAheadBehind(status string) (int, int) {
	m := aheadBehindPattern.FindStringSubmatch(status)
	if m == nil {
		return 0, 0
	}

	ahead, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, 0
	}
	behind, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, 0
	}

	return ahead, behind
}
