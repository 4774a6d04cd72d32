package git

import (
	"bytes"
	"regexp"
	"strconv"
)

var (
	// "Receiving objects:  45% (5/11)"
	progressUnitsPattern = regexp.MustCompile(`\((\d+)/(\d+)\)`)
	// "Counting objects: 5" while the remote has no total yet
	progressCountPattern = regexp.MustCompile(`:\s+(\d+)\s*$`)
)

// sidebandProgress turns the remote's human readable sideband progress
// into unit updates. Lines are terminated by either \r or \n.
type sidebandProgress struct {
	report ProgressFunc
	buf    []byte
}

func newSidebandProgress(report ProgressFunc) *sidebandProgress {
	return &sidebandProgress{report: report}
}

func (p *sidebandProgress) Write(b []byte) (int, error) {
	p.buf = append(p.buf, b...)
	for {
		i := bytes.IndexAny(p.buf, "\r\n")
		if i < 0 {
			break
		}
		p.parse(p.buf[:i])
		p.buf = p.buf[i+1:]
	}

	return len(b), nil
}

func (p *sidebandProgress) parse(line []byte) {
	if m := progressUnitsPattern.FindSubmatch(line); m != nil {
		current, _ := strconv.Atoi(string(m[1]))
		maximum, _ := strconv.Atoi(string(m[2]))
		p.report(current, maximum)
		return
	}

	if m := progressCountPattern.FindSubmatch(line); m != nil {
		current, _ := strconv.Atoi(string(m[1]))
		p.report(current, 0)
	}
}
