package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/apiarycd/gitwip/internal/repos"
	"github.com/charmbracelet/lipgloss"
	"github.com/montanaflynn/stats"
)

//nolint:gochecknoglobals // section titles
var sectionTitles = map[repos.Bucket]string{
	repos.BucketPrinted:       "Repos printed",
	repos.BucketNonRepository: "Non-git Repos",
	repos.BucketErrored:       "Repos in Error",
	repos.BucketUncommitted:   "Repos with uncommitted files",
	repos.BucketAhead:         "Repos ahead of remote",
	repos.BucketBehind:        "Repos behind remote",
	repos.BucketNotOnPrimary:  "Repos not on Primary Branch",
	repos.BucketPulled:        "Repos pulled",
}

// WriteSummary renders the end-of-run summary of rr to w. Empty buckets are
// omitted.
func WriteSummary(w io.Writer, rr *repos.RunReport) error {
	renderer := lipgloss.NewRenderer(w)
	title := renderer.NewStyle().Bold(true)

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(title.Render("Summary") + "\n")
	b.WriteString("=======\n")
	fmt.Fprintf(&b, "Total Repos : %d\n", len(rr.Records))

	for _, bucket := range repos.Buckets {
		count := rr.Count(bucket)
		if count == 0 {
			continue
		}

		b.WriteString("\n")
		fmt.Fprintf(&b, "%s : %d\n", title.Render(sectionTitles[bucket]), count)
		for _, line := range sectionLines(rr, bucket) {
			b.WriteString("  " + line + "\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func sectionLines(rr *repos.RunReport, bucket repos.Bucket) []string {
	switch bucket {
	case repos.BucketErrored:
		records := rr.Bucket(bucket)
		lines := make([]string, 0, len(records))
		for _, record := range records {
			lines = append(lines, record.Name+": "+record.ErrorMessage)
		}
		return lines
	case repos.BucketAhead:
		return append(rr.Names(bucket), commitTotals("ahead", rr.Bucket(bucket), func(r *repos.Record) int { return r.Ahead }))
	case repos.BucketBehind:
		return append(rr.Names(bucket), commitTotals("behind", rr.Bucket(bucket), func(r *repos.Record) int { return r.Behind }))
	default:
		return rr.Names(bucket)
	}
}

func commitTotals(direction string, records []*repos.Record, count func(*repos.Record) int) string {
	data := make(stats.Float64Data, 0, len(records))
	for _, record := range records {
		data = append(data, float64(count(record)))
	}

	total, _ := stats.Sum(data)
	most, _ := stats.Max(data)

	return fmt.Sprintf("Total commits %s : %d (max %d)", direction, int(total), int(most))
}
