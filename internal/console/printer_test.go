package console

import (
	"bytes"
	"testing"

	"github.com/apiarycd/gitwip/internal/repos"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"
)

func newTestPrinter(t *testing.T, config Config) (*Printer, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	var out, errOut bytes.Buffer
	printer := NewPrinter(Streams{Out: &out, Err: &errOut}, config, zaptest.NewLogger(t))

	return printer, &out, &errOut
}

func TestPrinter_Traversal(t *testing.T) {
	printer, out, _ := newTestPrinter(t, Config{})

	printer.DirectoriesFound(0, 2, true)
	printer.ContainerEntered(0, "team-a")
	printer.DirectoriesFound(1, 3, false)

	assert.Equal(t, "Found 2 container directories\nContainer: team-a\n  Found 3 directories\n", out.String())
}

func TestPrinter_RepositoryInspected(t *testing.T) {
	tests := []struct {
		name   string
		config Config
		record *repos.Record
		want   string
	}{
		{
			name:   "no details",
			record: &repos.Record{Dir: "quiet", Level: 1, Index: 1},
			want:   "",
		},
		{
			name: "single target",
			record: &repos.Record{
				Dir:     "/src/app",
				Details: []string{"Branch: main"},
			},
			want: "  /src/app\n    Branch: main\n",
		},
		{
			name:   "index shown",
			config: Config{ShowRepoIndex: true},
			record: &repos.Record{
				Dir:     "api",
				Index:   3,
				Level:   2,
				Details: []string{"Behind by 2 commits", "ERROR: Remote not accessible"},
			},
			want: "    3: api\n      Behind by 2 commits\n      ERROR: Remote not accessible\n",
		},
		{
			name:   "index ignored for single target",
			config: Config{ShowRepoIndex: true},
			record: &repos.Record{
				Dir:     "app",
				Details: []string{"Note: hi"},
			},
			want: "  app\n    Note: hi\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			printer, out, _ := newTestPrinter(t, tt.config)

			printer.RepositoryInspected(tt.record)

			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestPrinter_Pull(t *testing.T) {
	printer, out, errOut := newTestPrinter(t, Config{})
	record := &repos.Record{Dir: "api", Level: 1, Details: []string{"Pulling..."}}

	sink := printer.PullStarted(record)
	sink.OnProgress(0.5)
	sink.OnProgress(1)

	record.PullOutcome = repos.PullFailed
	record.ErrorMessage = "authentication required"
	printer.PullFinished(record)

	// Progress is only drawn on a terminal.
	assert.Empty(t, errOut.String())
	assert.Equal(t, "    ERROR: authentication required\n", out.String())
}
