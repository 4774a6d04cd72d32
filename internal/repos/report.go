package repos

import (
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Bucket names an outcome group of the run summary.
type Bucket string

const (
	BucketPrinted       Bucket = "printed"
	BucketNonRepository Bucket = "non-repository"
	BucketErrored       Bucket = "errored"
	BucketUncommitted   Bucket = "uncommitted"
	BucketAhead         Bucket = "ahead"
	BucketBehind        Bucket = "behind"
	BucketNotOnPrimary  Bucket = "not-on-primary"
	BucketPulled        Bucket = "pulled"
)

// Buckets lists every bucket in summary order.
//
//nolint:gochecknoglobals // fixed order
var Buckets = []Bucket{
	BucketPrinted,
	BucketNonRepository,
	BucketErrored,
	BucketUncommitted,
	BucketAhead,
	BucketBehind,
	BucketNotOnPrimary,
	BucketPulled,
}

type membership struct {
	bucket Bucket
	member func(*Record) bool
}

//nolint:gochecknoglobals // predicate table
var memberships = []membership{
	{BucketPrinted, (*Record).Printed},
	{BucketErrored, (*Record).Errored},
	{BucketUncommitted, func(r *Record) bool { return len(r.UntrackedFiles) > 0 }},
	{BucketAhead, func(r *Record) bool { return r.Ahead > 0 }},
	{BucketBehind, func(r *Record) bool { return r.Behind > 0 }},
	{BucketNotOnPrimary, func(r *Record) bool { return r.CurrentBranch != "" && !r.OnPrimaryBranch() }},
	{BucketPulled, func(r *Record) bool { return r.PullOutcome == PullPulled }},
}

// RunReport accumulates the outcome of one run. It is written during the run
// and read once afterwards.
type RunReport struct {
	ID         uuid.UUID
	Target     Target
	StartedAt  time.Time
	FinishedAt time.Time

	// Records holds every repository in discovery order.
	Records []*Record
	// NonRepositories holds directories that could not be opened.
	NonRepositories []string

	buckets map[Bucket][]*Record
}

func NewRunReport(target Target) *RunReport {
	return &RunReport{
		ID:              uuid.Must(uuid.NewV7()),
		Target:          target,
		StartedAt:       time.Now(),
		Records:         []*Record{},
		NonRepositories: []string{},
		buckets:         make(map[Bucket][]*Record, len(Buckets)),
	}
}

// Add places a finalized record into every bucket it belongs to.
func (r *RunReport) Add(record *Record) {
	r.Records = append(r.Records, record)
	for _, m := range memberships {
		if m.member(record) {
			r.buckets[m.bucket] = append(r.buckets[m.bucket], record)
		}
	}
}

// AddNonRepository records a directory that is not a working copy.
func (r *RunReport) AddNonRepository(dir string) {
	r.NonRepositories = append(r.NonRepositories, dir)
}

// Bucket returns the records in b in insertion order. The non-repository
// bucket holds no records, see NonRepositories.
func (r *RunReport) Bucket(b Bucket) []*Record {
	return r.buckets[b]
}

// Count returns the size of b.
func (r *RunReport) Count(b Bucket) int {
	if b == BucketNonRepository {
		return len(r.NonRepositories)
	}

	return len(r.buckets[b])
}

// Names returns the names of the records in b.
func (r *RunReport) Names(b Bucket) []string {
	if b == BucketNonRepository {
		return r.NonRepositories
	}

	return lo.Map(r.buckets[b], func(record *Record, _ int) string { return record.Name })
}

// Duration returns the wall time of the run, zero while it is in progress.
func (r *RunReport) Duration() time.Duration {
	if r.FinishedAt.IsZero() {
		return 0
	}

	return r.FinishedAt.Sub(r.StartedAt)
}

func (r *RunReport) finish() {
	r.FinishedAt = time.Now()
}
