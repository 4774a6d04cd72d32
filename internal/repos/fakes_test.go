package repos

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakeRemote struct {
	name      string
	reachable bool
	pullErr   error
	units     [][2]int

	probes int
	pulls  []string
}

func (r *fakeRemote) Name() string { return r.name }

func (r *fakeRemote) Reachable(context.Context) bool {
	r.probes++
	return r.reachable
}

func (r *fakeRemote) Pull(_ context.Context, branch string, progress ProgressUnits) error {
	r.pulls = append(r.pulls, branch)
	for _, u := range r.units {
		progress(u[0], u[1])
	}
	return r.pullErr
}

type fakeRepo struct {
	current    string
	currentErr error
	branches   []string
	remotes    map[string]*fakeRemote
	status     string
	statusErr  error
	untracked  []string
	tracking   map[string][2]string
}

func (r *fakeRepo) CurrentBranch() (string, error) { return r.current, r.currentErr }

func (r *fakeRepo) HasLocalBranch(name string) bool { return slices.Contains(r.branches, name) }

func (r *fakeRepo) TrackedBranch(name string) (string, string, bool) {
	upstream, ok := r.tracking[name]
	return upstream[0], upstream[1], ok
}

func (r *fakeRepo) Remote(name string) (Remote, bool) {
	remote, ok := r.remotes[name]
	if !ok {
		return nil, false
	}
	return remote, true
}

func (r *fakeRepo) StatusPorcelain(context.Context) (string, error) { return r.status, r.statusErr }

func (r *fakeRepo) UntrackedFiles() ([]string, error) { return r.untracked, nil }

// fakeAccessor resolves the opened path against the working directory and
// serves repositories registered under absolute paths.
type fakeAccessor struct {
	repos map[string]*fakeRepo
	opens []string
}

func newFakeAccessor() *fakeAccessor {
	return &fakeAccessor{repos: map[string]*fakeRepo{}}
}

func (a *fakeAccessor) Open(path string) (Repository, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	a.opens = append(a.opens, abs)

	repo, ok := a.repos[abs]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotARepository, abs)
	}
	return repo, nil
}

type fakeSink struct {
	fractions []float64
}

func (s *fakeSink) OnProgress(fraction float64) {
	s.fractions = append(s.fractions, fraction)
}

type fakeObserver struct {
	found      []string
	containers []string
	inspected  []string
	pulled     []string
	sink       *fakeSink
}

func (o *fakeObserver) DirectoriesFound(level, count int, containers bool) {
	o.found = append(o.found, fmt.Sprintf("%d:%d:%t", level, count, containers))
}

func (o *fakeObserver) ContainerEntered(_ int, name string) {
	o.containers = append(o.containers, name)
}

func (o *fakeObserver) RepositoryInspected(record *Record) {
	o.inspected = append(o.inspected, record.Name)
}

func (o *fakeObserver) PullStarted(*Record) ProgressSink {
	o.sink = &fakeSink{}
	return o.sink
}

func (o *fakeObserver) PullFinished(record *Record) {
	o.pulled = append(o.pulled, record.Name)
}

type fakeNotes map[string]string

func (n fakeNotes) Lookup(path, name string) (string, bool) {
	if note, ok := n[path]; ok {
		return note, true
	}
	note, ok := n[name]
	return note, ok
}

// tempRoot returns a symlink-free temporary directory.
func tempRoot(t *testing.T) string {
	t.Helper()

	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	return root
}

func mkdirs(t *testing.T, root string, dirs ...string) {
	t.Helper()

	for _, dir := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(root, dir), 0o755))
	}
}

func writeFile(t *testing.T, root, name string) {
	t.Helper()

	require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte("x"), 0o644))
}

func getwd(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return wd
}

func newTestService(t *testing.T, accessor Accessor, config Config, notes Notes) (*Service, *fakeObserver) {
	t.Helper()

	logger := zaptest.NewLogger(t)
	observer := &fakeObserver{}
	if notes == nil {
		notes = fakeNotes{}
	}

	service := NewService(
		NewWalker(observer, logger),
		NewInspector(accessor, config, logger),
		NewExecutor(logger),
		notes,
		observer,
		config,
		logger,
	)

	return service, observer
}

// behindRepo is on main, one commit behind a reachable origin.
func behindRepo(behind int) *fakeRepo {
	return &fakeRepo{
		current:  "main",
		branches: []string{"main"},
		remotes: map[string]*fakeRemote{
			"origin": {name: "origin", reachable: true},
		},
		status: fmt.Sprintf("# branch.oid abc\n# branch.head main\n# branch.upstream origin/main\n# branch.ab +0 -%d\n", behind),
	}
}
