package git

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-git/go-git/v6"
	"github.com/go-git/go-git/v6/config"
	"github.com/go-git/go-git/v6/plumbing"
	"github.com/go-git/go-git/v6/plumbing/object"
	"go.uber.org/zap/zaptest"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	return NewService(Config{ProbeTimeout: 5 * time.Second}, zaptest.NewLogger(t))
}

// initRepo creates a repository with a single committed file.
func initRepo(t *testing.T, dir string) *git.Repository {
	t.Helper()

	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}

	repo, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatal(err)
	}

	commitFile(t, repo, dir, "test.txt", "test content")

	return repo
}

func commitFile(t *testing.T, repo *git.Repository, dir, name, content string) {
	t.Helper()

	worktree, err := repo.Worktree()
	if err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := worktree.Add(name); err != nil {
		t.Fatal(err)
	}

	_, err = worktree.Commit("commit "+name, &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Test Author",
			Email: "test@example.com",
			When:  time.Now(),
		},
	})
	if err != nil {
		t.Fatal(err)
	}
}

func headBranch(t *testing.T, repo *git.Repository) string {
	t.Helper()

	head, err := repo.Head()
	if err != nil {
		t.Fatal(err)
	}

	return head.Name().Short()
}

func TestService_OpenNotARepository(t *testing.T) {
	service := newTestService(t)

	_, err := service.Open(t.TempDir())
	if !errors.Is(err, ErrNotARepository) {
		t.Fatalf("Expected ErrNotARepository, got %v", err)
	}
}

func TestService_OpenSubdirectoryIsNotARepository(t *testing.T) {
	repoPath := filepath.Join(t.TempDir(), "repo")
	initRepo(t, repoPath)

	sub := filepath.Join(repoPath, "sub")
	if err := os.MkdirAll(sub, 0755); err != nil {
		t.Fatal(err)
	}

	_, err := newTestService(t).Open(sub)
	if !errors.Is(err, ErrNotARepository) {
		t.Fatalf("Expected ErrNotARepository, got %v", err)
	}
}

func TestRepository_Branches(t *testing.T) {
	repoPath := filepath.Join(t.TempDir(), "repo")
	gitRepo := initRepo(t, repoPath)
	expected := headBranch(t, gitRepo)

	repo, err := newTestService(t).Open(repoPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	if repo.Path() != repoPath {
		t.Errorf("Expected path '%s', got '%s'", repoPath, repo.Path())
	}

	current, err := repo.CurrentBranch()
	if err != nil {
		t.Fatalf("CurrentBranch failed: %v", err)
	}
	if current != expected {
		t.Errorf("Expected current branch '%s', got '%s'", expected, current)
	}

	if !repo.HasLocalBranch(expected) {
		t.Errorf("Expected local branch '%s' to exist", expected)
	}
	if repo.HasLocalBranch("wikiMaster") {
		t.Error("Expected local branch 'wikiMaster' to be absent")
	}
}

func TestRepository_CurrentBranchWithoutCommits(t *testing.T) {
	repoPath := filepath.Join(t.TempDir(), "repo")

	gitRepo, err := git.PlainInit(repoPath, false)
	if err != nil {
		t.Fatal(err)
	}
	head, err := gitRepo.Reference(plumbing.HEAD, false)
	if err != nil {
		t.Fatal(err)
	}
	expected := head.Target().Short()

	repo, err := newTestService(t).Open(repoPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	current, err := repo.CurrentBranch()
	if err != nil {
		t.Fatalf("CurrentBranch failed: %v", err)
	}
	if current != expected {
		t.Errorf("Expected current branch '%s', got '%s'", expected, current)
	}
	if repo.HasLocalBranch(expected) {
		t.Errorf("Expected unborn branch '%s' to have no reference", expected)
	}
}

func TestRepository_TrackedBranch(t *testing.T) {
	repoPath := filepath.Join(t.TempDir(), "repo")
	gitRepo := initRepo(t, repoPath)

	err := gitRepo.CreateBranch(&config.Branch{
		Name:   "dev",
		Remote: "origin",
		Merge:  plumbing.NewBranchReferenceName("develop"),
	})
	if err != nil {
		t.Fatal(err)
	}

	repo, err := newTestService(t).Open(repoPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	remote, branch, ok := repo.TrackedBranch("dev")
	if !ok {
		t.Fatal("Expected 'dev' to track a remote branch")
	}
	if remote != "origin" || branch != "develop" {
		t.Errorf("Expected origin/develop, got %s/%s", remote, branch)
	}

	if _, _, ok := repo.TrackedBranch(headBranch(t, gitRepo)); ok {
		t.Error("Expected no upstream for the initial branch")
	}
}

func TestRepository_StatusPorcelainCancelled(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}

	repoPath := filepath.Join(t.TempDir(), "repo")
	initRepo(t, repoPath)

	repo, err := newTestService(t).Open(repoPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = repo.StatusPorcelain(ctx)
	if !errors.Is(err, ErrStatusFailed) {
		t.Fatalf("Expected ErrStatusFailed, got %v", err)
	}
	if msg := err.Error(); msg != "failed to query status: context canceled" {
		t.Errorf("Unexpected error message %q", msg)
	}
}

func TestRepository_Remote(t *testing.T) {
	tempDir := t.TempDir()
	repoPath := filepath.Join(tempDir, "repo")
	gitRepo := initRepo(t, repoPath)

	_, err := gitRepo.CreateRemote(&config.RemoteConfig{
		Name: "origin",
		URLs: []string{filepath.Join(tempDir, "does-not-exist")},
	})
	if err != nil {
		t.Fatal(err)
	}

	repo, err := newTestService(t).Open(repoPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	remote, err := repo.Remote("origin")
	if err != nil {
		t.Fatalf("Remote failed: %v", err)
	}
	if remote.Name() != "origin" {
		t.Errorf("Expected remote name 'origin', got '%s'", remote.Name())
	}

	if err := remote.Probe(context.Background()); !errors.Is(err, ErrRemoteUnreachable) {
		t.Errorf("Expected ErrRemoteUnreachable, got %v", err)
	}

	if _, err := repo.Remote("azure"); !errors.Is(err, ErrRemoteNotFound) {
		t.Errorf("Expected ErrRemoteNotFound, got %v", err)
	}
}

func TestRepository_UntrackedFiles(t *testing.T) {
	repoPath := filepath.Join(t.TempDir(), "repo")
	initRepo(t, repoPath)

	for _, name := range []string{"x.txt", "a.txt"} {
		if err := os.WriteFile(filepath.Join(repoPath, name), []byte("wip"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	repo, err := newTestService(t).Open(repoPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	files, err := repo.UntrackedFiles()
	if err != nil {
		t.Fatalf("UntrackedFiles failed: %v", err)
	}

	if len(files) != 2 || files[0] != "a.txt" || files[1] != "x.txt" {
		t.Errorf("Expected [a.txt x.txt], got %v", files)
	}
}

func TestRepository_StatusPorcelain(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}

	repoPath := filepath.Join(t.TempDir(), "repo")
	gitRepo := initRepo(t, repoPath)

	repo, err := newTestService(t).Open(repoPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	status, err := repo.StatusPorcelain(context.Background())
	if err != nil {
		t.Fatalf("StatusPorcelain failed: %v", err)
	}

	expected := "# branch.head " + headBranch(t, gitRepo)
	if !strings.Contains(status, expected) {
		t.Errorf("Expected status to contain '%s', got:\n%s", expected, status)
	}
}

func TestRemote_Pull(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}

	tempDir := t.TempDir()
	upstreamPath := filepath.Join(tempDir, "upstream")
	upstream := initRepo(t, upstreamPath)

	clonePath := filepath.Join(tempDir, "clone")
	if _, err := git.PlainClone(clonePath, &git.CloneOptions{URL: upstreamPath}); err != nil {
		t.Fatal(err)
	}

	commitFile(t, upstream, upstreamPath, "next.txt", "next")
	upstreamHead, err := upstream.Head()
	if err != nil {
		t.Fatal(err)
	}

	repo, err := newTestService(t).Open(clonePath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	remote, err := repo.Remote("origin")
	if err != nil {
		t.Fatalf("Remote failed: %v", err)
	}

	if err := remote.Probe(context.Background()); err != nil {
		t.Fatalf("Probe failed: %v", err)
	}

	branch := headBranch(t, upstream)
	if err := remote.Pull(context.Background(), PullRequest{Branch: branch}); err != nil {
		t.Fatalf("Pull failed: %v", err)
	}

	cloned, err := git.PlainOpen(clonePath)
	if err != nil {
		t.Fatal(err)
	}
	head, err := cloned.Head()
	if err != nil {
		t.Fatal(err)
	}
	if head.Hash() != upstreamHead.Hash() {
		t.Errorf("Expected HEAD %s after pull, got %s", upstreamHead.Hash(), head.Hash())
	}

	// A second pull has nothing to do and must not fail.
	if err := remote.Pull(context.Background(), PullRequest{Branch: branch}); err != nil {
		t.Fatalf("Second pull failed: %v", err)
	}
}
