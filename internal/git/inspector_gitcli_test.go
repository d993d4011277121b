package git

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

type fixtureRepo struct {
	dir string
	wt  *gogit.Worktree
	t   *testing.T
}

func newFixtureRepo(t *testing.T) *fixtureRepo {
	t.Helper()
	requireGit(t)

	dir := t.TempDir()
	repo, err := gogit.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("PlainInit: %v", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Worktree: %v", err)
	}
	return &fixtureRepo{dir: dir, wt: wt, t: t}
}

func (f *fixtureRepo) write(rel, content string) {
	f.t.Helper()
	full := filepath.Join(f.dir, rel)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		f.t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
		f.t.Fatalf("WriteFile: %v", err)
	}
	if _, err := f.wt.Add(rel); err != nil {
		f.t.Fatalf("Add: %v", err)
	}
}

func (f *fixtureRepo) remove(rel string) {
	f.t.Helper()
	if _, err := f.wt.Remove(rel); err != nil {
		f.t.Fatalf("Remove: %v", err)
	}
}

func (f *fixtureRepo) commit(msg string) string {
	f.t.Helper()
	sig := &object.Signature{
		Name:  "Test",
		Email: "test@example.com",
		When:  time.Now(),
	}
	hash, err := f.wt.Commit(msg, &gogit.CommitOptions{Author: sig, Committer: sig})
	if err != nil {
		f.t.Fatalf("Commit: %v", err)
	}
	return hash.String()
}

func (f *fixtureRepo) inspector() *Inspector {
	f.t.Helper()
	runner := NewCLIRunner("", 10*time.Second, nil)
	i, err := NewInspector(runner, InspectOptions{RepoPath: f.dir}, nil)
	if err != nil {
		f.t.Fatalf("NewInspector: %v", err)
	}
	return i
}

func TestInspector_Details_RealRepository(t *testing.T) {
	f := newFixtureRepo(t)

	f.write("keep.txt", "one\ntwo\n")
	f.write("gone.txt", "temporary\n")
	root := f.commit("initial import")

	f.write("keep.txt", "one\ntwo\nthree\n")
	f.write("calc.go", "package calc\n")
	f.remove("gone.txt")
	second := f.commit("grow keep, add calc, drop gone\n\nBody with detail.")

	commit, err := f.inspector().Details(context.Background(), second)
	if err != nil {
		t.Fatalf("Details: %v", err)
	}

	if commit.Hash != second {
		t.Errorf("Hash = %q, want %q", commit.Hash, second)
	}
	if commit.Author != "Test" {
		t.Errorf("Author = %q", commit.Author)
	}
	if commit.Message != "grow keep, add calc, drop gone\n\nBody with detail." {
		t.Errorf("Message = %q", commit.Message)
	}
	if len(commit.ParentHashes) != 1 || commit.ParentHashes[0] != root {
		t.Errorf("ParentHashes = %v, want [%s]", commit.ParentHashes, root)
	}
	if commit.Branch == "" || commit.Branch == "unknown" {
		t.Errorf("Branch = %q, want the checked-out branch", commit.Branch)
	}

	byPath := map[string]FileChange{}
	for _, c := range commit.Changes {
		byPath[c.Path] = c
	}

	added, ok := byPath["calc.go"]
	if !ok || added.Status != StatusAdded {
		t.Fatalf("calc.go change = %#v", byPath["calc.go"])
	}
	if len(added.AddedLines) != 1 || added.AddedLines[0] != "package calc" {
		t.Errorf("calc.go AddedLines = %#v", added.AddedLines)
	}
	if len(added.LineNumbers.Added) != 1 || added.LineNumbers.Added[0] != 1 {
		t.Errorf("calc.go LineNumbers.Added = %v", added.LineNumbers.Added)
	}

	modified, ok := byPath["keep.txt"]
	if !ok || modified.Status != StatusModified {
		t.Fatalf("keep.txt change = %#v", byPath["keep.txt"])
	}
	if len(modified.AddedLines) != 1 || modified.AddedLines[0] != "three" {
		t.Errorf("keep.txt AddedLines = %#v", modified.AddedLines)
	}
	if len(modified.LineNumbers.Added) != 1 || modified.LineNumbers.Added[0] != 3 {
		t.Errorf("keep.txt LineNumbers.Added = %v", modified.LineNumbers.Added)
	}

	deleted, ok := byPath["gone.txt"]
	if !ok || deleted.Status != StatusDeleted {
		t.Fatalf("gone.txt change = %#v", byPath["gone.txt"])
	}
	if len(deleted.AddedLines) != 0 || len(deleted.RemovedLines) != 0 || deleted.DiffText != "" {
		t.Errorf("gone.txt carries content: %#v", deleted)
	}
}

func TestInspector_Details_RealRootCommit(t *testing.T) {
	f := newFixtureRepo(t)

	f.write("a.txt", "hello\n")
	root := f.commit("root")

	commit, err := f.inspector().Details(context.Background(), root)
	if err != nil {
		t.Fatalf("Details: %v", err)
	}
	if len(commit.ParentHashes) != 0 {
		t.Fatalf("ParentHashes = %v, want empty for a root commit", commit.ParentHashes)
	}
}

func TestInspector_Details_RealCommitNotFound(t *testing.T) {
	f := newFixtureRepo(t)
	f.write("a.txt", "hello\n")
	f.commit("root")

	_, err := f.inspector().Details(context.Background(), "0000000000000000000000000000000000000000")
	if err == nil {
		t.Fatal("expected an error for a missing revision")
	}
}

func TestWalker_Walk_RealRepository(t *testing.T) {
	f := newFixtureRepo(t)

	for n := 0; n < 4; n++ {
		f.write("file.txt", time.Now().Add(time.Duration(n)*time.Second).String()+"\n")
		f.commit("change " + string(rune('a'+n)))
	}

	w := NewWalker(f.inspector())
	summaries, err := w.Walk(context.Background(), RangeOptions{MaxCount: 2})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("summaries = %d, want 2 (cap)", len(summaries))
	}
	// Most-recent-first, git's native order.
	if summaries[0].Message != "change d" {
		t.Fatalf("summaries[0].Message = %q", summaries[0].Message)
	}
}

func TestInspector_CommitStats_RealRepository(t *testing.T) {
	f := newFixtureRepo(t)

	f.write("a.txt", "one\ntwo\n")
	f.commit("root")
	f.write("a.txt", "one\ntwo\nthree\n")
	second := f.commit("append a line")

	stats, err := f.inspector().CommitStats(context.Background(), second)
	if err != nil {
		t.Fatalf("CommitStats: %v", err)
	}
	if stats.FilesChanged != 1 || stats.Insertions != 1 || stats.Deletions != 0 {
		t.Fatalf("stats = %#v", stats)
	}
}

func TestInspector_Info_RealRepository(t *testing.T) {
	f := newFixtureRepo(t)

	f.write("a.txt", "hello\n")
	head := f.commit("root")

	info := f.inspector().Info(context.Background())
	if info.TotalCommits != 1 {
		t.Errorf("TotalCommits = %d, want 1", info.TotalCommits)
	}
	if info.LastCommit != head {
		t.Errorf("LastCommit = %q, want %q", info.LastCommit, head)
	}
	if info.Name == "" {
		t.Error("Name is empty")
	}
}
