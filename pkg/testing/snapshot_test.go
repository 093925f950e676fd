package testing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-easel/easel/pkg/core"
	"github.com/go-easel/easel/pkg/graphics"
	"github.com/go-easel/easel/pkg/testing/internal/testbed"
)

func TestCaptureSnapshot_NotNil(t *testing.T) {
	tester := NewTester(t)
	tester.Mount(core.Of(testbed.Badge, testbed.BadgeProps{
		At: graphics.RectFromLTWH(0, 0, 20, 10), Color: graphics.RGB(255, 0, 0),
	}))

	snap := tester.CaptureSnapshot()
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Tree == nil {
		t.Fatal("expected non-nil tree")
	}
}

func TestCaptureSnapshot_BeforeMount(t *testing.T) {
	tester := NewTester(t)

	snap := tester.CaptureSnapshot()
	if snap.Tree != nil {
		t.Errorf("expected empty snapshot before Mount, got tree %+v", snap.Tree)
	}
}

func TestCaptureSnapshot_TreeStructure(t *testing.T) {
	tester := NewTester(t)

	parent := func(rc *core.RenderContext, _ struct{}) core.Children {
		return core.Many(
			core.Of(testbed.Badge, testbed.BadgeProps{At: graphics.RectFromLTWH(0, 0, 10, 10)}),
			core.Of(testbed.Badge, testbed.BadgeProps{At: graphics.RectFromLTWH(10, 0, 10, 10)}).WithKey("b"),
		)
	}
	tester.Mount(core.Of(parent, struct{}{}))

	snap := tester.CaptureSnapshot()
	root := snap.Tree
	if root == nil {
		t.Fatal("expected tree root")
	}
	if root.ID != "root" {
		t.Errorf("expected root id %q, got %q", "root", root.ID)
	}
	if len(root.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(root.Children))
	}
	if root.Children[0].ID != "root/Badge" || root.Children[0].Type != "Badge" {
		t.Errorf("unexpected first child %+v", root.Children[0])
	}
	if root.Children[1].ID != "root/b" || root.Children[1].Key != "b" {
		t.Errorf("unexpected keyed child %+v", root.Children[1])
	}
	if len(snap.DisplayOps) == 0 {
		t.Error("expected display ops in the snapshot")
	}
}

func TestSnapshot_Diff_Equal(t *testing.T) {
	tester := NewTester(t)
	tester.Mount(core.Of(testbed.Badge, testbed.BadgeProps{
		At: graphics.RectFromLTWH(0, 0, 50, 50), Color: graphics.RGB(0, 255, 0),
	}))

	a := tester.CaptureSnapshot()
	b := tester.CaptureSnapshot()

	if diff := a.Diff(b); diff != "" {
		t.Errorf("expected no diff for identical snapshots, got:\n%s", diff)
	}
}

func TestSnapshot_Diff_Different(t *testing.T) {
	tester := NewTester(t)

	tester.Mount(core.Of(testbed.Badge, testbed.BadgeProps{
		At: graphics.RectFromLTWH(0, 0, 50, 50), Color: graphics.RGB(255, 0, 0),
	}))
	a := tester.CaptureSnapshot()

	tester.Mount(core.Of(testbed.Badge, testbed.BadgeProps{
		At: graphics.RectFromLTWH(0, 0, 100, 50), Color: graphics.RGB(0, 255, 0),
	}))
	b := tester.CaptureSnapshot()

	if diff := a.Diff(b); diff == "" {
		t.Error("expected diff for different snapshots")
	}
}

func TestSnapshot_MatchesGoldenFile(t *testing.T) {
	tester := NewTester(t)
	tester.Mount(core.Of(testbed.Counter, testbed.CounterProps{
		At: graphics.RectFromLTWH(10, 10, 80, 30),
	}))

	snap := tester.CaptureSnapshot()
	snap.MatchesFile(t, filepath.Join("testdata", "counter.snapshot.yaml"))
}

func TestSnapshot_UpdateAndMatch(t *testing.T) {
	tester := NewTester(t)
	tester.Mount(core.Of(testbed.Badge, testbed.BadgeProps{
		At: graphics.RectFromLTWH(0, 0, 80, 40), Color: graphics.RGB(10, 20, 30),
	}))

	snap := tester.CaptureSnapshot()

	dir := t.TempDir()
	path := filepath.Join(dir, "testdata", "badge.snapshot.yaml")

	if err := snap.UpdateFile(path); err != nil {
		t.Fatalf("UpdateFile failed: %v", err)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("snapshot file should exist after UpdateFile")
	}

	snap.MatchesFile(t, path)
}

func TestSnapshot_MatchesFile_MissingFile(t *testing.T) {
	t.Setenv("EASEL_UPDATE_SNAPSHOTS", "")
	tester := NewTester(t)
	tester.Mount(core.Of(testbed.Badge, testbed.BadgeProps{
		At: graphics.RectFromLTWH(0, 0, 50, 50),
	}))
	snap := tester.CaptureSnapshot()

	failed := false
	sub := &fatalRecorder{name: t.Name(), onFatal: func() { failed = true }}
	snap.MatchesFile(sub, filepath.Join(t.TempDir(), "missing.snapshot.yaml"))

	if !failed {
		t.Error("expected MatchesFile to fail for missing file")
	}
}

func TestSnapshot_MatchesFile_Mismatch(t *testing.T) {
	t.Setenv("EASEL_UPDATE_SNAPSHOTS", "")
	tester := NewTester(t)

	tester.Mount(core.Of(testbed.Badge, testbed.BadgeProps{
		At: graphics.RectFromLTWH(0, 0, 50, 50), Color: graphics.RGB(255, 0, 0),
	}))
	first := tester.CaptureSnapshot()

	path := filepath.Join(t.TempDir(), "badge.snapshot.yaml")
	if err := first.UpdateFile(path); err != nil {
		t.Fatal(err)
	}

	tester.Mount(core.Of(testbed.Badge, testbed.BadgeProps{
		At: graphics.RectFromLTWH(0, 0, 90, 90), Color: graphics.RGB(0, 0, 255),
	}))
	second := tester.CaptureSnapshot()

	errored := false
	sub := &errorRecorder{name: t.Name(), onError: func() { errored = true }}
	second.MatchesFile(sub, path)

	if !errored {
		t.Error("expected MatchesFile to report error for mismatch")
	}
}

func TestSnapshot_UpdateMode(t *testing.T) {
	tester := NewTester(t)
	tester.Mount(core.Of(testbed.Badge, testbed.BadgeProps{
		At: graphics.RectFromLTWH(0, 0, 60, 30),
	}))
	snap := tester.CaptureSnapshot()

	path := filepath.Join(t.TempDir(), "update.snapshot.yaml")

	t.Setenv("EASEL_UPDATE_SNAPSHOTS", "1")
	snap.MatchesFile(t, path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("snapshot file should be created in update mode")
	}
}

// fatalRecorder intercepts Fatalf calls for testing MatchesFile failures.
type fatalRecorder struct {
	name    string
	onFatal func()
}

func (r *fatalRecorder) Fatalf(format string, args ...any) { r.onFatal() }
func (r *fatalRecorder) Errorf(format string, args ...any) {}
func (r *fatalRecorder) Helper()                           {}
func (r *fatalRecorder) Name() string                      { return r.name }

// errorRecorder intercepts Errorf calls for testing MatchesFile mismatches.
type errorRecorder struct {
	name    string
	onError func()
}

func (r *errorRecorder) Fatalf(format string, args ...any) {}
func (r *errorRecorder) Errorf(format string, args ...any) { r.onError() }
func (r *errorRecorder) Helper()                           {}
func (r *errorRecorder) Name() string                      { return r.name }
