package testing

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/go-easel/easel/pkg/core"
)

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot captures the mounted component tree and the display operations
// of the last pumped frame.
type Snapshot struct {
	Tree       *TreeNode `yaml:"tree"`
	DisplayOps []string  `yaml:"displayOps,omitempty"`
}

// TreeNode is one component node in the serialized tree. IDs are the
// path-derived node ids, so goldens stay stable as long as the tree shape
// and component names do.
type TreeNode struct {
	ID       string      `yaml:"id"`
	Type     string      `yaml:"type"`
	Key      string      `yaml:"key,omitempty"`
	Children []*TreeNode `yaml:"children,omitempty"`
}

// CaptureSnapshot captures the current component tree and the display
// operations of the last pumped frame. Pump before capturing so both
// reflect the same frame.
//
// Anonymous component functions get synthetic names that are only stable
// within a single process; trees meant for golden files should use named
// component functions.
func (t *Tester) CaptureSnapshot() *Snapshot {
	snap := &Snapshot{}
	if t.inst == nil {
		return snap
	}
	snap.Tree = buildTree(t.inst.Nodes())
	snap.DisplayOps = t.surface.Ops()
	return snap
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When EASEL_UPDATE_SNAPSHOTS=1
// is set, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv("EASEL_UPDATE_SNAPSHOTS") == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: EASEL_UPDATE_SNAPSHOTS=1 go test -run %s", path, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: EASEL_UPDATE_SNAPSHOTS=1 go test -run %s", path, diff, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating directories
// as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a human-readable diff against the expected snapshot, empty
// when equal.
func (s *Snapshot) Diff(expected *Snapshot) string {
	return cmp.Diff(expected, s)
}

// buildTree links the flat sorted node table into a tree. The root node
// carries an empty parent id.
func buildTree(infos []core.NodeInfo) *TreeNode {
	nodes := make(map[string]*TreeNode, len(infos))
	var root *TreeNode
	for _, info := range infos {
		nodes[info.ID] = &TreeNode{ID: info.ID, Type: info.Type, Key: info.Key}
	}
	for _, info := range infos {
		n := nodes[info.ID]
		if info.ParentID == "" {
			root = n
			continue
		}
		if parent, ok := nodes[info.ParentID]; ok {
			parent.Children = append(parent.Children, n)
		}
	}
	return root
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot YAML: %w", err)
	}
	return &snap, nil
}
