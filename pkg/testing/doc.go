// Package testing provides a component testing harness for Easel.
//
// # Quick Start
//
// Create a tester, mount a component, and make assertions:
//
//	func TestCounter(t *testing.T) {
//	    tester := easeltest.NewTester(t)
//	    tester.Mount(core.Of(Counter, CounterProps{}))
//
//	    tester.Click(40, 20)
//	    tester.Pump()
//
//	    if got := tester.Instance().Nodes(); len(got) != 2 {
//	        t.Errorf("nodes = %d, want 2", len(got))
//	    }
//	}
//
// Frames never run on their own: state changes queue a frame on the
// TestSurface and Pump (or PumpAndSettle) runs it, advancing the fake
// clock. This keeps renders fully deterministic.
//
// # Snapshot Testing
//
// Capture the node tree and the frame's display list and compare against
// a golden file:
//
//	tester.CaptureSnapshot().MatchesFile(t, "testdata/counter.snapshot.yaml")
//
// Update goldens with:
//
//	EASEL_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Animation Testing
//
// Drive time explicitly for deterministic animation tests:
//
//	tester.Clock().Advance(100 * time.Millisecond)
//	tester.Pump()
//
// # Import Alias
//
// Since this package shares its name with the standard library's testing
// package, import it with an alias:
//
//	import easeltest "github.com/go-easel/easel/pkg/testing"
package testing
