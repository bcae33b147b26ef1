// Package testing provides a headless harness for driving widget trees in
// tests.
//
// # Quick Start
//
// Create a tester around a tree, then click, press keys and assert:
//
//	func TestCounter(t *testing.T) {
//	    tester := ruitest.NewTesterWithT(t, counter())
//
//	    if err := tester.Click(ruitest.ByText("+")); err != nil {
//	        t.Fatal(err)
//	    }
//	    if !tester.Find(ruitest.ByText("1")).Exists() {
//	        t.Error("expected label 1")
//	    }
//	}
//
// The tester runs a toolkit with the default theme. Pointer gestures go
// through the same input path as a real driver: hit-testing, popup-first
// routing, grabs and release activation.
//
// # Snapshot Testing
//
// Capture and compare the laid-out tree and its drawing:
//
//	snapshot := tester.CaptureSnapshot()
//	snapshot.MatchesFile(t, "testdata/menu.snapshot.json")
//
// Update snapshots with:
//
//	RUI_UPDATE_SNAPSHOTS=1 go test ./...
package testing
