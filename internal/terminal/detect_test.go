package terminal

import "testing"

func TestIsInteractiveUnderTestHarness(t *testing.T) {
	// Test processes run with piped stdio, so detection must report false
	// rather than panic or misreport.
	if IsInteractive() {
		t.Fatalf("expected non-interactive stdio under test harness")
	}
}
