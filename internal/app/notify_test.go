package app

import (
	"bytes"
	"testing"
)

func TestConsoleNotifierRoutesStreams(t *testing.T) {
	var out, errOut bytes.Buffer
	n := NewConsoleNotifier(&out, &errOut)

	n.Success("saved")
	n.Info("nothing to do")
	n.Error("broken")

	if got := out.String(); got != "saved\nnothing to do\n" {
		t.Fatalf("unexpected stdout %q", got)
	}
	if got := errOut.String(); got != "broken\n" {
		t.Fatalf("unexpected stderr %q", got)
	}
}
