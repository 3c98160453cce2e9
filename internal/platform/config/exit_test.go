package config

import (
	"bytes"
	"testing"
)

func TestExitfWritesMessageAndExitsWithOne(t *testing.T) {
	var buf bytes.Buffer
	code := -1
	prevExit, prevStderr := exitFunc, stderr
	exitFunc = func(c int) { code = c }
	stderr = &buf
	t.Cleanup(func() { exitFunc, stderr = prevExit, prevStderr })

	Exitf("fatal: %s", "something broke")

	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if buf.String() != "fatal: something broke\n" {
		t.Fatalf("stderr = %q", buf.String())
	}
}
