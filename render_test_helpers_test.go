package gohan

import (
	"bytes"
	"os"
	"testing"
)

func readTestdata(t testing.TB, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return data
}

func renderRequest(t *testing.T, src string, opts ...RenderOption) string {
	t.Helper()
	var out bytes.Buffer
	if err := RenderTo(RenderRequest{
		Reader:  bytes.NewReader([]byte(src)),
		Writer:  &out,
		Options: opts,
	}); err != nil {
		t.Fatalf("RenderTo(%q): %v", src, err)
	}
	return out.String()
}
