package util

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestToScreamingSnakeCase(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"Port", "PORT"},
		{"TLSCert", "TLS_CERT"},
		{"SelfTLS", "SELF_TLS"},
		{"CacheSize", "CACHE_SIZE"},
		{"TLSCert TLSKey", "TLS_CERT TLS_KEY"},
		{"SelfTLS false", "SELF_TLS FALSE"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := ToScreamingSnakeCase(tc.input); got != tc.want {
			t.Errorf("ToScreamingSnakeCase(%q): %q, want: %q", tc.input, got, tc.want)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatalf("Should not fail creating a file: %s", err)
	}
	defer f.Close()

	cases := []struct {
		name string
		w    io.Writer
	}{
		{"regular file", f},
		{"buffer", &bytes.Buffer{}},
	}

	for _, tc := range cases {
		if IsTerminal(tc.w) {
			t.Errorf("%s should not be a terminal", tc.name)
		}
	}
}
