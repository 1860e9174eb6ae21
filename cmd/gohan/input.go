package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"pkt.systems/gohan"
)

// readInputs concatenates every input in argument order. Without arguments it
// reads stdin.
func readInputs(ctx context.Context, client *http.Client, args []string, stdin io.Reader) ([]byte, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	var buf bytes.Buffer
	for _, arg := range args {
		rc, err := openInput(ctx, client, arg)
		if err != nil {
			return nil, err
		}
		_, err = buf.ReadFrom(rc)
		if closeErr := rc.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", arg, err)
		}
	}
	return buf.Bytes(), nil
}

// openInput resolves one argument. http(s) URLs go through gohan.FetchSource;
// file URLs and everything else are local paths.
func openInput(ctx context.Context, client *http.Client, arg string) (io.ReadCloser, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return nil, errors.New("empty input argument")
	}
	if u, err := url.Parse(arg); err == nil {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return gohan.FetchSource(ctx, client, arg)
		case "file":
			path := u.Path
			if path == "" {
				path = u.Host
			}
			return os.Open(expandHome(path))
		}
	}
	return os.Open(expandHome(arg))
}

// createOutput creates path and any missing parent directories.
func createOutput(path string) (*os.File, error) {
	path = expandHome(strings.TrimSpace(path))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.Create(path)
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
}
