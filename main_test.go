package main

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"
)

//go:embed testdata
var caseArchives embed.FS

// Each testdata/cases/*.txtar archive holds input dumps, an optional
// "args" file with extra command line flags, and an "expect" file with
// the exact summary output.
func TestForsightMain(t *testing.T) {
	files, err := caseArchives.ReadDir("testdata/cases")
	if err != nil {
		t.Fatal(fmt.Errorf("list case archives: %w", err))
	}

	for _, file := range files {
		if file.IsDir() || !strings.HasPrefix(file.Name(), "case_") {
			continue
		}

		t.Run(file.Name(), func(t *testing.T) {
			data, err := caseArchives.ReadFile("testdata/cases/" + file.Name())
			if err != nil {
				t.Fatalf("read archive %s: %s", file.Name(), err)
			}
			arch := txtar.Parse(data)

			dir := t.TempDir()
			args := []string{"forsight"}
			var dumps []string
			var expect string
			for _, f := range arch.Files {
				switch f.Name {
				case "expect":
					expect = string(f.Data)
				case "args":
					args = append(args, strings.Fields(string(f.Data))...)
				default:
					path := filepath.Join(dir, f.Name)
					if err := os.WriteFile(path, f.Data, 0o644); err != nil {
						t.Fatalf("write %s: %s", f.Name, err)
					}
					dumps = append(dumps, path)
				}
			}
			args = append(args, dumps...)

			var stdout, stderr bytes.Buffer
			if code := forsightMain(&stdout, &stderr, args...); code != 0 {
				t.Fatalf("exit code %d, stderr:\n%s", code, stderr.String())
			}

			got := strings.TrimSpace(stdout.String())
			want := strings.TrimSpace(expect)
			if got != want {
				t.Errorf("summary mismatch:\n--- got ---\n%s\n--- want ---\n%s", got, want)
			}
		})
	}
}

func TestForsightMainUsage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := forsightMain(&stdout, &stderr, "forsight"); code != 2 {
		t.Fatalf("exit code %d, want 2", code)
	}
	if !strings.Contains(stderr.String(), "usage:") {
		t.Fatalf("usage expected on stderr, got %q", stderr.String())
	}
}

func TestForsightMainMissingDump(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := forsightMain(&stdout, &stderr,
		"forsight", filepath.Join(t.TempDir(), "nowhere.yaml"))
	if code != 2 {
		t.Fatalf("exit code %d, want 2", code)
	}
	if !strings.Contains(stderr.String(), "read dump:") {
		t.Fatalf("read failure expected on stderr, got %q", stderr.String())
	}
}
