package joss

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Session fixtures drive the runtime the way an interactive session would:
// lines starting with "> " are input, everything else is expected output in
// order.
func TestSessionFixtures(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "*.session"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatal("no session fixtures found")
	}

	for _, file := range files {
		t.Run(filepath.Base(file), func(t *testing.T) {
			content, err := os.ReadFile(file)
			if err != nil {
				t.Fatal(err)
			}

			r, out := newTestRuntime()
			var expected strings.Builder
			for _, line := range strings.Split(string(content), "\n") {
				if input, ok := strings.CutPrefix(line, "> "); ok {
					if err := r.Eval(input); err != nil {
						t.Fatalf("eval %q: %v", input, err)
					}
					continue
				}
				if strings.TrimSpace(line) == "" {
					continue
				}
				expected.WriteString(line)
				expected.WriteString("\n")
			}

			if out.String() != expected.String() {
				t.Errorf("output mismatch\ngot:\n%s\nwant:\n%s", out.String(), expected.String())
			}
		})
	}
}
