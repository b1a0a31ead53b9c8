package docs

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// TestTopics checks that readme.md lists exactly the topic files.
func TestTopics(t *testing.T) {
	readme, err := GetTopic("readme")
	if err != nil {
		t.Fatal(err)
	}
	var listed []string
	for _, m := range regexp.MustCompile(`(?m)^\*\s+([^:]+):`).FindAllStringSubmatch(readme, -1) {
		listed = append(listed, strings.TrimSpace(m[1]))
	}
	slices.Sort(listed)

	topics, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(listed, topics) {
		t.Errorf("readme.md lists %v, want the topic files %v", listed, topics)
	}
	for _, topic := range listed {
		if _, err := GetTopic(topic); err != nil {
			t.Errorf("GetTopic(%q) unexpected error: %v", topic, err)
		}
	}
	if _, err := GetTopic("nope"); err == nil {
		t.Error("GetTopic() of an unknown topic expected an error")
	}
}

// Fenced block kinds run by TestCodeBlocks. A setup starts a new scenario in
// a fresh directory, a console check compares the output of the last run.
const (
	bashSetup    = "bash setup"
	bashRun      = "bash run"
	bashCheck    = "bash check"
	consoleCheck = "console check"
)

type block struct {
	kind    string
	content string
	line    int
}

// TestCodeBlocks runs the shell examples of every topic against msr.
func TestCodeBlocks(t *testing.T) {
	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go toolchain not in PATH")
	}
	if _, err := exec.LookPath("bash"); err != nil {
		t.Skip("bash not in PATH")
	}
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}

	bin := t.TempDir()
	build := exec.Command("go", "build", "-o", filepath.Join(bin, "msr"), "../msr/")
	if out, err := build.CombinedOutput(); err != nil {
		t.Fatalf("failed to build msr: %v\n%s", err, out)
	}
	env := append(os.Environ(),
		fmt.Sprintf("PATH=%s%c%s", bin, os.PathListSeparator, os.Getenv("PATH")),
		"MSR_NO_CACHE=true", "MSR_CURRENCY=IDR")

	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			dir := t.TempDir()
			var output string
			for _, b := range parseBlocks(t, file) {
				where := fmt.Sprintf("%s:%d", file, b.line)
				if b.kind == consoleCheck {
					if got, want := strings.TrimSpace(output), strings.TrimSpace(b.content); got != want {
						t.Errorf("%s: output mismatch:\ngot:\n\n%s\n\nwant:\n\n%s", where, got, want)
					}
					continue
				}
				if b.kind == bashSetup {
					dir = t.TempDir()
				}
				cmd := exec.Command("bash", "-c", "set -e; "+b.content)
				cmd.Dir = dir
				cmd.Env = env
				out, err := cmd.CombinedOutput()
				if b.kind == bashRun {
					output = string(out)
				}
				if err != nil {
					if b.kind == bashCheck {
						t.Errorf("%s: check failed: %v\n%s", where, err, out)
						continue
					}
					t.Fatalf("%s: %s failed: %v\n%s", where, b.kind, err, out)
				}
			}
		})
	}
}

// parseBlocks returns the runnable fenced blocks of a markdown file.
func parseBlocks(t *testing.T, file string) []block {
	t.Helper()
	src, err := os.ReadFile(file)
	if err != nil {
		t.Fatal(err)
	}
	var blocks []block
	root := goldmark.DefaultParser().Parse(text.NewReader(src))
	err = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !entering || !ok || fcb.Info == nil {
			return ast.WalkContinue, nil
		}
		kind := string(fcb.Info.Segment.Value(src))
		switch kind {
		case bashSetup, bashRun, bashCheck, consoleCheck:
		default:
			return ast.WalkContinue, nil
		}
		var content strings.Builder
		for i := 0; i < fcb.Lines().Len(); i++ {
			seg := fcb.Lines().At(i)
			content.Write(seg.Value(src))
		}
		line := strings.Count(string(src[:fcb.Info.Segment.Start]), "\n") + 1
		blocks = append(blocks, block{kind: kind, content: content.String(), line: line})
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	return blocks
}
