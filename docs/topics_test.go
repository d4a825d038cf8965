package docs

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// readmeTopics extracts the topic names listed in readme.md.
func readmeTopics(t *testing.T) []string {
	t.Helper()

	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var names []string
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if m := topicRegex.FindStringSubmatch(scanner.Text()); len(m) > 1 {
			names = append(names, strings.TrimSpace(m[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}
	return names
}

func TestTopics(t *testing.T) {
	// The readme is the index: every topic it lists must load, and every
	// topic file must be listed.
	listed := readmeTopics(t)
	if len(listed) == 0 {
		t.Fatal("readme.md lists no topics")
	}

	for _, name := range listed {
		t.Run("load_"+name, func(t *testing.T) {
			if _, err := Topic(name); err != nil {
				t.Errorf("failed to get topic %q: %v", name, err)
			}
		})
	}

	all, err := List()
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range all {
		found := false
		for _, l := range listed {
			if l == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("topic %q is not listed in readme.md", name)
		}
	}
}

func TestTopicStar(t *testing.T) {
	all, err := Topic("*")
	if err != nil {
		t.Fatal(err)
	}
	names, err := List()
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range names {
		content, err := Topic(name)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(all, content) {
			t.Errorf("topic %q missing from the expansion of *", name)
		}
	}
}

func TestUnknownTopic(t *testing.T) {
	if _, err := Topic("no-such-topic"); err == nil {
		t.Error("expected an error for an unknown topic")
	}
}

// TestTopicStructure parses every topic and checks basic shape: a single
// top-level heading first, and a language tag on every fenced code block.
func TestTopicStructure(t *testing.T) {
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}

	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			content, err := os.ReadFile(file)
			if err != nil {
				t.Fatal(err)
			}
			root := goldmark.DefaultParser().Parse(text.NewReader(content))

			var headings int
			seenFirst := false
			ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
				if !entering {
					return ast.WalkContinue, nil
				}
				switch node := n.(type) {
				case *ast.Heading:
					if !seenFirst {
						seenFirst = true
						if node.Level != 1 {
							t.Errorf("first heading has level %d, want 1", node.Level)
						}
					}
					if node.Level == 1 {
						headings++
					}
				case *ast.FencedCodeBlock:
					if node.Info == nil || len(node.Info.Segment.Value(content)) == 0 {
						t.Error("fenced code block without a language tag")
					}
				}
				return ast.WalkContinue, nil
			})
			if headings != 1 {
				t.Errorf("found %d top-level headings, want 1", headings)
			}
		})
	}
}
