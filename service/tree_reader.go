package service

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/WittleWolfie/PyGram/domain"
	"github.com/WittleWolfie/PyGram/internal/analyzer"
	"github.com/bmatcuk/doublestar/v4"
)

// TreeFileReader implements the domain.TreeReader interface. It collects
// tree notation files and decodes the tool's bracket notation:
//
//	a(b, c(d, e))
//
// A node is a label optionally followed by a parenthesized, comma-separated
// child list. Labels may not contain '(', ')' or ','; surrounding whitespace
// is ignored.
type TreeFileReader struct{}

// NewTreeReader creates a new tree reader
func NewTreeReader() *TreeFileReader {
	return &TreeFileReader{}
}

// CollectTreeFiles collects tree notation files from the given paths.
// Files given directly are always included; directories are scanned with
// doublestar include/exclude patterns matched against the path relative to
// the scanned directory.
func (r *TreeFileReader) CollectTreeFiles(paths []string, recursive bool, includePatterns, excludePatterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string

	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, domain.NewFileNotFoundError(path, err)
		}

		if !info.IsDir() {
			add(path)
			continue
		}

		err = filepath.WalkDir(path, func(entry string, d os.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if d.IsDir() {
				if !recursive && entry != path {
					return filepath.SkipDir
				}
				return nil
			}

			rel, err := filepath.Rel(path, entry)
			if err != nil {
				return err
			}
			rel = filepath.ToSlash(rel)

			if !matchesAny(includePatterns, rel) {
				return nil
			}
			if matchesAny(excludePatterns, rel) {
				return nil
			}
			add(entry)
			return nil
		})
		if err != nil {
			return nil, domain.NewAnalysisError(fmt.Sprintf("failed to scan directory: %s", path), err)
		}
	}

	sort.Strings(files)
	return files, nil
}

// matchesAny reports whether the relative path matches any pattern, either
// on the full relative path or on the base name.
func matchesAny(patterns []string, rel string) bool {
	base := filepath.Base(rel)
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
		if ok, err := doublestar.Match(pattern, base); err == nil && ok {
			return true
		}
	}
	return false
}

// ReadTreeFile reads and parses a tree notation file
func (r *TreeFileReader) ReadTreeFile(path string) (*analyzer.TreeNode, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.NewFileNotFoundError(path, err)
	}

	tree, err := r.ParseTree(string(data))
	if err != nil {
		return nil, domain.NewParseError(path, err)
	}
	return tree, nil
}

// ParseTree parses inline tree notation such as "a(b,c(d))"
func (r *TreeFileReader) ParseTree(notation string) (*analyzer.TreeNode, error) {
	p := &notationParser{input: []rune(notation)}

	root, err := p.parseNode()
	if err != nil {
		return nil, err
	}

	p.skipSpace()
	if !p.atEnd() {
		return nil, fmt.Errorf("unexpected %q at position %d", p.peek(), p.pos)
	}
	return root, nil
}

// IsTreeFile reports whether the path names an existing regular file.
func (r *TreeFileReader) IsTreeFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// notationParser is a recursive descent parser over the bracket notation.
type notationParser struct {
	input []rune
	pos   int
}

func (p *notationParser) atEnd() bool {
	return p.pos >= len(p.input)
}

func (p *notationParser) peek() rune {
	return p.input[p.pos]
}

func (p *notationParser) skipSpace() {
	for !p.atEnd() && unicode.IsSpace(p.peek()) {
		p.pos++
	}
}

// parseNode parses one node: a label with an optional child list.
func (p *notationParser) parseNode() (*analyzer.TreeNode, error) {
	label, err := p.parseLabel()
	if err != nil {
		return nil, err
	}
	node := analyzer.NewTreeNode(label)

	p.skipSpace()
	if p.atEnd() || p.peek() != '(' {
		return node, nil
	}
	p.pos++ // consume '('

	for {
		child, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		node.AddKid(child)

		p.skipSpace()
		if p.atEnd() {
			return nil, fmt.Errorf("unbalanced parentheses: missing ')' for node %q", label)
		}
		switch p.peek() {
		case ',':
			p.pos++
		case ')':
			p.pos++
			return node, nil
		default:
			return nil, fmt.Errorf("unexpected %q at position %d, want ',' or ')'", p.peek(), p.pos)
		}
	}
}

// parseLabel reads a label up to the next structural character.
func (p *notationParser) parseLabel() (string, error) {
	p.skipSpace()

	start := p.pos
	for !p.atEnd() {
		switch p.peek() {
		case '(', ')', ',':
			goto done
		}
		p.pos++
	}
done:
	label := strings.TrimSpace(string(p.input[start:p.pos]))
	if label == "" {
		return "", fmt.Errorf("empty label at position %d", start)
	}
	return label, nil
}

// FormatTree renders a tree back into bracket notation, the inverse of
// ParseTree for trees whose labels contain no structural characters.
func FormatTree(node *analyzer.TreeNode) string {
	if node == nil {
		return ""
	}

	var b strings.Builder
	formatTree(&b, node)
	return b.String()
}

func formatTree(b *strings.Builder, node *analyzer.TreeNode) {
	b.WriteString(node.Label)
	if node.IsLeaf() {
		return
	}

	b.WriteByte('(')
	for i, child := range node.Children {
		if i > 0 {
			b.WriteByte(',')
		}
		formatTree(b, child)
	}
	b.WriteByte(')')
}
