// File: pkg/snapshot/walker.go
package snapshot

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Walker performs the recursive descent for both passes. Ignore matching
// always uses the path relative to the original traversal root, so nested
// calls and the rule set see the same view of every path.
type Walker struct {
	root   string
	rules  *RuleSet
	cfg    Config
	logger *zap.Logger
}

// NewWalker returns a walker rooted at root. The rule set and config are
// read-only for the walker's lifetime.
func NewWalker(root string, rules *RuleSet, cfg Config, logger *zap.Logger) *Walker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Walker{root: root, rules: rules, cfg: cfg, logger: logger}
}

// BuildTree runs the structure pass: it descends dir in readdir order and
// returns a DirectoryNode mirroring every kept entry. Subdirectories are
// attached even when they end up empty. Binary files are skipped with a
// warning; any other I/O error aborts the walk.
func (w *Walker) BuildTree(dir string) (*DirectoryNode, error) {
	node := NewDirectoryNode()

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		fullPath := filepath.Join(dir, entry.Name())
		relPath, err := w.relativePath(fullPath)
		if err != nil {
			return nil, err
		}
		if w.rules.IsIgnored(relPath, entry.IsDir()) {
			continue
		}

		if entry.IsDir() {
			child, err := w.BuildTree(fullPath)
			if err != nil {
				return nil, err
			}
			node.Add(entry.Name(), child)
			continue
		}

		if !w.keepExtension(entry.Name()) {
			continue
		}

		binary, err := IsBinaryFile(fullPath)
		if err != nil {
			return nil, fmt.Errorf("failed to inspect %s: %w", fullPath, err)
		}
		if binary {
			w.logger.Warn("Skipping binary file", zap.String("path", relPath))
			continue
		}

		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", fullPath, err)
		}
		node.Add(entry.Name(), &FileEntry{
			Name:         entry.Name(),
			AbsolutePath: fullPath,
			RelativePath: relPath,
			SizeBytes:    info.Size(),
			LastModified: info.ModTime(),
		})
	}

	return node, nil
}

// BuildText runs the content pass: the same filtering as BuildTree, but
// accumulating one text block per kept file. Headers name the file and its
// path relative to the traversal root.
func (w *Walker) BuildText(dir string) (string, error) {
	var builder strings.Builder
	if err := w.appendText(dir, &builder); err != nil {
		return "", err
	}
	return builder.String(), nil
}

func (w *Walker) appendText(dir string, builder *strings.Builder) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		fullPath := filepath.Join(dir, entry.Name())
		relPath, err := w.relativePath(fullPath)
		if err != nil {
			return err
		}
		if w.rules.IsIgnored(relPath, entry.IsDir()) {
			continue
		}

		if entry.IsDir() {
			if err := w.appendText(fullPath, builder); err != nil {
				return err
			}
			continue
		}

		if !w.keepExtension(entry.Name()) {
			continue
		}

		binary, err := IsBinaryFile(fullPath)
		if err != nil {
			return fmt.Errorf("failed to inspect %s: %w", fullPath, err)
		}
		if binary {
			// The structure pass already warned about this file.
			w.logger.Debug("Skipping binary file", zap.String("path", relPath))
			continue
		}

		data, err := os.ReadFile(fullPath)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", fullPath, err)
		}

		content := string(data)
		if w.cfg.StripComments && w.isScriptFile(entry.Name()) {
			content = StripComments(content)
		}
		if w.cfg.StripWhitespace {
			content = CollapseWhitespace(content)
		}

		fmt.Fprintf(builder, "File: %s\nPath: %s\n\n%s\n\n", entry.Name(), relPath, content)
	}

	return nil
}

// relativePath returns fullPath relative to the traversal root with forward
// slashes, the form every ignore rule is evaluated against.
func (w *Walker) relativePath(fullPath string) (string, error) {
	relPath, err := filepath.Rel(w.root, fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to relativize %s: %w", fullPath, err)
	}
	return filepath.ToSlash(relPath), nil
}

// keepExtension applies the extension filter. An empty filter keeps
// everything.
func (w *Walker) keepExtension(name string) bool {
	if len(w.cfg.Extensions) == 0 {
		return true
	}
	ext := filepath.Ext(name)
	for _, allowed := range w.cfg.Extensions {
		if !strings.HasPrefix(allowed, ".") {
			allowed = "." + allowed
		}
		if strings.EqualFold(ext, allowed) {
			return true
		}
	}
	return false
}

// isScriptFile reports whether the file belongs to the primary scripting
// language and is therefore eligible for comment stripping.
func (w *Walker) isScriptFile(name string) bool {
	ext := filepath.Ext(name)
	for _, scriptExt := range w.cfg.ScriptExts {
		if strings.EqualFold(ext, scriptExt) {
			return true
		}
	}
	return false
}
