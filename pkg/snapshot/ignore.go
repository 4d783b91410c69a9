// File: pkg/snapshot/ignore.go
package snapshot

import (
	"os"
	"path/filepath"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"
	"go.uber.org/zap"
)

// RuleSet answers whether a path relative to the snapshot root is ignored.
// It is immutable once built; gitignore precedence (last match wins, "!"
// re-includes, trailing "/" matches directories only) is delegated to the
// compiled matcher.
type RuleSet struct {
	matcher *gitignore.GitIgnore
}

// BuildRuleSet compiles the ignore rules for baseDir: the directory's
// .gitignore if present (an unreadable or missing file contributes nothing),
// followed by the built-in exclusion lists and the output artifact itself.
func BuildRuleSet(baseDir string, cfg Config, logger *zap.Logger) *RuleSet {
	var lines []string

	gitignorePath := filepath.Join(baseDir, ".gitignore")
	if content, err := os.ReadFile(gitignorePath); err == nil {
		lines = append(lines, strings.Split(string(content), "\n")...)
		logger.Debug("Loaded .gitignore", zap.String("path", gitignorePath))
	} else {
		logger.Debug("No .gitignore loaded", zap.String("path", gitignorePath))
	}

	lines = append(lines, cfg.ExcludedDirs...)
	lines = append(lines, cfg.SensitiveFiles...)
	lines = append(lines, cfg.JunkFiles...)

	// Never re-ingest a previous snapshot.
	if cfg.Output != "" {
		lines = append(lines, filepath.Base(cfg.Output))
	}

	logger.Debug("Compiled ignore rules", zap.Int("patternCount", len(lines)))
	return &RuleSet{matcher: gitignore.CompileIgnoreLines(lines...)}
}

// IsIgnored reports whether the forward-slash-normalized relative path
// matches the rule set. Directories are additionally checked with a trailing
// slash so directory-only patterns apply.
func (rs *RuleSet) IsIgnored(relPath string, isDir bool) bool {
	normalized := filepath.ToSlash(relPath)
	if rs.matcher.MatchesPath(normalized) {
		return true
	}
	if isDir && rs.matcher.MatchesPath(normalized+"/") {
		return true
	}
	return false
}
