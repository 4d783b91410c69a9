// File: pkg/snapshot/snapshot.go
package snapshot

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"go.uber.org/zap"
)

// Run produces one snapshot: it builds the rule set, runs the structure and
// content passes, and writes the combined artifact at the target root. The
// output file is written only after both passes complete, so a fatal
// traversal error never leaves a partial snapshot behind.
func Run(cfg Config, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	startTime := time.Now()

	baseDir, err := filepath.Abs(cfg.Directory)
	if err != nil {
		return fmt.Errorf("failed to resolve directory path: %w", err)
	}
	logger.Info("Starting snapshot", zap.String("directory", baseDir))

	rules := BuildRuleSet(baseDir, cfg, logger)
	walker := NewWalker(baseDir, rules, cfg, logger)

	tree, err := walker.BuildTree(baseDir)
	if err != nil {
		logger.Error("Structure pass failed", zap.Error(err))
		return fmt.Errorf("structure pass failed: %w", err)
	}

	content, err := walker.BuildText(baseDir)
	if err != nil {
		logger.Error("Content pass failed", zap.Error(err))
		return fmt.Errorf("content pass failed: %w", err)
	}

	artifact := Assemble(tree, content)

	if cfg.CountTokens {
		tokens, err := CountTokens(artifact)
		if err != nil {
			logger.Warn("Token counting failed", zap.Error(err))
		} else {
			logger.Info("Snapshot token count", zap.Int("tokens", tokens))
		}
	}

	outputPath := filepath.Join(baseDir, cfg.Output)
	if err := os.WriteFile(outputPath, []byte(artifact), 0o644); err != nil {
		logger.Error("Failed to write snapshot", zap.String("output", outputPath), zap.Error(err))
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	logger.Info("Snapshot written",
		zap.String("output", outputPath),
		zap.Duration("elapsed", time.Since(startTime)))

	if cfg.Clipboard {
		if err := clipboard.WriteAll(artifact); err != nil {
			logger.Warn("Failed to copy snapshot to clipboard", zap.Error(err))
		} else {
			logger.Info("Snapshot copied to clipboard")
		}
	}

	return nil
}

// Assemble combines the formatted tree and the concatenated file contents
// into the final artifact.
func Assemble(tree *DirectoryNode, content string) string {
	var builder strings.Builder
	builder.WriteString("Directory Structure:\n")
	builder.WriteString(FormatTree(tree, 0))
	builder.WriteString("\nFile Contents:\n")
	builder.WriteString(content)
	return builder.String()
}
