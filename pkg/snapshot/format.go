// File: pkg/snapshot/format.go
package snapshot

import (
	"fmt"
	"strings"
	"time"
)

// indentStep is the indentation added per tree level.
const indentStep = "  "

// FormatTree renders node as an indented listing. Children appear in
// insertion order, matching the order of the content pass. Files render as
// one line with their metadata; directories render their name and recurse.
func FormatTree(node *DirectoryNode, indent int) string {
	var builder strings.Builder
	pad := strings.Repeat(indentStep, indent)

	for _, name := range node.Names() {
		switch child := node.Child(name).(type) {
		case *FileEntry:
			fmt.Fprintf(&builder, "%s%s (Path: %s, Size: %d bytes, Last Modified: %s)\n",
				pad, name, child.RelativePath, child.SizeBytes,
				child.LastModified.Format(time.RFC3339))
		case *DirectoryNode:
			fmt.Fprintf(&builder, "%s%s/\n", pad, name)
			builder.WriteString(FormatTree(child, indent+1))
		}
	}

	return builder.String()
}
