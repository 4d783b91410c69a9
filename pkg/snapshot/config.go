// File: pkg/snapshot/config.go
package snapshot

// Config holds the options for a single snapshot run. A Config is built once
// by the caller and treated as read-only afterwards.
type Config struct {
	Directory       string   // Directory to snapshot; "." targets the working directory.
	Output          string   // Name of the output artifact, written at the target root.
	Extensions      []string // When non-empty, only files with these extensions are kept.
	ScriptExts      []string // Extensions eligible for comment stripping.
	StripComments   bool     // Strip comments from scripting-language files.
	StripWhitespace bool     // Collapse whitespace runs in file contents.
	CountTokens     bool     // Report the token count of the finished snapshot.
	Clipboard       bool     // Copy the finished snapshot to the clipboard.

	ExcludedDirs   []string // Built-in directory exclusions (gitignore syntax).
	SensitiveFiles []string // Built-in credential/key/database exclusions.
	JunkFiles      []string // Built-in OS-junk, log and backup exclusions.
}

// DefaultConfig returns the configuration used when no flags override it.
func DefaultConfig() Config {
	return Config{
		Directory:      ".",
		Output:         "output.txt",
		ScriptExts:     scriptExtensions,
		ExcludedDirs:   excludedDirectories,
		SensitiveFiles: sensitiveFilePatterns,
		JunkFiles:      junkFilePatterns,
	}
}
