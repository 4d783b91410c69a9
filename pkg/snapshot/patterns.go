// File: pkg/snapshot/patterns.go
package snapshot

// Built-in exclusion lists, appended after any .gitignore content so they
// take precedence under gitignore's last-match-wins rule. All patterns use
// gitignore syntax.

// excludedDirectories are version-control, dependency and build-artifact
// directories that never belong in a snapshot.
var excludedDirectories = []string{
	".git/",
	".svn/",
	".hg/",
	"node_modules/",
	"bower_components/",
	"vendor/",
	"dist/",
	"build/",
	"out/",
	"coverage/",
	"__pycache__/",
	".idea/",
	".vscode/",
	".next/",
	".nuxt/",
	".cache/",
}

// sensitiveFilePatterns cover credentials, keys, certificates and local
// databases. These are excluded even when absent from .gitignore.
var sensitiveFilePatterns = []string{
	".env",
	".env.*",
	"*.pem",
	"*.key",
	"*.crt",
	"*.cer",
	"*.p12",
	"*.pfx",
	"*.keystore",
	"*.sqlite",
	"*.sqlite3",
	"*.db",
	"secrets.json",
	"secrets.yaml",
	"secrets.yml",
	"credentials.json",
	"id_rsa",
	"id_rsa.*",
	"id_dsa",
	"id_ecdsa",
	"id_ed25519",
	"*.htpasswd",
}

// junkFilePatterns cover OS droppings, logs and editor backup files.
var junkFilePatterns = []string{
	".DS_Store",
	"Thumbs.db",
	"desktop.ini",
	"*.log",
	"*.bak",
	"*.tmp",
	"*.temp",
	"*.swp",
	"*.swo",
	"*~",
	"npm-debug.log*",
	"yarn-error.log",
	"*.lock",
	"package-lock.json",
}

// scriptExtensions are the extensions of the primary scripting language;
// only these files are eligible for comment stripping.
var scriptExtensions = []string{".js", ".mjs", ".cjs"}
