package domain

import "path/filepath"

const (
	// StackyDirName is the name of the internal workspace directory.
	StackyDirName = ".stacky"

	// CacheDirName is the name of the cache directory.
	CacheDirName = "cache"

	// ResponseCacheFile is the name of the model response cache file.
	ResponseCacheFile = "ai-responses.json"

	// ConfigFileName is the base name of the optional settings file.
	ConfigFileName = "stacky"

	// DotEnvFile is the name of the optional dotenv file.
	DotEnvFile = ".env"

	// DocsReadme is the file read for each framework docs directory.
	DocsReadme = "README.md"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultStackyPath returns the default root directory for stacky metadata.
func DefaultStackyPath() string {
	return StackyDirName
}

// DefaultCachePath returns the default path for the response cache file.
// It joins .stacky, cache, and ai-responses.json.
func DefaultCachePath() string {
	return filepath.Join(StackyDirName, CacheDirName, ResponseCacheFile)
}

// DefaultDocsPath returns the default directory holding framework docs.
func DefaultDocsPath() string {
	return filepath.Join("docs", "frameworks")
}
