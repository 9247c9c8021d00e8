// Package config holds module-wide constants: version, recognized source
// file extensions, and the names the evaluator and stdlib agree on.
package config

// Version is the current Lumen version.
// Set at build time via -ldflags "-X github.com/lumen-lang/lumen/internal/config.Version=...".
var Version = "0.1.0"

// SourceFileExt is the canonical source file extension.
const SourceFileExt = ".lum"

// SourceFileExtensions are all recognized source file extensions.
var SourceFileExtensions = []string{".lum", ".lumen"}

// TrimSourceExt removes any recognized source extension from a filename.
// Returns the original string if no extension matches.
func TrimSourceExt(name string) string {
	for _, ext := range SourceFileExtensions {
		if len(name) >= len(ext) && name[len(name)-len(ext):] == ext {
			return name[:len(name)-len(ext)]
		}
	}
	return name
}

// HasSourceExt returns true if the path ends with any recognized source extension.
func HasSourceExt(path string) bool {
	for _, ext := range SourceFileExtensions {
		if len(path) >= len(ext) && path[len(path)-len(ext):] == ext {
			return true
		}
	}
	return false
}

// Names of the external modules the standard library registers at startup.
const (
	IteratorModuleName = "iterator"
	CoreModuleName     = "lumen"
	JSONModuleName     = "json"
	YAMLModuleName     = "yaml"
)

// SelfArgName is the reserved first-argument name that triggers implicit
// receiver binding for map-attached functions.
const SelfArgName = "self"
