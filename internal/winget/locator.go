// Package winget locates and invokes the Windows Package Manager executable.
package winget

import (
	"os"
	"os/exec"
	"path/filepath"
)

const toolName = "winget"

// Locator resolves the absolute path of the winget executable. Absence is a
// valid outcome meaning detection cannot proceed, not an error.
type Locator struct {
	lookPath  func(string) (string, error)
	fallbacks []string
}

// NewLocator creates a Locator that searches the process PATH first and then
// probes the fixed per-user and per-machine install locations.
func NewLocator() *Locator {
	return &Locator{
		lookPath:  exec.LookPath,
		fallbacks: defaultFallbacks(),
	}
}

// NewLocatorWithOverride returns a Locator pinned to a single path. The
// override is probed like any other fallback, so a stale path degrades to
// not-found instead of failing the run.
func NewLocatorWithOverride(path string) *Locator {
	return &Locator{
		lookPath:  func(string) (string, error) { return "", exec.ErrNotFound },
		fallbacks: []string{path},
	}
}

// Locate returns a usable winget path, or false when none was found.
func (l *Locator) Locate() (string, bool) {
	if path, err := l.lookPath(toolName); err == nil {
		return path, true
	}

	for _, pattern := range l.fallbacks {
		matches, err := filepath.Glob(pattern)
		if err != nil || len(matches) == 0 {
			continue
		}

		// Glob output is sorted, so the last match of the versioned
		// app-package pattern is the most recent install.
		path := matches[len(matches)-1]
		if info, statErr := os.Stat(path); statErr == nil && !info.IsDir() {
			return path, true
		}
	}

	return "", false
}

func defaultFallbacks() []string {
	var fallbacks []string

	if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
		fallbacks = append(fallbacks, filepath.Join(localAppData, "Microsoft", "WindowsApps", "winget.exe"))
	}

	programFiles := os.Getenv("ProgramFiles")
	if programFiles == "" {
		programFiles = `C:\Program Files`
	}
	fallbacks = append(fallbacks, filepath.Join(programFiles, "WindowsApps", "Microsoft.DesktopAppInstaller_*__8wekyb3d8bbwe", "winget.exe"))

	return fallbacks
}
