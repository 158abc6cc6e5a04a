// Package headless holds what the rasterizer engines share: locating the
// browser executable, waiting for images and normalizing screenshots.
package headless

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// EnvVar names the environment variable consulted after an explicit path.
const EnvVar = "CHROME_PATH"

// Resolve returns the browser executable in this order: explicit path,
// CHROME_PATH, system candidates. An empty result lets the engine fall back
// to its own lookup.
func Resolve(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv(EnvVar); env != "" {
		return env
	}
	for _, candidate := range Candidates(runtime.GOOS, os.Getenv) {
		if path := lookup(candidate); path != "" {
			return path
		}
	}
	return ""
}

// Candidates lists system locations for goos, Chromium before Chrome.
func Candidates(goos string, getenv func(string) string) []string {
	switch goos {
	case "darwin":
		return []string{
			"/Applications/Chromium.app/Contents/MacOS/Chromium",
			"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
			"/Applications/Google Chrome Canary.app/Contents/MacOS/Google Chrome Canary",
		}
	case "linux":
		return []string{"chromium", "chromium-browser", "google-chrome-stable", "google-chrome"}
	case "windows":
		var out []string
		for _, env := range []string{"PROGRAMFILES", "PROGRAMFILES(X86)", "LOCALAPPDATA"} {
			root := getenv(env)
			if root == "" {
				continue
			}
			out = append(out,
				root+`\Chromium\Application\chrome.exe`,
				root+`\Google\Chrome\Application\chrome.exe`,
			)
		}
		return out
	default:
		return nil
	}
}

// lookup returns nameOrPath if it is an existing file, or its PATH match
// for a bare command name.
func lookup(nameOrPath string) string {
	if filepath.IsAbs(nameOrPath) || (len(nameOrPath) > 1 && nameOrPath[1] == ':') {
		if _, err := os.Stat(nameOrPath); err == nil {
			return nameOrPath
		}
		return ""
	}
	if path, err := exec.LookPath(nameOrPath); err == nil {
		return path
	}
	return ""
}
