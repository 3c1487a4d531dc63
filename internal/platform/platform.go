// Package platform classifies the operating environment for category
// activation and per-entry platform restrictions.
package platform

import (
	"os"
	"runtime"
	"strings"
)

// Tags recognized in category gates and manifest entry restrictions.
const (
	TagDarwin  = "darwin"
	TagLinux   = "linux"
	TagWSL     = "wsl"
	TagWindows = "windows"
	TagWin32   = "win32"
)

// wslEnvMarker is set by WSL for every process in a distro.
const wslEnvMarker = "WSL_DISTRO_NAME"

// procVersionPath identifies the kernel build; WSL kernels mention Microsoft.
const procVersionPath = "/proc/version"

// Classifier answers platform questions as a pure function of the injected
// environment, so tests can simulate any host.
type Classifier struct {
	goos     string
	getenv   func(string) string
	readFile func(string) ([]byte, error)
}

// New returns a Classifier backed by the real process environment.
func New() *Classifier {
	return &Classifier{goos: runtime.GOOS, getenv: os.Getenv, readFile: os.ReadFile}
}

// NewForTest returns a Classifier with fully injected inputs.
func NewForTest(goos string, getenv func(string) string, readFile func(string) ([]byte, error)) *Classifier {
	return &Classifier{goos: goos, getenv: getenv, readFile: readFile}
}

// GOOS returns the classified operating system identifier.
func (c *Classifier) GOOS() string {
	return c.goos
}

// IsMacOS reports whether the current host is macOS.
func (c *Classifier) IsMacOS() bool {
	return c.goos == TagDarwin
}

// IsWSL reports whether the current host is Linux running under WSL.
// The explicit environment marker wins; otherwise the kernel version string
// is inspected. Any read error means not-WSL.
func (c *Classifier) IsWSL() bool {
	if c.goos != TagLinux {
		return false
	}
	if c.getenv(wslEnvMarker) != "" {
		return true
	}
	data, err := c.readFile(procVersionPath)
	if err != nil {
		return false
	}
	return strings.Contains(strings.ToLower(string(data)), "microsoft")
}

// GateActive reports whether a category platform gate matches the current
// host. An empty gate is always active.
func (c *Classifier) GateActive(gate string) bool {
	switch gate {
	case "":
		return true
	case TagWSL:
		return c.IsWSL()
	default:
		return gate == c.goos
	}
}

// Matches reports whether any of the given platform tags matches the current
// host. An empty tag list matches everywhere.
func (c *Classifier) Matches(tags []string) bool {
	if len(tags) == 0 {
		return true
	}
	for _, tag := range tags {
		switch tag {
		case TagWSL:
			if c.IsWSL() {
				return true
			}
		case TagWindows, TagWin32:
			if c.goos == TagWindows {
				return true
			}
		default:
			if tag == c.goos {
				return true
			}
		}
	}
	return false
}
