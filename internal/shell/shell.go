// Package shell locates the user's interactive login shell and editor so
// external commands run with the user's own PATH and configuration.
package shell

import (
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// knownShells are the shell basenames accepted from parent-process detection.
var knownShells = map[string]bool{
	"bash": true,
	"zsh":  true,
	"fish": true,
	"sh":   true,
	"ksh":  true,
	"tcsh": true,
}

// Detector resolves the interactive shell from injectable environment probes.
type Detector struct {
	Getenv        func(string) string
	Stat          func(string) (os.FileInfo, error)
	LookPath      func(string) (string, error)
	ParentCommand func() string
}

// NewDetector returns a Detector backed by the real process environment.
func NewDetector() *Detector {
	return &Detector{
		Getenv:        os.Getenv,
		Stat:          os.Stat,
		LookPath:      exec.LookPath,
		ParentCommand: parentCommand,
	}
}

// Detect returns the path of the shell commands should run under.
// $SHELL wins when it points at an existing file; otherwise the parent
// process command is consulted, and finally /bin/bash or sh.
func (d *Detector) Detect() string {
	if env := d.Getenv("SHELL"); env != "" && d.isFile(env) {
		return env
	}

	if candidate := strings.TrimSpace(d.ParentCommand()); candidate != "" {
		path := candidate
		if !d.isFile(path) {
			resolved, err := d.LookPath(candidate)
			if err != nil {
				path = ""
			} else {
				path = resolved
			}
		}
		if path != "" && knownShells[filepath.Base(path)] {
			return path
		}
	}

	if d.isFile("/bin/bash") {
		return "/bin/bash"
	}
	return "sh"
}

func (d *Detector) isFile(path string) bool {
	info, err := d.Stat(path)
	return err == nil && !info.IsDir()
}

// Detect resolves the interactive shell using the real environment.
func Detect() string {
	return NewDetector().Detect()
}

// parentCommand returns the command name of the parent process, or "".
func parentCommand() string {
	out, err := exec.Command("ps", "-p", strconv.Itoa(os.Getppid()), "-o", "comm=").Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

// Editor returns the editor command, preferring the override, then $EDITOR,
// then vim.
func Editor(override string, getenv func(string) string) string {
	if override != "" {
		return override
	}
	if env := getenv("EDITOR"); env != "" {
		return env
	}
	return "vim"
}
