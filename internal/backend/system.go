package backend

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/conn-castle/pkm/internal/messages"
	"github.com/conn-castle/pkm/internal/shell"
)

// System is the single execution primitive every backend operation routes
// through. Dry-run invocations only echo the command and report success;
// live invocations echo the command first so the run is auditable, then
// execute under the user's interactive login shell.
type System interface {
	LookPath(file string) (string, error)
	Run(args []string, dryRun bool) Result
	Capture(command string) (string, error)
	RunScript(shellPath string, script string, dryRun bool) Result
	CheckScript(shellPath string, script string) bool
	Shell() string
}

// RealSystem implements System against the host.
type RealSystem struct {
	Out       io.Writer
	ShellFunc func() string
}

// NewSystem returns a RealSystem writing command echoes to out.
func NewSystem(out io.Writer) *RealSystem {
	return &RealSystem{Out: out, ShellFunc: shell.Detect}
}

// LookPath searches PATH for an executable.
func (s *RealSystem) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Shell returns the detected interactive shell path.
func (s *RealSystem) Shell() string {
	return s.ShellFunc()
}

// Run executes args joined into one command line under the login shell.
// The child inherits stdio so package-manager output streams through.
func (s *RealSystem) Run(args []string, dryRun bool) Result {
	line := strings.Join(args, " ")
	if dryRun {
		fmt.Fprintf(s.Out, messages.RunnerWouldRunFmt, line)
		return ok()
	}
	fmt.Fprintf(s.Out, messages.RunnerExecFmt, line)

	cmd := exec.Command(s.Shell(), "-l", "-c", line)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return Result{Message: err.Error()}
	}
	return ok()
}

// Capture runs command under the login shell and returns its stdout.
// stderr is discarded; callers treat any error as "no data".
func (s *RealSystem) Capture(command string) (string, error) {
	cmd := exec.Command(s.Shell(), "-l", "-c", command)
	cmd.Stderr = io.Discard
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// RunScript executes a multi-line script under shellPath.
func (s *RealSystem) RunScript(shellPath string, script string, dryRun bool) Result {
	if dryRun {
		fmt.Fprintf(s.Out, messages.RunnerScriptDryFmt, shellPath)
		for _, line := range strings.Split(strings.TrimSpace(script), "\n") {
			fmt.Fprintf(s.Out, messages.RunnerScriptLineFmt, line)
		}
		return ok()
	}
	fmt.Fprintf(s.Out, messages.RunnerScriptExecFmt, shellPath)

	cmd := exec.Command(shellPath, "-l", "-c", script)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return Result{Message: err.Error()}
	}
	return ok()
}

// CheckScript runs a check command silently; exit 0 means installed.
func (s *RealSystem) CheckScript(shellPath string, script string) bool {
	cmd := exec.Command(shellPath, "-l", "-c", script)
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard
	return cmd.Run() == nil
}
