//go:build !windows

package backend

import (
	"bufio"
	"strings"
	"testing"
	"time"

	"github.com/creack/pty"
	"github.com/stretchr/testify/require"
)

// Command echoes must arrive unbuffered when the output is a terminal, so
// the user sees what is about to run before the tool starts streaming.
func TestRunEchoReachesTerminalImmediately(t *testing.T) {
	primary, replica, err := pty.Open()
	require.NoError(t, err)
	defer primary.Close()
	defer replica.Close()

	sys := &RealSystem{Out: replica, ShellFunc: func() string { return "/bin/sh" }}

	done := make(chan struct{})
	go func() {
		defer close(done)
		sys.Run([]string{"brew", "install", "ripgrep"}, true)
	}()

	lineCh := make(chan string, 1)
	go func() {
		reader := bufio.NewReader(primary)
		line, readErr := reader.ReadString('\n')
		if readErr == nil {
			lineCh <- line
		}
	}()

	select {
	case line := <-lineCh:
		require.True(t, strings.Contains(line, "would run: brew install ripgrep"), "got %q", line)
	case <-time.After(5 * time.Second):
		t.Fatal("echo never reached the terminal")
	}
	<-done
}
