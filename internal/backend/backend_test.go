package backend

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSystem records every command and serves canned capture output keyed
// by command prefix.
type fakeSystem struct {
	commands []string
	captures map[string]string
	failOn   string
	tools    map[string]bool
	scripts  []string
	checkOK  bool
	shell    string
}

func newFakeSystem() *fakeSystem {
	return &fakeSystem{captures: map[string]string{}, tools: map[string]bool{}, shell: "/bin/bash"}
}

func (f *fakeSystem) LookPath(file string) (string, error) {
	if f.tools[file] {
		return "/usr/local/bin/" + file, nil
	}
	return "", errors.New("not found")
}

func (f *fakeSystem) Run(args []string, dryRun bool) Result {
	line := strings.Join(args, " ")
	f.commands = append(f.commands, line)
	if f.failOn != "" && strings.Contains(line, f.failOn) {
		return Result{Message: "exit status 1"}
	}
	return Result{OK: true}
}

func (f *fakeSystem) Capture(command string) (string, error) {
	for prefix, out := range f.captures {
		if strings.HasPrefix(command, prefix) {
			return out, nil
		}
	}
	return "", errors.New("no output")
}

func (f *fakeSystem) RunScript(shellPath string, script string, dryRun bool) Result {
	f.scripts = append(f.scripts, shellPath+"|"+script)
	return Result{OK: true}
}

func (f *fakeSystem) CheckScript(shellPath string, script string) bool {
	f.scripts = append(f.scripts, "check:"+shellPath+"|"+script)
	return f.checkOK
}

func (f *fakeSystem) Shell() string { return f.shell }

func TestBrewListInstalled(t *testing.T) {
	sys := newFakeSystem()
	sys.captures["brew list --formula --versions"] = "ripgrep 14.1.0\nfd 9.0.0 10.1.0\n\n"
	b := &Brew{sys: sys}

	got := b.ListInstalled()
	require.Len(t, got, 2)
	assert.Equal(t, PackageRecord{Name: "ripgrep", Version: "14.1.0"}, got[0])
	// Multiple kept versions: the newest (last) wins.
	assert.Equal(t, PackageRecord{Name: "fd", Version: "10.1.0"}, got[1])
}

func TestBrewUpdateRefreshesIndexFirst(t *testing.T) {
	sys := newFakeSystem()
	b := &Brew{sys: sys}

	res := b.Update([]string{"ripgrep"}, false)
	require.True(t, res.OK)
	require.Equal(t, []string{"brew update", "brew upgrade ripgrep"}, sys.commands)
}

func TestBrewUpdateStopsWhenIndexRefreshFails(t *testing.T) {
	sys := newFakeSystem()
	sys.failOn = "brew update"
	b := &Brew{sys: sys}

	res := b.Update(nil, false)
	assert.False(t, res.OK)
	assert.Equal(t, []string{"brew update"}, sys.commands)
}

func TestBrewDetails(t *testing.T) {
	sys := newFakeSystem()
	sys.captures["brew info ripgrep"] = strings.Join([]string{
		"==> ripgrep: stable 14.1.0 (bottled)",
		"Search tool like grep and The Silver Searcher",
		"https://github.com/BurntSushi/ripgrep",
	}, "\n")
	b := &Brew{sys: sys}

	details, found := b.Details("ripgrep")
	require.True(t, found)
	assert.Equal(t, "ripgrep", details.Name)
	assert.Equal(t, "14.1.0", details.Version)
	assert.Equal(t, "Search tool like grep and The Silver Searcher", details.Summary)
	assert.Equal(t, "https://github.com/BurntSushi/ripgrep", details.Homepage)
}

func TestCaskCommands(t *testing.T) {
	sys := newFakeSystem()
	c := &Cask{sys: sys}

	c.Install([]string{"raycast", "kitty"}, false)
	c.Remove([]string{"raycast"}, false)
	c.Update(nil, false)

	require.Equal(t, []string{
		"brew install --cask raycast kitty",
		"brew uninstall --cask raycast",
		"brew upgrade --cask",
	}, sys.commands)
}

func TestMasListParsesIDAndDisplayName(t *testing.T) {
	sys := newFakeSystem()
	sys.captures["mas list"] = "937984704  Amphetamine  (5.3.2)\n1569813296 1Password for Safari (2.24.1)\nnot a package line\n"
	m := &Mas{sys: sys}

	got := m.ListInstalled()
	require.Len(t, got, 2)
	assert.Equal(t, PackageRecord{Name: "937984704", Version: "5.3.2", DisplayName: "Amphetamine"}, got[0])
	assert.Equal(t, "1Password for Safari", got[1].DisplayName)
}

func TestMasRemoveIsAdvisoryNoOp(t *testing.T) {
	sys := newFakeSystem()
	m := &Mas{sys: sys}

	res := m.Remove([]string{"937984704"}, false)
	assert.True(t, res.OK)
	assert.NotEmpty(t, res.Message)
	assert.Empty(t, sys.commands)
}

func TestMasInstallOneInvocationPerID(t *testing.T) {
	sys := newFakeSystem()
	m := &Mas{sys: sys}

	m.Install([]string{"100", "200"}, false)
	require.Equal(t, []string{"mas install 100", "mas install 200"}, sys.commands)
}

func TestWingetListSplitsColumns(t *testing.T) {
	sys := newFakeSystem()
	sys.captures["winget.exe list"] = strings.Join([]string{
		"Name                 Id                     Version",
		"-------------------------------------------------------",
		"PowerToys (Preview)  Microsoft.PowerToys    0.79.0",
		"Windows Terminal     Microsoft.WindowsTerminal  1.19.10573.0",
		"",
	}, "\n")
	w := &Winget{sys: sys}

	got := w.ListInstalled()
	require.Len(t, got, 2)
	assert.Equal(t, PackageRecord{
		Name:        "Microsoft.PowerToys",
		Version:     "0.79.0",
		DisplayName: "PowerToys (Preview)",
	}, got[0])
}

func TestWingetInstallAttemptsEveryPackage(t *testing.T) {
	sys := newFakeSystem()
	sys.failOn = "Microsoft.PowerToys"
	w := &Winget{sys: sys}

	res := w.Install([]string{"Microsoft.PowerToys", "Git.Git"}, false)
	assert.False(t, res.OK)
	require.Len(t, sys.commands, 2)
	assert.Contains(t, sys.commands[0], "--silent --accept-package-agreements --accept-source-agreements")
	assert.Contains(t, sys.commands[1], "Git.Git")
}

func TestCondaListSkipsPypiChannel(t *testing.T) {
	sys := newFakeSystem()
	sys.captures["micromamba list -n base"] = strings.Join([]string{
		"# packages in environment at /opt/micromamba:",
		"ffmpeg    6.1.1  h1234  conda-forge",
		"requests  2.31.0 pypi_0 pypi",
		"python    3.12.2 h5678  conda-forge",
	}, "\n")
	c := &Conda{sys: sys, Env: "base"}

	got := c.ListInstalled()
	require.Len(t, got, 2)
	assert.Equal(t, "ffmpeg", got[0].Name)
	assert.Equal(t, "python", got[1].Name)
}

func TestCondaCommandsTargetEnv(t *testing.T) {
	sys := newFakeSystem()
	c := &Conda{sys: sys, Env: "base"}

	c.Install([]string{"ffmpeg"}, false)
	c.Remove([]string{"ffmpeg"}, false)
	c.Update(nil, false)

	require.Equal(t, []string{
		"micromamba install -n base -y ffmpeg",
		"micromamba remove -n base -y ffmpeg",
		"micromamba update -n base --all -y",
	}, sys.commands)
}

func TestPythonListParsesToolLines(t *testing.T) {
	sys := newFakeSystem()
	sys.captures["uv tool list"] = strings.Join([]string{
		"ruff v0.4.4",
		"- ruff",
		"httpie 3.2.2",
		"- http",
		"- https",
	}, "\n")
	p := &Python{sys: sys}

	got := p.ListInstalled()
	require.Len(t, got, 2)
	assert.Equal(t, PackageRecord{Name: "ruff", Version: "0.4.4"}, got[0])
	assert.Equal(t, PackageRecord{Name: "httpie", Version: "3.2.2"}, got[1])
}

func TestPythonInstallForcesEachTool(t *testing.T) {
	sys := newFakeSystem()
	p := &Python{sys: sys}

	p.Install([]string{"ruff", "httpie"}, false)
	require.Equal(t, []string{
		"uv tool install ruff --force",
		"uv tool install httpie --force",
	}, sys.commands)
}

func TestPythonInstallStopsAtFirstFailure(t *testing.T) {
	sys := newFakeSystem()
	sys.failOn = "ruff"
	p := &Python{sys: sys}

	res := p.Install([]string{"ruff", "httpie"}, false)
	assert.False(t, res.OK)
	assert.Equal(t, []string{"uv tool install ruff --force"}, sys.commands)
}

func TestRustListParsesCargoInstallList(t *testing.T) {
	sys := newFakeSystem()
	sys.captures["cargo install --list"] = strings.Join([]string{
		"bat v0.24.0:",
		"    bat",
		"cargo-update v13.3.0:",
		"    cargo-install-update",
		"    cargo-install-update-config",
	}, "\n")
	r := &Rust{sys: sys}

	got := r.ListInstalled()
	require.Len(t, got, 2)
	assert.Equal(t, PackageRecord{Name: "bat", Version: "0.24.0"}, got[0])

	details, found := r.Details("cargo-update")
	require.True(t, found)
	assert.Equal(t, []string{"cargo-install-update", "cargo-install-update-config"}, details.Binaries)
}

func TestRustUpdateRequiresCargoUpdate(t *testing.T) {
	sys := newFakeSystem()
	sys.captures["cargo install --list"] = "bat v0.24.0:\n    bat\n"
	r := &Rust{sys: sys}

	res := r.Update(nil, false)
	assert.False(t, res.OK)
	assert.Contains(t, res.Message, "cargo install cargo-update")
	assert.Empty(t, sys.commands)

	sys.captures["cargo install --list"] += "cargo-update v13.3.0:\n    cargo-install-update\n"
	res = r.Update([]string{"bat"}, false)
	assert.True(t, res.OK)
	assert.Equal(t, []string{"cargo install-update bat"}, sys.commands)
}

func TestBunListParsesTreeOutput(t *testing.T) {
	sys := newFakeSystem()
	sys.captures["bun pm ls -g"] = strings.Join([]string{
		"/home/user/.bun/install/global node_modules (3)",
		"├── typescript@5.4.5",
		"└── prettier@3.2.5",
	}, "\n")
	b := &Bun{sys: sys}

	got := b.ListInstalled()
	require.Len(t, got, 2)
	assert.Equal(t, PackageRecord{Name: "typescript", Version: "5.4.5"}, got[0])
	assert.Equal(t, PackageRecord{Name: "prettier", Version: "3.2.5"}, got[1])
}

func TestShellQuote(t *testing.T) {
	assert.Equal(t, "Microsoft.PowerToys", shellQuote("Microsoft.PowerToys"))
	assert.Equal(t, "'Windows Terminal'", shellQuote("Windows Terminal"))
	assert.Equal(t, `'it'"'"'s'`, shellQuote("it's"))
}

func TestAvailableUsesLookPath(t *testing.T) {
	sys := newFakeSystem()
	sys.tools["brew"] = true

	assert.True(t, (&Brew{sys: sys}).Available())
	assert.True(t, (&Cask{sys: sys}).Available())
	assert.False(t, (&Mas{sys: sys}).Available())
	assert.False(t, (&Winget{sys: sys}).Available())
}
