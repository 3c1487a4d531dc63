package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/conn-castle/pkm/internal/backend"
	"github.com/conn-castle/pkm/internal/config"
	"github.com/conn-castle/pkm/internal/manifest"
	"github.com/conn-castle/pkm/internal/messages"
	"github.com/conn-castle/pkm/internal/platform"
	"github.com/conn-castle/pkm/internal/resolver"
	"github.com/conn-castle/pkm/internal/spec"
)

// Flag names shared across subcommands.
const (
	flagManifest = "manifest"
	flagDryRun   = "dry-run"
	flagTypes    = "types"
	flagType     = "type"
	flagKeep     = "keep"
	flagYes      = "yes"
	flagVerbose  = "verbose"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          messages.RootUse,
		Short:        messages.RootShort,
		Long:         messages.RootLong,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringP(flagManifest, "m", "", messages.RootFlagManifest)
	cmd.AddCommand(
		newInitCmd(),
		newSyncCmd(),
		newInstallCmd(),
		newRemoveCmd(),
		newUpdateCmd(),
		newListCmd(),
		newStatusCmd(),
		newBootstrapCmd(),
		newShowCmd(),
		newEditCmd(),
	)
	return cmd
}

// app bundles what every subcommand needs: resolved settings, platform
// classification, and the backend registry over one execution System.
type app struct {
	out          io.Writer
	settings     *config.Settings
	cls          *platform.Classifier
	sys          *backend.RealSystem
	reg          *backend.Registry
	custom       *backend.Custom
	manifestPath string
}

func newApp(cmd *cobra.Command) (*app, error) {
	out := cmd.OutOrStdout()
	settingsPath, err := config.DefaultPath()
	if err != nil {
		return nil, err
	}
	settings, err := config.Load(settingsPath)
	if err != nil {
		return nil, err
	}
	flagValue, err := cmd.Flags().GetString(flagManifest)
	if err != nil {
		return nil, err
	}
	path, err := resolveManifestPath(flagValue, os.Getenv, settings)
	if err != nil {
		return nil, err
	}

	sys := backend.NewSystem(out)
	if settings.Shell != "" {
		shellPath := settings.Shell
		sys.ShellFunc = func() string { return shellPath }
	}

	return &app{
		out:          out,
		settings:     settings,
		cls:          platform.New(),
		sys:          sys,
		reg:          backend.NewRegistry(sys),
		custom:       backend.NewCustom(sys),
		manifestPath: path,
	}, nil
}

// resolveManifestPath applies the location precedence:
// flag, then $PKM_MANIFEST, then the settings file, then the default.
func resolveManifestPath(flagValue string, getenv func(string) string, settings *config.Settings) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if env := getenv(manifest.EnvManifestPath); env != "" {
		return env, nil
	}
	if settings.Manifest != "" {
		return settings.Manifest, nil
	}
	return manifest.DefaultPath()
}

func (a *app) loadManifest() (*manifest.File, error) {
	return manifest.Load(a.manifestPath)
}

func (a *app) loadSpecs() (*spec.Catalog, error) {
	return spec.Load(spec.PathFor(a.manifestPath, os.Getenv))
}

func (a *app) flatten(file *manifest.File) (*manifest.Flat, error) {
	return file.Doc.Flatten(a.reg.ActiveCategories(a.cls), a.cls)
}

// validTypes lists the acceptable values for a type argument.
func (a *app) validTypes() string {
	return strings.Join(append(a.reg.IDs(), manifest.CustomKey), ", ")
}

// lookupType validates a user-supplied backend identifier.
func (a *app) lookupType(id string) (*backend.Info, error) {
	info, found := a.reg.Lookup(id)
	if !found {
		return nil, fmt.Errorf(messages.UnknownBackendFmt, id, a.validTypes())
	}
	return info, nil
}

// detectType resolves the backend that services a declared package,
// honoring the fallback-override syntax.
func (a *app) detectType(flat *manifest.Flat, name string) (string, bool) {
	set := resolver.Resolve(flat, a.reg, a.cls)
	for _, id := range set.Backends() {
		for _, candidate := range set.Names(id) {
			if candidate == name {
				return id, true
			}
		}
	}
	return "", false
}

// platformLabel describes the host for status output.
func (a *app) platformLabel() string {
	if a.cls.IsWSL() {
		return a.cls.GOOS() + messages.PlatformWSLSuffix
	}
	return a.cls.GOOS()
}
