package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/conn-castle/pkm/internal/manifest"
	"github.com/conn-castle/pkm/internal/messages"
	"github.com/conn-castle/pkm/internal/reconcile"
)

func newInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   messages.InstallUse,
		Short: messages.InstallShort,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dryRun, err := cmd.Flags().GetBool(flagDryRun)
			if err != nil {
				return err
			}
			return runInstall(cmd, args[0], args[1], dryRun)
		},
	}
	cmd.Flags().BoolP(flagDryRun, "n", false, messages.FlagDryRun)
	return cmd
}

func runInstall(cmd *cobra.Command, pkgType, name string, dryRun bool) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	file, err := a.loadManifest()
	if err != nil {
		return err
	}
	if dryRun {
		printDryRunBanner(a.out)
	}

	if pkgType == manifest.CustomKey {
		return a.installCustom(file, name, dryRun)
	}

	info, err := a.lookupType(pkgType)
	if err != nil {
		return err
	}
	if !info.Impl.Available() {
		return fmt.Errorf(messages.ToolUnavailableFmt, info.Tool)
	}

	reconcile.Header(a.out, messages.ActionInstalling, pkgType, info.Color, []string{name})
	res := info.Impl.Install([]string{name}, dryRun)
	if !res.OK {
		errLine(a.out, resultMessage(res, messages.ReconcileInstallFailed))
		return &SilentExitError{Code: 1}
	}
	okLine(a.out, messages.ReconcileDone)

	if dryRun {
		return nil
	}
	cat, found := a.reg.CategoryOf(pkgType)
	if !found {
		return nil
	}
	if file.Doc.Add(cat.Key, pkgType, name) {
		if err := file.Save(a.out); err != nil {
			return err
		}
		dimColor.Fprintf(a.out, messages.AddedToManifestFmt, file.Path)
	}
	return nil
}

// installCustom runs a script install after validating the spec exists and
// any declared platform restriction matches this host.
func (a *app) installCustom(file *manifest.File, name string, dryRun bool) error {
	catalog, err := a.loadSpecs()
	if err != nil {
		return err
	}
	pkg, found := catalog.Lookup(name)
	if !found {
		return fmt.Errorf(messages.SpecMissingFmt+"; "+messages.SpecAvailableFmt,
			name, strings.Join(catalog.Names(), ", "))
	}
	if entry, declared := file.Doc.CustomEntry(name); declared && !a.cls.Matches(entry.Platforms) {
		return fmt.Errorf(messages.SpecPlatformFmt, name)
	}

	reconcile.Header(a.out, messages.ActionInstalling, manifest.CustomKey, reconcile.CustomColor, []string{name})
	if len(pkg.Depends) > 0 {
		dimColor.Fprintf(a.out, messages.SpecDependsLineFmt, strings.Join(pkg.Depends, ", "))
	}
	res := a.custom.Install(pkg, dryRun)
	if !res.OK {
		errLine(a.out, resultMessage(res, messages.ReconcileInstallFailed))
		return &SilentExitError{Code: 1}
	}
	okLine(a.out, messages.ReconcileDone)

	if dryRun {
		return nil
	}
	if file.Doc.AddCustom(name) {
		if err := file.Save(a.out); err != nil {
			return err
		}
		dimColor.Fprintf(a.out, messages.AddedToManifestFmt, file.Path)
	}
	return nil
}
