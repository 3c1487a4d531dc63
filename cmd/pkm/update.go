package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/conn-castle/pkm/internal/manifest"
	"github.com/conn-castle/pkm/internal/messages"
	"github.com/conn-castle/pkm/internal/reconcile"
	"github.com/conn-castle/pkm/internal/resolver"
)

func newUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   messages.UpdateUse,
		Short: messages.UpdateShort,
		Args:  cobra.MaximumNArgs(1),
		RunE:  runUpdate,
	}
	cmd.Flags().StringP(flagType, "t", "", messages.RemoveFlagType)
	cmd.Flags().BoolP(flagDryRun, "n", false, messages.FlagDryRun)
	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	typeFlag, err := cmd.Flags().GetString(flagType)
	if err != nil {
		return err
	}
	dryRun, err := cmd.Flags().GetBool(flagDryRun)
	if err != nil {
		return err
	}

	file, err := a.loadManifest()
	if err != nil {
		return err
	}
	flat, err := a.flatten(file)
	if err != nil {
		return err
	}
	if dryRun {
		printDryRunBanner(a.out)
	}

	if len(args) == 1 {
		return a.updateOne(flat, args[0], typeFlag, dryRun)
	}
	return a.updateAll(flat, dryRun)
}

func (a *app) updateOne(flat *manifest.Flat, name, typeFlag string, dryRun bool) error {
	pkgType := typeFlag
	if pkgType == "" {
		detected, found := a.detectType(flat, name)
		if !found {
			// Not declared; fall back to probing the installed sets so
			// untracked packages can still be updated.
			detected, found = a.scanInstalled(name)
		}
		if !found {
			return fmt.Errorf(messages.PackageNotInManifest, name)
		}
		pkgType = detected
		dimColor.Fprintf(a.out, messages.DetectedTypeFmt, pkgType)
	}

	if pkgType == manifest.CustomKey {
		return a.updateCustom(name, dryRun)
	}

	info, err := a.lookupType(pkgType)
	if err != nil {
		return err
	}
	if !info.Impl.Available() {
		return fmt.Errorf(messages.ToolUnavailableFmt, info.Tool)
	}

	reconcile.Header(a.out, messages.ActionUpdating, pkgType, info.Color, []string{name})
	res := info.Impl.Update([]string{name}, dryRun)
	if !res.OK {
		errLine(a.out, resultMessage(res, messages.ReconcileUpdateFailed))
		return &SilentExitError{Code: 1}
	}
	okLine(a.out, messages.ReconcileDone)
	return nil
}

// updateCustom reruns the install script; scripts carry no version notion,
// so updating means reinstalling.
func (a *app) updateCustom(name string, dryRun bool) error {
	catalog, err := a.loadSpecs()
	if err != nil {
		return err
	}
	pkg, found := catalog.Lookup(name)
	if !found {
		return fmt.Errorf(messages.SpecMissingFmt, name)
	}
	reconcile.Header(a.out, messages.ActionUpdating, manifest.CustomKey, reconcile.CustomColor, []string{name})
	res := a.custom.Install(pkg, dryRun)
	if !res.OK {
		errLine(a.out, resultMessage(res, messages.ReconcileUpdateFailed))
		return &SilentExitError{Code: 1}
	}
	okLine(a.out, messages.ReconcileDone)
	return nil
}

// updateAll walks every backend the manifest declares, custom excluded,
// and runs its update-everything operation. Failures are isolated.
func (a *app) updateAll(flat *manifest.Flat, dryRun bool) error {
	set := resolver.Resolve(flat, a.reg, a.cls)
	var ids []string
	for _, id := range a.reg.Reorder(set.Backends()) {
		if id != manifest.CustomKey {
			ids = append(ids, id)
		}
	}
	fmt.Fprintf(a.out, messages.UpdatingLineFmt, strings.Join(ids, ", "))

	errs := 0
	for _, id := range ids {
		info, found := a.reg.Lookup(id)
		if !found {
			continue
		}
		fmt.Fprintf(a.out, messages.ReconcileHeaderNoPkgsFmt,
			info.Color.Sprint("▶ "+messages.ActionUpdating), info.Color.Sprint(id))
		if !info.Impl.Available() {
			errLine(a.out, fmt.Sprintf(messages.ReconcileUnavailableFmt, id, info.Tool))
			errs++
			continue
		}
		res := info.Impl.Update(nil, dryRun)
		if !res.OK {
			errLine(a.out, resultMessage(res, messages.ReconcileUpdateFailed))
			errs++
			continue
		}
		okLine(a.out, messages.ReconcileDone)
	}
	if errs > 0 {
		return &SilentExitError{Code: 1}
	}
	return nil
}

// scanInstalled finds the first available backend that already has name in
// its installed set.
func (a *app) scanInstalled(name string) (string, bool) {
	for _, id := range a.reg.IDs() {
		info, found := a.reg.Lookup(id)
		if !found || !info.Impl.Available() {
			continue
		}
		if reconcile.MembershipSet(info).Contains(name) {
			return id, true
		}
	}
	return "", false
}
