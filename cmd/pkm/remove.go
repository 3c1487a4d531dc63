package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conn-castle/pkm/internal/manifest"
	"github.com/conn-castle/pkm/internal/messages"
	"github.com/conn-castle/pkm/internal/prompt"
	"github.com/conn-castle/pkm/internal/reconcile"
)

func newRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   messages.RemoveUse,
		Short: messages.RemoveShort,
		Args:  cobra.ExactArgs(1),
		RunE:  runRemove,
	}
	cmd.Flags().StringP(flagType, "t", "", messages.RemoveFlagType)
	cmd.Flags().BoolP(flagDryRun, "n", false, messages.FlagDryRun)
	cmd.Flags().BoolP(flagKeep, "k", false, messages.RemoveFlagKeep)
	cmd.Flags().BoolP(flagYes, "y", false, messages.RemoveFlagYes)
	return cmd
}

func runRemove(cmd *cobra.Command, args []string) error {
	name := args[0]
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
	keep, err := cmd.Flags().GetBool(flagKeep)
	if err != nil {
		return err
	}
	yes, err := cmd.Flags().GetBool(flagYes)
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

	pkgType := typeFlag
	if pkgType == "" {
		detected, found := a.detectType(flat, name)
		if !found {
			return fmt.Errorf(messages.PackageNotInManifest, name)
		}
		pkgType = detected
		dimColor.Fprintf(a.out, messages.DetectedTypeFmt, pkgType)
	}
	if dryRun {
		printDryRunBanner(a.out)
	}

	if !yes && !dryRun {
		confirmed, err := prompt.NewConfirmer().Confirm(fmt.Sprintf(messages.RemoveConfirmFmt, name, pkgType))
		if err != nil {
			return err
		}
		if !confirmed {
			dimColor.Fprintln(a.out, messages.RemoveAborted)
			return nil
		}
	}

	if pkgType == manifest.CustomKey {
		return a.removeCustom(file, name, dryRun, keep)
	}

	info, err := a.lookupType(pkgType)
	if err != nil {
		return err
	}
	if !info.Impl.Available() {
		return fmt.Errorf(messages.ToolUnavailableFmt, info.Tool)
	}

	reconcile.Header(a.out, messages.ActionRemoving, pkgType, info.Color, []string{name})
	res := info.Impl.Remove([]string{name}, dryRun)
	if !res.OK {
		errLine(a.out, resultMessage(res, messages.ReconcileRemoveFailed))
		return &SilentExitError{Code: 1}
	}
	if res.Message == messages.MasManualRemoval {
		warnLine(a.out, messages.MasRemoveWarning)
	}
	okLine(a.out, messages.ReconcileDone)

	// The manifest entry may live under a different section than the
	// resolved backend (fallback syntax), so remove from where it is
	// actually declared.
	declaring, declared := flat.DeclaringSection(name)
	if !declared {
		return nil
	}
	return a.finishRemove(file, declaring, name, dryRun, keep)
}

func (a *app) removeCustom(file *manifest.File, name string, dryRun, keep bool) error {
	catalog, err := a.loadSpecs()
	if err != nil {
		return err
	}
	pkg, found := catalog.Lookup(name)
	if !found {
		return fmt.Errorf(messages.SpecMissingFmt, name)
	}

	reconcile.Header(a.out, messages.ActionRemoving, manifest.CustomKey, reconcile.CustomColor, []string{name})
	res := a.custom.Remove(pkg, dryRun)
	if !res.OK {
		errLine(a.out, resultMessage(res, messages.ReconcileRemoveFailed))
		return &SilentExitError{Code: 1}
	}
	if res.Message != "" {
		warnLine(a.out, res.Message)
	}
	okLine(a.out, messages.ReconcileDone)

	return a.finishRemove(file, manifest.CustomKey, name, dryRun, keep)
}

// finishRemove drops the manifest entry unless the run was dry or --keep
// was given.
func (a *app) finishRemove(file *manifest.File, sectionID, name string, dryRun, keep bool) error {
	if dryRun {
		return nil
	}
	if keep {
		dimColor.Fprintln(a.out, messages.KeptInManifest)
		return nil
	}

	removed := false
	if sectionID == manifest.CustomKey {
		removed = file.Doc.RemoveCustom(name)
	} else if cat, found := a.reg.CategoryOf(sectionID); found {
		removed = file.Doc.Remove(cat.Key, sectionID, name)
	}
	if !removed {
		return nil
	}
	if err := file.Save(a.out); err != nil {
		return err
	}
	dimColor.Fprintf(a.out, messages.RemovedFromManifestFmt, file.Path)
	return nil
}
