package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conn-castle/pkm/internal/messages"
)

func newBootstrapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   messages.BootstrapUse,
		Short: messages.BootstrapShort,
		Args:  cobra.MaximumNArgs(1),
		RunE:  runBootstrap,
	}
	cmd.Flags().BoolP(flagDryRun, "n", false, messages.FlagDryRun)
	return cmd
}

func runBootstrap(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	dryRun, err := cmd.Flags().GetBool(flagDryRun)
	if err != nil {
		return err
	}
	if dryRun {
		printDryRunBanner(a.out)
	}

	if len(args) == 1 {
		return a.bootstrapOne(args[0], dryRun)
	}
	return a.bootstrapAll(dryRun)
}

func (a *app) bootstrapOne(id string, dryRun bool) error {
	info, err := a.lookupType(id)
	if err != nil {
		return err
	}
	if len(info.Bootstrap) == 0 {
		return fmt.Errorf(messages.BootstrapNoCommandFmt, id)
	}
	if info.Impl.Available() {
		okColor.Fprintf(a.out, messages.BootstrapPresentFmt, id, info.Tool)
		return nil
	}
	fmt.Fprintf(a.out, messages.BootstrapInstallFmt, id)
	res := a.reg.InstallSelf(info, a.cls.GOOS(), dryRun)
	if !res.OK {
		return fmt.Errorf(messages.BootstrapFailedFmt, id, res.Message)
	}
	okColor.Fprintf(a.out, messages.BootstrapDoneFmt, id)
	return nil
}

// bootstrapAll installs every missing tool that has an install command.
// One failing installer never stops the rest.
func (a *app) bootstrapAll(dryRun bool) error {
	fmt.Fprintln(a.out, messages.BootstrapAllHeader)

	errs := 0
	for _, id := range a.reg.IDs() {
		info, found := a.reg.Lookup(id)
		if !found || len(info.Bootstrap) == 0 {
			continue
		}
		if info.Impl.Available() {
			okColor.Fprintf(a.out, messages.BootstrapPresentFmt, id, info.Tool)
			continue
		}
		fmt.Fprintf(a.out, messages.BootstrapInstallFmt, id)
		res := a.reg.InstallSelf(info, a.cls.GOOS(), dryRun)
		if !res.OK {
			errLine(a.out, fmt.Sprintf(messages.BootstrapFailedFmt, id, res.Message))
			errs++
			continue
		}
		okColor.Fprintf(a.out, messages.BootstrapDoneFmt, id)
	}
	if errs > 0 {
		return &SilentExitError{Code: 1}
	}
	return nil
}
