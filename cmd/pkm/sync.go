package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/conn-castle/pkm/internal/messages"
	"github.com/conn-castle/pkm/internal/reconcile"
	"github.com/conn-castle/pkm/internal/resolver"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   messages.InitUse,
		Short: messages.InitShort,
		Args:  cobra.NoArgs,
		RunE:  runSync,
	}
	addSyncFlags(cmd)
	return cmd
}

// newSyncCmd is the alias spelling of init for rerunning reconciliation.
func newSyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   messages.SyncUse,
		Short: messages.SyncShort,
		Args:  cobra.NoArgs,
		RunE:  runSync,
	}
	addSyncFlags(cmd)
	return cmd
}

func addSyncFlags(cmd *cobra.Command) {
	cmd.Flags().StringP(flagTypes, "t", "", messages.FlagTypes)
	cmd.Flags().BoolP(flagDryRun, "n", false, messages.FlagDryRun)
}

func runSync(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	dryRun, err := cmd.Flags().GetBool(flagDryRun)
	if err != nil {
		return err
	}
	typesFlag, err := cmd.Flags().GetString(flagTypes)
	if err != nil {
		return err
	}

	file, err := a.loadManifest()
	if err != nil {
		return err
	}
	catalog, err := a.loadSpecs()
	if err != nil {
		return err
	}
	flat, err := a.flatten(file)
	if err != nil {
		return err
	}

	set := resolver.Resolve(flat, a.reg, a.cls)
	if typesFlag != "" {
		set = set.Filter(splitTypes(typesFlag))
	}

	fmt.Fprintf(a.out, messages.ManifestPathFmt, file.Path)
	fmt.Fprintf(a.out, messages.TypesLineFmt, strings.Join(a.reg.Reorder(set.Backends()), ", "))
	if dryRun {
		printDryRunBanner(a.out)
	}

	summary := reconcile.New(a.reg, a.custom, a.out).Sync(set, catalog, dryRun)

	fmt.Fprintln(a.out)
	printCompletion(a.out, summary.Errors)
	if !summary.AllOK() {
		return &SilentExitError{Code: 1}
	}
	return nil
}

// splitTypes parses a comma-separated --types value.
func splitTypes(value string) []string {
	var ids []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			ids = append(ids, trimmed)
		}
	}
	return ids
}
