package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/conn-castle/pkm/internal/backend"
	"github.com/conn-castle/pkm/internal/manifest"
	"github.com/conn-castle/pkm/internal/messages"
	"github.com/conn-castle/pkm/internal/reconcile"
	"github.com/conn-castle/pkm/internal/resolver"
	"github.com/conn-castle/pkm/internal/spec"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   messages.ListUse,
		Short: messages.ListShort,
		Args:  cobra.NoArgs,
		RunE:  runList,
	}
	cmd.Flags().BoolP(flagVerbose, "v", false, messages.ListFlagVerbose)
	cmd.Flags().StringP(flagTypes, "t", "", messages.FlagTypes)
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	verbose, err := cmd.Flags().GetBool(flagVerbose)
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
	flat, err := a.flatten(file)
	if err != nil {
		return err
	}
	catalog, err := a.loadSpecs()
	if err != nil {
		return err
	}
	set := resolver.Resolve(flat, a.reg, a.cls)

	fmt.Fprintf(a.out, messages.ManifestPathFmt, file.Path)
	if !verbose {
		dimColor.Fprintln(a.out, messages.ListTrackedHint)
	}
	a.printLegend(verbose)

	var only map[string]bool
	if typesFlag != "" {
		only = map[string]bool{}
		for _, id := range splitTypes(typesFlag) {
			only[id] = true
		}
	}

	for _, cat := range a.reg.ActiveCategories(a.cls) {
		headerPrinted := false
		for _, id := range cat.Members {
			if only != nil && !only[id] {
				continue
			}
			block := a.renderBackendList(set, catalog, id, verbose)
			if block == "" {
				continue
			}
			if !headerPrinted {
				printCategoryHeader(a.out, cat.Title)
				headerPrinted = true
			}
			fmt.Fprint(a.out, block)
		}
	}
	return nil
}

func (a *app) printLegend(verbose bool) {
	legend := dimColor.Sprint(messages.ListLegend) + " " +
		okColor.Sprint(messages.ListLegendInstalled) + " " +
		errColor.Sprint(messages.ListLegendMissing)
	if verbose {
		legend += " " + dimColor.Sprint(messages.ListLegendUntracked)
	}
	fmt.Fprintln(a.out, legend)
}

// renderBackendList builds the block for one backend: a colored header with
// the tracked count, then one line per package. An empty string means the
// block should be omitted entirely.
func (a *app) renderBackendList(set *resolver.Set, catalog *spec.Catalog, id string, verbose bool) string {
	if id == manifest.CustomKey {
		return a.renderCustomList(set.Names(manifest.CustomKey), catalog, verbose)
	}
	info, found := a.reg.Lookup(id)
	if !found {
		return ""
	}
	tracked := set.Names(id)
	if len(tracked) == 0 && !verbose {
		return ""
	}

	var b strings.Builder
	if !info.Impl.Available() {
		if len(tracked) == 0 {
			return ""
		}
		fmt.Fprintf(&b, messages.ListHeaderFmt, info.Color.Sprint(id), len(tracked))
		fmt.Fprintf(&b, messages.ListLineFmt, dimColor.Sprint(messages.ListNotAvailable))
		return b.String()
	}

	records := info.Impl.ListInstalled()
	membership := reconcile.MembershipSet(info)
	trackedSet := make(map[string]bool, len(tracked)*2)
	for _, name := range tracked {
		trackedSet[name] = true
		trackedSet[strings.ToLower(name)] = true
	}

	names := append([]string(nil), tracked...)
	if verbose {
		for _, rec := range records {
			label := rec.Name
			if rec.DisplayName != "" {
				label = rec.DisplayName
			}
			if !trackedSet[label] && !trackedSet[strings.ToLower(label)] {
				names = append(names, label)
			}
		}
	}
	if len(names) == 0 {
		return ""
	}
	sort.Strings(names)

	fmt.Fprintf(&b, messages.ListHeaderFmt, info.Color.Sprint(id), len(tracked))
	for _, name := range names {
		switch {
		case !membership.Contains(name):
			fmt.Fprintf(&b, messages.ListLineFmt, errColor.Sprint(name))
		case verbose && !trackedSet[name] && !trackedSet[strings.ToLower(name)]:
			fmt.Fprintf(&b, messages.ListLineFmt, dimColor.Sprint(displayLabel(records, name, info.MatchDisplayNames)))
		default:
			fmt.Fprintf(&b, messages.ListLineFmt, okColor.Sprint(displayLabel(records, name, info.MatchDisplayNames)))
		}
	}
	return b.String()
}

func (a *app) renderCustomList(tracked []string, catalog *spec.Catalog, verbose bool) string {
	trackedSet := make(map[string]bool, len(tracked))
	for _, name := range tracked {
		trackedSet[name] = true
	}
	names := append([]string(nil), tracked...)
	if verbose {
		for _, name := range catalog.Names() {
			if !trackedSet[name] {
				names = append(names, name)
			}
		}
	}
	if len(names) == 0 {
		return ""
	}
	sort.Strings(names)

	var pkgs []spec.Package
	for _, name := range names {
		if pkg, found := catalog.Lookup(name); found {
			pkgs = append(pkgs, pkg)
		}
	}
	installed := a.custom.InstalledSet(pkgs)

	var b strings.Builder
	fmt.Fprintf(&b, messages.ListHeaderFmt, reconcile.CustomColor.Sprint(manifest.CustomKey), len(tracked))
	for _, name := range names {
		switch {
		case !installed[name]:
			fmt.Fprintf(&b, messages.ListLineFmt, errColor.Sprint(name))
		case verbose && !trackedSet[name]:
			fmt.Fprintf(&b, messages.ListLineFmt, dimColor.Sprint(name))
		default:
			fmt.Fprintf(&b, messages.ListLineFmt, okColor.Sprint(name))
		}
	}
	return b.String()
}

// displayLabel resolves a declared name to the installed package's human
// label. Winget manifests may carry either the package id or the display
// name, matched case-insensitively.
func displayLabel(records []backend.PackageRecord, name string, insensitive bool) string {
	for _, rec := range records {
		match := rec.Name == name || rec.DisplayName == name
		if !match && insensitive {
			match = strings.EqualFold(rec.Name, name) || strings.EqualFold(rec.DisplayName, name)
		}
		if match {
			if rec.DisplayName != "" {
				return rec.DisplayName
			}
			return rec.Name
		}
	}
	return name
}
