package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/conn-castle/pkm/internal/backend"
	"github.com/conn-castle/pkm/internal/manifest"
	"github.com/conn-castle/pkm/internal/messages"
	"github.com/conn-castle/pkm/internal/reconcile"
)

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   messages.ShowUse,
		Short: messages.ShowShort,
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}
	cmd.Flags().StringP(flagType, "t", "", messages.ShowFlagType)
	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	name := args[0]
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	typeFlag, err := cmd.Flags().GetString(flagType)
	if err != nil {
		return err
	}
	if typeFlag != "" && typeFlag != manifest.CustomKey {
		if _, err := a.lookupType(typeFlag); err != nil {
			return err
		}
	}

	file, err := a.loadManifest()
	if err != nil {
		return err
	}
	flat, err := a.flatten(file)
	if err != nil {
		return err
	}

	details, foundType := a.findDetails(name, typeFlag)
	if details == nil {
		if typeFlag == "" {
			dimColor.Fprintln(a.out, messages.ShowTypeHint)
		}
		return fmt.Errorf(messages.PackageNotFoundFmt, name)
	}

	_, tracked := flat.DeclaringSection(name)
	a.printDetails(details, foundType, tracked)
	return nil
}

// findDetails locates package metadata, checking the custom catalog first
// and then the standard backends in registry order.
func (a *app) findDetails(name, typeFlag string) (*backend.PackageDetails, string) {
	if typeFlag == "" || typeFlag == manifest.CustomKey {
		if catalog, err := a.loadSpecs(); err == nil {
			if pkg, found := catalog.Lookup(name); found {
				if details, installed := a.custom.Details(pkg); installed {
					return details, manifest.CustomKey
				}
			}
		}
		if typeFlag == manifest.CustomKey {
			return nil, ""
		}
	}

	ids := a.reg.IDs()
	if typeFlag != "" {
		ids = []string{typeFlag}
	}
	for _, id := range ids {
		info, found := a.reg.Lookup(id)
		if !found || !info.Impl.Available() {
			continue
		}
		if details, found := info.Impl.Details(name); found {
			return details, id
		}
	}
	return nil, ""
}

func (a *app) printDetails(details *backend.PackageDetails, foundType string, tracked bool) {
	c := reconcile.CustomColor
	version := fmt.Sprintf(messages.ShowCustomVersionFmt, details.Version)
	if foundType != manifest.CustomKey {
		if info, found := a.reg.Lookup(foundType); found {
			c = info.Color
		}
		version = fmt.Sprintf(messages.ShowVersionFmt, details.Version)
	}

	fmt.Fprintf(a.out, messages.ShowHeaderFmt,
		c.Sprint(details.Name), dimColor.Sprint(version), c.Sprint(foundType))

	trackedText := dimColor.Sprint(messages.NotTracked)
	if tracked {
		trackedText = okColor.Sprint(messages.Tracked)
	}

	field := func(label, value string) {
		if value != "" {
			fmt.Fprintf(a.out, messages.ShowFieldFmt, label, value)
		}
	}
	field(messages.ShowFieldVersion, details.Version)
	field(messages.ShowFieldType, c.Sprint(foundType))
	field(messages.ShowFieldTracked, trackedText)
	field(messages.ShowFieldSummary, details.Summary)
	field(messages.ShowFieldHomepage, details.Homepage)
	field(messages.ShowFieldLicense, details.License)
	field(messages.ShowFieldLocation, details.Location)
	field(messages.ShowFieldRequires, strings.Join(details.Requires, ", "))
	field(messages.ShowFieldBinaries, strings.Join(details.Binaries, ", "))
}
