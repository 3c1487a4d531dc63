package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/conn-castle/pkm/internal/manifest"
	"github.com/conn-castle/pkm/internal/messages"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.StatusUse,
		Short: messages.StatusShort,
		Args:  cobra.NoArgs,
		RunE:  runStatus,
	}
}

func runStatus(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
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

	fmt.Fprintln(a.out, stylePanelTitle.Render(messages.StatusTitle))
	fmt.Fprintf(a.out, messages.ManifestPathFmt, file.Path)
	fmt.Fprintf(a.out, messages.ShellLineFmt, a.sys.Shell())
	fmt.Fprintf(a.out, messages.PlatformLineFmt, a.platformLabel())

	for _, cat := range a.reg.ActiveCategories(a.cls) {
		t := table.New().
			Border(lipgloss.NormalBorder()).
			BorderStyle(styleTableBorder).
			Headers(messages.StatusColManager, messages.StatusColTool,
				messages.StatusColAvailable, messages.StatusColPackages).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == -1 {
					return styleTableHeader
				}
				return styleTableCell
			})

		for _, id := range cat.Members {
			if id == manifest.CustomKey {
				t.Row(manifest.CustomKey, messages.StatusCustomTool,
					okColor.Sprint("✓"), strconv.Itoa(len(flat.Section(manifest.CustomKey))))
				continue
			}
			info, found := a.reg.Lookup(id)
			if !found {
				continue
			}
			mark := errColor.Sprint("✗")
			if info.Impl.Available() {
				mark = okColor.Sprint("✓")
			}
			t.Row(info.Color.Sprint(id), info.Tool, mark, strconv.Itoa(len(flat.Section(id))))
		}

		printCategoryHeader(a.out, cat.Title)
		fmt.Fprintln(a.out, t.Render())
	}
	return nil
}
