package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"

	"github.com/conn-castle/pkm/internal/backend"
	"github.com/conn-castle/pkm/internal/messages"
)

var (
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorCyan   = lipgloss.Color("36")
	colorDim    = lipgloss.Color("240")

	stylePanelOK = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGreen).
			Foreground(colorGreen).
			Padding(0, 1)

	stylePanelWarn = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorYellow).
			Foreground(colorYellow).
			Padding(0, 1)

	stylePanelTitle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorCyan).
			Bold(true).
			Padding(0, 1)

	styleCategory    = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleTableBorder = lipgloss.NewStyle().Foreground(colorDim)
	styleTableHeader = lipgloss.NewStyle().Foreground(colorDim).Bold(true).Padding(0, 1)
	styleTableCell   = lipgloss.NewStyle().Padding(0, 1)
)

var (
	okColor   = color.New(color.FgGreen)
	errColor  = color.New(color.FgRed)
	warnColor = color.New(color.FgYellow)
	dimColor  = color.New(color.Faint)
)

func printDryRunBanner(out io.Writer) {
	fmt.Fprintln(out, stylePanelWarn.Render(messages.DryRunBanner))
}

// printCompletion renders the end-of-sync panel: green when clean, yellow
// with an error count otherwise.
func printCompletion(out io.Writer, errs int) {
	if errs == 0 {
		fmt.Fprintln(out, stylePanelOK.Render(messages.SyncCompletedOK))
		return
	}
	fmt.Fprintln(out, stylePanelWarn.Render(fmt.Sprintf(messages.SyncCompletedErrsFmt, errs)))
}

func printCategoryHeader(out io.Writer, title string) {
	fmt.Fprintf(out, messages.CategoryHeaderFmt, styleCategory.Render(title))
}

func okLine(out io.Writer, msg string) {
	okColor.Fprintf(out, messages.OkLineFmt, msg)
}

func errLine(out io.Writer, msg string) {
	errColor.Fprintf(out, messages.ErrLineFmt, msg)
}

func warnLine(out io.Writer, msg string) {
	warnColor.Fprintf(out, messages.WarnLineFmt, msg)
}

// resultMessage picks the backend-provided message or a fallback.
func resultMessage(res backend.Result, fallback string) string {
	if res.Message != "" {
		return res.Message
	}
	return fallback
}
