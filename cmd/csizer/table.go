package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/csizer/layout"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA"))

	kindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	paddingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	sizeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))
)

// layoutTable formats one row per member plus padding rows and a summary.
func layoutTable(info layout.Info) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%8s %6s %5s  %s", "offset", "size", "align", "member")))
	b.WriteByte('\n')

	for _, f := range info.Fields {
		if f.Padding > 0 {
			b.WriteString(paddingStyle.Render(fmt.Sprintf("%8d %6d %5s  (padding)", f.Offset-f.Padding, f.Padding, "")))
			b.WriteByte('\n')
		}
		b.WriteString(fmt.Sprintf("%8d %6d %5d  ", f.Offset, f.Size, f.Align))
		b.WriteString(kindStyle.Render(fmt.Sprintf("f%d %s", f.Index, f.Kind)))
		b.WriteByte('\n')
	}
	if info.TailPadding > 0 {
		b.WriteString(paddingStyle.Render(fmt.Sprintf("%8d %6d %5s  (tail padding)", info.Size-info.TailPadding, info.TailPadding, "")))
		b.WriteByte('\n')
	}

	b.WriteString(sizeStyle.Render(fmt.Sprintf("size %d, align %d, padding %d", info.Size, info.Align, info.Padding())))
	return b.String()
}
