// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"
	"time"
)

const (
	pageIndent  = "  "
	pageDivider = "──────────────────────────────────────────────────────"
	quitHint    = "q / ctrl+c: quit"
)

// renderPage frames body between two dividers under a title. Every body
// line is indented; an empty body renders a single dash.
func renderPage(title, body, hotKeys string) string {
	lines := []string{titleStyle.Render(title), pageIndent + pageDivider, ""}

	if strings.TrimSpace(body) == "" {
		lines = append(lines, pageIndent+"-")
	} else {
		for _, line := range strings.Split(strings.TrimRight(body, "\n"), "\n") {
			lines = append(lines, pageIndent+line)
		}
	}

	lines = append(lines, "", pageIndent+pageDivider)
	if strings.TrimSpace(hotKeys) != "" {
		lines = append(lines, pageIndent+helpStyle.Render(hotKeys))
	}
	lines = append(lines, helpStyle.Render(pageIndent+quitHint))

	return strings.Join(lines, "\n")
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return t.Local().Format("2006-01-02 15:04:05")
}

// fitText truncates v to max runes, marking the cut with an ellipsis.
func fitText(v string, max int) string {
	runes := []rune(v)
	if max <= 0 || len(runes) <= max {
		return v
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
