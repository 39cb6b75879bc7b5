package main

import (
	"fmt"
	"strings"

	"github.com/milk9111/battingorder/lineup"
	"go.uber.org/zap"
	"golang.design/x/clipboard"
)

// initClipboard reports whether the system clipboard is usable. It fails on
// headless systems and when cgo is disabled.
func initClipboard(logger *zap.Logger) bool {
	if err := clipboard.Init(); err != nil {
		logger.Info("clipboard unavailable, copy disabled", zap.Error(err))
		return false
	}
	return true
}

func writeClipboard(text string) {
	clipboard.Write(clipboard.FmtText, []byte(text))
}

// formatLineup renders the working order one numbered player per line.
func formatLineup(m *lineup.Manager) string {
	var sb strings.Builder
	cur := m.Current()
	for i := 0; i < cur.Len(); i++ {
		name := string(cur.At(i))
		if p, ok := m.Roster().Lookup(cur.At(i)); ok {
			name = p.DisplayName
		}
		fmt.Fprintf(&sb, "%2d. %s\n", i+1, name)
	}
	return sb.String()
}
