// Package cli holds shared helpers for the canopy command line:
// colored status rendering and score-file loading.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/canopyhq/canopy/pkg/domain"
	"github.com/muesli/termenv"
)

func statusHex(st domain.Status) string {
	switch st {
	case domain.StatusGreen:
		return "#22c55e"
	case domain.StatusAmber:
		return "#f59e0b"
	default:
		return "#ef4444"
	}
}

// RenderStatus colors the band name for terminal output. termenv
// degrades to plain text when stdout is not a terminal.
func RenderStatus(st domain.Status) string {
	p := termenv.ColorProfile()
	return termenv.String(string(st)).Foreground(p.Color(statusHex(st))).String()
}

// RenderSnapshot writes an indented tree view of the snapshot: one line
// per node with its score and colored band, "no data" for unscored
// nodes.
func RenderSnapshot(w io.Writer, defs []domain.TreeNode, snap *domain.Snapshot) {
	children := make(map[string][]string)
	root := ""
	for _, n := range defs {
		if n.ParentID == "" {
			root = n.ID
			continue
		}
		children[n.ParentID] = append(children[n.ParentID], n.ID)
	}
	labels := make(map[string]string, len(defs))
	for _, n := range defs {
		labels[n.ID] = n.Label
	}

	var walk func(id string, depth int)
	walk = func(id string, depth int) {
		indent := strings.Repeat("  ", depth)
		label := labels[id]
		if label == "" {
			label = id
		}
		if sn, ok := snap.Nodes[id]; ok {
			fmt.Fprintf(w, "%s%s  %.1f %s\n", indent, label, sn.Score, RenderStatus(sn.Status))
		} else {
			fmt.Fprintf(w, "%s%s  no data\n", indent, label)
		}
		for _, c := range children[id] {
			walk(c, depth+1)
		}
	}
	if root != "" {
		walk(root, 0)
	}
}

// RenderTrace writes a root-cause path as a single arrow-separated line.
func RenderTrace(w io.Writer, path []domain.ScoredNode) {
	parts := make([]string, len(path))
	for i, sn := range path {
		parts[i] = fmt.Sprintf("%s (%.1f %s)", sn.ID, sn.Score, RenderStatus(sn.Status))
	}
	fmt.Fprintln(w, strings.Join(parts, " -> "))
}

// RenderAlerts writes the alert list, one alert per line with its trace.
func RenderAlerts(w io.Writer, alerts []domain.AlertEntry) {
	if len(alerts) == 0 {
		fmt.Fprintln(w, "no alerts")
		return
	}
	for _, a := range alerts {
		fmt.Fprintf(w, "%s  %.1f %s\n", a.Node.ID, a.Node.Score, RenderStatus(a.Node.Status))
		fmt.Fprint(w, "  trace: ")
		RenderTrace(w, a.Trace)
	}
}
