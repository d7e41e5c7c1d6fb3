package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/koder-native/kterm/internal/application/usecase"
	"github.com/koder-native/kterm/internal/domain/entity"
	"github.com/koder-native/kterm/internal/infrastructure/config"
)

// SessionRenderer draws stored sessions and their restore reports.
type SessionRenderer struct {
	theme *Theme
}

// NewSessionRenderer creates a new session renderer with the given theme.
func NewSessionRenderer(theme *Theme) *SessionRenderer {
	return &SessionRenderer{theme: theme}
}

// Render draws the window header followed by one tree per tab.
func (r *SessionRenderer) Render(doc *entity.SessionDocument) string {
	var b strings.Builder

	size := fmt.Sprintf("%dx%d", doc.Width, doc.Height)
	if doc.Maximized {
		size += " maximized"
	}
	b.WriteString(fmt.Sprintf("%s %s %s\n",
		r.theme.Highlight.Render(IconSession),
		r.theme.Title.Render("Window"),
		r.theme.Subtle.Render(size)))

	for i, tab := range doc.Tabs {
		label := fmt.Sprintf("Tab %d", i)
		style := r.theme.Normal
		if i == doc.ActiveTab {
			label += " (active)"
			style = r.theme.Highlight
		}
		b.WriteString(fmt.Sprintf("%s %s\n", r.theme.Subtle.Render(IconTab), style.Render(label)))
		r.renderNode(&b, tab, "", true)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r *SessionRenderer) renderNode(b *strings.Builder, node *entity.NodeSnapshot, prefix string, last bool) {
	branch, indent := "├── ", "│   "
	if last {
		branch, indent = "└── ", "    "
	}
	connector := r.theme.Subtle.Render(prefix + branch)

	if node == nil {
		b.WriteString(connector + r.theme.WarningStyle.Render("(empty)") + "\n")
		return
	}
	if node.IsSplit() {
		icon := IconSplitH
		if node.Orientation == entity.Vertical.String() {
			icon = IconSplitV
		}
		pos := "even"
		if node.Position > 0 {
			pos = fmt.Sprintf("%dpx", node.Position)
		}
		b.WriteString(fmt.Sprintf("%s%s %s %s\n", connector,
			r.theme.Subtle.Render(icon),
			r.theme.Normal.Render(node.Orientation),
			r.theme.Subtle.Render(pos)))
		r.renderNode(b, node.Start, prefix+indent, false)
		r.renderNode(b, node.End, prefix+indent, true)
		return
	}

	b.WriteString(fmt.Sprintf("%s%s %s %s\n", connector,
		r.theme.Highlight.Render(kindIcon(node.Type)),
		r.theme.Normal.Render(node.Type),
		r.theme.Subtle.Render(node.Token())))
}

func kindIcon(nodeType string) string {
	switch nodeType {
	case entity.NodeTypeExplorer:
		return IconFolder
	case entity.NodeTypeBrowser:
		return IconGlobe
	default:
		return IconTerminal
	}
}

// RenderReport draws the outcome of a restore dry run.
func (r *SessionRenderer) RenderReport(report *usecase.SessionReport) string {
	lines := make([]string, 0, len(report.Issues)+1)
	if report.Fresh() {
		lines = append(lines, fmt.Sprintf("%s %s",
			r.theme.WarningStyle.Render(IconWarning),
			r.theme.Normal.Render("session restores as a fresh window")))
	} else {
		lines = append(lines, fmt.Sprintf("%s %s",
			r.theme.SuccessStyle.Render(IconCheck),
			r.theme.Normal.Render(fmt.Sprintf("%d tabs, %d panes restorable", report.Tabs, report.Panes))))
	}
	for _, issue := range report.Issues {
		lines = append(lines, fmt.Sprintf("  %s %s",
			r.theme.WarningStyle.Render(IconWarning),
			r.theme.Subtle.Render(issue)))
	}
	return strings.Join(lines, "\n")
}

// RenderKeys draws configuration keys grouped by section.
func (r *SessionRenderer) RenderKeys(keys []config.KeyInfo) string {
	var b strings.Builder
	section := ""
	keyWidth := 0
	for _, k := range keys {
		keyWidth = max(keyWidth, lipgloss.Width(k.Key))
	}
	keyStyle := r.theme.HelpKey.Width(keyWidth + 2)

	for _, k := range keys {
		if k.Section != section {
			if section != "" {
				b.WriteString("\n")
			}
			section = k.Section
			b.WriteString(r.theme.Title.Render(section) + "\n")
		}
		line := keyStyle.Render(k.Key) + r.theme.Subtle.Render(k.Type+"  ") + r.theme.Normal.Render(k.Default)
		b.WriteString(line + "\n")
		desc := k.Description
		if len(k.Values) > 0 {
			desc += " (" + strings.Join(k.Values, ", ") + ")"
		}
		if k.Range != "" {
			desc += " [" + k.Range + "]"
		}
		b.WriteString(strings.Repeat(" ", keyWidth+2) + r.theme.HelpDesc.Render(desc) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
