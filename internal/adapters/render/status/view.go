package status

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bnema/social-agent-cli/internal/application"
	"github.com/charmbracelet/lipgloss"
)

type RenderOptions struct {
	Now time.Time
	// StaleAfter flags the agent when its newest post is older than this.
	StaleAfter time.Duration
}

func renderView(status application.Status, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Social Agent"),
		s.handle.Render(handleTitle(status)),
	}

	if status.Handle == "" {
		lines = append(lines, s.empty.Render("No agent configured."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	lines = append(lines,
		s.section.Render(topicsLine(status.Topics, s)),
		trackedLine(status, s),
		historyLine(status, opts, s),
	)

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func handleTitle(status application.Status) string {
	if status.Handle == "" {
		return "@?"
	}
	if status.AgentUserID == "" {
		return fmt.Sprintf("@%s (id not resolved)", status.Handle)
	}
	return fmt.Sprintf("@%s (%s)", status.Handle, status.AgentUserID)
}

func topicsLine(topics []string, s styles) string {
	label := s.key.Render("topics:")
	if len(topics) == 0 {
		return label + " " + s.warning.Render("none")
	}

	rendered := make([]string, 0, len(topics))
	for _, topic := range topics {
		rendered = append(rendered, s.topic.Render(topic))
	}

	return label + " " + strings.Join(rendered, s.meta.Render(", "))
}

func trackedLine(status application.Status, s styles) string {
	label := s.key.Render("tracked users:")
	if status.TrackedUsers == 0 {
		return label + " " + s.empty.Render("none")
	}

	percent := float64(status.ResolvedUsers) / float64(status.TrackedUsers) * 100
	bar := renderProgressBar(percent, 16, s)
	meta := s.meta.Render(fmt.Sprintf("%d/%d ids resolved", status.ResolvedUsers, status.TrackedUsers))

	return lipgloss.JoinHorizontal(lipgloss.Top, label, " ", bar, " ", meta)
}

func historyLine(status application.Status, opts RenderOptions, s styles) string {
	label := s.key.Render("history:")
	line := label + " " + s.detail.Render(fmt.Sprintf("%d posts, %d by agent", status.HistoryPosts, status.AgentPosts))

	if status.LastPostAt.IsZero() {
		return line + " " + s.empty.Render("(never posted)")
	}

	line += " " + s.meta.Render(fmt.Sprintf("(last %s)", formatAge(status.LastPostAt, opts.Now)))

	if !opts.Now.IsZero() && opts.StaleAfter > 0 && opts.Now.Sub(status.LastPostAt) > opts.StaleAfter {
		line += " " + s.warning.Render("[stale]")
	}

	return line
}

func renderProgressBar(percent float64, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := int(math.Round(float64(width) * clampPercent(percent) / 100))
	filled = min(max(filled, 0), width)

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func formatAge(at, now time.Time) string {
	if now.IsZero() {
		return at.Format(time.RFC3339)
	}

	elapsed := now.Sub(at)
	if elapsed < time.Hour {
		return "less than an hour ago"
	}
	if elapsed < 24*time.Hour {
		hours := int(math.Floor(elapsed.Hours()))
		return plural(hours, "hour") + " ago"
	}

	days := int(math.Floor(elapsed.Hours() / 24))
	return fmt.Sprintf("%s ago (%s)", plural(days, "day"), at.Format("15:04 on 02 Jan"))
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
