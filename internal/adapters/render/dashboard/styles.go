package dashboard

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title     lipgloss.Style
	header    lipgloss.Style
	credits   lipgloss.Style
	tabActive lipgloss.Style
	tabIdle   lipgloss.Style
	question  lipgloss.Style
	answer    lipgloss.Style
	agentKey  lipgloss.Style
	detail    lipgloss.Style
	notice    lipgloss.Style
	empty     lipgloss.Style
	hint      lipgloss.Style
	errText   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		header:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		credits:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220")),
		tabActive: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).Underline(true),
		tabIdle:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		question:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("250")),
		answer:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		agentKey:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("159")),
		detail:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		notice:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		empty:     lipgloss.NewStyle().Faint(true),
		hint:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		errText:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}
