package dashboard

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kugyai/kugy-cli/internal/domain"
)

func (m *Model) View() string {
	s := newStyles()

	switch m.view {
	case viewResolving:
		return fmt.Sprintf("\n %s Resolving session...\n", m.spin.View())
	case viewLogin:
		return m.loginView(s)
	default:
		return m.dashboardView(s)
	}
}

func (m *Model) loginView(s styles) string {
	lines := []string{
		s.title.Render("Kugy AI"),
		s.header.Render("Multi-Agent AI Platform"),
		"",
		fmt.Sprintf("Guest users receive %d free credits; registered users receive %d.", domain.GuestCreditGrant, domain.RegisteredCreditGrant),
		"",
		"  g  continue as guest",
		"  q  quit",
		"",
		"Sign in with Google by opening: " + s.detail.Render(m.googleURL),
	}

	if m.loading {
		lines = append(lines, "", m.spin.View()+" signing in...")
	}
	if m.notice != "" {
		lines = append(lines, "", s.notice.Render(m.notice))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...) + "\n"
}

func (m *Model) dashboardView(s styles) string {
	lines := []string{
		m.headerLine(s),
		m.tabLine(s),
		"",
	}

	lines = append(lines, m.tabContent(s)...)
	lines = append(lines, "", m.input.View())

	if m.loading {
		lines = append(lines, m.spin.View()+" working...")
	}
	if m.notice != "" {
		lines = append(lines, "", s.notice.Render(m.notice), s.hint.Render("press any key to dismiss"))
	}

	lines = append(lines, "", s.hint.Render("Tab switch  Enter send  Ctrl+L logout  Ctrl+C quit"))
	return lipgloss.JoinVertical(lipgloss.Left, lines...) + "\n"
}

func (m *Model) headerLine(s styles) string {
	name := ""
	if m.session.Identity != nil {
		name = m.session.Identity.Name
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		s.title.Render("Kugy AI"),
		"  ",
		s.credits.Render(m.session.Credits+" credits"),
		"  ",
		s.header.Render(name),
	)
}

func (m *Model) tabLine(s styles) string {
	parts := make([]string, 0, 4)
	for _, tab := range []Tab{TabChat, TabAgents, TabImage, TabSim} {
		if tab == m.tab {
			parts = append(parts, s.tabActive.Render(tab.label()))
		} else {
			parts = append(parts, s.tabIdle.Render(tab.label()))
		}
	}
	return strings.Join(parts, "   ")
}

func (m *Model) tabContent(s styles) []string {
	switch m.tab {
	case TabChat:
		return m.chatContent(s)
	case TabAgents:
		return m.agentContent(s)
	case TabImage:
		return m.imageContent(s)
	default:
		return m.simContent(s)
	}
}

func (m *Model) chatContent(s styles) []string {
	lines := make([]string, 0, 8)

	if response := m.deps.Chat.Response(); response != "" {
		style := s.answer
		if strings.HasPrefix(response, "Error: ") {
			style = s.errText
		}
		lines = append(lines, style.Render(response), "")
	}

	window := m.deps.Chat.Window()
	if len(window.Records) == 0 {
		lines = append(lines, s.empty.Render("No chat history yet."))
		return lines
	}

	lines = append(lines, s.header.Render(fmt.Sprintf("Recent conversations (%d total)", window.Total)))
	for _, record := range window.Records {
		lines = append(lines,
			s.question.Render("Q: "+record.Question),
			s.answer.Render("A: "+record.Answer),
			s.detail.Render(record.CreatedAt),
		)
	}

	return lines
}

func (m *Model) agentContent(s styles) []string {
	result := m.deps.Agents.Result()
	if result == nil {
		return []string{s.empty.Render("Submit a task to fan it out across agents.")}
	}
	if result.Failed {
		return []string{s.errText.Render(result.Message)}
	}

	lines := []string{
		s.question.Render("Final answer"),
		s.answer.Render(result.FinalAnswer),
	}
	keys := make([]string, 0, len(result.Agents))
	for key := range result.Agents {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		agent := result.Agents[key]
		lines = append(lines, "",
			s.agentKey.Render(fmt.Sprintf("%s (%s, %s)", agent.AgentName, key, agent.Role)),
			s.answer.Render(agent.Result),
		)
	}
	if len(result.ModelsUsed) > 0 {
		lines = append(lines, "", s.detail.Render("models: "+strings.Join(result.ModelsUsed, ", ")))
	}

	return lines
}

func (m *Model) imageContent(s styles) []string {
	image := m.deps.Image.Image()
	if image == nil {
		return []string{s.empty.Render("Describe an image to generate it.")}
	}

	return []string{
		s.question.Render("Prompt: " + image.Prompt),
		s.answer.Render(fmt.Sprintf("Generated %d bytes of PNG data.", base64DecodedLen(image.PNGBase64))),
		s.detail.Render("Saved with `kugy image --out " + domain.DefaultImageFilename + "`"),
	}
}

func (m *Model) simContent(s styles) []string {
	if m.sim == "" {
		return []string{s.empty.Render("Type a country and press Enter to list services.")}
	}
	return []string{s.answer.Render(m.sim)}
}

func base64DecodedLen(encoded string) int {
	return len(encoded) / 4 * 3
}
