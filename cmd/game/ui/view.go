package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	inputHeight := 3
	chatHeight := m.height - inputHeight
	rightWidth := m.width

	messageStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("7"))

	userStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("12")).
		Bold(true)

	clueStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("10")).
		Bold(true)

	sustainedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("10")).
		Bold(true)

	rejectedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("9")).
		Bold(true)

	debugStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("11"))

	inputStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1).
		Width(m.width - 4)

	chatPanel := lipgloss.NewStyle().
		Width(rightWidth).
		Height(chatHeight).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(1)

	var chatContent strings.Builder

	visibleMessages := m.messages
	maxMessages := chatHeight - 2
	if maxMessages < 1 {
		maxMessages = 1
	}

	if len(visibleMessages) > maxMessages {
		visibleMessages = visibleMessages[len(visibleMessages)-maxMessages:]
	}

	paddingLines := maxMessages - len(visibleMessages)
	for i := 0; i < paddingLines; i++ {
		chatContent.WriteString("\n")
	}

	contentWidth := rightWidth - 4

	for _, message := range visibleMessages {
		wrappedText := wrapAndIndent(message, contentWidth, " ")
		switch {
		case message == "":
			chatContent.WriteString("\n")
		case strings.HasPrefix(message, "> "):
			chatContent.WriteString(userStyle.Render(wrappedText) + "\n")
		case strings.HasPrefix(message, "[DEBUG] "):
			chatContent.WriteString(debugStyle.Render(wrappedText) + "\n")
		case strings.HasPrefix(message, "CLUE: "):
			chatContent.WriteString(clueStyle.Render(wrappedText) + "\n")
		case strings.HasPrefix(message, "SUSTAINED"):
			chatContent.WriteString(sustainedStyle.Render(wrappedText) + "\n")
		case strings.HasPrefix(message, "NOT SUSTAINED"):
			chatContent.WriteString(rejectedStyle.Render(wrappedText) + "\n")
		default:
			chatContent.WriteString(messageStyle.Render(wrappedText) + "\n")
		}
	}

	chat := chatPanel.Render(chatContent.String())
	input := inputStyle.Render(m.prompt() + m.input + "│")

	return chat + "\n" + input
}

func (m Model) prompt() string {
	switch m.phase {
	case Accusing:
		return "Accuse: "
	case Closed:
		return ""
	default:
		return "Your choice: "
	}
}

func wrapAndIndent(text string, width int, indent string) string {
	if len(text) <= width {
		return indent + text
	}

	var result strings.Builder
	words := strings.Fields(text)
	if len(words) == 0 {
		return indent + text
	}

	currentLine := indent + words[0]

	for _, word := range words[1:] {
		if len(currentLine)+1+len(word) <= width {
			currentLine += " " + word
		} else {
			result.WriteString(currentLine + "\n")
			currentLine = indent + word
		}
	}

	result.WriteString(currentLine)
	return result.String()
}
