package ui

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

// RenderHelpContent generates the full help text shown in the pager
func (r *HelpRenderer) RenderHelpContent(engine string) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	line := func(k, desc string) string {
		return fmt.Sprintf("  %-10s %s\n", keyStyle.Render(k), descStyle.Render(desc))
	}

	var help strings.Builder

	help.WriteString(titleStyle.Render("searchbox Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Searching"))
	help.WriteString("\n")
	help.WriteString(line("type", "Filter the list, matches are highlighted"))
	help.WriteString(line("ctrl+r/tab", "Toggle regex (the .* indicator)"))
	help.WriteString(line("esc", "Clear the query"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Navigation"))
	help.WriteString("\n")
	help.WriteString(line("↓/ctrl+n", "Next match"))
	help.WriteString(line("↑/ctrl+p", "Previous match"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Query syntax"))
	help.WriteString("\n")
	help.WriteString(descStyle.Render("  Without regex the query is matched literally: a.c only matches \"a.c\"."))
	help.WriteString("\n")
	help.WriteString(descStyle.Render(fmt.Sprintf("  With regex the query is a %s pattern searched anywhere in each line.", engine)))
	help.WriteString("\n")
	help.WriteString(descStyle.Render("  An invalid pattern shows the reason below the list until it is fixed."))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	help.WriteString(line("f1", "Show this help"))
	help.WriteString(line("ctrl+c", "Quit"))

	return help.String()
}

// pagerCommand shows text in the ov pager. It implements tea.ExecCommand
// so bubbletea hands over the terminal while the pager runs.
// ov opens the tty itself, so the standard streams are not used.
type pagerCommand struct {
	content string
}

func (c *pagerCommand) SetStdin(io.Reader)  {}
func (c *pagerCommand) SetStdout(io.Writer) {}
func (c *pagerCommand) SetStderr(io.Writer) {}

// Run shows the content using ov and blocks until the pager exits
func (c *pagerCommand) Run() error {
	root, err := oviewer.NewRoot(strings.NewReader(c.content))
	if err != nil {
		return err
	}

	// Do not write the buffer back to the terminal on exit
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// showHelpInPager returns a command that shows help content using the ov pager
func showHelpInPager(content string) tea.Cmd {
	return tea.Exec(&pagerCommand{content: content}, func(err error) tea.Msg {
		return helpPagerMsg{err: err}
	})
}
