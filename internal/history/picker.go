package history

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	// pickerMaxResults caps how many matches a keystroke re-ranks.
	pickerMaxResults = 200
	pickerPageSize   = 10
	pickerDirWidth   = 20
)

// pickerStyles collects the lipgloss styles used by the picker view.
type pickerStyles struct {
	Prompt   lipgloss.Style
	Selected lipgloss.Style
	Marker   lipgloss.Style
	Time     lipgloss.Style
	Dir      lipgloss.Style
	Command  lipgloss.Style
	Status   lipgloss.Style
}

// defaultPickerStyles follows the Tokyo Night palette the default
// prompt theme uses.
func defaultPickerStyles() pickerStyles {
	return pickerStyles{
		Prompt:   lipgloss.NewStyle().Foreground(lipgloss.Color("#7aa2f7")).Bold(true),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("#c0caf5")).Background(lipgloss.Color("#283457")).Bold(true),
		Marker:   lipgloss.NewStyle().Foreground(lipgloss.Color("#7aa2f7")).Bold(true),
		Time:     lipgloss.NewStyle().Foreground(lipgloss.Color("#565f89")),
		Dir:      lipgloss.NewStyle().Foreground(lipgloss.Color("#7aa2f7")),
		Command:  lipgloss.NewStyle().Foreground(lipgloss.Color("#a9b1d6")),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("#565f89")),
	}
}

type pickerModel struct {
	input    textinput.Model
	styles   pickerStyles
	entries  []Entry
	filtered []Entry
	cursor   int
	width    int
	height   int
	choice   string
	chosen   bool
}

func newPickerModel(entries []Entry) pickerModel {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "search history"
	input.Focus()

	m := pickerModel{
		input:   input,
		styles:  defaultPickerStyles(),
		entries: entries,
		width:   80,
		height:  24,
	}
	m.filtered = Search(entries, "", SearchFilter{}, pickerMaxResults)
	return m
}

func (m pickerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c":
			return m, tea.Quit
		case "enter":
			if m.cursor < len(m.filtered) {
				m.choice = m.filtered[m.cursor].Command
				m.chosen = true
			}
			return m, tea.Quit
		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "ctrl+n":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			return m, nil
		case "pgup":
			m.cursor = max(m.cursor-pickerPageSize, 0)
			return m, nil
		case "pgdown":
			m.cursor = min(m.cursor+pickerPageSize, max(len(m.filtered)-1, 0))
			return m, nil
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.filtered = Search(m.entries, m.input.Value(), SearchFilter{}, pickerMaxResults)
		m.cursor = 0
	}
	return m, cmd
}

func (m pickerModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Prompt.Render("Search History"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	visible := m.visibleRows()
	offset := 0
	if m.cursor >= visible {
		offset = m.cursor - visible + 1
	}
	end := min(offset+visible, len(m.filtered))
	for i := offset; i < end; i++ {
		b.WriteString(m.renderRow(i))
		b.WriteString("\n")
	}
	if len(m.filtered) == 0 {
		b.WriteString(m.styles.Status.Render("  no matches"))
		b.WriteString("\n")
	}

	status := fmt.Sprintf(" %d/%d │ ↑↓ navigate │ Enter select │ Esc cancel ",
		len(m.filtered), len(m.entries))
	b.WriteString("\n")
	b.WriteString(m.styles.Status.Render(status))
	return b.String()
}

// visibleRows leaves room for the title, the input, the blank spacer,
// and the status line.
func (m pickerModel) visibleRows() int {
	return max(m.height-5, 1)
}

func (m pickerModel) renderRow(i int) string {
	entry := m.filtered[i]
	when := time.Unix(entry.Timestamp, 0).Format("15:04")
	dir := truncateLeft(entry.ShortDir(), pickerDirWidth)
	command := truncateRight(entry.Command, max(m.width-pickerDirWidth-12, 10))

	if i == m.cursor {
		return m.styles.Marker.Render("▸ ") +
			m.styles.Selected.Render(fmt.Sprintf("%s %s  %s", when, dir, command))
	}
	return "  " +
		m.styles.Time.Render(when) + " " +
		m.styles.Dir.Render(dir) + "  " +
		m.styles.Command.Render(command)
}

// truncateLeft keeps the tail of s, marking the cut with a leading
// ellipsis. Directory tails matter more than their roots.
func truncateLeft(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return "…" + string(runes[len(runes)-width+1:])
}

func truncateRight(s string, width int) string {
	if width < 1 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}

// RunPicker shows the interactive history picker and returns the
// chosen command. ok is false when the user cancels. The picker talks
// to /dev/tty directly so it works inside a ZLE widget where stdin and
// stdout are captured by the shell.
func RunPicker(entries []Entry) (choice string, ok bool, err error) {
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return "", false, fmt.Errorf("open terminal: %w", err)
	}
	defer tty.Close()

	program := tea.NewProgram(
		newPickerModel(entries),
		tea.WithAltScreen(),
		tea.WithInput(tty),
		tea.WithOutput(tty),
	)
	final, err := program.Run()
	if err != nil {
		return "", false, fmt.Errorf("run history picker: %w", err)
	}
	m := final.(pickerModel)
	return m.choice, m.chosen, nil
}
