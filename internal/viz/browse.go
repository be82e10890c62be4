package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

const defaultBrowserHeight = 20

// Browser is a bubbletea model for scrolling through parameters.
type Browser struct {
	rows           []row
	cursor, offset int
	height         int
}

func NewBrowser(ps ParamSet) Browser {
	return Browser{rows: paramRows(ps), height: defaultBrowserHeight}
}

func (b Browser) Init() tea.Cmd { return nil }

func (b Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// header and key hint take three lines
		b.height = max(msg.Height-3, 1)
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return b, tea.Quit
		case "up", "k":
			b.cursor--
		case "down", "j":
			b.cursor++
		case "pgup":
			b.cursor -= b.height
		case "pgdown", " ":
			b.cursor += b.height
		case "home", "g":
			b.cursor = 0
		case "end", "G":
			b.cursor = len(b.rows) - 1
		}
	}
	b.clamp()
	return b, nil
}

func (b *Browser) clamp() {
	b.cursor = min(max(b.cursor, 0), max(len(b.rows)-1, 0))
	if b.cursor < b.offset {
		b.offset = b.cursor
	}
	if b.cursor >= b.offset+b.height {
		b.offset = b.cursor - b.height + 1
	}
}

// Selected returns the full name (module.name for nested parameters) and
// value under the cursor.
func (b Browser) Selected() (string, string) {
	if len(b.rows) == 0 {
		return "", ""
	}
	r := b.rows[b.cursor]
	return r.name(), r.value
}

func (b Browser) View() string {
	var s strings.Builder
	s.WriteString(HeaderStyle.Render(fmt.Sprintf("parameters %d/%d", min(b.cursor+1, len(b.rows)), len(b.rows))))
	s.WriteString("\n")

	end := min(b.offset+b.height, len(b.rows))
	for i := b.offset; i < end; i++ {
		r := b.rows[i]
		line := fmt.Sprintf("%-32s %s", r.name(), r.value)
		if i == b.cursor {
			s.WriteString(Selected.Render("> " + line))
		} else {
			s.WriteString("  " + KeyStyle.Render(fmt.Sprintf("%-32s", r.name())) + " " + ValueStyle.Render(r.value))
		}
		s.WriteString("\n")
	}

	s.WriteString(KeyHint.Render("j/k move  pgup/pgdown page  g/G ends  q quit"))
	return s.String()
}

// RunBrowser opens the browser full screen and blocks until it is closed.
func RunBrowser(ps ParamSet) error {
	_, err := tea.NewProgram(NewBrowser(ps), tea.WithAltScreen()).Run()
	return err
}
