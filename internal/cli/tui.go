package cli

import (
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/waypoint/pkg/plan"
)

var listDimStyle = lipgloss.NewStyle().Foreground(colorDim)

// pickItem is one row of the dot picker.
type pickItem struct {
	Key   string
	Dot   plan.Dot
	Links int
}

// pickItems lists a session's dots in creation order.
func pickItems(s *session) []pickItem {
	snap := s.editor.Snapshot()
	items := make([]pickItem, 0, len(snap.Dots))
	for _, d := range snap.Dots {
		items = append(items, pickItem{Key: s.keyOf(d.ID), Dot: d, Links: len(snap.Incident(d.ID))})
	}
	return items
}

func (it pickItem) matches(filter string) bool {
	if filter == "" {
		return true
	}
	f := strings.ToLower(filter)
	return strings.Contains(strings.ToLower(it.Key), f) ||
		strings.Contains(strings.ToLower(it.Dot.Label()), f) ||
		strings.Contains(strings.ToLower(it.Dot.Floor), f)
}

// =============================================================================
// DotPickerModel - Interactive dot selection
// =============================================================================

// DotPickerModel is the bubbletea model for choosing a dot. Typing narrows
// the list by key, label or floor.
type DotPickerModel struct {
	Title    string
	Items    []pickItem
	Filter   string
	Cursor   int
	Offset   int
	Height   int
	Selected *pickItem
}

// NewDotPickerModel creates a picker over items.
func NewDotPickerModel(title string, items []pickItem) DotPickerModel {
	return DotPickerModel{Title: title, Items: items, Height: 15}
}

// visible returns the items matching the current filter.
func (m DotPickerModel) visible() []pickItem {
	return slices.DeleteFunc(slices.Clone(m.Items), func(it pickItem) bool { return !it.matches(m.Filter) })
}

func (m DotPickerModel) Init() tea.Cmd {
	return nil
}

func (m DotPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		items := m.visible()
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyUp:
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case tea.KeyDown:
			if m.Cursor < len(items)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case tea.KeyEnter:
			if len(items) == 0 {
				return m, nil
			}
			sel := items[m.Cursor]
			m.Selected = &sel
			return m, tea.Quit
		case tea.KeyBackspace:
			if m.Filter != "" {
				r := []rune(m.Filter)
				m.Filter = string(r[:len(r)-1])
				m.Cursor, m.Offset = 0, 0
			}
		case tea.KeySpace:
			m.Filter += " "
			m.Cursor, m.Offset = 0, 0
		case tea.KeyRunes:
			m.Filter += string(msg.Runes)
			m.Cursor, m.Offset = 0, 0
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-8, 5)
	}
	return m, nil
}

func (m DotPickerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  esc quit  type to filter"))
	b.WriteString("\n")
	if m.Filter != "" {
		b.WriteString("filter: " + StyleValue.Render(m.Filter))
	}
	b.WriteString("\n\n")

	items := m.visible()
	end := min(m.Offset+m.Height, len(items))

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		it := items[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		links := fmt.Sprintf("%d", it.Links)
		if it.Dot.CrossFloor {
			links += " " + iconStairs
		}
		rows = append(rows, []string{
			cursor,
			it.Key,
			it.Dot.Label(),
			it.Dot.Floor,
			fmt.Sprintf("%.0f, %.0f", it.Dot.X, it.Dot.Y),
			links,
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Key", "Label", "Floor", "Position", "Links").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			idx := m.Offset + row
			if idx >= len(items) {
				return lipgloss.NewStyle()
			}
			base := lipgloss.NewStyle()
			if items[idx].Dot.CrossFloor && col == 5 {
				base = base.Foreground(colorGreen)
			} else if col >= 3 {
				base = base.Foreground(colorGray)
			}
			if idx == m.Cursor {
				return base.Bold(true).Foreground(colorCyan)
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	if len(items) == 0 {
		b.WriteString(listDimStyle.Render("  no matching dots"))
	} else {
		b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(items))))
	}
	return b.String()
}

// runDotPicker shows the picker and returns the chosen dot ID, or "" if
// the user quit.
func runDotPicker(title string, items []pickItem) (string, error) {
	final, err := tea.NewProgram(NewDotPickerModel(title, items)).Run()
	if err != nil {
		return "", err
	}
	m, ok := final.(DotPickerModel)
	if !ok || m.Selected == nil {
		return "", nil
	}
	return m.Selected.Dot.ID, nil
}
