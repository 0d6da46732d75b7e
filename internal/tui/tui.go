// Package tui is the terminal front-end: a menu to assemble both armies,
// run the battle and toggle the soundtrack.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"centaurus/internal/game"
)

var (
	goodColor = lipgloss.Color("#95c0ff")
	evilColor = lipgloss.Color("#ff6f91")
	accent    = lipgloss.Color("#fbe29f")
	dimGray   = lipgloss.Color("#666666")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			MarginBottom(1)

	menuStyle     = lipgloss.NewStyle().PaddingLeft(2)
	selectedStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			Bold(true).
			Foreground(accent)

	goodStyle   = lipgloss.NewStyle().Foreground(goodColor)
	evilStyle   = lipgloss.NewStyle().Foreground(evilColor)
	statusStyle = lipgloss.NewStyle().Foreground(dimGray).MarginTop(1)
	helpStyle   = lipgloss.NewStyle().Foreground(dimGray).MarginTop(1)

	resultStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 2).
			MarginTop(1)
)

type state int

const (
	stateMenu state = iota
	stateConfigure
	stateResult
)

var menuItems = []string{
	"Assemble the Good army",
	"Assemble the Evil army",
	"Simulate the battle",
	"Reset both armies",
	"Play music",
	"Stop music",
	"Quit",
}

// Model is the bubbletea model for the whole game screen.
type Model struct {
	ctrl    *game.Controller
	state   state
	cursor  int
	side    game.Alignment
	races   []game.Race
	raceIdx int
	input   textinput.Model
	result  game.Result
	status  string
}

func New(ctrl *game.Controller) Model {
	ti := textinput.New()
	ti.Placeholder = "0"
	ti.CharLimit = 5
	ti.Width = 6
	return Model{ctrl: ctrl, input: ti}
}

// Run starts the interactive session and blocks until the user quits.
func Run(ctrl *game.Controller) error {
	_, err := tea.NewProgram(New(ctrl)).Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	switch m.state {
	case stateMenu:
		return m.updateMenu(key)
	case stateConfigure:
		return m.updateConfigure(key)
	default:
		m.state = stateMenu
		return m, nil
	}
}

func (m Model) updateMenu(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}
	case "q":
		return m, tea.Quit
	case "enter":
		return m.selectMenu()
	}
	return m, nil
}

func (m Model) selectMenu() (tea.Model, tea.Cmd) {
	m.status = ""
	switch m.cursor {
	case 0, 1:
		m.side = game.Benevolent
		if m.cursor == 1 {
			m.side = game.Malevolent
		}
		m.races = m.ctrl.Races(m.side)
		m.raceIdx = 0
		m.state = stateConfigure
		m.resetInput()
		return m, textinput.Blink
	case 2:
		res, err := m.ctrl.SimulateBattle()
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.result = res
		m.state = stateResult
	case 3:
		m.ctrl.ResetArmies()
		m.status = "Both armies disbanded."
	case 4:
		if m.ctrl.PlayMusic() {
			m.status = "Music on."
		} else {
			m.status = "No audio device available."
		}
	case 5:
		m.ctrl.StopMusic()
		m.status = "Music off."
	case 6:
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) resetInput() {
	current := m.ctrl.Snapshot(m.side)[m.races[m.raceIdx].Name]
	m.input.SetValue("")
	m.input.Placeholder = strconv.Itoa(current)
	m.input.Focus()
}

func (m Model) updateConfigure(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.state = stateMenu
		return m, nil
	case "enter":
		raw := strings.TrimSpace(m.input.Value())
		if raw == "" {
			raw = m.input.Placeholder
		}
		count, err := strconv.Atoi(raw)
		if err != nil || count < 0 {
			m.status = "Enter a whole number of units, zero or more."
			return m, nil
		}
		m.status = ""
		if err := m.ctrl.SetUnits(m.races[m.raceIdx], count); err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.raceIdx++
		if m.raceIdx >= len(m.races) {
			units, power := m.ctrl.ArmyStats(m.side)
			m.status = fmt.Sprintf("%s army: %d units, power %d.", m.side.Label(), units, power)
			m.state = stateMenu
			return m, nil
		}
		m.resetInput()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)
	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("CENTAURUS — the battle for Centauri"))
	b.WriteString("\n")
	switch m.state {
	case stateConfigure:
		b.WriteString(m.viewConfigure())
	case stateResult:
		b.WriteString(m.viewResult())
	default:
		b.WriteString(m.viewMenu())
	}
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewMenu() string {
	var b strings.Builder
	for i, item := range menuItems {
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + item))
		} else {
			b.WriteString(menuStyle.Render("  " + item))
		}
		b.WriteString("\n")
	}
	goodUnits, goodPower := m.ctrl.ArmyStats(game.Benevolent)
	evilUnits, evilPower := m.ctrl.ArmyStats(game.Malevolent)
	b.WriteString("\n")
	b.WriteString(goodStyle.Render(fmt.Sprintf("  Good: %3d units, power %3d", goodUnits, goodPower)))
	b.WriteString("\n")
	b.WriteString(evilStyle.Render(fmt.Sprintf("  Evil: %3d units, power %3d", evilUnits, evilPower)))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("up/down to move, enter to select, q to quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) viewConfigure() string {
	sideStyle := goodStyle
	if m.side == game.Malevolent {
		sideStyle = evilStyle
	}
	var b strings.Builder
	b.WriteString(sideStyle.Render(fmt.Sprintf("Assembling the %s army", m.side.Label())))
	b.WriteString("\n\n")
	snapshot := m.ctrl.Snapshot(m.side)
	for i, r := range m.races {
		line := fmt.Sprintf("  %s (value %d): %d", r.Name, r.Value, snapshot[r.Name])
		if i == m.raceIdx {
			line = fmt.Sprintf("> %s (value %d): %s", r.Name, r.Value, m.input.View())
			b.WriteString(selectedStyle.Render(line))
		} else {
			b.WriteString(menuStyle.Render(line))
		}
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("enter to confirm, esc to go back"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) viewResult() string {
	body := fmt.Sprintf("%s\n\n%s\n%s",
		m.result.Outcome().Message(),
		goodStyle.Render(fmt.Sprintf("Good power: %d", m.result.GoodPower)),
		evilStyle.Render(fmt.Sprintf("Evil power: %d", m.result.EvilPower)),
	)
	return resultStyle.Render(body) + "\n" + helpStyle.Render("press any key to return") + "\n"
}
