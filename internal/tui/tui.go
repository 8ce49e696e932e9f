package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tatianab/road-of-life/internal/engine"
	"github.com/tatianab/road-of-life/internal/input"
	"github.com/tatianab/road-of-life/internal/models"
	"go.uber.org/zap"
)

const (
	maxWidth = 90
	barWidth = 24
)

type keyMap struct {
	Confirm key.Binding
	Choose  key.Binding
	Restart key.Binding
	Quit    key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Choose, k.Restart, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newKeyMap() keyMap {
	return keyMap{
		Confirm: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "continue")),
		Choose:  key.NewBinding(key.WithKeys("1", "2", "3"), key.WithHelp("1-3", "choose")),
		Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Quit:    key.NewBinding(key.WithKeys("esc", "ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

type model struct {
	eng      input.Controller
	log      *zap.Logger
	view     engine.View
	keys     keyMap
	help     help.Model
	viewport viewport.Model
	bar      progress.Model
	width    int
	height   int
}

var (
	docStyle = lipgloss.NewStyle().Padding(0, 2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA")).
			Italic(true)

	sceneTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true)

	dateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87AFD7"))

	textStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE"))

	factStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#D7D7AF"))

	statStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#5F5F87")).
			Bold(true).
			Padding(0, 1)

	victoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5FD75F")).
			Bold(true)

	gameOverStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F5F")).
			Bold(true)
)

func NewModel(eng input.Controller, log *zap.Logger) model {
	if log == nil {
		log = zap.NewNop()
	}
	m := model{
		eng:      eng,
		log:      log,
		keys:     newKeyMap(),
		help:     help.New(),
		viewport: viewport.New(0, 0),
		bar:      progress.New(progress.WithoutPercentage(), progress.WithWidth(barWidth)),
	}
	m.setView(eng.View())
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.fit()
		return m, nil

	case tea.KeyMsg:
		if k := m.translate(msg); k != input.KeyNone {
			return m.dispatch(input.Press(k))
		}

	case tea.MouseMsg:
		if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress {
			return m.dispatch(input.Click(msg.X, msg.Y))
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if m.width == 0 {
		return "\n  Loading...\n"
	}
	s, _ := m.compose()
	return s
}

func (m model) translate(msg tea.KeyMsg) input.Key {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return input.KeyQuit
	case key.Matches(msg, m.keys.Confirm):
		return input.KeyConfirm
	case key.Matches(msg, m.keys.Restart):
		return input.KeyRestart
	case key.Matches(msg, m.keys.Choose):
		n, _ := strconv.Atoi(msg.String())
		return input.KeyChoice1 + input.Key(n-1)
	}
	return input.KeyNone
}

func (m model) dispatch(ev input.Event) (tea.Model, tea.Cmd) {
	_, layout := m.compose()
	v, quit, err := input.Dispatch(ev, layout, m.eng)
	if quit {
		return m, tea.Quit
	}
	if err != nil {
		m.log.Debug("input ignored", zap.Stringer("screen", m.view.Screen), zap.Error(err))
	}
	if v.Screen != m.view.Screen || v.SceneIndex != m.view.SceneIndex {
		m.setView(v)
	}
	return m, nil
}

func (m *model) setView(v engine.View) {
	m.view = v
	m.keys.Confirm.SetEnabled(v.Screen != engine.ScreenAwaitingChoice && !v.Screen.Terminal())
	m.keys.Choose.SetEnabled(v.Screen == engine.ScreenAwaitingChoice)
	m.keys.Restart.SetEnabled(v.Screen.Terminal())
	m.fit()
	m.viewport.GotoTop()
}

// fit sizes the viewport to whatever the header, buttons and help leave free.
func (m *model) fit() {
	w := m.contentWidth()
	m.viewport.Width = w
	m.viewport.SetContent(m.renderBody(w))
	used := lipgloss.Height(m.renderHeader(w)) + lipgloss.Height(m.renderHelp()) + 4
	for _, b := range input.Controls(m.view) {
		used += lipgloss.Height(renderButton(b))
	}
	m.viewport.Height = max(3, m.height-used)
}

func (m model) contentWidth() int {
	return max(20, min(m.width-4, maxWidth))
}

// compose renders the screen and the layout of its buttons in cells. The
// buttons sit below the header and the viewport, one per row.
func (m model) compose() (string, input.Layout) {
	w := m.contentWidth()
	header := m.renderHeader(w)
	body := m.viewport.View()

	blocks := []string{header, "", body, ""}
	// One leading blank line, then the blocks above.
	y := 1 + lipgloss.Height(header) + 1 + lipgloss.Height(body) + 1
	x := docStyle.GetPaddingLeft()

	var layout input.Layout
	for _, b := range input.Controls(m.view) {
		line := renderButton(b)
		b.Rect = input.Rect{X: x, Y: y, W: lipgloss.Width(line), H: lipgloss.Height(line)}
		layout.Buttons = append(layout.Buttons, b)
		blocks = append(blocks, line)
		y += b.Rect.H
	}
	blocks = append(blocks, "", m.renderHelp())

	return "\n" + docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, blocks...)), layout
}

func renderButton(b input.Button) string {
	var hint string
	switch b.Action {
	case input.ActionStart, input.ActionAdvance:
		hint = "enter"
	case input.ActionChoose:
		hint = strconv.Itoa(b.Choice + 1)
	case input.ActionRestart:
		hint = "r"
	case input.ActionQuit:
		hint = "q"
	}
	return buttonStyle.Render(fmt.Sprintf("[%s] %s", hint, b.Label))
}

func (m model) renderHelp() string {
	return m.help.View(m.keys)
}

func (m model) renderHeader(w int) string {
	v := m.view
	title := titleStyle.Render(v.Title)
	if v.Subtitle != "" {
		title += "  " + subtitleStyle.Render(v.Subtitle)
	}
	if v.Screen == engine.ScreenMenu {
		return lipgloss.NewStyle().Width(w).Render(title)
	}

	stage := min(v.SceneIndex+1, v.SceneCount)
	s := v.Stats
	lines := []string{
		title,
		statStyle.Render(fmt.Sprintf("Stage %d/%d", stage, v.SceneCount)),
		m.statBar("Food", s.Food, models.MaxFood, "#D7AF5F", "kg"),
		m.statBar("Health", s.Health, models.MaxHealth, healthColor(s.Health), ""),
		m.statBar("Morale", s.Morale, models.MaxMorale, moraleColor(s.Morale), ""),
		statStyle.Render(fmt.Sprintf("Delivered: %d kg   Evacuated: %d", s.TotalDelivered, s.Evacuated)),
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m model) statBar(label string, value, maxValue int, color, unit string) string {
	bar := m.bar
	bar.FullColor = color
	amount := fmt.Sprintf("%d/%d", value, maxValue)
	if unit != "" {
		amount += " " + unit
	}
	return fmt.Sprintf("%-7s %s %s", label, bar.ViewAs(float64(value)/float64(maxValue)), statStyle.Render(amount))
}

func healthColor(h int) string {
	switch {
	case h > 50:
		return "#5FD75F"
	case h > 25:
		return "#FFD75F"
	default:
		return "#FF5F5F"
	}
}

func moraleColor(m int) string {
	switch {
	case m > 60:
		return "#5FAFFF"
	case m > 30:
		return "#FFAF5F"
	default:
		return "#AF5FAF"
	}
}

func statusLine(s models.StatBlock) string {
	return fmt.Sprintf("Health: %d%% | Morale: %d%% | Delivered: %d kg | Evacuated: %d",
		s.Health, s.Morale, s.TotalDelivered, s.Evacuated)
}

func (m model) renderBody(w int) string {
	v := m.view
	text := textStyle.Width(w)
	var b strings.Builder

	switch v.Screen {
	case engine.ScreenMenu:
		b.WriteString(text.Render("You drive a truck on the Road of Life, the ice route across Lake Ladoga. " +
			"Carry bread into besieged Leningrad, bring people out, and keep yourself alive until the siege is lifted."))
	case engine.ScreenSceneIntro:
		b.WriteString(sceneTitleStyle.Render(v.Scene.Title) + "\n")
		b.WriteString(dateStyle.Render(v.Scene.Date.String()) + "\n\n")
		b.WriteString(statStyle.Width(w).Render(statusLine(v.Stats)))
	case engine.ScreenAwaitingChoice:
		b.WriteString(sceneTitleStyle.Render(v.Scene.Title) + "\n\n")
		b.WriteString(text.Render(v.Scene.Text))
	case engine.ScreenResult:
		b.WriteString(sceneTitleStyle.Render(v.Scene.Title) + "\n\n")
		b.WriteString(text.Render(v.ResultText))
	case engine.ScreenHistory:
		b.WriteString(sceneTitleStyle.Render("HISTORICAL FACT") + "\n\n")
		b.WriteString(factStyle.Width(w).Render(v.Fact))
	case engine.ScreenVictory:
		s, sc := v.Stats, v.Score
		b.WriteString(victoryStyle.Render("VICTORY!") + "\n\n")
		b.WriteString(text.Render("You survived the siege and completed your mission on the Road of Life.") + "\n\n")
		fmt.Fprintf(&b, "Food delivered:   %d kg\nPeople evacuated: %d\nHealth:           %d%%\nMorale:           %d%%\n\n",
			s.TotalDelivered, s.Evacuated, s.Health, s.Morale)
		fmt.Fprintf(&b, "Survival:   %3d\nFood:       %3d\nEvacuation: %3d\n", sc.Survival, sc.Food, sc.Evacuation)
		b.WriteString(titleStyle.Render(fmt.Sprintf("Total score: %d", sc.Total)))
	case engine.ScreenGameOver:
		b.WriteString(gameOverStyle.Render("GAME OVER") + "\n\n")
		b.WriteString(text.Render(v.Reason.Message()) + "\n\n")
		b.WriteString(statStyle.Width(w).Render(statusLine(v.Stats)))
	}
	return b.String()
}

// Run starts the terminal UI on eng and blocks until the player quits.
func Run(eng input.Controller, log *zap.Logger) error {
	p := tea.NewProgram(NewModel(eng, log), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
