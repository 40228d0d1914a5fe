package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/myday/internal/models"
	"github.com/balkashynov/myday/internal/parser"
	"github.com/balkashynov/myday/internal/store"
	"github.com/balkashynov/myday/internal/weather"
)

// Mode is what the keyboard currently drives
type Mode int

const (
	ModeList Mode = iota
	ModeAddTask
	ModeAddStep
	ModeNotes
)

// weatherMsg delivers a watcher reading into the update loop
type weatherMsg weather.Reading

// AppModel is the main screen: sidebar, task list and details
type AppModel struct {
	width  int
	height int

	store   *store.Store
	watcher *weather.Watcher // nil when weather is disabled

	// Last projection of the store, refreshed after every change
	view   store.View
	cursor int // index into view.Visible

	mode     Mode
	input    textinput.Model
	progress progress.Model
	keys     keyMap

	weather    weather.Reading
	hasWeather bool

	flash string // one-line feedback under the list
	err   error
}

// NewAppModel creates the main screen over s
func NewAppModel(s *store.Store, w *weather.Watcher) AppModel {
	input := textinput.New()
	input.Width = 60
	input.CharLimit = 200
	input.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	input.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
	input.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))

	m := AppModel{
		store:    s,
		watcher:  w,
		input:    input,
		progress: progress.New(progress.WithGradient(ColorProgressFrom, ColorProgressTo), progress.WithoutPercentage()),
		keys:     defaultKeyMap(),
	}
	if w != nil {
		if r := w.Current(); r.Valid || r.Err != nil {
			m.weather, m.hasWeather = r, true
		}
	}
	return m.refresh()
}

// Init initializes the model
func (m AppModel) Init() tea.Cmd {
	return nil
}

// refresh re-reads the projection and keeps the cursor on the selected task
func (m AppModel) refresh() AppModel {
	m.view = m.store.Project()

	if len(m.view.Visible) == 0 {
		m.cursor = 0
		return m
	}

	if m.view.Selected != nil {
		for i, t := range m.view.Visible {
			if t.ID == m.view.Selected.ID {
				m.cursor = i
				return m
			}
		}
	}

	// selection is outside this view: follow the cursor instead
	if m.cursor >= len(m.view.Visible) {
		m.cursor = len(m.view.Visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	id := m.view.Visible[m.cursor].ID
	if m.store.SelectedID() == id {
		return m
	}
	if err := m.store.SelectTask(id); err != nil {
		m.err = err
		return m
	}
	m.view = m.store.Project()
	return m
}

// selected returns the task under the cursor
func (m AppModel) selected() (models.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(m.view.Visible) {
		return models.Task{}, false
	}
	return m.view.Visible[m.cursor], true
}

// Update handles messages
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case weatherMsg:
		m.weather = weather.Reading(msg)
		m.hasWeather = true
		return m, nil

	case tea.KeyMsg:
		if m.mode != ModeList {
			return m.handleInputKeys(msg)
		}
		return m.handleListKeys(msg)
	}

	return m, nil
}

// handleListKeys handles keys when the task list has focus
func (m AppModel) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.flash = ""
	m.err = nil

	for i, b := range m.keys.Views {
		if key.Matches(msg, b) && i < len(models.Views) {
			m.err = m.store.SetCurrentView(models.Views[i])
			m.cursor = 0
			return m.refresh(), nil
		}
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		return m.moveCursor(-1), nil

	case key.Matches(msg, m.keys.Down):
		return m.moveCursor(1), nil

	case key.Matches(msg, m.keys.StatusFilter):
		m.err = m.store.SetStatusFilter(m.view.Status.Next())
		m.cursor = 0
		return m.refresh(), nil

	case key.Matches(msg, m.keys.Add):
		return m.openInput(ModeAddTask, "Buy milk +high due:tomorrow remind:2h repeat:daily", ""), textinput.Blink

	case key.Matches(msg, m.keys.Weather):
		if m.watcher == nil {
			m.flash = "Weather is not configured"
			return m, nil
		}
		return m, m.refreshWeather()
	}

	task, ok := m.selected()
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Toggle):
		m.err = m.store.ToggleTask(task.ID)

	case key.Matches(msg, m.keys.Priority):
		m.err = m.store.SetPriority(task.ID, task.Priority.Next())

	case key.Matches(msg, m.keys.TaskStatus):
		m.err = m.store.SetStatus(task.ID, task.StatusOrTodo().Next())

	case key.Matches(msg, m.keys.AddStep):
		return m.openInput(ModeAddStep, "Step title", ""), textinput.Blink

	case key.Matches(msg, m.keys.ToggleStep):
		for _, step := range task.Steps {
			if !step.Completed {
				m.err = m.store.ToggleStep(task.ID, step.ID)
				break
			}
		}

	case key.Matches(msg, m.keys.Notes):
		return m.openInput(ModeNotes, "Notes", task.Notes), textinput.Blink

	case key.Matches(msg, m.keys.Delete):
		m.err = m.store.RemoveTask(task.ID)
		m.flash = fmt.Sprintf("Deleted %q", task.Title)

	case key.Matches(msg, m.keys.Remind):
		at := m.store.Now().Add(time.Hour)
		m.err = m.store.SetReminder(task.ID, at)
		m.flash = "Reminder set for " + at.Format("15:04")

	case key.Matches(msg, m.keys.Due):
		due, err := parser.ParseWhen("tomorrow", m.store.Now())
		if err == nil {
			err = m.store.SetDueDate(task.ID, due)
		}
		m.err = err

	case key.Matches(msg, m.keys.Repeat):
		m.err = m.store.SetRepeat(task.ID, models.RepeatDaily)

	case key.Matches(msg, m.keys.AssignMe):
		user, ok := m.store.User()
		if !ok {
			m.flash = "Log in first: myday login <email> <password>"
			return m, nil
		}
		m.err = m.store.AssignTask(task.ID, user.ID)
	}

	return m.refresh(), nil
}

// moveCursor moves the selection by delta within the visible tasks
func (m AppModel) moveCursor(delta int) AppModel {
	next := m.cursor + delta
	if next < 0 || next >= len(m.view.Visible) {
		return m
	}
	m.cursor = next
	m.err = m.store.SelectTask(m.view.Visible[next].ID)
	return m.refresh()
}

func (m AppModel) openInput(mode Mode, placeholder, value string) AppModel {
	m.mode = mode
	m.input.Placeholder = placeholder
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.input.Focus()
	return m
}

func (m AppModel) closeInput() AppModel {
	m.mode = ModeList
	m.input.Blur()
	m.input.SetValue("")
	return m
}

// handleInputKeys handles keys while the prompt is open
func (m AppModel) handleInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return m.closeInput(), nil
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEnter:
		return m.submitInput(), nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submitInput applies the prompt value for the current mode
func (m AppModel) submitInput() AppModel {
	value := m.input.Value()
	mode := m.mode
	m = m.closeInput()
	m.err = nil

	switch mode {
	case ModeAddTask:
		parsed := parser.ParseTitle(value, m.store.Now())
		if len(parsed.Errors) > 0 {
			m.err = errors.New(strings.Join(parsed.Errors, ", "))
			return m
		}
		task, err := m.store.AddTask(store.AddTaskRequest{
			Title:    parsed.Title,
			Priority: parsed.Priority,
			Status:   m.view.Status, // stays visible under the current filter
			DueDate:  parsed.DueDate,
			Reminder: parsed.Reminder,
			Repeat:   parsed.Repeat,
		})
		if err != nil {
			m.err = err
			return m
		}
		_ = m.store.SelectTask(task.ID)
		m.flash = fmt.Sprintf("Added %q", task.Title)

	case ModeAddStep:
		if task, ok := m.selected(); ok {
			_, m.err = m.store.AddStep(task.ID, value)
		}

	case ModeNotes:
		if task, ok := m.selected(); ok {
			m.err = m.store.UpdateNotes(task.ID, value)
		}
	}

	return m.refresh()
}

// refreshWeather asks the watcher for a fresh reading
func (m AppModel) refreshWeather() tea.Cmd {
	w := m.watcher
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		r, _ := w.Refresh(ctx)
		return weatherMsg(r)
	}
}

// View renders the TUI
func (m AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	sidebarWidth := 28
	if m.width < 90 {
		sidebarWidth = 22
	}
	rest := m.width - sidebarWidth - 6
	listWidth := rest * 55 / 100
	detailWidth := rest - listWidth

	content := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderSidebar(sidebarWidth),
		" ",
		m.renderTaskList(listWidth),
		" ",
		m.renderTaskDetails(detailWidth),
	)

	var bottom string
	if m.mode != ModeList {
		bottom = m.renderInputBar()
	} else {
		bottom = m.renderHelpBar()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		content,
		m.renderFlash(),
		bottom,
	)
}

// renderSidebar renders views with counts, the user, progress and weather
func (m AppModel) renderSidebar(width int) string {
	var b strings.Builder

	logoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentMain)).
		Bold(true)
	b.WriteString(logoStyle.Render("☀ My Day"))
	b.WriteString("\n")

	userStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	if m.view.User != nil {
		b.WriteString(userStyle.Render("@" + m.view.User.Username))
	} else {
		b.WriteString(userStyle.Italic(true).Render("not logged in"))
	}
	b.WriteString("\n\n")

	for i, v := range models.Views {
		label := fmt.Sprintf("%d %-15s %3d", i+1, v.Title(), m.view.Counts.For(v))
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
		if v == m.view.View {
			style = style.Foreground(lipgloss.Color(ColorPrimaryText)).
				Background(lipgloss.Color(ColorAccentMain)).
				Bold(true)
		}
		b.WriteString(style.Render(label))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(userStyle.Render(fmt.Sprintf("Today %3.0f%%", m.view.Progress*100)))
	b.WriteString("\n")
	m.progress.Width = width - 2
	b.WriteString(m.progress.ViewAs(m.view.Progress))
	b.WriteString("\n\n")

	b.WriteString(m.renderWeather())

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Width(width).
		Render(b.String())
}

func (m AppModel) renderWeather() string {
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText))
	if m.watcher == nil {
		return muted.Render("weather off")
	}
	city := m.watcher.City()
	if !m.hasWeather {
		return muted.Render(city + ": loading…")
	}

	var b strings.Builder
	if m.weather.Valid {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright)).
			Render(fmt.Sprintf("%s %.0f°C %s", city, m.weather.Info.TemperatureCelsius, m.weather.Info.Condition)))
	} else {
		b.WriteString(muted.Render(city + ": no data"))
	}
	if m.weather.Err != nil {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError)).Render("weather unavailable"))
	}
	return b.String()
}

// renderTaskList renders the tasks of the current view
func (m AppModel) renderTaskList(width int) string {
	var b strings.Builder

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccentBright))
	b.WriteString(headerStyle.Render(fmt.Sprintf("%s · %s", m.view.View.Title(), m.view.Status)))
	b.WriteString("\n\n")

	if len(m.view.Visible) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText)).
			Italic(true)
		b.WriteString(emptyStyle.Render("No tasks here. Press a to add one."))
		return m.panel(width, b.String())
	}

	// Rows that fit: height - header(2) - borders(2) - flash/help(3)
	rows := m.height - 8
	if rows < 3 {
		rows = 3
	}
	start := 0
	if m.cursor >= rows {
		start = m.cursor - rows + 1
	}
	end := min(start+rows, len(m.view.Visible))

	titleWidth := width - 8
	if titleWidth < 10 {
		titleWidth = 10
	}

	for i := start; i < end; i++ {
		task := m.view.Visible[i]
		check := "○"
		if task.Completed {
			check = "✓"
		}

		title := truncate(task.Title, titleWidth)
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		if task.Completed {
			style = style.Foreground(lipgloss.Color(ColorDisabledText)).Strikethrough(true)
		}
		mark := lipgloss.NewStyle().Foreground(lipgloss.Color(priorityColor(task.Priority))).Render("●")

		row := fmt.Sprintf("%s %s %s", check, mark, style.Render(title))
		if i == m.cursor {
			row = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorAccentBright)).
				Bold(true).
				Render("▶ ") + row
		} else {
			row = "  " + row
		}
		b.WriteString(row)
		b.WriteString("\n")
	}

	if len(m.view.Visible) > rows {
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorHelpText)).
			Render(fmt.Sprintf("%d/%d", m.cursor+1, len(m.view.Visible))))
	}

	return m.panel(width, b.String())
}

// renderTaskDetails renders the selected task
func (m AppModel) renderTaskDetails(width int) string {
	var b strings.Builder

	task, ok := m.selected()
	if !ok {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText)).
			Italic(true).
			Align(lipgloss.Center).
			Width(width - 2)
		b.WriteString(emptyStyle.Render("Select a task to view details"))
		return m.panel(width, b.String())
	}

	now := m.store.Now()
	label := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	value := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText))

	b.WriteString(lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Width(width - 2).
		Render(task.Title))
	b.WriteString("\n")
	b.WriteString(muted.Render(task.ShortID() + " · created " + task.CreatedAt.In(now.Location()).Format("02/01 15:04")))
	b.WriteString("\n\n")

	line := func(name, v string) {
		b.WriteString(label.Render(fmt.Sprintf("%-9s", name)))
		if v == "" {
			b.WriteString(muted.Render("-"))
		} else {
			b.WriteString(value.Render(v))
		}
		b.WriteString("\n")
	}

	b.WriteString(label.Render(fmt.Sprintf("%-9s", "Priority")))
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(priorityColor(task.Priority))).Render(string(task.Priority)))
	b.WriteString("\n")
	line("Status", string(task.StatusOrTodo()))
	line("Due", parser.FormatDueDate(task.DueDate, now))
	line("Remind", parser.FormatReminder(task.Reminder, now))
	repeat := ""
	if task.Repeat != nil && *task.Repeat != models.RepeatNone {
		repeat = string(*task.Repeat)
	}
	line("Repeat", repeat)
	assignee := ""
	if task.AssignedTo != nil {
		assignee = *task.AssignedTo
		if m.view.User != nil && m.view.User.ID == assignee {
			assignee = "me (@" + m.view.User.Username + ")"
		}
	}
	line("Assigned", assignee)

	if len(task.Steps) > 0 {
		b.WriteString("\n")
		b.WriteString(label.Render(fmt.Sprintf("Steps %d/%d", task.StepsDone(), len(task.Steps))))
		b.WriteString("\n")
		for _, step := range task.Steps {
			if step.Completed {
				b.WriteString(muted.Render("  ✓ " + step.Title))
			} else {
				b.WriteString(value.Render("  ○ " + step.Title))
			}
			b.WriteString("\n")
		}
	}

	if task.Notes != "" {
		b.WriteString("\n")
		b.WriteString(label.Render("Notes"))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText)).
			Italic(true).
			Width(width - 2).
			Render(task.Notes))
	}

	return m.panel(width, b.String())
}

func (m AppModel) panel(width int, content string) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Width(width).
		Render(content)
}

func (m AppModel) renderFlash() string {
	if m.err != nil {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError)).Render("✗ " + m.err.Error())
	}
	if m.flash != "" {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess)).Render(m.flash)
	}
	return ""
}

// renderInputBar renders the prompt for the current mode
func (m AppModel) renderInputBar() string {
	prompt := map[Mode]string{
		ModeAddTask: "New task: ",
		ModeAddStep: "New step: ",
		ModeNotes:   "Notes: ",
	}[m.mode]

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Background(lipgloss.Color(ColorBorder)).
		Padding(0, 1).
		Width(m.width - 2).
		Render(prompt + m.input.View() + "  (enter save · esc cancel)")
}

// renderHelpBar renders the help bar with hotkey hints
func (m AppModel) renderHelpBar() string {
	parts := []string{"1-5 views"}
	for _, b := range m.keys.helpLine() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Width(m.width).
		Render(strings.Join(parts, " · "))
}

func priorityColor(p models.Priority) string {
	switch p {
	case models.PriorityHigh:
		return ColorError
	case models.PriorityMedium:
		return ColorWarning
	}
	return ColorSecondaryText
}

// truncate shortens s to width runes
func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 3 {
		return string(r[:width])
	}
	return string(r[:width-3]) + "..."
}
