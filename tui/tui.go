package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"taskmaster/app"
	"taskmaster/config"
	"taskmaster/model"
)

// Model is the terminal shell around app.Service. It keeps only cursor and
// input widget state; everything else is read back from the service.
type Model struct {
	svc    *app.Service
	keys   config.Keymap
	logger *log.Logger

	input      textinput.Model
	listCursor int
	taskCursor int

	width  int
	height int
}

func NewModel(svc *app.Service, keys config.Keymap, logger *log.Logger) *Model {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 40
	return &Model{
		svc:    svc,
		keys:   keys,
		logger: logger,
		input:  ti,
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(msg.Width-10, 10)
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.editing() {
			return m, m.updateInputMode(msg)
		}
		if _, _, open := m.svc.Selected(); open {
			return m, m.updateTasksMode(msg.String())
		}
		return m, m.updateListsMode(msg.String())
	}
	return m, nil
}

// editing reports whether the visible level has an add or edit in progress.
func (m *Model) editing() bool {
	if tasks, _, open := m.svc.Selected(); open {
		return tasks.AddingAfter != nil || tasks.Editing != nil
	}
	st := m.svc.State()
	return st.AddingAfter != nil || st.Editing != nil
}

func (m *Model) dispatch(msg app.Message) {
	m.logger.Debug("dispatch", "msg", fmt.Sprintf("%T", msg))
	m.svc.Update(msg)
}

func (m *Model) updateListsMode(key string) tea.Cmd {
	st := m.svc.State()
	switch key {
	case m.keys.Quit:
		return tea.Quit
	case m.keys.Down:
		m.listCursor = clamp(m.listCursor+1, 0, len(st.Lists)-1)
	case m.keys.Up:
		m.listCursor = clamp(m.listCursor-1, 0, len(st.Lists)-1)
	case m.keys.Open:
		m.dispatch(app.SelectList{Index: m.listCursor})
		m.taskCursor = 0
	case m.keys.Add:
		after := m.listCursor
		if len(st.Lists) == 0 {
			after = 0
		}
		m.dispatch(app.BeginAddList{After: after})
		return m.startInput("New list title...", "")
	case m.keys.Edit:
		if !st.Valid(m.listCursor) {
			return nil
		}
		title := st.Lists[m.listCursor].Title
		m.dispatch(app.BeginEditList{Index: m.listCursor})
		m.dispatch(app.UpdateListDraft{Title: title})
		return m.startInput("New list title...", title)
	case m.keys.Remove:
		m.dispatch(app.RemoveList{Index: m.listCursor})
		m.listCursor = clamp(m.listCursor, 0, len(m.svc.State().Lists)-1)
	case m.keys.Theme:
		m.cycleTheme()
	}
	return nil
}

func (m *Model) updateTasksMode(key string) tea.Cmd {
	tasks, _, _ := m.svc.Selected()
	switch key {
	case m.keys.Quit:
		return tea.Quit
	case m.keys.Back:
		m.dispatch(app.BackToLists{})
	case m.keys.Down:
		m.taskCursor = clamp(m.taskCursor+1, 0, len(tasks.List)-1)
	case m.keys.Up:
		m.taskCursor = clamp(m.taskCursor-1, 0, len(tasks.List)-1)
	case m.keys.Advance:
		m.dispatch(app.AdvanceTask{Index: m.taskCursor})
	case m.keys.Add:
		m.dispatch(app.BeginAddTask{After: len(tasks.List)})
		return m.startInput("New task title...", "")
	case m.keys.Edit:
		if !tasks.Valid(m.taskCursor) {
			return nil
		}
		title := tasks.List[m.taskCursor].Title
		m.dispatch(app.BeginEditTask{Index: m.taskCursor})
		m.dispatch(app.UpdateTaskDraft{Title: title})
		return m.startInput("New task title...", title)
	case m.keys.Remove:
		m.dispatch(app.RemoveTask{Index: m.taskCursor})
		tasks, _, _ = m.svc.Selected()
		m.taskCursor = clamp(m.taskCursor, 0, len(tasks.List)-1)
	case m.keys.Theme:
		m.cycleTheme()
	}
	return nil
}

func (m *Model) updateInputMode(msg tea.KeyMsg) tea.Cmd {
	tasks, _, open := m.svc.Selected()
	switch msg.String() {
	case m.keys.Confirm:
		switch {
		case open && tasks.Editing != nil:
			m.dispatch(app.ConfirmEditTask{})
		case open:
			m.dispatch(app.ConfirmAddTask{})
			if tasks, _, _ = m.svc.Selected(); len(tasks.List) > 0 {
				m.taskCursor = len(tasks.List) - 1
			}
		case m.svc.State().Editing != nil:
			m.dispatch(app.ConfirmEditList{})
		default:
			m.dispatch(app.ConfirmAddList{})
		}
		m.stopInput()
		return nil
	case m.keys.Cancel:
		switch {
		case open && tasks.Editing != nil:
			m.dispatch(app.CancelEditTask{})
		case open:
			m.dispatch(app.CancelAddTask{})
		case m.svc.State().Editing != nil:
			m.dispatch(app.CancelEditList{})
		default:
			m.dispatch(app.CancelAddList{})
		}
		m.stopInput()
		return nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if open {
		m.svc.Update(app.UpdateTaskDraft{Title: m.input.Value()})
	} else {
		m.svc.Update(app.UpdateListDraft{Title: m.input.Value()})
	}
	return cmd
}

func (m *Model) startInput(placeholder, value string) tea.Cmd {
	m.input.Placeholder = placeholder
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m *Model) stopInput() {
	m.input.SetValue("")
	m.input.Blur()
}

func (m *Model) cycleTheme() {
	current := model.ThemeDefault
	if sel := m.svc.State().SelectedTheme; sel != nil {
		current = *sel
	}
	m.dispatch(app.ThemeChanged{Theme: current.Next()})
}

func (m *Model) View() string {
	palette := m.svc.AppTheme()
	st := m.svc.State()

	var b strings.Builder
	tasks, _, open := m.svc.Selected()
	if open {
		header := fmt.Sprintf("%s: %d/%d", tasks.Title, tasks.Completed(), len(tasks.List))
		b.WriteString(palette.Title().Render(header))
	} else {
		b.WriteString(palette.Title().Render("Lists"))
	}
	themeName := model.ThemeDefault.String()
	if st.SelectedTheme != nil {
		themeName = st.SelectedTheme.String()
	}
	b.WriteString(palette.Muted().Render("  theme: " + themeName))
	b.WriteString("\n\n")

	if open {
		b.WriteString(m.renderTasks(tasks))
	} else {
		b.WriteString(m.renderLists(st))
	}

	b.WriteString("\n")
	if m.editing() {
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(palette.Muted().Render(fmt.Sprintf("%s save • %s cancel", keyLabel(m.keys.Confirm), keyLabel(m.keys.Cancel))))
	} else {
		b.WriteString(palette.Muted().Render(m.help(open)))
	}

	out := b.String()
	if m.width > 0 {
		out = lipgloss.NewStyle().Width(m.width).Render(out)
	}
	return out
}

func (m *Model) renderLists(st model.List) string {
	palette := m.svc.AppTheme()
	if len(st.Lists) == 0 {
		return palette.Muted().Render(fmt.Sprintf("No lists yet. Press '%s' to add one.", keyLabel(m.keys.Add))) + "\n"
	}
	var lines []string
	for i, l := range st.Lists {
		line := fmt.Sprintf("%s  %d/%d", l.Title, l.Completed(), len(l.List))
		lines = append(lines, m.row(i == m.listCursor, line))
	}
	return strings.Join(lines, "\n") + "\n"
}

func (m *Model) renderTasks(tasks model.Tasks) string {
	palette := m.svc.AppTheme()
	if len(tasks.List) == 0 {
		return palette.Muted().Render(fmt.Sprintf("No tasks yet. Press '%s' to add one.", keyLabel(m.keys.Add))) + "\n"
	}
	var lines []string
	for i, task := range tasks.List {
		status := palette.Status(task.Status).Render(fmt.Sprintf("[%s]", task.Status))
		title := task.Title
		if i == m.taskCursor {
			title = palette.Selected().Render(title)
		} else {
			title = palette.Base().Render(title)
		}
		cursor := " "
		if i == m.taskCursor {
			cursor = ">"
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Left, cursor, " ", title, " ", status))
	}
	return strings.Join(lines, "\n") + "\n"
}

func (m *Model) row(selected bool, text string) string {
	palette := m.svc.AppTheme()
	if selected {
		return "> " + palette.Selected().Render(text)
	}
	return "  " + palette.Base().Render(text)
}

func (m *Model) help(open bool) string {
	k := m.keys
	if open {
		return fmt.Sprintf("%s/%s move • %s advance • %s add • %s edit • %s remove • %s back • %s theme • %s quit",
			k.Up, k.Down, keyLabel(k.Advance), k.Add, k.Edit, k.Remove, k.Back, k.Theme, k.Quit)
	}
	return fmt.Sprintf("%s/%s move • %s open • %s add • %s edit • %s remove • %s theme • %s quit",
		k.Up, k.Down, k.Open, k.Add, k.Edit, k.Remove, k.Theme, k.Quit)
}

func keyLabel(key string) string {
	if key == " " {
		return "space"
	}
	return key
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
