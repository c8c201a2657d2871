package app

import (
	"strings"

	"taskmaster/model"
	"taskmaster/theme"
)

// Saver persists the state after a content change. It must not fail the
// caller; implementations report their own errors.
type Saver interface {
	Save(state model.List)
}

// Service holds the application state and applies messages to it.
type Service struct {
	state model.List
	saver Saver
}

// NewService creates a service around a loaded state.
func NewService(state model.List, saver Saver) *Service {
	return &Service{state: normalizeState(state), saver: saver}
}

// State returns a copy of current state.
func (s *Service) State() model.List {
	return copyState(s.state)
}

// Selected returns the open list, if any.
func (s *Service) Selected() (model.Tasks, int, bool) {
	if s.state.Selected == nil || !s.state.Valid(*s.state.Selected) {
		return model.Tasks{}, -1, false
	}
	idx := *s.state.Selected
	return copyTasks(s.state.Lists[idx]), idx, true
}

// AppTheme resolves the selected theme, Default when none is set.
func (s *Service) AppTheme() theme.Palette {
	selected := model.ThemeDefault
	if s.state.SelectedTheme != nil {
		selected = *s.state.SelectedTheme
	}
	return theme.For(selected)
}

// Update applies one message. List-level messages are handled here; anything
// else goes to the selected list.
func (s *Service) Update(msg Message) {
	st := &s.state
	switch msg := msg.(type) {
	case BeginAddList:
		st.Reset()
		st.AddingAfter = model.Index(msg.After)
	case UpdateListDraft:
		st.Draft = msg.Title
	case ConfirmAddList:
		title := strings.TrimSpace(st.Draft)
		after := st.AddingAfter
		st.Draft = ""
		st.AddingAfter = nil
		if title == "" {
			return
		}
		s.insertList(after, model.Tasks{Title: title, List: []model.Task{}})
		s.persist()
	case CancelAddList:
		st.Draft = ""
		st.AddingAfter = nil
	case RemoveList:
		if !st.Valid(msg.Index) {
			return
		}
		st.Lists = append(st.Lists[:msg.Index], st.Lists[msg.Index+1:]...)
		s.shiftSelection(msg.Index)
		st.Removed(msg.Index)
		s.persist()
	case BeginEditList:
		if !st.Valid(msg.Index) {
			return
		}
		st.Reset()
		st.Editing = model.Index(msg.Index)
	case ConfirmEditList:
		if st.Editing == nil {
			return
		}
		idx := *st.Editing
		draft := st.Draft
		st.Editing = nil
		st.Draft = ""
		if !st.Valid(idx) {
			return
		}
		st.Lists[idx].Title = draft
		s.persist()
	case CancelEditList:
		st.Editing = nil
		st.Draft = ""
	case SelectList:
		if st.Valid(msg.Index) {
			st.Selected = model.Index(msg.Index)
		}
	case BackToLists:
		if _, idx, ok := s.Selected(); ok {
			st.Lists[idx].Reset()
		}
		st.Selected = nil
		st.Reset()
	case ThemeChanged:
		if !msg.Theme.Valid() {
			return
		}
		th := msg.Theme
		st.SelectedTheme = &th
		s.persist()
	default:
		if st.Selected == nil || !st.Valid(*st.Selected) {
			return
		}
		if UpdateTasks(&st.Lists[*st.Selected], msg) {
			s.persist()
		}
	}
}

// insertList places a new list right after the position the add began at,
// or at the end when that position is past the last list.
func (s *Service) insertList(after *int, list model.Tasks) {
	lists := s.state.Lists
	if after == nil || *after < 0 || *after >= len(lists) {
		s.state.Lists = append(lists, list)
		return
	}
	at := *after + 1
	lists = append(lists, model.Tasks{})
	copy(lists[at+1:], lists[at:])
	lists[at] = list
	s.state.Lists = lists
	if s.state.Selected != nil && *s.state.Selected >= at {
		s.state.Selected = model.Index(*s.state.Selected + 1)
	}
}

// shiftSelection keeps the selection on the same list after removal.
func (s *Service) shiftSelection(removed int) {
	sel := s.state.Selected
	if sel == nil {
		return
	}
	switch {
	case *sel == removed:
		s.state.Selected = nil
	case *sel > removed:
		s.state.Selected = model.Index(*sel - 1)
	}
}

func (s *Service) persist() {
	if s.saver == nil {
		return
	}
	s.saver.Save(copyState(s.state))
}

func normalizeState(state model.List) model.List {
	if state.Lists == nil {
		state.Lists = []model.Tasks{}
	}
	for i := range state.Lists {
		if state.Lists[i].List == nil {
			state.Lists[i].List = []model.Task{}
		}
	}
	if len(state.Themes) == 0 {
		state.Themes = model.Catalog()
	}
	if state.Selected != nil && !state.Valid(*state.Selected) {
		state.Selected = nil
	}
	return state
}

func copyTasks(t model.Tasks) model.Tasks {
	out := t
	out.Editor = t.Editor.Clone()
	out.List = make([]model.Task, len(t.List))
	copy(out.List, t.List)
	return out
}

func copyState(state model.List) model.List {
	out := state
	out.Editor = state.Editor.Clone()
	if state.Selected != nil {
		out.Selected = model.Index(*state.Selected)
	}
	if state.SelectedTheme != nil {
		th := *state.SelectedTheme
		out.SelectedTheme = &th
	}
	out.Lists = make([]model.Tasks, len(state.Lists))
	for i := range state.Lists {
		out.Lists[i] = copyTasks(state.Lists[i])
	}
	out.Themes = make([]model.Theme, len(state.Themes))
	copy(out.Themes, state.Themes)
	return out
}
