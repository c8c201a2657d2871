package app

import (
	"strings"

	"taskmaster/model"
)

// UpdateTasks applies a task-level message to a single list and reports
// whether persisted content changed. Messages of the list level are ignored.
func UpdateTasks(t *model.Tasks, msg Message) bool {
	switch msg := msg.(type) {
	case BeginAddTask:
		t.Reset()
		t.AddingAfter = model.Index(msg.After)
	case UpdateTaskDraft:
		t.Draft = msg.Title
	case ConfirmAddTask:
		title := strings.TrimSpace(t.Draft)
		t.Draft = ""
		t.AddingAfter = nil
		if title == "" {
			return false
		}
		// New tasks always go to the end, whatever position the add began at.
		t.List = append(t.List, model.Task{Title: title, Status: model.StatusPending})
		return true
	case CancelAddTask:
		t.Draft = ""
		t.AddingAfter = nil
	case AdvanceTask:
		if !t.Valid(msg.Index) {
			return false
		}
		t.List[msg.Index].Advance()
		return true
	case RemoveTask:
		if !t.Valid(msg.Index) {
			return false
		}
		t.List = append(t.List[:msg.Index], t.List[msg.Index+1:]...)
		t.Removed(msg.Index)
		return true
	case BeginEditTask:
		if !t.Valid(msg.Index) {
			return false
		}
		t.Reset()
		t.Editing = model.Index(msg.Index)
	case ConfirmEditTask:
		if t.Editing == nil {
			return false
		}
		idx := *t.Editing
		draft := t.Draft
		t.Editing = nil
		t.Draft = ""
		if !t.Valid(idx) {
			return false
		}
		t.List[idx].Title = draft
		return true
	case CancelEditTask:
		t.Editing = nil
		t.Draft = ""
	}
	return false
}
