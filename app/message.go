package app

import "taskmaster/model"

// Message is a user action delivered by the shell. The set of variants is
// closed; Service.Update switches over all of them.
type Message interface {
	message()
}

// Task-level messages. They reach the selected list through delegation.
type (
	AdvanceTask     struct{ Index int }
	BeginAddTask    struct{ After int }
	UpdateTaskDraft struct{ Title string }
	ConfirmAddTask  struct{}
	CancelAddTask   struct{}
	RemoveTask      struct{ Index int }
	BeginEditTask   struct{ Index int }
	ConfirmEditTask struct{}
	CancelEditTask  struct{}
)

// List-level messages.
type (
	BeginAddList    struct{ After int }
	UpdateListDraft struct{ Title string }
	ConfirmAddList  struct{}
	CancelAddList   struct{}
	RemoveList      struct{ Index int }
	BeginEditList   struct{ Index int }
	ConfirmEditList struct{}
	CancelEditList  struct{}
	SelectList      struct{ Index int }
	BackToLists     struct{}
	ThemeChanged    struct{ Theme model.Theme }
)

func (AdvanceTask) message() {}
func (BeginAddTask) message() {}
func (UpdateTaskDraft) message() {}
func (ConfirmAddTask) message() {}
func (CancelAddTask) message() {}
func (RemoveTask) message() {}
func (BeginEditTask) message() {}
func (ConfirmEditTask) message() {}
func (CancelEditTask) message() {}

func (BeginAddList) message() {}
func (UpdateListDraft) message() {}
func (ConfirmAddList) message() {}
func (CancelAddList) message() {}
func (RemoveList) message() {}
func (BeginEditList) message() {}
func (ConfirmEditList) message() {}
func (CancelEditList) message() {}
func (SelectList) message() {}
func (BackToLists) message() {}
func (ThemeChanged) message() {}
