package model

import "fmt"

// Status is the progress of a single task.
// Values are ordered: Pending < InProgress < Complete.
type Status int

const (
	StatusPending Status = iota
	StatusInProgress
	StatusComplete
)

var statusNames = [...]string{
	StatusPending:    "Pending",
	StatusInProgress: "InProgress",
	StatusComplete:   "Complete",
}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return fmt.Sprintf("Status(%d)", int(s))
	}
	return statusNames[s]
}

// Next returns the status reached by a single advance.
// Once a task has left Pending it never returns there.
func (s Status) Next() Status {
	switch s {
	case StatusPending:
		return StatusInProgress
	case StatusInProgress:
		return StatusComplete
	default:
		return StatusInProgress
	}
}

func (s Status) MarshalText() ([]byte, error) {
	if s < 0 || int(s) >= len(statusNames) {
		return nil, fmt.Errorf("unknown status %d", int(s))
	}
	return []byte(statusNames[s]), nil
}

func (s *Status) UnmarshalText(b []byte) error {
	for i, name := range statusNames {
		if name == string(b) {
			*s = Status(i)
			return nil
		}
	}
	return fmt.Errorf("unknown status %q", string(b))
}

// Task is an individual todo item.
type Task struct {
	Title  string `json:"title"`
	Status Status `json:"status"`
}

// Advance moves the task one step along its status cycle.
func (t *Task) Advance() {
	t.Status = t.Status.Next()
}

// Editor holds the add/edit workflow state of one level of the UI.
// It is never persisted.
type Editor struct {
	AddingAfter *int
	Editing     *int
	Draft       string
}

// Reset clears any in-progress add or edit.
func (e *Editor) Reset() {
	e.AddingAfter = nil
	e.Editing = nil
	e.Draft = ""
}

// Removed keeps the workflow indices on the same entries after entry i of
// the collection is removed. An edit of the removed entry is dropped.
func (e *Editor) Removed(i int) {
	if e.Editing != nil {
		switch {
		case *e.Editing == i:
			e.Editing = nil
			e.Draft = ""
		case *e.Editing > i:
			e.Editing = Index(*e.Editing - 1)
		}
	}
	if e.AddingAfter != nil && *e.AddingAfter >= i && *e.AddingAfter > 0 {
		e.AddingAfter = Index(*e.AddingAfter - 1)
	}
}

// Clone returns a copy that shares no pointers with e.
func (e Editor) Clone() Editor {
	return Editor{
		AddingAfter: cloneIndex(e.AddingAfter),
		Editing:     cloneIndex(e.Editing),
		Draft:       e.Draft,
	}
}

func cloneIndex(i *int) *int {
	if i == nil {
		return nil
	}
	return Index(*i)
}

// Tasks is a single named to-do list.
type Tasks struct {
	Title  string `json:"title"`
	List   []Task `json:"list"`
	Editor `json:"-"`
}

// Completed counts the tasks whose status is Complete.
func (t Tasks) Completed() int {
	n := 0
	for _, task := range t.List {
		if task.Status == StatusComplete {
			n++
		}
	}
	return n
}

// Valid reports whether i addresses an existing task.
func (t Tasks) Valid(i int) bool {
	return i >= 0 && i < len(t.List)
}

// List is the full application state: every named list plus the theme
// selection and list-level workflow state.
type List struct {
	Lists         []Tasks `json:"lists"`
	Themes        []Theme `json:"themes"`
	SelectedTheme *Theme  `json:"selected_theme,omitempty"`
	Selected      *int    `json:"-"`
	Editor        `json:"-"`
}

// NewList returns an initialized empty state with the theme catalog.
func NewList() List {
	return List{
		Lists:  []Tasks{},
		Themes: Catalog(),
	}
}

// Valid reports whether i addresses an existing list.
func (l List) Valid(i int) bool {
	return i >= 0 && i < len(l.Lists)
}

// Index returns a pointer to i, for the optional index fields.
func Index(i int) *int {
	return &i
}
