package app

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"taskmaster/model"
	"taskmaster/theme"
)

type recordingSaver struct {
	saved []model.List
}

func (r *recordingSaver) Save(state model.List) {
	r.saved = append(r.saved, state)
}

func newService(t *testing.T, titles ...string) (*Service, *recordingSaver) {
	t.Helper()
	state := model.NewList()
	for _, title := range titles {
		state.Lists = append(state.Lists, model.Tasks{Title: title, List: []model.Task{}})
	}
	saver := &recordingSaver{}
	return NewService(state, saver), saver
}

func mustAddList(t *testing.T, svc *Service, after int, title string) {
	t.Helper()
	before := len(svc.State().Lists)
	svc.Update(BeginAddList{After: after})
	svc.Update(UpdateListDraft{Title: title})
	svc.Update(ConfirmAddList{})
	require.Len(t, svc.State().Lists, before+1)
}

func titlesOf(state model.List) []string {
	out := make([]string, len(state.Lists))
	for i, l := range state.Lists {
		out[i] = l.Title
	}
	return out
}

func TestBuyMilkScenario(t *testing.T) {
	svc, saver := newService(t, "Groceries")
	svc.Update(SelectList{Index: 0})

	svc.Update(BeginAddTask{After: 0})
	svc.Update(UpdateTaskDraft{Title: "Buy milk"})
	svc.Update(ConfirmAddTask{})

	list, _, ok := svc.Selected()
	require.True(t, ok)
	require.Equal(t, []model.Task{{Title: "Buy milk", Status: model.StatusPending}}, list.List)
	assert.Nil(t, list.AddingAfter)
	assert.Empty(t, list.Draft)

	svc.Update(AdvanceTask{Index: 0})
	svc.Update(AdvanceTask{Index: 0})
	list, _, _ = svc.Selected()
	assert.Equal(t, model.StatusComplete, list.List[0].Status)

	svc.Update(RemoveTask{Index: 0})
	list, _, _ = svc.Selected()
	assert.Empty(t, list.List)

	// add, advance, advance, remove
	assert.Len(t, saver.saved, 4)
	assert.Empty(t, saver.saved[3].Lists[0].List)
}

func TestTransientTaskMessagesDoNotPersist(t *testing.T) {
	svc, saver := newService(t, "Inbox")
	svc.Update(SelectList{Index: 0})

	svc.Update(BeginAddTask{After: 0})
	svc.Update(UpdateTaskDraft{Title: "draft"})
	svc.Update(CancelAddTask{})
	svc.Update(BeginEditTask{Index: 0})
	svc.Update(CancelEditTask{})

	assert.Empty(t, saver.saved)
}

func TestConfirmAddTaskAlwaysAppends(t *testing.T) {
	tasks := model.Tasks{List: []model.Task{{Title: "a"}, {Title: "b"}}}

	UpdateTasks(&tasks, BeginAddTask{After: 0})
	UpdateTasks(&tasks, UpdateTaskDraft{Title: "  c  "})
	changed := UpdateTasks(&tasks, ConfirmAddTask{})

	assert.True(t, changed)
	require.Len(t, tasks.List, 3)
	assert.Equal(t, "c", tasks.List[2].Title)
}

func TestConfirmAddBlankTitleNeverCreatesEntry(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		blank := rapid.StringOfN(rapid.SampledFrom([]rune{' ', '\t', '\n', '\r'}), 0, 12, -1).Draw(rt, "blank")

		tasks := model.Tasks{List: []model.Task{{Title: "keep"}}}
		UpdateTasks(&tasks, BeginAddTask{After: 1})
		UpdateTasks(&tasks, UpdateTaskDraft{Title: blank})
		if UpdateTasks(&tasks, ConfirmAddTask{}) {
			rt.Fatalf("blank title %q reported a change", blank)
		}
		if len(tasks.List) != 1 || tasks.AddingAfter != nil || tasks.Draft != "" {
			rt.Fatalf("unexpected state after blank confirm: %+v", tasks)
		}

		svc := NewService(model.NewList(), nil)
		svc.Update(BeginAddList{After: 0})
		svc.Update(UpdateListDraft{Title: blank})
		svc.Update(ConfirmAddList{})
		st := svc.State()
		if len(st.Lists) != 0 || st.AddingAfter != nil || st.Draft != "" {
			rt.Fatalf("unexpected list state after blank confirm: %+v", st)
		}
	})
}

func TestRemoveTaskProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, 8).Draw(rt, "n")
		tasks := model.Tasks{List: []model.Task{}}
		for i := 0; i < n; i++ {
			tasks.List = append(tasks.List, model.Task{Title: string(rune('a' + i))})
		}
		orig := append([]model.Task(nil), tasks.List...)
		idx := rapid.IntRange(-3, n+3).Draw(rt, "idx")

		changed := UpdateTasks(&tasks, RemoveTask{Index: idx})

		if idx < 0 || idx >= n {
			if changed || len(tasks.List) != n {
				rt.Fatalf("out of range remove %d changed the list", idx)
			}
			return
		}
		if !changed || len(tasks.List) != n-1 {
			rt.Fatalf("remove %d: got len %d, want %d", idx, len(tasks.List), n-1)
		}
		for i := range tasks.List {
			want := orig[i]
			if i >= idx {
				want = orig[i+1]
			}
			if tasks.List[i] != want {
				rt.Fatalf("entry %d = %+v, want %+v", i, tasks.List[i], want)
			}
		}
	})
}

func TestInvalidTaskIndicesAreIgnored(t *testing.T) {
	svc, saver := newService(t, "Inbox")
	svc.Update(SelectList{Index: 0})

	for _, msg := range []Message{
		AdvanceTask{Index: 0},
		AdvanceTask{Index: -1},
		RemoveTask{Index: 5},
		BeginEditTask{Index: 0},
		ConfirmEditTask{},
	} {
		svc.Update(msg)
	}

	list, _, _ := svc.Selected()
	assert.Empty(t, list.List)
	assert.Nil(t, list.Editing)
	assert.Empty(t, saver.saved)
}

func TestEditTaskOverwritesTitleVerbatim(t *testing.T) {
	tasks := model.Tasks{List: []model.Task{{Title: "old", Status: model.StatusInProgress}}}

	UpdateTasks(&tasks, BeginEditTask{Index: 0})
	require.NotNil(t, tasks.Editing)
	UpdateTasks(&tasks, UpdateTaskDraft{Title: ""})
	assert.True(t, UpdateTasks(&tasks, ConfirmEditTask{}))

	assert.Equal(t, model.Task{Title: "", Status: model.StatusInProgress}, tasks.List[0])
	assert.Nil(t, tasks.Editing)
	assert.Empty(t, tasks.Draft)

	UpdateTasks(&tasks, BeginEditTask{Index: 0})
	UpdateTasks(&tasks, UpdateTaskDraft{Title: " spaced "})
	UpdateTasks(&tasks, ConfirmEditTask{})
	assert.Equal(t, " spaced ", tasks.List[0].Title)
}

func TestEditWithStaleIndexIsDropped(t *testing.T) {
	tasks := model.Tasks{List: []model.Task{{Title: "a"}, {Title: "b"}}}
	UpdateTasks(&tasks, BeginEditTask{Index: 1})
	UpdateTasks(&tasks, RemoveTask{Index: 1})
	UpdateTasks(&tasks, UpdateTaskDraft{Title: "renamed"})

	assert.False(t, UpdateTasks(&tasks, ConfirmEditTask{}))
	assert.Equal(t, []model.Task{{Title: "a"}}, tasks.List)
	assert.Nil(t, tasks.Editing)
	assert.Empty(t, tasks.Draft)
}

func TestCancelEditLeavesTaskUntouched(t *testing.T) {
	tasks := model.Tasks{List: []model.Task{{Title: "a"}}}
	UpdateTasks(&tasks, BeginEditTask{Index: 0})
	UpdateTasks(&tasks, UpdateTaskDraft{Title: "b"})
	assert.False(t, UpdateTasks(&tasks, CancelEditTask{}))

	assert.Equal(t, "a", tasks.List[0].Title)
	assert.Nil(t, tasks.Editing)
	assert.Empty(t, tasks.Draft)
}

func TestAddAndEditAreMutuallyExclusive(t *testing.T) {
	tasks := model.Tasks{List: []model.Task{{Title: "a"}}}

	UpdateTasks(&tasks, BeginEditTask{Index: 0})
	UpdateTasks(&tasks, UpdateTaskDraft{Title: "edit text"})
	UpdateTasks(&tasks, BeginAddTask{After: 1})
	assert.Nil(t, tasks.Editing)
	assert.Empty(t, tasks.Draft)
	require.NotNil(t, tasks.AddingAfter)

	UpdateTasks(&tasks, UpdateTaskDraft{Title: "add text"})
	UpdateTasks(&tasks, BeginEditTask{Index: 0})
	assert.Nil(t, tasks.AddingAfter)
	assert.Empty(t, tasks.Draft)

	svc, _ := newService(t, "a")
	svc.Update(BeginEditList{Index: 0})
	svc.Update(UpdateListDraft{Title: "x"})
	svc.Update(BeginAddList{After: 0})
	st := svc.State()
	assert.Nil(t, st.Editing)
	assert.Empty(t, st.Draft)
}

func TestAddListInsertsAfterCapturedPosition(t *testing.T) {
	svc, saver := newService(t, "A", "B", "C")

	mustAddList(t, svc, 0, "after A")
	assert.Equal(t, []string{"A", "after A", "B", "C"}, titlesOf(svc.State()))

	mustAddList(t, svc, 4, "end")
	assert.Equal(t, []string{"A", "after A", "B", "C", "end"}, titlesOf(svc.State()))

	mustAddList(t, svc, 4, " last ")
	assert.Equal(t, []string{"A", "after A", "B", "C", "end", "last"}, titlesOf(svc.State()))

	assert.Len(t, saver.saved, 3)
	st := svc.State()
	assert.Nil(t, st.AddingAfter)
	assert.Empty(t, st.Draft)
}

func TestAddListIntoEmptyCollection(t *testing.T) {
	svc, _ := newService(t)
	mustAddList(t, svc, 0, "First")

	st := svc.State()
	require.Len(t, st.Lists, 1)
	assert.Equal(t, "First", st.Lists[0].Title)
	assert.NotNil(t, st.Lists[0].List)
}

func TestRemoveListKeepsSelectionOnSameList(t *testing.T) {
	svc, saver := newService(t, "A", "B", "C")
	svc.Update(SelectList{Index: 2})

	svc.Update(RemoveList{Index: 0})
	list, idx, ok := svc.Selected()
	require.True(t, ok)
	assert.Equal(t, 1, idx)
	assert.Equal(t, "C", list.Title)

	svc.Update(RemoveList{Index: 1})
	_, _, ok = svc.Selected()
	assert.False(t, ok)

	svc.Update(RemoveList{Index: 7})
	assert.Equal(t, []string{"B"}, titlesOf(svc.State()))
	assert.Len(t, saver.saved, 2)
}

func TestEditListTitle(t *testing.T) {
	svc, saver := newService(t, "A", "B")

	svc.Update(BeginEditList{Index: 1})
	svc.Update(UpdateListDraft{Title: "Renamed"})
	assert.Empty(t, saver.saved)
	svc.Update(ConfirmEditList{})

	assert.Equal(t, []string{"A", "Renamed"}, titlesOf(svc.State()))
	require.Len(t, saver.saved, 1)
	assert.Equal(t, "Renamed", saver.saved[0].Lists[1].Title)

	svc.Update(BeginEditList{Index: 0})
	svc.Update(UpdateListDraft{Title: "nope"})
	svc.Update(CancelEditList{})
	assert.Equal(t, []string{"A", "Renamed"}, titlesOf(svc.State()))
	assert.Len(t, saver.saved, 1)

	svc.Update(BeginEditList{Index: 9})
	assert.Nil(t, svc.State().Editing)
}

func TestSelectAndBackToLists(t *testing.T) {
	svc, _ := newService(t, "A", "B")

	svc.Update(SelectList{Index: 5})
	_, _, ok := svc.Selected()
	assert.False(t, ok)

	svc.Update(SelectList{Index: 1})
	svc.Update(BeginAddTask{After: 0})
	svc.Update(UpdateTaskDraft{Title: "half typed"})
	svc.Update(BackToLists{})

	st := svc.State()
	assert.Nil(t, st.Selected)
	assert.Nil(t, st.AddingAfter)
	assert.Nil(t, st.Editing)
	assert.Empty(t, st.Draft)
	assert.Nil(t, st.Lists[1].AddingAfter)
	assert.Empty(t, st.Lists[1].Draft)
}

func TestTaskMessagesWithoutSelectionAreDropped(t *testing.T) {
	svc, saver := newService(t, "A")

	svc.Update(BeginAddTask{After: 0})
	svc.Update(UpdateTaskDraft{Title: "lost"})
	svc.Update(ConfirmAddTask{})

	assert.Empty(t, svc.State().Lists[0].List)
	assert.Empty(t, saver.saved)
}

func TestThemeChangedPersistsAndResolves(t *testing.T) {
	svc, saver := newService(t)
	assert.Equal(t, theme.For(model.ThemeDefault), svc.AppTheme())

	svc.Update(ThemeChanged{Theme: model.ThemeNord})

	require.Len(t, saver.saved, 1)
	require.NotNil(t, saver.saved[0].SelectedTheme)
	assert.Equal(t, model.ThemeNord, *saver.saved[0].SelectedTheme)
	assert.Equal(t, theme.Nord, svc.AppTheme())
}

func TestStateIsACopy(t *testing.T) {
	svc, _ := newService(t, "A")
	st := svc.State()
	st.Lists[0].Title = "mutated"
	st.Lists = append(st.Lists, model.Tasks{Title: "extra"})

	assert.Equal(t, []string{"A"}, titlesOf(svc.State()))
}

func TestNewServiceNormalizesState(t *testing.T) {
	svc := NewService(model.List{
		Lists:    []model.Tasks{{Title: "A"}},
		Selected: model.Index(3),
	}, nil)

	st := svc.State()
	assert.Nil(t, st.Selected)
	assert.Equal(t, model.Catalog(), st.Themes)
	assert.NotNil(t, st.Lists[0].List)
}

func TestThemeChangedRejectsUnknownTheme(t *testing.T) {
	svc, saver := newService(t, "A")
	svc.Update(ThemeChanged{Theme: model.Theme(42)})

	if len(saver.saved) != 0 {
		t.Fatalf("expected no save, got %d", len(saver.saved))
	}
	if got := svc.State().SelectedTheme; got != nil {
		t.Fatalf("expected selected theme to stay unset, got %v", *got)
	}
	if got := svc.AppTheme(); got != theme.Light {
		t.Fatalf("expected default palette, got %q", got.Name)
	}

	svc.Update(ThemeChanged{Theme: model.ThemeNord})
	svc.Update(ThemeChanged{Theme: model.Theme(-1)})
	if got := svc.State().SelectedTheme; got == nil || *got != model.ThemeNord {
		t.Fatalf("expected Nord to survive an unknown theme, got %v", got)
	}
	if len(saver.saved) != 1 {
		t.Fatalf("expected 1 save, got %d", len(saver.saved))
	}
}

func TestRemoveListKeepsEditOnSameList(t *testing.T) {
	svc, _ := newService(t, "A", "B", "C")
	svc.Update(BeginEditList{Index: 1})
	svc.Update(UpdateListDraft{Title: "renamed B"})
	svc.Update(RemoveList{Index: 0})
	svc.Update(ConfirmEditList{})

	want := []string{"renamed B", "C"}
	if got := titlesOf(svc.State()); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestRemoveListBeingEditedDropsEdit(t *testing.T) {
	svc, saver := newService(t, "A", "B", "C")
	svc.Update(BeginEditList{Index: 1})
	svc.Update(UpdateListDraft{Title: "renamed B"})
	svc.Update(RemoveList{Index: 1})

	st := svc.State()
	if st.Editing != nil || st.Draft != "" {
		t.Fatalf("expected edit to be dropped, got editing=%v draft=%q", st.Editing, st.Draft)
	}
	svc.Update(ConfirmEditList{})
	want := []string{"A", "C"}
	if got := titlesOf(svc.State()); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if len(saver.saved) != 1 {
		t.Fatalf("expected only the removal to save, got %d saves", len(saver.saved))
	}
}

func TestRemoveListKeepsAddPosition(t *testing.T) {
	svc, _ := newService(t, "A", "B", "C")
	svc.Update(BeginAddList{After: 1})
	svc.Update(UpdateListDraft{Title: "new"})
	svc.Update(RemoveList{Index: 0})
	svc.Update(ConfirmAddList{})

	want := []string{"B", "new", "C"}
	if got := titlesOf(svc.State()); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestRemoveTaskKeepsEditOnSameTask(t *testing.T) {
	list := model.Tasks{Title: "Inbox", List: []model.Task{{Title: "a"}, {Title: "b"}, {Title: "c"}}}
	UpdateTasks(&list, BeginEditTask{Index: 2})
	UpdateTasks(&list, UpdateTaskDraft{Title: "renamed c"})
	UpdateTasks(&list, RemoveTask{Index: 0})
	if !UpdateTasks(&list, ConfirmEditTask{}) {
		t.Fatalf("expected edit to apply after removal")
	}

	want := []model.Task{{Title: "b"}, {Title: "renamed c"}}
	if !reflect.DeepEqual(list.List, want) {
		t.Fatalf("expected %v, got %v", want, list.List)
	}
}

func TestRemoveTaskBeingEditedDropsEdit(t *testing.T) {
	list := model.Tasks{Title: "Inbox", List: []model.Task{{Title: "a"}, {Title: "b"}}}
	UpdateTasks(&list, BeginEditTask{Index: 1})
	UpdateTasks(&list, UpdateTaskDraft{Title: "renamed b"})
	UpdateTasks(&list, RemoveTask{Index: 1})

	if list.Editing != nil || list.Draft != "" {
		t.Fatalf("expected edit to be dropped, got editing=%v draft=%q", list.Editing, list.Draft)
	}
	if UpdateTasks(&list, ConfirmEditTask{}) {
		t.Fatalf("expected confirm without an edit to change nothing")
	}
	if want := []model.Task{{Title: "a"}}; !reflect.DeepEqual(list.List, want) {
		t.Fatalf("expected %v, got %v", want, list.List)
	}
}

func TestStateSharesNoPointers(t *testing.T) {
	svc, saver := newService(t, "A", "B")
	svc.Update(SelectList{Index: 1})
	svc.Update(ThemeChanged{Theme: model.ThemeNord})
	svc.Update(BeginEditList{Index: 0})

	st := svc.State()
	*st.Selected = 0
	*st.SelectedTheme = model.ThemeDracula
	*st.Editing = 1

	after := svc.State()
	if *after.Selected != 1 {
		t.Fatalf("selection leaked through copy: %d", *after.Selected)
	}
	if *after.SelectedTheme != model.ThemeNord {
		t.Fatalf("theme leaked through copy: %v", *after.SelectedTheme)
	}
	if *after.Editing != 0 {
		t.Fatalf("edit index leaked through copy: %d", *after.Editing)
	}

	saved := saver.saved[len(saver.saved)-1]
	*saved.SelectedTheme = model.ThemeOxocarbon
	if svc.AppTheme() != theme.Nord {
		t.Fatalf("saved snapshot aliases service theme")
	}
}
