package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
)

// formField identifies a focusable field of the pledge form.
type formField int

const (
	fieldCategory formField = iota
	fieldText
	fieldRemind

	fieldCount
)

// formModel holds the pledge form state: two option cyclers and a free
// text input. The option sets come from configuration and are never
// validated against, only offered.
type formModel struct {
	categories []string
	reminders  []string

	categoryIdx int
	remindIdx   int
	text        textinput.Model

	focus formField
}

// newFormModel creates a form with the given option sets.
func newFormModel(categories, reminders []string) formModel {
	ti := textinput.New()
	ti.Placeholder = "I pledge to..."
	ti.Prompt = ""
	ti.Width = 40

	f := formModel{
		categories: categories,
		reminders:  reminders,
		text:       ti,
	}
	f.setFocus(fieldCategory)
	return f
}

// reset returns every field to its default: first option selected,
// text cleared, focus back on the category chooser.
func (f *formModel) reset() {
	f.categoryIdx = 0
	f.remindIdx = 0
	f.text.SetValue("")
	f.setFocus(fieldCategory)
}

// setFocus moves focus to the given field, keeping the text input's
// focus state in sync.
func (f *formModel) setFocus(field formField) {
	f.focus = field
	if field == fieldText {
		f.text.Focus()
	} else {
		f.text.Blur()
	}
}

// nextField advances focus, wrapping around.
func (f *formModel) nextField() {
	f.setFocus((f.focus + 1) % fieldCount)
}

// prevField moves focus back, wrapping around.
func (f *formModel) prevField() {
	f.setFocus((f.focus + fieldCount - 1) % fieldCount)
}

// cycle steps the focused chooser by delta. It does nothing while the
// text input is focused.
func (f *formModel) cycle(delta int) {
	switch f.focus {
	case fieldCategory:
		f.categoryIdx = cycleIndex(f.categoryIdx, delta, len(f.categories))
	case fieldRemind:
		f.remindIdx = cycleIndex(f.remindIdx, delta, len(f.reminders))
	}
}

func cycleIndex(idx, delta, n int) int {
	if n == 0 {
		return 0
	}
	return ((idx+delta)%n + n) % n
}

// Category returns the selected category option.
func (f *formModel) Category() string {
	if len(f.categories) == 0 {
		return ""
	}
	return f.categories[f.categoryIdx]
}

// Remind returns the selected reminder option.
func (f *formModel) Remind() string {
	if len(f.reminders) == 0 {
		return ""
	}
	return f.reminders[f.remindIdx]
}

// Text returns the raw text input value.
func (f *formModel) Text() string {
	return f.text.Value()
}

// view renders the form fields with the focused one highlighted.
func (f *formModel) view(st Styles) string {
	var s string

	s += f.viewChooser(st, fieldCategory, "Category", f.Category())
	s += "\n"

	label := st.Label.Render("Pledge:  ")
	if f.focus == fieldText {
		label = st.FieldFocused.Render("Pledge:  ")
	}
	s += "  " + label + " " + f.text.View() + "\n"

	s += f.viewChooser(st, fieldRemind, "Reminder", f.Remind())

	return s
}

// viewChooser renders one option cycler line.
func (f *formModel) viewChooser(st Styles, field formField, label, value string) string {
	labelText := fmt.Sprintf("%-9s", label+":")
	rendered := st.Label.Render(labelText)
	option := st.FieldBlurred.Render("  " + value)
	if f.focus == field {
		rendered = st.FieldFocused.Render(labelText)
		option = st.FieldFocused.Render("< " + value + " >")
	}
	return "  " + rendered + " " + option + "\n"
}
