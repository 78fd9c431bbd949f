package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kaan0d/excel-file-comparison/internal/errs"
	"github.com/kaan0d/excel-file-comparison/internal/settings"
)

type indexField struct {
	key   string
	label string
	help  string
}

var indexFields = []indexField{
	{"code_column_index", "Code column", "column containing the unique code"},
	{"name_column_index", "Product name column", "column containing the product name"},
	{"incoming_column_index", "Incoming column", "compared in detailed mode"},
	{"outgoing_column_index", "Outgoing column", "compared in detailed mode"},
	{"remaining_column_index", "Remaining column", "compared in detailed mode"},
}

type customRow struct {
	name  textinput.Model
	index textinput.Model
}

// settingsForm edits the column mapping in place. Focus moves through the
// five index inputs and then name/index pairs of each custom comparison.
type settingsForm struct {
	indexes []textinput.Model
	customs []customRow
	focus   int
	errText string
}

func newSettingsForm(s settings.Settings) settingsForm {
	values := []int{s.CodeColumn, s.NameColumn, s.IncomingColumn, s.OutgoingColumn, s.RemainingColumn}

	form := settingsForm{}
	for _, v := range values {
		form.indexes = append(form.indexes, newIndexInput(strconv.Itoa(v)))
	}
	for _, c := range s.CustomComparisons {
		form.addCustomRow(c.Name, strconv.Itoa(c.Index))
	}
	form.setFocus(0)
	return form
}

func newIndexInput(value string) textinput.Model {
	ti := textinput.New()
	ti.SetValue(value)
	ti.CharLimit = 4
	ti.Width = 6
	ti.Prompt = ""
	return ti
}

func newNameInput(value string) textinput.Model {
	ti := textinput.New()
	ti.SetValue(value)
	ti.Placeholder = "name"
	ti.CharLimit = 30
	ti.Width = 20
	ti.Prompt = ""
	return ti
}

func (f *settingsForm) addCustomRow(name, index string) {
	f.customs = append(f.customs, customRow{
		name:  newNameInput(name),
		index: newIndexInput(index),
	})
}

// removeFocusedCustomRow drops the custom comparison under the cursor, if
// the cursor is on one.
func (f *settingsForm) removeFocusedCustomRow() {
	row := (f.focus - len(f.indexes)) / 2
	if f.focus < len(f.indexes) || row >= len(f.customs) {
		return
	}
	f.customs = append(f.customs[:row], f.customs[row+1:]...)
	if f.focus >= f.fieldCount() {
		f.focus = f.fieldCount() - 1
	}
	f.setFocus(f.focus)
}

func (f *settingsForm) fieldCount() int {
	return len(f.indexes) + 2*len(f.customs)
}

func (f *settingsForm) input(i int) *textinput.Model {
	if i < len(f.indexes) {
		return &f.indexes[i]
	}
	i -= len(f.indexes)
	row := &f.customs[i/2]
	if i%2 == 0 {
		return &row.name
	}
	return &row.index
}

func (f *settingsForm) setFocus(i int) {
	for j := 0; j < f.fieldCount(); j++ {
		f.input(j).Blur()
	}
	if i < 0 {
		i = 0
	}
	if i >= f.fieldCount() {
		i = f.fieldCount() - 1
	}
	f.focus = i
	f.input(i).Focus()
}

// focusCmd restarts cursor blinking after focus changes.
func (f *settingsForm) focusCmd() tea.Cmd {
	return textinput.Blink
}

func (f settingsForm) update(msg tea.KeyMsg) (settingsForm, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		f.setFocus((f.focus + 1) % f.fieldCount())
		return f, textinput.Blink
	case "shift+tab", "up":
		f.setFocus((f.focus - 1 + f.fieldCount()) % f.fieldCount())
		return f, textinput.Blink
	}

	var cmd tea.Cmd
	in := f.input(f.focus)
	*in, cmd = in.Update(msg)
	return f, cmd
}

// parse converts the form back into Settings, reporting the first invalid
// field. Custom rows left fully blank are dropped; half-filled rows are an
// error, matching the old desktop dialog.
func (f *settingsForm) parse() (settings.Settings, error) {
	var out settings.Settings

	parsed := make([]int, len(f.indexes))
	for i, ti := range f.indexes {
		v, err := parseIndex(ti.Value())
		if err != nil {
			return out, errs.NewSettingError(indexFields[i].key, ti.Value(), "enter a number of 0 or greater")
		}
		parsed[i] = v
	}
	out.CodeColumn = parsed[0]
	out.NameColumn = parsed[1]
	out.IncomingColumn = parsed[2]
	out.OutgoingColumn = parsed[3]
	out.RemainingColumn = parsed[4]

	for _, row := range f.customs {
		name := strings.TrimSpace(row.name.Value())
		index := strings.TrimSpace(row.index.Value())

		if name == "" && index == "" {
			continue
		}
		if name == "" || index == "" {
			return out, errs.NewSettingError("custom_comparisons", name+index, "both name and index are required")
		}
		v, err := parseIndex(index)
		if err != nil {
			return out, errs.NewSettingError("custom_comparisons", index, "enter a number of 0 or greater")
		}
		out.CustomComparisons = append(out.CustomComparisons, settings.CustomComparison{Name: name, Index: v})
	}

	if err := out.Validate(); err != nil {
		return out, err
	}
	return out, nil
}

func parseIndex(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 {
		return 0, fmt.Errorf("invalid index %q", s)
	}
	return v, nil
}

func (f *settingsForm) view() string {
	var s strings.Builder

	s.WriteString(TitleStyle.Render("⚙ Column Settings"))
	s.WriteString("\n")
	s.WriteString(SubtitleStyle.Render("Column indices are zero-based"))
	s.WriteString("\n\n")

	for i, field := range indexFields {
		cursor := "  "
		if f.focus == i {
			cursor = SelectedStyle.Render("▸ ")
		}
		label := LabelStyle.Render(fmt.Sprintf("%-22s", field.label))
		s.WriteString(fmt.Sprintf("%s%s %s  %s\n", cursor, label, f.indexes[i].View(), MutedStyle.Render("("+field.help+")")))
	}

	s.WriteString("\n")
	s.WriteString(LabelStyle.Render("Custom comparisons"))
	s.WriteString("\n")
	if len(f.customs) == 0 {
		s.WriteString(MutedStyle.Render("  none — ctrl+a to add one"))
		s.WriteString("\n")
	}
	for i, row := range f.customs {
		nameFocus, indexFocus := "  ", "  "
		if f.focus == len(f.indexes)+2*i {
			nameFocus = SelectedStyle.Render("▸ ")
		}
		if f.focus == len(f.indexes)+2*i+1 {
			indexFocus = SelectedStyle.Render("▸ ")
		}
		s.WriteString(fmt.Sprintf("%sName: %s  %sIndex: %s\n", nameFocus, row.name.View(), indexFocus, row.index.View()))
	}

	if f.errText != "" {
		s.WriteString("\n")
		s.WriteString(ErrorStyle.Render(f.errText))
		s.WriteString("\n")
	}

	s.WriteString("\n")
	s.WriteString(HelpStyle.Render("tab/↑/↓: move • ctrl+a: add custom • ctrl+x: remove custom • ctrl+r: defaults • enter: save • esc: cancel"))

	return s.String()
}
