// Package ui implements the interactive terminal front end: pick two
// files, tweak options, run the comparison and scroll the report.
package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/kaan0d/excel-file-comparison/internal/compare"
	"github.com/kaan0d/excel-file-comparison/internal/loader"
	"github.com/kaan0d/excel-file-comparison/internal/report"
	"github.com/kaan0d/excel-file-comparison/internal/settings"
	"github.com/kaan0d/excel-file-comparison/internal/types"
)

type state int

const (
	statePickFirst state = iota
	statePickSecond
	stateOptions
	stateSettings
	stateComparing
	stateResults
	stateError
)

type compareDoneMsg struct {
	result *types.Result
	err    error
}

// Model is the single bubbletea model driving every screen.
type Model struct {
	state      state
	filepicker filepicker.Model
	fileA      string
	fileB      string
	detailed   bool
	manager    *settings.Manager
	form       settingsForm
	spinner    spinner.Model
	viewport   viewport.Model
	result     *types.Result
	reportText string
	err        error
	width      int
	height     int
	logger     zerolog.Logger
}

// InitialModel builds the model in the first file picker state.
func InitialModel(manager *settings.Manager, logger zerolog.Logger) Model {
	fp := filepicker.New()
	fp.AllowedTypes = []string{".csv", ".xlsx", ".xlsm"}
	fp.CurrentDirectory, _ = os.Getwd()

	fp.Styles.Cursor = lipgloss.NewStyle().Foreground(lipgloss.Color("#3B82F6"))
	fp.Styles.Symlink = lipgloss.NewStyle().Foreground(lipgloss.Color("#60A5FA"))
	fp.Styles.Directory = lipgloss.NewStyle().Foreground(lipgloss.Color("#60A5FA"))
	fp.Styles.File = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF"))
	fp.Styles.Permission = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	fp.Styles.Selected = lipgloss.NewStyle().Foreground(lipgloss.Color("#3B82F6")).Bold(true)
	fp.Styles.FileSize = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = SelectedStyle

	return Model{
		state:      statePickFirst,
		filepicker: fp,
		manager:    manager,
		spinner:    sp,
		viewport:   viewport.New(78, 20),
		logger:     logger,
	}
}

func (m Model) Init() tea.Cmd {
	return m.filepicker.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Leave room for the title, subtitle, help line and box padding.
		height := msg.Height - 14
		if height < 5 {
			height = 5
		}
		m.filepicker.SetHeight(height)

		m.viewport.Width = msg.Width - 8
		if m.viewport.Width < 40 {
			m.viewport.Width = 40
		}
		m.viewport.Height = msg.Height - 10
		if m.viewport.Height < 5 {
			m.viewport.Height = 5
		}

		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case statePickFirst, statePickSecond:
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			}

		case stateOptions:
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case " ", "d":
				m.detailed = !m.detailed
			case "s":
				m.form = newSettingsForm(m.manager.Settings())
				m.state = stateSettings
				return m, m.form.focusCmd()
			case "r":
				m.fileA, m.fileB = "", ""
				m.state = statePickFirst
				return m, nil
			case "enter":
				return m.startCompare()
			}

		case stateSettings:
			return m.updateSettings(msg)

		case stateResults:
			switch msg.String() {
			case "ctrl+c", "q", "esc":
				return m, tea.Quit
			case "n":
				m.fileA, m.fileB = "", ""
				m.result = nil
				m.reportText = ""
				m.state = statePickFirst
				return m, nil
			}
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd

		case stateError:
			switch msg.String() {
			case "ctrl+c", "q", "enter", "esc":
				return m, tea.Quit
			case "r":
				m.err = nil
				m.fileA, m.fileB = "", ""
				m.state = statePickFirst
				return m, nil
			}
		}

	case compareDoneMsg:
		if msg.err != nil {
			m.logger.Error().Err(msg.err).Msg("comparison failed")
			m.err = msg.err
			m.state = stateError
			return m, nil
		}
		m.result = msg.result
		m.reportText = report.Render(msg.result)
		m.viewport.SetContent(m.reportText)
		m.viewport.GotoTop()
		m.state = stateResults
		return m, nil

	case spinner.TickMsg:
		if m.state == stateComparing {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.state == statePickFirst || m.state == statePickSecond {
		var cmd tea.Cmd
		m.filepicker, cmd = m.filepicker.Update(msg)

		if didSelect, path := m.filepicker.DidSelectFile(msg); didSelect {
			if m.state == statePickFirst {
				m.fileA = path
				m.state = statePickSecond
			} else {
				m.fileB = path
				m.state = stateOptions
			}
		}

		return m, cmd
	}

	if m.state == stateResults {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) startCompare() (Model, tea.Cmd) {
	m.state = stateComparing

	fileA, fileB := m.fileA, m.fileB
	cfg := m.manager.Settings()
	detailed := m.detailed
	logger := m.logger

	run := func() tea.Msg {
		a, err := loader.ReadSheet(fileA)
		if err != nil {
			return compareDoneMsg{err: err}
		}
		b, err := loader.ReadSheet(fileB)
		if err != nil {
			return compareDoneMsg{err: err}
		}

		result := compare.Compare(a, b, cfg, detailed)
		logger.Info().
			Str("file_a", fileA).
			Str("file_b", fileB).
			Int("missing", len(result.Missing)).
			Int("extra", len(result.Extra)).
			Int("diffs", len(result.Diffs)).
			Msg("comparison complete")

		return compareDoneMsg{result: result}
	}

	return m, tea.Batch(m.spinner.Tick, run)
}

func (m Model) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.state = stateOptions
		return m, nil
	case "enter":
		parsed, err := m.form.parse()
		if err != nil {
			m.form.errText = err.Error()
			return m, nil
		}
		if err := m.manager.Update(parsed); err != nil {
			m.form.errText = err.Error()
			return m, nil
		}
		if err := m.manager.Save(); err != nil {
			m.logger.Warn().Err(err).Str("path", m.manager.Path()).Msg("saving settings failed")
			m.form.errText = fmt.Sprintf("could not save settings: %v", err)
			return m, nil
		}
		m.logger.Debug().Str("path", m.manager.Path()).Msg("settings saved")
		m.state = stateOptions
		return m, nil
	case "ctrl+r":
		m.form = newSettingsForm(settings.Defaults())
		return m, m.form.focusCmd()
	case "ctrl+a":
		m.form.addCustomRow("", "")
		return m, m.form.focusCmd()
	case "ctrl+x":
		m.form.removeFocusedCustomRow()
		return m, m.form.focusCmd()
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m Model) View() string {
	switch m.state {
	case statePickFirst, statePickSecond:
		return m.viewFilePicker()
	case stateOptions:
		return m.viewOptions()
	case stateSettings:
		return BoxStyle.Render(m.form.view())
	case stateComparing:
		return m.viewComparing()
	case stateResults:
		return m.viewResults()
	case stateError:
		return m.viewError()
	}
	return ""
}

func (m Model) viewFilePicker() string {
	var s strings.Builder

	s.WriteString(TitleStyle.Render("⇄ Excel File Comparison"))
	s.WriteString("\n")
	if m.state == statePickFirst {
		s.WriteString(SubtitleStyle.Render("Select File 1 (source)"))
	} else {
		s.WriteString(SubtitleStyle.Render(fmt.Sprintf("File 1: %s — now select File 2 (target)", filepath.Base(m.fileA))))
	}
	s.WriteString("\n\n")
	s.WriteString(m.filepicker.View())
	s.WriteString("\n\n")
	s.WriteString(HelpStyle.Render("Press q to quit"))

	return s.String()
}

func (m Model) viewOptions() string {
	var s strings.Builder

	s.WriteString(TitleStyle.Render("⇄ Ready to Compare"))
	s.WriteString("\n\n")
	s.WriteString(LabelStyle.Render(fmt.Sprintf("File 1: %s", filepath.Base(m.fileA))))
	s.WriteString("\n")
	s.WriteString(LabelStyle.Render(fmt.Sprintf("File 2: %s", filepath.Base(m.fileB))))
	s.WriteString("\n\n")

	checked := "[ ]"
	line := fmt.Sprintf("%s Detailed comparison (incoming / outgoing / remaining)", checked)
	if m.detailed {
		checked = "[✓]"
		line = CheckedStyle.Render(fmt.Sprintf("%s Detailed comparison (incoming / outgoing / remaining)", checked))
	}
	s.WriteString(line)
	s.WriteString("\n\n")

	cfg := m.manager.Settings()
	s.WriteString(MutedStyle.Render(fmt.Sprintf("Key column: %d • custom comparisons: %d", cfg.CodeColumn, len(cfg.CustomComparisons))))
	s.WriteString("\n")
	s.WriteString(MutedStyle.Render("Note: the last row of each file is excluded automatically."))
	s.WriteString("\n")
	s.WriteString(HelpStyle.Render("space: toggle detailed • s: settings • r: reselect files • enter: compare • q: quit"))

	return BoxStyle.Render(s.String())
}

func (m Model) viewComparing() string {
	var s strings.Builder

	s.WriteString(TitleStyle.Render("⇄ Comparing..."))
	s.WriteString("\n\n")
	s.WriteString(m.spinner.View())
	s.WriteString(fmt.Sprintf("Matching rows between %s and %s", filepath.Base(m.fileA), filepath.Base(m.fileB)))

	return BoxStyle.Render(s.String())
}

func (m Model) viewResults() string {
	var s strings.Builder

	title := "⇄ Comparison Results"
	if m.result != nil && m.result.Identical() {
		title = "✓ Comparison Results"
	}
	s.WriteString(TitleStyle.Render(title))
	s.WriteString("\n\n")
	s.WriteString(m.viewport.View())
	s.WriteString("\n")
	s.WriteString(HelpStyle.Render("↑/↓: scroll • n: new comparison • q: quit"))

	return BoxStyle.Render(s.String())
}

func (m Model) viewError() string {
	var s strings.Builder

	s.WriteString(ErrorStyle.Render("✗ Error"))
	s.WriteString("\n\n")
	if m.err != nil {
		s.WriteString(m.err.Error())
	}
	s.WriteString("\n\n")
	s.WriteString(HelpStyle.Render("r: start over • q: quit"))

	return BoxStyle.Render(s.String())
}
