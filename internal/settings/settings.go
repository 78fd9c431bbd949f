// Package settings persists the column mapping between runs. The mapping
// lives in a JSON file next to the executable, read and written through
// viper so a hand-edited or partial file still loads with defaults filled
// in.
package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/kaan0d/excel-file-comparison/internal/errs"
)

// DefaultFileName is the settings file created next to the executable.
const DefaultFileName = "excel_compare_settings.json"

// CustomComparison is one extra user-configured comparison column.
type CustomComparison struct {
	Name  string `mapstructure:"name" json:"name"`
	Index int    `mapstructure:"index" json:"index"`
}

// Settings is the column mapping applied to both input files. Indices are
// zero-based.
type Settings struct {
	CodeColumn        int                `mapstructure:"code_column_index" json:"code_column_index"`
	NameColumn        int                `mapstructure:"name_column_index" json:"name_column_index"`
	IncomingColumn    int                `mapstructure:"incoming_column_index" json:"incoming_column_index"`
	OutgoingColumn    int                `mapstructure:"outgoing_column_index" json:"outgoing_column_index"`
	RemainingColumn   int                `mapstructure:"remaining_column_index" json:"remaining_column_index"`
	CustomComparisons []CustomComparison `mapstructure:"custom_comparisons" json:"custom_comparisons"`
}

// Defaults returns the column layout of the standard export format.
func Defaults() Settings {
	return Settings{
		CodeColumn:      1,
		NameColumn:      5,
		IncomingColumn:  6,
		OutgoingColumn:  7,
		RemainingColumn: 8,
	}
}

// Validate checks that every configured index is usable.
func (s Settings) Validate() error {
	indexed := map[string]int{
		"code_column_index":      s.CodeColumn,
		"name_column_index":      s.NameColumn,
		"incoming_column_index":  s.IncomingColumn,
		"outgoing_column_index":  s.OutgoingColumn,
		"remaining_column_index": s.RemainingColumn,
	}
	for field, idx := range indexed {
		if idx < 0 {
			return errs.NewSettingError(field, fmt.Sprint(idx), "column index must be 0 or greater")
		}
	}
	for _, c := range s.CustomComparisons {
		if c.Name == "" {
			return errs.NewSettingError("custom_comparisons", fmt.Sprint(c.Index), "comparison name must not be empty")
		}
		if c.Index < 0 {
			return errs.NewSettingError("custom_comparisons", fmt.Sprint(c.Index), "column index must be 0 or greater")
		}
	}
	return nil
}

// Manager loads and saves one settings file.
type Manager struct {
	path    string
	current Settings
}

// NewManager creates a manager for the given file path. An empty path uses
// DefaultPath.
func NewManager(path string) *Manager {
	if path == "" {
		path = DefaultPath()
	}
	return &Manager{path: path, current: Defaults()}
}

// DefaultPath returns the settings file location: the directory holding the
// executable, falling back to the working directory.
func DefaultPath() string {
	dir := "."
	if exe, err := os.Executable(); err == nil {
		dir = filepath.Dir(exe)
	}
	return filepath.Join(dir, DefaultFileName)
}

// Path returns the file the manager reads and writes.
func (m *Manager) Path() string {
	return m.path
}

// Settings returns the current mapping.
func (m *Manager) Settings() Settings {
	return m.current
}

// Load reads the settings file. A missing or unreadable file leaves the
// defaults in place and writes them back so the user has a file to edit;
// the returned error says why the file was not used.
func (m *Manager) Load() error {
	v := viper.New()
	v.SetConfigFile(m.path)
	v.SetConfigType("json")
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		m.current = Defaults()
		_ = m.Save()
		return err
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		m.current = Defaults()
		_ = m.Save()
		return err
	}
	if err := s.Validate(); err != nil {
		m.current = Defaults()
		return err
	}

	// Keep an absent list and an empty list indistinguishable.
	if len(s.CustomComparisons) == 0 {
		s.CustomComparisons = nil
	}

	m.current = s
	return nil
}

// Update validates and applies a new mapping without saving it.
func (m *Manager) Update(s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	m.current = s
	return nil
}

// Save writes the current mapping to the settings file.
func (m *Manager) Save() error {
	v := viper.New()
	v.SetConfigType("json")
	v.Set("code_column_index", m.current.CodeColumn)
	v.Set("name_column_index", m.current.NameColumn)
	v.Set("incoming_column_index", m.current.IncomingColumn)
	v.Set("outgoing_column_index", m.current.OutgoingColumn)
	v.Set("remaining_column_index", m.current.RemainingColumn)

	comparisons := make([]map[string]any, 0, len(m.current.CustomComparisons))
	for _, c := range m.current.CustomComparisons {
		comparisons = append(comparisons, map[string]any{"name": c.Name, "index": c.Index})
	}
	v.Set("custom_comparisons", comparisons)

	return v.WriteConfigAs(m.path)
}

// ResetToDefaults discards the current mapping in favor of the defaults.
func (m *Manager) ResetToDefaults() {
	m.current = Defaults()
}

func setDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("code_column_index", d.CodeColumn)
	v.SetDefault("name_column_index", d.NameColumn)
	v.SetDefault("incoming_column_index", d.IncomingColumn)
	v.SetDefault("outgoing_column_index", d.OutgoingColumn)
	v.SetDefault("remaining_column_index", d.RemainingColumn)
	v.SetDefault("custom_comparisons", []CustomComparison{})
}
