package settings

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaan0d/excel-file-comparison/internal/errs"
)

func TestDefaults(t *testing.T) {
	d := Defaults()

	assert.Equal(t, 1, d.CodeColumn)
	assert.Equal(t, 5, d.NameColumn)
	assert.Equal(t, 6, d.IncomingColumn)
	assert.Equal(t, 7, d.OutgoingColumn)
	assert.Equal(t, 8, d.RemainingColumn)
	assert.Empty(t, d.CustomComparisons)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)

	m := NewManager(path)
	want := Settings{
		CodeColumn:      0,
		NameColumn:      2,
		IncomingColumn:  3,
		OutgoingColumn:  4,
		RemainingColumn: 5,
		CustomComparisons: []CustomComparison{
			{Name: "Price", Index: 9},
		},
	}
	require.NoError(t, m.Update(want))
	require.NoError(t, m.Save())

	reloaded := NewManager(path)
	require.NoError(t, reloaded.Load())
	assert.Equal(t, want, reloaded.Settings())
}

func TestLoadMissingFileWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)

	m := NewManager(path)
	err := m.Load()

	assert.Error(t, err)
	assert.Equal(t, Defaults(), m.Settings())

	// The defaults were written back so the user has a file to edit.
	_, statErr := os.Stat(path)
	assert.NoError(t, statErr)

	fresh := NewManager(path)
	require.NoError(t, fresh.Load())
	assert.Equal(t, Defaults(), fresh.Settings())
}

func TestLoadMalformedFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	m := NewManager(path)
	err := m.Load()

	assert.Error(t, err)
	assert.Equal(t, Defaults(), m.Settings())
}

func TestLoadPartialFileFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(`{"code_column_index": 3}`), 0o644))

	m := NewManager(path)
	require.NoError(t, m.Load())

	got := m.Settings()
	assert.Equal(t, 3, got.CodeColumn)
	assert.Equal(t, Defaults().NameColumn, got.NameColumn)
	assert.Equal(t, Defaults().RemainingColumn, got.RemainingColumn)
}

func TestLoadRejectsNegativeIndices(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(`{"code_column_index": -2}`), 0o644))

	m := NewManager(path)
	err := m.Load()

	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrInvalidSetting))
	assert.Equal(t, Defaults(), m.Settings())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr bool
	}{
		{"defaults pass", func(s *Settings) {}, false},
		{"negative index", func(s *Settings) { s.OutgoingColumn = -1 }, true},
		{"custom without name", func(s *Settings) {
			s.CustomComparisons = []CustomComparison{{Index: 2}}
		}, true},
		{"custom negative index", func(s *Settings) {
			s.CustomComparisons = []CustomComparison{{Name: "Price", Index: -4}}
		}, true},
		{"valid custom", func(s *Settings) {
			s.CustomComparisons = []CustomComparison{{Name: "Price", Index: 4}}
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Defaults()
			tt.mutate(&s)

			err := s.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, errs.ErrInvalidSetting))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdateRejectsInvalid(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), DefaultFileName))

	bad := Defaults()
	bad.CodeColumn = -1

	err := m.Update(bad)
	require.Error(t, err)
	assert.Equal(t, Defaults(), m.Settings(), "failed update must not change the mapping")
}
