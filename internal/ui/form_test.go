package ui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaan0d/excel-file-comparison/internal/errs"
	"github.com/kaan0d/excel-file-comparison/internal/settings"
)

func TestFormParseRoundTrip(t *testing.T) {
	want := settings.Settings{
		CodeColumn:      0,
		NameColumn:      2,
		IncomingColumn:  3,
		OutgoingColumn:  4,
		RemainingColumn: 5,
		CustomComparisons: []settings.CustomComparison{
			{Name: "Price", Index: 7},
		},
	}

	form := newSettingsForm(want)
	got, err := form.parse()

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFormParseRejectsBadIndex(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"not a number", "abc"},
		{"negative", "-1"},
		{"empty", ""},
		{"decimal", "1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := newSettingsForm(settings.Defaults())
			form.indexes[0].SetValue(tt.value)

			_, err := form.parse()
			require.Error(t, err)
			assert.True(t, errors.Is(err, errs.ErrInvalidSetting))
		})
	}
}

func TestFormParseCustomRows(t *testing.T) {
	form := newSettingsForm(settings.Defaults())

	// A fully blank row is dropped, a half-filled one is an error.
	form.addCustomRow("", "")
	parsed, err := form.parse()
	require.NoError(t, err)
	assert.Empty(t, parsed.CustomComparisons)

	form.addCustomRow("Price", "")
	_, err = form.parse()
	require.Error(t, err)

	form = newSettingsForm(settings.Defaults())
	form.addCustomRow("Price", "7")
	parsed, err = form.parse()
	require.NoError(t, err)
	require.Len(t, parsed.CustomComparisons, 1)
	assert.Equal(t, settings.CustomComparison{Name: "Price", Index: 7}, parsed.CustomComparisons[0])
}

func TestFormFocusTraversal(t *testing.T) {
	form := newSettingsForm(settings.Defaults())
	form.addCustomRow("Price", "7")

	assert.Equal(t, 7, form.fieldCount())

	form.setFocus(6)
	assert.True(t, form.input(6).Focused())
	assert.False(t, form.input(0).Focused())

	form.removeFocusedCustomRow()
	assert.Equal(t, 5, form.fieldCount())
	assert.Less(t, form.focus, form.fieldCount())
}
