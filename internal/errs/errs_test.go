package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadErrorUnwraps(t *testing.T) {
	err := NewLoadError("/tmp/a.xlsx", ErrEmptySheet)

	assert.True(t, errors.Is(err, ErrEmptySheet))
	assert.Contains(t, err.Error(), "/tmp/a.xlsx")

	var loadErr *LoadError
	assert.True(t, errors.As(err, &loadErr))
}

func TestSettingErrorMatchesSentinel(t *testing.T) {
	err := NewSettingError("code_column_index", "-1", "column index must be 0 or greater")

	assert.True(t, errors.Is(err, ErrInvalidSetting))
	assert.Contains(t, err.Error(), "code_column_index")
}
