package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("terrafusion.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "terrafusion.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "parse error: terrafusion.yaml:12: unexpected token", err.Error())
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("terrafusion.yaml", 0, stdErrors.New("empty"))
	require.Equal(t, "parse error: terrafusion.yaml: empty", err.Error())
}

func TestValidationErrorCarriesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("theme.variant", "must be standard or advanced", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "theme.variant", validationErr.Field)
	require.Contains(t, err.Error(), "must be standard or advanced")
}

func TestRefreshErrorIncludesWidget(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("source unavailable")
	err := NewRefreshError("Active Users", underlying)

	var refreshErr *RefreshError
	require.ErrorAs(t, err, &refreshErr)
	require.Equal(t, "Active Users", refreshErr.Widget)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "refresh error [Active Users]: source unavailable", err.Error())
}

func TestRenderErrorIncludesTarget(t *testing.T) {
	t.Parallel()

	err := NewRenderError("settings", "unknown page", nil)

	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	require.Equal(t, "render error [settings]: unknown page", err.Error())
}

func TestNilErrorsRenderEmpty(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var refreshErr *RefreshError
	require.Equal(t, "", parseErr.Error())
	require.Equal(t, "", refreshErr.Error())
	require.Nil(t, refreshErr.Unwrap())
}
