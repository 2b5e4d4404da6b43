package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	tferrors "github.com/alexisbeaulieu97/terrafusion/pkg/errors"
)

func TestGetValidator(t *testing.T) {
	t.Parallel()

	require.Same(t, GetValidator(), GetValidator())
}

func TestCustomTags(t *testing.T) {
	t.Parallel()

	v := GetValidator()
	tests := []struct {
		tag   string
		value string
		valid bool
	}{
		{"theme_variant", "standard", true},
		{"theme_variant", "advanced", true},
		{"theme_variant", "Standard", false},
		{"theme_mode", "dark", true},
		{"theme_mode", "light", true},
		{"theme_mode", "dim", false},
		{"log_level", "", true},
		{"log_level", "WARN", true},
		{"log_level", "chatty", false},
	}
	for _, tt := range tests {
		t.Run(tt.tag+"/"+tt.value, func(t *testing.T) {
			err := v.Var(tt.value, tt.tag)
			if tt.valid {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}

func TestValidateConfig(t *testing.T) {
	t.Parallel()

	t.Run("defaults are valid", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, ValidateConfig(Default()))
	})

	t.Run("nil config", func(t *testing.T) {
		t.Parallel()
		var validationErr *tferrors.ValidationError
		require.ErrorAs(t, ValidateConfig(nil), &validationErr)
		require.Equal(t, "config", validationErr.Field)
	})

	t.Run("negative interval", func(t *testing.T) {
		t.Parallel()
		cfg := Default()
		cfg.Widgets.CPUIntervalMS = -1
		var validationErr *tferrors.ValidationError
		require.ErrorAs(t, ValidateConfig(cfg), &validationErr)
		require.Equal(t, "widgets.cpu_interval_ms", validationErr.Field)
	})

	t.Run("human logs need a file", func(t *testing.T) {
		t.Parallel()
		cfg := Default()
		cfg.Log.Human = true
		var validationErr *tferrors.ValidationError
		require.ErrorAs(t, ValidateConfig(cfg), &validationErr)
		require.Equal(t, "log.human", validationErr.Field)

		cfg.Log.File = "terrafusion.log"
		require.NoError(t, ValidateConfig(cfg))
	})

	t.Run("too many visible notifications", func(t *testing.T) {
		t.Parallel()
		cfg := Default()
		cfg.Notifications.MaxVisible = 21
		var validationErr *tferrors.ValidationError
		require.ErrorAs(t, ValidateConfig(cfg), &validationErr)
		require.Equal(t, "notifications.max_visible", validationErr.Field)
	})
}
