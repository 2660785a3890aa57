package commands

import (
	"bytes"
	"context"
	"testing"

	app_errors "github.com/dogaculudag/repro-dashboard-sub001/internal/errors"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRejectsUnknownFormat(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"report", "worker", "user-1", "--format", "xml"})
	t.Cleanup(func() { format = "table" })

	err := Execute(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), `"xml"`)
	assert.Empty(t, out.String())
}

func TestRequiresExactlyOneID(t *testing.T) {
	rootCmd.SetArgs([]string{"report", "department"})

	err := Execute(context.Background())

	require.Error(t, err)
}

func TestAppErrorIsTranslated(t *testing.T) {
	rt := &runtime{i18n: i18n.NewInitI18nService()}
	lang = "en"

	err := rt.appError(app_errors.NewValidationError([]app_errors.FieldError{{
		Field:      "to",
		Reason:     "max_days",
		MessageKey: "validation.window_too_large",
		Params:     map[string]any{"max": 366},
	}}))

	assert.Contains(t, err.Error(), "to: The window must not exceed 366 days.")
	assert.Contains(t, err.Error(), "VALIDATION_ERROR")
}
