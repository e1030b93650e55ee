package services

import (
	goerrors "errors"
	"item-lab/errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateAddItem(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		reason string
	}{
		{"single character", "a", ""},
		{"padded", "  a  ", ""},
		{"exactly 100", strings.Repeat("a", 100), ""},
		{"100 multibyte characters", strings.Repeat("ü", 100), ""},
		{"100 characters over 400 bytes", strings.Repeat("🥛", 100), ""},
		{"101 multibyte characters", strings.Repeat("é", 101), ReasonTextTooLong},
		{"empty", "", ReasonEmptyText},
		{"spaces only", "     ", ReasonEmptyText},
		{"101", strings.Repeat("a", 101), ReasonTextTooLong},
		{"blank and too long reports blank first", strings.Repeat(" ", 150), ReasonEmptyText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			err := ValidateAddItem(AddItemRequest{Text: tt.text})
			if tt.reason == "" {
				req.NoError(err)
				return
			}
			var validationErr *errors.ValidationError
			req.True(goerrors.As(err, &validationErr))
			req.Equal("text", validationErr.Field)
			req.Equal(tt.reason, validationErr.Reason)
		})
	}
}
