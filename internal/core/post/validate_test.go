package post

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{name: "empty", content: "", wantErr: ErrEmptyContent},
		{name: "single emoji", content: "😀", wantErr: nil},
		{name: "several emojis", content: "😀😁🎉", wantErr: nil},
		{name: "max length emoji run", content: strings.Repeat("😀", 255), wantErr: nil},
		{name: "too many emojis", content: strings.Repeat("😀", 256), wantErr: ErrContentTooLong},
		{name: "too long ascii", content: strings.Repeat("a", 256), wantErr: ErrContentTooLong},
		{name: "plain text", content: "hello", wantErr: ErrNotEmoji},
		{name: "emoji with text", content: "😀hello", wantErr: ErrNotEmoji},
		{name: "text with emoji", content: "gm 🌞", wantErr: ErrNotEmoji},
		{name: "digits only", content: "12345", wantErr: ErrNumericOnly},
		{name: "single digit", content: "0", wantErr: ErrNumericOnly},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateContent(tt.content)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateContentLengthCountsRunes(t *testing.T) {
	// 255 four-byte emojis exceed 255 bytes but stay within the rune budget
	content := strings.Repeat("🎉", 255)
	assert.Greater(t, len(content), 255)
	assert.NoError(t, ValidateContent(content))
}
