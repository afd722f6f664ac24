package post

import (
	"regexp"
	"unicode/utf8"

	"github.com/forPelevin/gomoji"
)

var numericOnly = regexp.MustCompile(`^[0-9]+$`)

// MaxContentLength is the rune budget for a single post.
const MaxContentLength = 255

// ValidateContent checks a submitted post body. Posts are emoji-only:
// anything left over after stripping emoji sequences (including spaces)
// rejects the content. The accepted string is returned to storage unchanged.
func ValidateContent(content string) error {
	if len(content) == 0 {
		return ErrEmptyContent
	}
	if utf8.RuneCountInString(content) > MaxContentLength {
		return ErrContentTooLong
	}
	if numericOnly.MatchString(content) {
		// ASCII digits count as emoji components in the Unicode data, so
		// the emoji check alone cannot reject them
		return ErrNumericOnly
	}
	if gomoji.RemoveEmojis(content) != "" {
		return ErrNotEmoji
	}
	return nil
}
