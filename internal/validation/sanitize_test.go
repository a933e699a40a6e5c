package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "script block with trailing text",
			input:    "<script>alert(1)</script>Hello  World",
			expected: "Hello World",
		},
		{
			name:     "markup tags and double spaces",
			input:    "<b>Hi</b>  there",
			expected: "Hi there",
		},
		{
			name:     "script block spanning internal tags",
			input:    "<SCRIPT type=\"text/javascript\">var a = <b>1</b>;</SCRIPT>ok",
			expected: "ok",
		},
		{
			name:     "two script blocks are each closed at their own end tag",
			input:    "<script>a</script>keep<script>b</script>",
			expected: "keep",
		},
		{
			name:     "residual angle brackets are stripped",
			input:    "1 < 2 and 3 > 2",
			expected: "1 2 and 3 2",
		},
		{
			name:     "leading and trailing whitespace trimmed",
			input:    "  padded\t\nvalue  ",
			expected: "padded value",
		},
		{
			name:     "plain text unchanged",
			input:    "Cooperative Federation",
			expected: "Cooperative Federation",
		},
		{
			name:     "only markup becomes empty",
			input:    "<div><span></span></div>",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeText(tt.input))
		})
	}
}

func TestValidateStorageRef(t *testing.T) {
	valid := []string{
		"kg2f4d9a8b7c6e5f",
		"5f2c7e1a-9d4b-4c3e-8a6f-0b1d2e3f4a5b",
		"images/2024/board-photo.jpg",
	}
	for _, ref := range valid {
		assert.NoError(t, ValidateStorageRef(ref), ref)
	}

	invalid := []string{
		"",
		"   ",
		"abc<def",
		"abc>def",
		"myscriptref",
		"MyScriptRef",
		"javascript:alert(1)",
		"JAVASCRIPT:void(0)",
	}
	for _, ref := range invalid {
		err := ValidateStorageRef(ref)
		assert.Error(t, err, ref)
		assert.IsType(t, &ValidationError{}, err)
	}
}
