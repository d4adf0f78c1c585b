package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple", "Hello World", "hello-world"},
		{"punctuation stripped", "Hello, World!! 2024", "hello-world-2024"},
		{"multiple spaces collapse", "a   b", "a-b"},
		{"existing hyphens kept", "pre-release notes", "pre-release-notes"},
		{"consecutive hyphens collapse", "a -- b", "a-b"},
		{"leading and trailing trimmed", "  !wow!  ", "wow"},
		{"unicode dropped", "café menu", "caf-menu"},
		{"only punctuation", "!!!", ""},
		{"uppercase", "GO TIPS", "go-tips"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.title))
		})
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	titles := []string{"Hello, World!! 2024", "pre-release notes", "GO TIPS", "a   b"}
	for _, title := range titles {
		once := Slugify(title)
		assert.Equal(t, once, Slugify(once), "slug of %q should be stable", title)
	}
}
