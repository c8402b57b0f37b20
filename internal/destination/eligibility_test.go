package destination

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentChecker(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"empty", "", false},
		{"spaces", "   ", false},
		{"tabs and newlines", "\t\n ", false},
		{"real content", "a.ts#L10", true},
		{"content with padding", " x ", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ContentChecker{}.Eligible(context.Background(), tt.text, PasteContext{})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSelfPasteChecker(t *testing.T) {
	bound := EditorResourceFor("file:///ws/a.ts", hostRef("file:///ws/a.ts", 1))

	tests := []struct {
		name     string
		resource *Resource
		source   string
		want     bool
	}{
		{"nil resource", nil, "file:///ws/b.ts", false},
		{"non-editor resource", ptr(SingletonResource()), "file:///ws/b.ts", false},
		{"no source focused", &bound, "", true},
		{"different document", &bound, "file:///ws/b.ts", true},
		{"same document", &bound, "file:///ws/a.ts", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := SelfPasteChecker{Resource: tt.resource}
			got := c.Eligible(context.Background(), "x", PasteContext{SourceDocURI: tt.source})
			assert.Equal(t, tt.want, got)
		})
	}
}

func ptr(r Resource) *Resource { return &r }
