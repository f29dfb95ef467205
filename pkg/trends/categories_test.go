package trends

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorizeText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "technology",
			text: "The startup ships an AI cloud app built on open data",
			want: "technology",
		},
		{
			name: "health",
			text: "Hospital reports strong clinical results for the new vaccine treatment",
			want: "health",
		},
		{
			name: "most hits wins across categories",
			text: "Market revenue grows while one startup struggles",
			want: "business",
		},
		{
			name: "case insensitive",
			text: "GOVERNMENT ELECTION POLICY",
			want: "politics",
		},
		{
			name: "no keyword falls back to general",
			text: "la pluie tombe sur la ville",
			want: "general",
		},
		{
			name: "empty text",
			text: "",
			want: "general",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CategorizeText(tt.text))
		})
	}
}
