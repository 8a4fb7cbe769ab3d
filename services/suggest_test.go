package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercase", "Deluxe", "deluxe"},
		{"trims spaces", "  Hoa Sen  ", "hoa sen"},
		{"strips accents", "Hướng Dương", "huong duong"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeInput(tt.input))
		})
	}
}

func TestRemoveDiacritics(t *testing.T) {
	assert.Equal(t, "Hoa Đao", RemoveDiacritics("Hoa Đào"))
	assert.Equal(t, "abc", RemoveDiacritics("abc"))
}

func TestCalculateSimilarity(t *testing.T) {
	t.Run("identical strings", func(t *testing.T) {
		assert.Equal(t, 1.0, CalculateSimilarity("hoa sen", "hoa sen"))
	})

	t.Run("empty strings", func(t *testing.T) {
		assert.Equal(t, 1.0, CalculateSimilarity("", ""))
	})

	t.Run("completely different", func(t *testing.T) {
		assert.Less(t, CalculateSimilarity("abc", "xyz"), 0.5)
	})

	t.Run("one typo keeps high similarity", func(t *testing.T) {
		assert.Greater(t, CalculateSimilarity("hoa sen", "hoa sem"), 0.8)
	})
}

func TestSuggestRoomName(t *testing.T) {
	names := []string{"Hoa Sen", "Hoa Mai", "Hướng Dương"}

	t.Run("suggests closest name for typo", func(t *testing.T) {
		got := SuggestRoomName("hoa sem", names)
		assert.Equal(t, "Hoa Sen", got)
	})

	t.Run("no suggestion for unrelated query", func(t *testing.T) {
		got := SuggestRoomName("zzzzzzzzzz", names)
		assert.Empty(t, got)
	})

	t.Run("empty query", func(t *testing.T) {
		assert.Empty(t, SuggestRoomName("", names))
	})

	t.Run("empty name list", func(t *testing.T) {
		assert.Empty(t, SuggestRoomName("hoa sen", nil))
	})
}
