package services

import (
	"strings"
	"unicode"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"golang.org/x/text/unicode/norm"
)

// Bỏ dấu viết thường
func RemoveDiacritics(s string) string {
	t := norm.NFD.String(s)
	var b strings.Builder
	for _, r := range t {
		// Loại bỏ các ký tự dấu (non-spacing marks)
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Hàm chuẩn hóa chuỗi
func NormalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// Tạo đối tượng closestmatch cho danh sách từ khóa
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// Tính độ tương đồng giữa hai chuỗi
func CalculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

// SuggestRoomName gợi ý tên phòng gần nhất khi tìm kiếm chính xác không ra kết quả.
// Trả về chuỗi rỗng nếu không có tên nào đủ giống.
func SuggestRoomName(query string, names []string) string {
	if query == "" || len(names) == 0 {
		return ""
	}

	normalized := make([]string, 0, len(names))
	byNormalized := make(map[string]string, len(names))
	for _, name := range names {
		n := NormalizeInput(RemoveDiacritics(name))
		if n == "" {
			continue
		}
		normalized = append(normalized, n)
		byNormalized[n] = name
	}
	if len(normalized) == 0 {
		return ""
	}

	matcher := createMatcher(normalized)
	closest := matcher.Closest(NormalizeInput(RemoveDiacritics(query)))
	if closest == "" {
		return ""
	}

	if CalculateSimilarity(NormalizeInput(RemoveDiacritics(query)), closest) < 0.5 {
		return ""
	}

	return byNormalized[closest]
}
