package matcher

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestDecompose(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"김치", "ㄱㅣㅁㅊㅣ"},
		{"가", "ㄱㅏ"},
		{"힣", "ㅎㅣㅎ"},
		{"닭", "ㄷㅏㄺ"},
		{"abc", "abc"},
		{"김밥 2줄!", "ㄱㅣㅁㅂㅏㅂ 2ㅈㅜㄹ!"},
		{"", ""},
		{"ㄱㅊ", "ㄱㅊ"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Decompose(tt.in), tt.in)
	}
}

func TestExtractLeadConsonants(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"김치찌개", "ㄱㅊㅉㄱ"},
		{"떡볶이", "ㄸㅂㅇ"},
		{"pho 쌀국수", "pho ㅆㄱㅅ"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtractLeadConsonants(tt.in), tt.in)
	}
}

func TestNormalizerProperties(t *testing.T) {
	inputs := []string{"김치찌개", "된장 찌개~", "Pizza!", "ㄱㄴㄷ", "햄버거 세트", "😀 비빔밥"}
	for _, s := range inputs {
		lead := ExtractLeadConsonants(s)
		assert.Equal(t, utf8.RuneCountInString(s), utf8.RuneCountInString(lead), s)
		assert.Equal(t, Decompose(s), Decompose(s))

		// 음절이 아닌 문자는 위치 그대로 보존
		src, out := []rune(s), []rune(lead)
		for i, r := range src {
			if !isSyllable(r) {
				assert.Equal(t, r, out[i])
			}
		}
	}
}
