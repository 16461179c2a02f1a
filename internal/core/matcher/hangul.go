package matcher

import "strings"

const (
	hangulBase   = 0xAC00
	hangulLast   = 0xD7A3
	jungCount    = 21
	jongCount    = 28
	choBlockSize = jungCount * jongCount // 588
)

var (
	choTable = []string{
		"ㄱ", "ㄲ", "ㄴ", "ㄷ", "ㄸ", "ㄹ", "ㅁ", "ㅂ", "ㅃ", "ㅅ",
		"ㅆ", "ㅇ", "ㅈ", "ㅉ", "ㅊ", "ㅋ", "ㅌ", "ㅍ", "ㅎ",
	}
	jungTable = []string{
		"ㅏ", "ㅐ", "ㅑ", "ㅒ", "ㅓ", "ㅔ", "ㅕ", "ㅖ", "ㅗ", "ㅘ",
		"ㅙ", "ㅚ", "ㅛ", "ㅜ", "ㅝ", "ㅞ", "ㅟ", "ㅠ", "ㅡ", "ㅢ", "ㅣ",
	}
	jongTable = []string{
		"", "ㄱ", "ㄲ", "ㄳ", "ㄴ", "ㄵ", "ㄶ", "ㄷ", "ㄹ", "ㄺ",
		"ㄻ", "ㄼ", "ㄽ", "ㄾ", "ㄿ", "ㅀ", "ㅁ", "ㅂ", "ㅄ", "ㅅ",
		"ㅆ", "ㅇ", "ㅈ", "ㅊ", "ㅋ", "ㅌ", "ㅍ", "ㅎ",
	}
)

func isSyllable(r rune) bool {
	return r >= hangulBase && r <= hangulLast
}

// Decompose 완성형 한글 음절을 초성/중성/종성 호환 자모로 풀어 쓴다.
// 음절 범위 밖의 문자는 그대로 둔다.
func Decompose(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 2)
	for _, r := range s {
		if !isSyllable(r) {
			b.WriteRune(r)
			continue
		}
		idx := int(r - hangulBase)
		b.WriteString(choTable[idx/choBlockSize])
		b.WriteString(jungTable[(idx%choBlockSize)/jongCount])
		b.WriteString(jongTable[idx%jongCount])
	}
	return b.String()
}

// ExtractLeadConsonants 음절마다 초성만 남긴다. 음절 범위 밖의 문자는 그대로 둔다.
func ExtractLeadConsonants(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if !isSyllable(r) {
			b.WriteRune(r)
			continue
		}
		b.WriteString(choTable[int(r-hangulBase)/choBlockSize])
	}
	return b.String()
}
