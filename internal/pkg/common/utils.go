package common

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateUUID UUID 생성
func GenerateUUID() string {
	return uuid.New().String()
}

// SplitCSV 쉼표 구분 문자열을 공백 제거 후 분리. 빈 항목은 버린다
func SplitCSV(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
