package common

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
)

// ParseJSON JSON 문자열을 구조체로 디코딩
func ParseJSON(data string, v any) error {
	return decodeJSON(strings.NewReader(data), v)
}

// ParseJSONBytes JSON 바이트를 구조체로 디코딩
func ParseJSONBytes(data []byte, v any) error {
	return decodeJSON(bytes.NewReader(data), v)
}

func decodeJSON(r io.Reader, v any) error {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	if err := dec.Decode(v); err != nil {
		return err
	}

	// 값 뒤에 남은 데이터가 있으면 오류
	if _, err := dec.Token(); err != io.EOF {
		if err != nil {
			return err
		}
		return errors.New("unexpected extra JSON data")
	}
	return nil
}

// ToJSON 구조체를 JSON 문자열로 변환
func ToJSON(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
