package ai

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// stripFences убирает обрамление ```json ... ``` вокруг ответа модели
func stripFences(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		lines := strings.SplitN(text, "\n", 2)
		if len(lines) > 1 {
			text = lines[1]
		} else {
			text = strings.TrimPrefix(text, "```")
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
	}
	return text
}

// decodeJSON разбирает ответ модели. Если вокруг JSON есть текст, берется
// фрагмент от первой открывающей до последней закрывающей скобки.
func decodeJSON(raw []byte, v any) error {
	text := []byte(stripFences(string(raw)))
	if err := json.Unmarshal(text, v); err == nil {
		return nil
	}
	for _, pair := range [][2]byte{{'{', '}'}, {'[', ']'}} {
		start := bytes.IndexByte(text, pair[0])
		end := bytes.LastIndexByte(text, pair[1])
		if start >= 0 && end > start {
			if err := json.Unmarshal(text[start:end+1], v); err == nil {
				return nil
			}
		}
	}
	return fmt.Errorf("ai: response is not valid JSON: %.200s", text)
}

// score - число, которое модель иногда присылает строкой
type score float64

func (s *score) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*s = score(f)
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("ai: score must be a number: %w", err)
	}
	f, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(str), "%"), 64)
	if err != nil {
		return fmt.Errorf("ai: score must be a number: %w", err)
	}
	// ParseFloat принимает "NaN" и "Inf"
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("ai: score must be finite, got %q", str)
	}
	*s = score(f)
	return nil
}

func clamp01(f float64) float64 {
	if math.IsNaN(f) {
		return 0
	}
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
