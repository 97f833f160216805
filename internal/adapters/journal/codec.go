package journal

import (
	"encoding/json"
	"fmt"
)

func encodeDetail(detail map[string]string) (string, error) {
	if detail == nil {
		detail = map[string]string{}
	}
	b, err := json.Marshal(detail)
	if err != nil {
		return "", fmt.Errorf("encode event detail: %w", err)
	}
	return string(b), nil
}

func decodeDetail(raw string) (map[string]string, error) {
	detail := map[string]string{}
	if raw == "" {
		return detail, nil
	}
	if err := json.Unmarshal([]byte(raw), &detail); err != nil {
		return nil, fmt.Errorf("decode event detail: %w", err)
	}
	return detail, nil
}
