// ABOUTME: Tolerant field extraction from decoded JSON objects
// ABOUTME: Wrong-typed fields degrade to zero values instead of failing

package discovery

import "fmt"

func stringField(obj map[string]any, key string) string {
	s, _ := obj[key].(string)
	return s
}

func stringSliceField(obj map[string]any, key string) []string {
	raw, ok := obj[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		} else {
			out = append(out, fmt.Sprint(v))
		}
	}
	return out
}

func stringMapField(obj map[string]any, key string) map[string]string {
	raw, ok := obj[key].(map[string]any)
	if !ok {
		return nil
	}
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		if s, ok := v.(string); ok {
			out[k] = s
		} else {
			out[k] = fmt.Sprint(v)
		}
	}
	return out
}

func mapField(obj map[string]any, key string) map[string]any {
	m, _ := obj[key].(map[string]any)
	return m
}
