package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// DecodeSpec re-decodes a loosely typed yaml value into T.
func DecodeSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

// Overlay returns a copy of base with the keys in overrides replaced. Nested
// maps merge key by key; every other value replaces the base value outright.
func Overlay[T any](base T, overrides map[string]any) (T, error) {
	if len(overrides) == 0 {
		return base, nil
	}
	b, err := yaml.Marshal(base)
	if err != nil {
		return base, fmt.Errorf("prefabs: overlay marshal: %w", err)
	}
	var merged map[string]any
	if err := yaml.Unmarshal(b, &merged); err != nil {
		return base, fmt.Errorf("prefabs: overlay unmarshal: %w", err)
	}
	if merged == nil {
		merged = map[string]any{}
	}
	mergeInto(merged, overrides)

	out, err := DecodeSpec[T](merged)
	if err != nil {
		return base, fmt.Errorf("prefabs: overlay decode: %w", err)
	}
	return out, nil
}

func mergeInto(dst, src map[string]any) {
	for k, v := range src {
		srcMap, ok := v.(map[string]any)
		if !ok {
			dst[k] = v
			continue
		}
		dstMap, ok := dst[k].(map[string]any)
		if !ok {
			dstMap = map[string]any{}
			dst[k] = dstMap
		}
		mergeInto(dstMap, srcMap)
	}
}
