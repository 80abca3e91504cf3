package shared

import (
	"strings"
	"tzconv/shared/constant"
)

const cacheKeySeparator = ":"

// BuildCacheKey joins the non-empty parts into a namespaced cache key.
func BuildCacheKey(parts ...string) string {
	keys := make([]string, 0, len(parts))

	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			keys = append(keys, part)
		}
	}

	return strings.Join(keys, cacheKeySeparator)
}

// SplitIDs splits a comma separated query value, keeping order and duplicates.
func SplitIDs(value string) []string {
	if strings.TrimSpace(value) == "" {
		return []string{}
	}

	ids := strings.Split(value, constant.RequestParamSeparator)
	for i, id := range ids {
		ids[i] = strings.TrimSpace(id)
	}

	return ids
}
