package relationship

import (
	"strings"

	"github.com/rapport-chat/rapport/pkg/models"
)

// MergeBasicInfo fills blank basics from the analyzer updates and returns
// the fields it wrote. Existing values are never overwritten.
func MergeBasicInfo(info models.UserBasicInfo, updates map[string]string) (models.UserBasicInfo, []string) {
	var filled []string
	for _, key := range models.BasicInfoFields {
		val := strings.TrimSpace(updates[key])
		if val == "" {
			continue
		}
		current, ok := info.Field(key)
		if !ok || strings.TrimSpace(current) != "" {
			continue
		}
		info.SetField(key, val)
		filled = append(filled, key)
	}
	return info, filled
}

// MergeInferred folds trimmed non-empty analyzer entries into the inferred
// profile, overwriting on key collision. A nil profile is allocated on the
// first write.
func MergeInferred(profile map[string]string, entries map[string]string) map[string]string {
	for k, v := range entries {
		key := strings.TrimSpace(k)
		val := strings.TrimSpace(v)
		if key == "" || val == "" {
			continue
		}
		if profile == nil {
			profile = make(map[string]string, len(entries))
		}
		profile[key] = val
	}
	return profile
}
