package relationship

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rapport-chat/rapport/pkg/models"
)

func TestMergeBasicInfoFillsOnlyMissing(t *testing.T) {
	info := models.UserBasicInfo{Name: "小明", Gender: "  "}
	updates := map[string]string{
		"name":       "小红",
		"age":        " 25 ",
		"gender":     "male",
		"occupation": "",
		"location":   "杭州",
	}

	merged, filled := MergeBasicInfo(info, updates)

	assert.Equal(t, "小明", merged.Name, "existing name must not be overwritten")
	assert.Equal(t, "25", merged.AgeGroup)
	assert.Equal(t, "male", merged.Gender, "blank existing value counts as missing")
	assert.Empty(t, merged.Occupation)
	assert.Equal(t, "杭州", merged.Location)
	assert.ElementsMatch(t, []string{"age", "gender", "location"}, filled)
}

func TestMergeBasicInfoNoUpdates(t *testing.T) {
	info := models.UserBasicInfo{Name: "阿杰"}

	merged, filled := MergeBasicInfo(info, nil)

	assert.Equal(t, info, merged)
	assert.Empty(t, filled)
}

func TestMergeInferred(t *testing.T) {
	profile := map[string]string{"hobby": "爬山", "pet": "猫"}

	out := MergeInferred(profile, map[string]string{
		"hobby":  "攀岩",
		" diet ": " 素食 ",
		"":       "ignored",
		"mood":   "   ",
	})

	require.Len(t, out, 3)
	assert.Equal(t, "攀岩", out["hobby"], "inferred entries overwrite on collision")
	assert.Equal(t, "素食", out["diet"])
	assert.Equal(t, "猫", out["pet"])
}

func TestMergeInferredAllocatesNilProfile(t *testing.T) {
	out := MergeInferred(nil, map[string]string{"city": "上海"})

	require.NotNil(t, out)
	assert.Equal(t, "上海", out["city"])
}
