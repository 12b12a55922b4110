package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringSet(t *testing.T) {
	assert.Equal(t, []string{"vegan", "keto"}, []string(StringSet([]string{" vegan", "", "keto", "vegan ", "  "})))
	assert.Equal(t, []string{"Thai", "thai"}, []string(StringSet([]string{"Thai", "thai"})))

	empty := StringSet(nil)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestUserPreferences_BeforeCreate(t *testing.T) {
	p := &UserPreferences{Dietary: StringSet([]string{"a", "a"})}
	assert.NoError(t, p.BeforeCreate(nil))
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", p.ID.String())
	assert.Equal(t, []string{"a"}, []string(p.Dietary))
	assert.NotNil(t, p.Allergies)
	assert.NotNil(t, p.Cuisines)
}
