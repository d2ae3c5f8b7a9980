package editor

import (
	"testing"

	"github.com/MKhiriev/go-profile-editor/models"
	"github.com/stretchr/testify/assert"
)

func TestHasDuplicatePlatforms(t *testing.T) {
	tests := []struct {
		name      string
		platforms []models.Platform
		want      bool
	}{
		{name: "empty", want: false},
		{name: "distinct", platforms: []models.Platform{{Name: "Github", Value: "a"}, {Name: "Linkedin", Value: "a"}}, want: false},
		{name: "same name both filled", platforms: []models.Platform{{Name: "Linkedin", Value: "a"}, {Name: "Linkedin", Value: "b"}}, want: true},
		{name: "same name one empty value", platforms: []models.Platform{{Name: "Linkedin", Value: "a"}, {Name: "Linkedin"}}, want: false},
		{name: "empty names", platforms: []models.Platform{{Value: "a"}, {Value: "b"}}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hasDuplicatePlatforms(tt.platforms))
		})
	}
}

func TestFilterPlatforms(t *testing.T) {
	got := filterPlatforms([]models.Platform{
		{Name: "Linkedin", Value: "a"},
		{Name: "", Value: ""},
		{Name: "Github", Value: ""},
		{Name: "", Value: "orphan"},
		{Name: "Twitter", Value: "t"},
	})

	assert.Equal(t, []models.Platform{{Name: "Linkedin", Value: "a"}, {Name: "Twitter", Value: "t"}}, got)
	assert.NotNil(t, filterPlatforms(nil))
}

func TestNextPlatformName(t *testing.T) {
	assert.Equal(t, "Phone number", NextPlatformName("", 1))
	assert.Equal(t, "", NextPlatformName("Github", 1))
	assert.Equal(t, "Github", NextPlatformName("", -1))
	assert.Equal(t, "Linkedin", NextPlatformName("Phone number", 2))
	assert.Equal(t, "Phone number", NextPlatformName("My blog", 1))
}
