package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo_String(t *testing.T) {
	tests := []struct {
		name string
		info AppBuildInfo
		want string
	}{
		{name: "empty", info: AppBuildInfo{}, want: "unknown build"},
		{name: "version only", info: NewAppBuildInfo("v1.0.0", "", ""), want: "v1.0.0"},
		{name: "full", info: NewAppBuildInfo("v1.0.0", "2026-10-01", "abc123"), want: "v1.0.0 (abc123, 2026-10-01)"},
		{name: "commit without version", info: NewAppBuildInfo("", "", "abc123"), want: "dev (abc123)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.info.String())
		})
	}
}

func TestAppBuildInfo_IsZero(t *testing.T) {
	assert.True(t, AppBuildInfo{}.IsZero())
	assert.False(t, NewAppBuildInfo("", "2026-10-01", "").IsZero())
}
