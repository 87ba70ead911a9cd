package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrentUsername(t *testing.T) {
	assert.NotEmpty(t, CurrentUsername())
}

func TestResolveAssignee(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"shorthand", "@me", CurrentUsername()},
		{"shorthand any case", " @ME ", CurrentUsername()},
		{"plain name", "Laura Chen", "Laura Chen"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveAssignee(tt.value))
		})
	}
}
