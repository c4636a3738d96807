//go:build unit

package branch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirName(t *testing.T) {
	tests := []struct {
		name     string
		branch   string
		expected string
	}{
		{name: "plain branch", branch: "feature-x", expected: "feature-x"},
		{name: "one slash", branch: "feature/auth", expected: "feature-auth"},
		{name: "nested slashes", branch: "feat/sub/deep", expected: "feat-sub-deep"},
		{name: "other characters untouched", branch: "fix_1.2@x", expected: "fix_1.2@x"},
		{name: "slash and dash collide", branch: "feat-x", expected: "feat-x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DirName(tt.branch))
		})
	}
}
