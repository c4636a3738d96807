//go:build unit

package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderKeepsText(t *testing.T) {
	tests := []struct {
		name     string
		rendered string
		contains string
	}{
		{name: "success", rendered: Success(), contains: SuccessMark},
		{name: "failure", rendered: Failure(), contains: FailureMark},
		{name: "warning", rendered: Warning("dirty"), contains: "dirty"},
		{name: "dimmed", rendered: Dimmed("/tmp/wt"), contains: "/tmp/wt"},
		{name: "accent", rendered: Accent("Cursor"), contains: "Cursor"},
		{name: "bold", rendered: Bold("feat"), contains: "feat"},
		{name: "header", rendered: Header("Candidates"), contains: "Candidates"},
		{name: "error prefix", rendered: ErrorPrefix(), contains: "error:"},
		{name: "warning prefix", rendered: WarningPrefix(), contains: "warning:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, tt.rendered, tt.contains)
		})
	}
}
