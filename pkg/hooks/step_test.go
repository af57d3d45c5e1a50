package hooks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		value   string
		enabled bool
	}{
		{"", false},
		{"  ", false},
		{"none", false},
		{"NONE", false},
		{"None", false},
		{"build.sh", true},
		{"scripts/none.sh", true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			step, ok := Resolve(tt.value)
			assert.Equal(t, tt.enabled, ok)
			if tt.enabled {
				require.IsType(t, &Shell{}, step)
				assert.Equal(t, tt.value, step.(*Shell).Path)
			} else {
				assert.Nil(t, step)
			}
		})
	}
}

func TestStepFunc(t *testing.T) {
	var got Env
	step := StepFunc(func(ctx context.Context, env Env) error {
		got = env
		return nil
	})

	require.NoError(t, step.Run(context.Background(), Env{Dir: "/stage", Args: []string{"a"}}))
	assert.Equal(t, "/stage", got.Dir)
	assert.Equal(t, []string{"a"}, got.Args)
}
