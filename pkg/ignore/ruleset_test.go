package ignore

import (
	"testing"

	"github.com/arthur-debert/mcpack/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRulesetMatches(t *testing.T) {
	rules, err := New(append([]string{"/dist", "node_modules/", "docs/*.md", "!docs/keep.md"}, Builtin()...)...)
	require.NoError(t, err)

	tests := []struct {
		path string
		want bool
	}{
		{"build.py", true},
		{"scripts/tools/build.py", true},
		{"run.bat", true},
		{"__pycache__/build.cpython-312.pyc", true},
		{"pack/__pycache__/x.pyc", true},
		{"contents.json", true},
		{"BP/contents.json", true},
		{"BP/contents.json.bak", false},
		{"BP/manifest.json", false},
		{"dist", true},
		{"dist/out.zip", true},
		{"RP/dist/out.zip", false},
		{"node_modules/lib/index.js", true},
		{"a/node_modules/x", true},
		{"docs/readme.md", true},
		{"docs/keep.md", false},
		{"RP/textures/blocks/stone.png", false},
		{".", false},
		{"", false},
		{"./build.py", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, rules.Matches(tt.path))
		})
	}
}

func TestRulesetIsDeterministic(t *testing.T) {
	rules, err := New("*.py")
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		assert.True(t, rules.Matches("deep/x/build.py"))
		assert.False(t, rules.Matches("deep/x/build.js"))
	}
}

func TestNewSkipsCommentsAndBlanks(t *testing.T) {
	rules, err := New("", "  ", "# comment", "*.log")
	require.NoError(t, err)
	assert.Equal(t, []string{"*.log"}, rules.Patterns())
}

func TestNewRejectsInvalidPatterns(t *testing.T) {
	_, err := New("[")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrIgnorePattern))

	_, err = New("!")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrIgnorePattern))
}

func TestPatternsReturnsCopy(t *testing.T) {
	rules, err := New("*.py")
	require.NoError(t, err)

	p := rules.Patterns()
	p[0] = "changed"
	assert.Equal(t, []string{"*.py"}, rules.Patterns())
}

func TestEmptyAndNilRulesetMatchNothing(t *testing.T) {
	assert.False(t, Empty().Matches("build.py"))

	var nilRules *Ruleset
	assert.False(t, nilRules.Matches("build.py"))
	assert.Nil(t, nilRules.Patterns())
}
