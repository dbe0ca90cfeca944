package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/mdalint/internal/domain/rules"
	m "github.com/mouse-blink/mdalint/internal/model"
	"github.com/mouse-blink/mdalint/internal/pyast"
)

type fixedRule struct {
	name   string
	badges []m.Badge
}

func (r fixedRule) Name() string                     { return r.name }
func (r fixedRule) Evaluate(*pyast.Module) []m.Badge { return r.badges }

func newKindBadge(kind, subject string, line uint32) m.Badge {
	return m.NewStoredBadge(kind, m.Location{Path: "pkg/mod.py", Line: line}, subject, nil, nil)
}

func TestLinter_DefaultRules(t *testing.T) {
	src := `class Good(AnalysisBase):
    def _single_frame(self):
        pass

class Plain(object):
    pass

class Bad(AnalysisBase):
    pass
`
	badges := NewLinter().Lint(mustParse(t, src))

	require.Len(t, badges, 2)
	assert.Equal(t, "Good", badges[0].Subject())
	assert.True(t, badges[0].Acquired())
	assert.Equal(t, "Bad", badges[1].Subject())
	assert.False(t, badges[1].Acquired())
}

func TestLinter_RuleOrderAndIgnores(t *testing.T) {
	src := `# mdalint: ignore-file Second
x = 1

# mdalint: ignore First
y = 2
`
	first := fixedRule{name: "First", badges: []m.Badge{
		newKindBadge("First", "a", 2),
		newKindBadge("First", "b", 5),
	}}
	second := fixedRule{name: "Second", badges: []m.Badge{newKindBadge("Second", "c", 2)}}
	third := fixedRule{name: "Third", badges: []m.Badge{newKindBadge("Third", "d", 5)}}

	badges := NewLinter(first, second, third).Lint(mustParse(t, src))

	require.Len(t, badges, 2)
	assert.Equal(t, "a", badges[0].Subject())
	assert.Equal(t, "d", badges[1].Subject())
}

func TestLinter_IgnoreDirectiveOnFixture(t *testing.T) {
	src := readExample(t, "ignore", "ignored.py")

	badges := NewLinter(rules.Default()...).Lint(mustParse(t, src))

	require.Len(t, badges, 1)
	assert.Equal(t, "Other", badges[0].Subject())
}

func TestLinter_IgnoreFileDirective(t *testing.T) {
	src := `# mdalint: ignore-file
class Bad(AnalysisBase):
    pass
`
	assert.Empty(t, NewLinter().Lint(mustParse(t, src)))
}
