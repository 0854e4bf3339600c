package safety

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGateBlocksCrisisKeywords(t *testing.T) {
	g := NewGate()

	cases := []string{
		"I want to kill myself",
		"I've been thinking about suicide a lot",
		"sometimes i just want to die",
		"最近一直想死",
		"我真的不想活了",
		"I WANT TO DIE", // case-folded matching
	}

	for _, text := range cases {
		v := g.Check(text)
		assert.True(t, v.Blocked, "expected block for %q", text)
		assert.NotEmpty(t, v.Reply)
	}
}

func TestGateReplyIsFixed(t *testing.T) {
	g := NewGate()

	a := g.Check("想死")
	b := g.Check("I want to die")

	assert.True(t, a.Blocked)
	assert.Equal(t, a.Reply, b.Reply, "safety reply must be the same fixed message")
}

func TestGatePassesCleanText(t *testing.T) {
	g := NewGate()

	for _, text := range []string{
		"I want to lose weight",
		"I'm so tired today",
		"help me plan my week",
		"",
	} {
		v := g.Check(text)
		assert.False(t, v.Blocked, "unexpected block for %q", text)
		assert.Empty(t, v.Reply)
	}
}

// Substring matching over-triggers on benign containing text; that tradeoff
// is intentional and pinned here so nobody "fixes" it casually.
func TestGateSubstringOverTrigger(t *testing.T) {
	g := NewGate()
	v := g.Check("the suicide squad movie was fun")
	assert.True(t, v.Blocked)
}
