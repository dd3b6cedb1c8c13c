package evolve

import (
	"testing"

	"github.com/gbeyruth/evoflow/agent"
	"github.com/gbeyruth/evoflow/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedVersion(t *testing.T) *Version {
	t.Helper()
	node := agent.New("solver", model.NewMockModel("m"), func(o *agent.Options) {
		o.Prompt = "solve it"
	})
	return NewVersion(node, "print('hi')", "v1_0")
}

// -------------------- Mutator Tests --------------------

func TestMarkerMutator_Lineage(t *testing.T) {
	parent := seedVersion(t)

	children := MarkerMutator{}.Mutate(parent, 3)
	require.Len(t, children, 3)

	for _, child := range children {
		assert.Equal(t, "v1_0", child.Parent)
		assert.Contains(t, child.Version, "v1_0_")
		assert.Contains(t, child.Code, "print('hi')")
		assert.Contains(t, child.Agent.Prompt(), "mutation")
		assert.Equal(t, float64(0), child.Score())
	}
	assert.Equal(t, "v1_0_0", children[0].Version)
	assert.Equal(t, "v1_0_2", children[2].Version)

	// The parent's own node and prompt are untouched.
	assert.Equal(t, "solve it", parent.Agent.Prompt())
}

// -------------------- Evaluator Tests --------------------

func TestCodeSizeEvaluator_RecordsScore(t *testing.T) {
	v := seedVersion(t)

	score := CodeSizeEvaluator{}.Evaluate(v)
	assert.Equal(t, float64(len(v.Code)), score)
	assert.Equal(t, score, v.Score())
}

// -------------------- Selector Tests --------------------

func TestMaxSelector_FirstEncounteredMaxWins(t *testing.T) {
	a := seedVersion(t)
	b := seedVersion(t)
	c := seedVersion(t)
	b.Version, c.Version = "v1_1", "v1_2"

	winner := MaxSelector{}.Select([]Scored{
		{Version: a, Score: 5},
		{Version: b, Score: 9},
		{Version: c, Score: 9},
	})
	assert.Same(t, b, winner)
}

func TestMaxSelector_EmptyInput(t *testing.T) {
	assert.Nil(t, MaxSelector{}.Select(nil))
}
