package evolve

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gbeyruth/evoflow/memory"
	"github.com/gbeyruth/evoflow/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingEvaluator wraps CodeSizeEvaluator and tallies evaluations.
type countingEvaluator struct {
	count int
}

func (e *countingEvaluator) Evaluate(v *Version) float64 {
	e.count++
	return CodeSizeEvaluator{}.Evaluate(v)
}

// -------------------- Executor Tests --------------------

func TestExecutor_EvaluatesBranchingTimesDepth(t *testing.T) {
	eval := &countingEvaluator{}
	exec := NewExecutor(func(o *ExecutorOptions) {
		o.BranchingFactor = 3
		o.MaxDepth = 4
		o.WorkDir = t.TempDir()
	})

	winner, err := exec.Run(context.Background(), task.New("count evals"), seedVersion(t),
		MarkerMutator{}, eval, MaxSelector{})
	require.NoError(t, err)

	assert.Equal(t, 12, eval.count)
	// The winner sits at depth 4: the seed version plus four ordinal suffixes.
	assert.Equal(t, 4, strings.Count(winner.Version, "_")-strings.Count("v1_0", "_"))
}

func TestExecutor_SingleGenerationTree(t *testing.T) {
	workDir := t.TempDir()
	exec := NewExecutor(func(o *ExecutorOptions) {
		o.BranchingFactor = 2
		o.MaxDepth = 1
		o.WorkDir = workDir
	})

	winner, err := exec.Run(context.Background(), task.New("one step"), seedVersion(t),
		MarkerMutator{}, CodeSizeEvaluator{}, MaxSelector{})
	require.NoError(t, err)
	assert.Equal(t, "v1_0", winner.Parent)

	tree, err := LoadTree(filepath.Join(workDir, "one_step", TreeFileName))
	require.NoError(t, err)
	assert.Equal(t, "v1_0", tree.Root)
	// Root plus the single generation winner.
	assert.Len(t, tree.Nodes, 2)
}

func TestExecutor_TreeParentClosure(t *testing.T) {
	workDir := t.TempDir()
	exec := NewExecutor(func(o *ExecutorOptions) {
		o.BranchingFactor = 2
		o.MaxDepth = 3
		o.WorkDir = workDir
	})

	_, err := exec.Run(context.Background(), task.New("deep run"), seedVersion(t),
		MarkerMutator{}, CodeSizeEvaluator{}, MaxSelector{})
	require.NoError(t, err)

	tree, err := LoadTree(filepath.Join(workDir, "deep_run", TreeFileName))
	require.NoError(t, err)
	require.Len(t, tree.Nodes, 4)

	root, ok := tree.Nodes[tree.Root]
	require.True(t, ok)
	assert.Nil(t, root.Parent)
	assert.Nil(t, root.Score)

	for version, node := range tree.Nodes {
		if version == tree.Root {
			continue
		}
		require.NotNil(t, node.Parent, "non-root %s must record a parent", version)
		_, exists := tree.Nodes[*node.Parent]
		assert.True(t, exists, "parent of %s must be present in the tree", version)
		assert.NotNil(t, node.Score)
	}
}

func TestExecutor_MemoryLogRecordsEveryBranch(t *testing.T) {
	dir := t.TempDir()
	log, err := memory.NewLog(filepath.Join(dir, "memory_log.json"))
	require.NoError(t, err)

	exec := NewExecutor(func(o *ExecutorOptions) {
		o.BranchingFactor = 2
		o.MaxDepth = 2
		o.WorkDir = dir
		o.Log = log
	})

	winner, err := exec.Run(context.Background(), task.New("logged run"), seedVersion(t),
		MarkerMutator{}, CodeSizeEvaluator{}, MaxSelector{})
	require.NoError(t, err)

	entries, err := log.Entries()
	require.NoError(t, err)
	// Every evaluated child (2*2) plus the final winner entry.
	require.Len(t, entries, 5)

	for _, e := range entries[:4] {
		assert.Equal(t, "auto-generated", e.Rationale)
	}
	final := entries[4]
	assert.Equal(t, "final", final.Rationale)
	assert.Equal(t, winner.Version, final.BranchID)
	assert.Equal(t, winner.Parent, final.ParentID)
}

func TestExecutor_CancelledContext(t *testing.T) {
	exec := NewExecutor(func(o *ExecutorOptions) { o.WorkDir = t.TempDir() })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := exec.Run(ctx, task.New("cancelled"), seedVersion(t),
		MarkerMutator{}, CodeSizeEvaluator{}, MaxSelector{})
	assert.Error(t, err)
}

// -------------------- Version Persistence Tests --------------------

func TestVersion_SaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	v := seedVersion(t)
	v.Parent = "v0_9"
	v.SetScore(42)

	codePath := filepath.Join(dir, "agent.code")
	promptPath := filepath.Join(dir, "agent.prompt")
	metadataPath := filepath.Join(dir, "agent.json")
	require.NoError(t, v.Save(codePath, promptPath, metadataPath))

	fresh := seedVersion(t)
	fresh.Agent.SetPrompt("overwritten below")
	loaded, err := LoadVersion(fresh.Agent, codePath, promptPath, metadataPath)
	require.NoError(t, err)

	assert.Equal(t, v.Code, loaded.Code)
	assert.Equal(t, "v1_0", loaded.Version)
	assert.Equal(t, "v0_9", loaded.Parent)
	assert.Equal(t, float64(42), loaded.Score())
	assert.Equal(t, "solve it", loaded.Agent.Prompt())
}

func TestVersion_LoadWithoutMetadata(t *testing.T) {
	dir := t.TempDir()
	v := seedVersion(t)
	codePath := filepath.Join(dir, "agent.code")
	promptPath := filepath.Join(dir, "agent.prompt")
	require.NoError(t, v.Save(codePath, promptPath, ""))

	loaded, err := LoadVersion(seedVersion(t).Agent, codePath, promptPath, "")
	require.NoError(t, err)
	assert.Equal(t, "v1_0", loaded.Version)
	assert.Empty(t, loaded.Parent)
}
