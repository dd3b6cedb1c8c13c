package evolve

import "fmt"

// Scored pairs a child version with the score its evaluation produced.
type Scored struct {
	Version *Version
	Score   float64
}

// Mutator produces n child variants of a parent version. Each child's Parent
// field must be set to the parent's version id, and each child's version id
// must be derived from the parent's so lineage stays traceable in the tree.
type Mutator interface {
	Mutate(parent *Version, n int) []*Version
}

// Evaluator scores a version, recording the score into the version's
// metadata as a side effect.
type Evaluator interface {
	Evaluate(v *Version) float64
}

// Selector picks the winner among a generation's scored children. It must be
// total (a non-empty input always yields a version) and deterministic given
// the same input ordering.
type Selector interface {
	Select(results []Scored) *Version
}

// MarkerMutator is the reference Mutator: child i of version V becomes V_i,
// with a marker appended to the prompt and code payloads. Intentionally
// primitive; real mutation strategies replace it.
type MarkerMutator struct{}

// Mutate implements Mutator.
func (MarkerMutator) Mutate(parent *Version, n int) []*Version {
	children := make([]*Version, 0, n)
	for i := 0; i < n; i++ {
		version := fmt.Sprintf("%s_%d", parent.Version, i)
		node := parent.Agent.Clone(fmt.Sprintf("%s_child%d", parent.Agent.Name(), i))
		node.SetPrompt(fmt.Sprintf("%s mutation %d", parent.Agent.Prompt(), i))

		child := &Version{
			Agent:    node,
			Code:     fmt.Sprintf("%s\n// mutation %d\n", parent.Code, i),
			Version:  version,
			Parent:   parent.Version,
			Metadata: map[string]any{metadataScoreKey: float64(0)},
		}
		children = append(children, child)
	}
	return children
}

// CodeSizeEvaluator is the reference Evaluator: the score is the size of the
// code payload. A placeholder fitness function.
type CodeSizeEvaluator struct{}

// Evaluate implements Evaluator.
func (CodeSizeEvaluator) Evaluate(v *Version) float64 {
	score := float64(len(v.Code))
	v.SetScore(score)
	return score
}

// MaxSelector picks the highest-scoring child; ties break toward the
// first-encountered maximum in generation order.
type MaxSelector struct{}

// Select implements Selector.
func (MaxSelector) Select(results []Scored) *Version {
	if len(results) == 0 {
		return nil
	}
	best := results[0]
	for _, r := range results[1:] {
		if r.Score > best.Score {
			best = r
		}
	}
	return best.Version
}
