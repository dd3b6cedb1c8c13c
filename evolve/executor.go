package evolve

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gbeyruth/evoflow/internal/util"
	"github.com/gbeyruth/evoflow/logging"
	"github.com/gbeyruth/evoflow/memory"
	"github.com/gbeyruth/evoflow/task"
)

// TreeNode is one persisted tree entry. The root carries a nil parent and a
// nil score (the seed is never evaluated); every other entry records the
// version it grew from and the score that won it the generation.
type TreeNode struct {
	Parent *string  `json:"parent"`
	Score  *float64 `json:"score"`
}

// Tree is the persisted record of a search run: the root version id plus all
// winning versions keyed by version id. Entries are added only immediately
// after their parent was the active version, so every non-root entry's parent
// key exists in the mapping by construction.
type Tree struct {
	Root  string              `json:"root"`
	Nodes map[string]TreeNode `json:"nodes"`
}

// TreeFileName is the file written per search run under the run directory.
const TreeFileName = "tree.json"

// ExecutorOptions configures an Executor.
type ExecutorOptions struct {
	// BranchingFactor is the number of children generated per generation.
	// Defaults to 2.
	BranchingFactor int
	// MaxDepth is the number of generations. Defaults to 2.
	MaxDepth int
	// WorkDir is the root directory for persisted run trees. Defaults to
	// "evolution_runs".
	WorkDir string
	// Log, when set, records every evaluated child plus a final entry for
	// the terminal winner.
	Log *memory.Log
	// Logger receives search diagnostics. Defaults to NoOpLogger.
	Logger logging.Logger
}

// Executor grows a rooted version tree by repeated mutate → evaluate → select
// cycles: a fixed-width, fixed-depth greedy hill-climb, not a search with
// backtracking. The returned version is the final generation's winner, which
// is not necessarily the best-scoring version seen across the whole run.
type Executor struct {
	branchingFactor int
	maxDepth        int
	workDir         string
	log             *memory.Log
	logger          logging.Logger
}

// NewExecutor creates an Executor.
func NewExecutor(optFns ...func(o *ExecutorOptions)) *Executor {
	opts := ExecutorOptions{
		BranchingFactor: 2,
		MaxDepth:        2,
		WorkDir:         "evolution_runs",
		Logger:          logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Executor{
		branchingFactor: opts.BranchingFactor,
		maxDepth:        opts.MaxDepth,
		workDir:         opts.WorkDir,
		log:             opts.Log,
		logger:          opts.Logger,
	}
}

// Run grows the tree from seed, one generation per depth level. Children are
// evaluated strictly in generation order, so selection ties resolve
// deterministically. The finished tree is persisted under a directory derived
// from the task description (spaces replaced by underscores).
func (e *Executor) Run(ctx context.Context, t *task.Task, seed *Version, mutator Mutator, evaluator Evaluator, selector Selector) (*Version, error) {
	tree := Tree{
		Root:  seed.Version,
		Nodes: map[string]TreeNode{seed.Version: {}},
	}
	current := seed

	e.logger.Info("evolution started",
		"root", seed.Version, "branching_factor", e.branchingFactor, "max_depth", e.maxDepth)

	for depth := 0; depth < e.maxDepth; depth++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("evolution cancelled at depth %d: %w", depth, err)
		}

		children := mutator.Mutate(current, e.branchingFactor)
		results := make([]Scored, 0, len(children))
		for _, child := range children {
			score := evaluator.Evaluate(child)
			results = append(results, Scored{Version: child, Score: score})

			e.logger.Info("branch evaluated",
				"version", child.Version, "parent", current.Version, "score", score)

			if e.log != nil {
				entry := memory.Entry{
					BranchID:  child.Version,
					ParentID:  current.Version,
					Score:     score,
					Rationale: "auto-generated",
				}
				if err := e.log.Append(entry); err != nil {
					return nil, fmt.Errorf("record branch %s: %w", child.Version, err)
				}
			}
		}

		winner := selector.Select(results)
		parent := current.Version
		score := winner.Score()
		tree.Nodes[winner.Version] = TreeNode{Parent: &parent, Score: &score}

		e.logger.Info("generation winner selected",
			"depth", depth+1, "version", winner.Version, "score", score)

		current = winner
	}

	if e.log != nil {
		entry := memory.Entry{
			BranchID:  current.Version,
			ParentID:  current.Parent,
			Score:     current.Score(),
			Rationale: "final",
		}
		if err := e.log.Append(entry); err != nil {
			return nil, fmt.Errorf("record final winner: %w", err)
		}
	}

	if err := e.persist(t, tree); err != nil {
		return nil, err
	}

	return current, nil
}

// persist writes the run's tree under <workdir>/<sanitized description>/.
func (e *Executor) persist(t *task.Task, tree Tree) error {
	runDir := filepath.Join(e.workDir, util.SanitizeName(t.Description))
	if err := os.MkdirAll(runDir, 0o755); err != nil {
		return fmt.Errorf("create run dir: %w", err)
	}
	data, err := json.MarshalIndent(tree, "", "  ")
	if err != nil {
		return fmt.Errorf("encode tree: %w", err)
	}
	path := filepath.Join(runDir, TreeFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write tree: %w", err)
	}
	e.logger.Info("evolution tree persisted", "path", path, "nodes", len(tree.Nodes))
	return nil
}

// LoadTree reads a previously persisted run tree.
func LoadTree(path string) (*Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tree: %w", err)
	}
	var tree Tree
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("decode tree: %w", err)
	}
	return &tree, nil
}
