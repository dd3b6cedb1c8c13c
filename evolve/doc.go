// Package evolve contains the evolutionary search executor and its
// collaborator strategies. A search run wraps a seed agent in a Version
// record, then repeatedly asks a Mutator for child variants, an Evaluator for
// their scores and a Selector for the generation winner, advancing the
// current version and recording the winner in a rooted tree that is persisted
// per run. An optional memory log records every evaluated branch, winners and
// losers alike.
package evolve
