// Package memory contains the evolution branch log: an append-only record of
// every evaluated branch, independent of the winning-path tree the search
// executor persists. Keeping the log separate lets losing branches remain
// inspectable after a run even though they never enter the tree.
package memory
