// Package workflow contains the graph executor: named agent nodes with
// ordered fan-out edges, driven by a single FIFO work queue that honors each
// node's join barrier and retry envelope. The package focuses on three
// concerns:
//
//  1. Graph registration – nodes plus ordered successor lists (Graph)
//  2. Traversal – deterministic FIFO scheduling with join aggregation,
//     non-fatal skips and silent branch halts (Run)
//  3. Task processing – the sequential per-task alternative with pre/post
//     tool pipelines (TaskRunner)
//
// Everything runs on the caller's goroutine. Fan-out branches are processed
// strictly in dequeue order, so two runs over the same graph with the same
// inputs execute nodes in the same order.
package workflow
