// Package agent defines the atomic unit of work in an evoflow graph and its
// failure-handling envelope. The package focuses on three concerns:
//
//  1. Join aggregation – a node buffers contributions until its expected
//     input count is reached (ReceiveInput)
//  2. Validated execution – a single backend round trip with an injected
//     Validator / Transform pair (Execute)
//  3. Bounded retries – synchronous, unconditional re-execution up to a
//     per-node limit (RunWithRetries)
//
// Node state transitions: Idle → AwaitingJoin → Executing → Success, or
// Executing → RetryPending → Executing → Exhausted. Success and Exhausted are
// terminal for a given unit of work; the node itself is reusable and its
// retry counter resets on success.
//
// Validation and post-processing are explicit strategy objects injected at
// construction time with documented defaults (AcceptAll, Identity), so a
// node's execution behavior is fixed once it is built.
package agent
