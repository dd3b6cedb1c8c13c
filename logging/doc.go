// Package logging defines the structured diagnostic channel for evoflow.
//
// Every failure, retry, skip and join wait that the engines produce is emitted
// as a leveled, fielded log event rather than free-form console text, so
// behavior is queryable from the log stream. The minimal Logger interface
// keeps the engines decoupled from any concrete logging library; SlogAdapter
// and ZapAdapter bridge to the two common choices, and FlowLogger adds the
// domain helpers the schedulers use.
package logging
