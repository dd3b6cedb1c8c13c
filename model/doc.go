// Package model defines the language-model backend contract consumed by
// agents: an ordered list of role-tagged messages plus generation options in,
// a single text payload out. Concrete adapters live in the openai and
// anthropic subpackages; MockModel provides a deterministic backend for tests
// and examples.
package model
