package agent

// Validator judges whether a raw backend output is acceptable. A rejection is
// treated exactly like a backend failure for retry purposes.
type Validator interface {
	Validate(output string) bool
}

// ValidatorFunc adapts a plain function to the Validator interface.
type ValidatorFunc func(output string) bool

// Validate implements Validator.
func (f ValidatorFunc) Validate(output string) bool { return f(output) }

// AcceptAll is the default Validator: every output is acceptable.
type AcceptAll struct{}

// Validate implements Validator.
func (AcceptAll) Validate(string) bool { return true }

// Transform post-processes a raw backend output before it is forwarded to
// successor nodes. Transforms may be side-effecting (e.g. executing generated
// code out of process).
type Transform interface {
	Apply(output string) string
}

// TransformFunc adapts a plain function to the Transform interface.
type TransformFunc func(output string) string

// Apply implements Transform.
func (f TransformFunc) Apply(output string) string { return f(output) }

// Identity is the default Transform: output passes through unchanged.
type Identity struct{}

// Apply implements Transform.
func (Identity) Apply(output string) string { return output }
