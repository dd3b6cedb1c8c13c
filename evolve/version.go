package evolve

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gbeyruth/evoflow/agent"
)

// metadataScoreKey is the metadata entry holding a version's numeric score.
const metadataScoreKey = "score"

// Version wraps a plain agent node with the versioning data the search
// executor needs: an opaque code payload, a version identifier, the parent
// version identifier (empty for the root) and free-form metadata. Execution
// behavior stays on the wrapped node; Version only carries lineage.
//
// Every non-root version has exactly one parent, so the version set forms a
// rooted tree keyed by version string.
type Version struct {
	Agent    *agent.Node    `json:"-"`
	Code     string         `json:"code"`
	Version  string         `json:"version"`
	Parent   string         `json:"parent,omitempty"`
	Metadata map[string]any `json:"metadata"`
}

// NewVersion wraps a node as a root version.
func NewVersion(node *agent.Node, code, version string) *Version {
	return &Version{
		Agent:    node,
		Code:     code,
		Version:  version,
		Metadata: make(map[string]any),
	}
}

// Score returns the numeric score recorded in the metadata, or 0 when none
// has been recorded yet.
func (v *Version) Score() float64 {
	raw, ok := v.Metadata[metadataScoreKey]
	if !ok {
		return 0
	}
	switch s := raw.(type) {
	case float64:
		return s
	case int:
		return float64(s)
	default:
		return 0
	}
}

// SetScore records the numeric score into the metadata.
func (v *Version) SetScore(score float64) {
	if v.Metadata == nil {
		v.Metadata = make(map[string]any)
	}
	v.Metadata[metadataScoreKey] = score
}

// versionMetadata is the on-disk form written next to a version's payload.
type versionMetadata struct {
	Version  string         `json:"version"`
	Parent   string         `json:"parent,omitempty"`
	Metadata map[string]any `json:"metadata"`
}

// Save persists the version's code payload, the wrapped node's prompt, and
// (when metadataPath is non-empty) the lineage metadata to disk.
func (v *Version) Save(codePath, promptPath, metadataPath string) error {
	if err := os.MkdirAll(filepath.Dir(codePath), 0o755); err != nil {
		return fmt.Errorf("create version dir: %w", err)
	}
	if err := os.WriteFile(codePath, []byte(v.Code), 0o644); err != nil {
		return fmt.Errorf("write code payload: %w", err)
	}
	if err := os.WriteFile(promptPath, []byte(v.Agent.Prompt()), 0o644); err != nil {
		return fmt.Errorf("write prompt: %w", err)
	}
	if metadataPath == "" {
		return nil
	}
	md := versionMetadata{Version: v.Version, Parent: v.Parent, Metadata: v.Metadata}
	data, err := json.MarshalIndent(md, "", "  ")
	if err != nil {
		return fmt.Errorf("encode version metadata: %w", err)
	}
	if err := os.WriteFile(metadataPath, data, 0o644); err != nil {
		return fmt.Errorf("write version metadata: %w", err)
	}
	return nil
}

// LoadVersion restores a previously saved version onto the given node. The
// node's prompt is replaced with the persisted one. When metadataPath is
// empty or missing the version id defaults to "v1_0" with no parent.
func LoadVersion(node *agent.Node, codePath, promptPath, metadataPath string) (*Version, error) {
	code, err := os.ReadFile(codePath)
	if err != nil {
		return nil, fmt.Errorf("read code payload: %w", err)
	}
	prompt, err := os.ReadFile(promptPath)
	if err != nil {
		return nil, fmt.Errorf("read prompt: %w", err)
	}
	node.SetPrompt(string(prompt))

	v := &Version{
		Agent:    node,
		Code:     string(code),
		Version:  "v1_0",
		Metadata: make(map[string]any),
	}

	if metadataPath == "" {
		return v, nil
	}
	data, err := os.ReadFile(metadataPath)
	if os.IsNotExist(err) {
		return v, nil
	} else if err != nil {
		return nil, fmt.Errorf("read version metadata: %w", err)
	}
	var md versionMetadata
	if err := json.Unmarshal(data, &md); err != nil {
		return nil, fmt.Errorf("decode version metadata: %w", err)
	}
	if md.Version != "" {
		v.Version = md.Version
	}
	v.Parent = md.Parent
	if md.Metadata != nil {
		v.Metadata = md.Metadata
	}
	return v, nil
}
