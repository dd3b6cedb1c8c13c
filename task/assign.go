package task

import "strings"

// DefaultAgentType is applied to tasks without an explicit agent-type tag.
const DefaultAgentType = "llm"

// Assign gives each task a default agent type and a keyword-driven tool
// assignment limited to the names present in available. Tasks mentioning code
// gain an "exec" pre-tool; every task gains an "echo" post-tool when one is
// registered. Returns the same slice for chaining.
func Assign(tasks []*Task, available []string) []*Task {
	registered := make(map[string]bool, len(available))
	for _, name := range available {
		registered[name] = true
	}

	for _, t := range tasks {
		if t.AgentType == "" {
			t.AgentType = DefaultAgentType
		}
		desc := strings.ToLower(t.Description)
		if strings.Contains(desc, "code") && registered["exec"] {
			t.PreTools = append(t.PreTools, "exec")
		}
		if registered["echo"] {
			t.PostTools = append(t.PostTools, "echo")
		}
	}
	return tasks
}
