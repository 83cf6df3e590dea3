package export

import (
	"fmt"
	"strings"

	"github.com/vk/sdcgrid/internal/workflow"
)

// Mermaid renders a workflow as a Mermaid `graph TD` diagram. Nodes are
// emitted in sorted ID order and edges in wiring order, so the output is
// stable across runs.
func Mermaid(wf *workflow.Workflow) string {
	// Node IDs in Mermaid must be alphanumeric; map workflow IDs to N0..Nn.
	shortIDs := make(map[string]string, len(wf.Nodes))
	for i, id := range wf.NodeIDs() {
		shortIDs[id] = fmt.Sprintf("N%d", i)
	}

	var sb strings.Builder
	sb.WriteString("graph TD\n")
	sb.WriteString(fmt.Sprintf("%%%% workflow: %s\n", wf.Name))

	for _, id := range wf.NodeIDs() {
		sb.WriteString(fmt.Sprintf("    %s[\"%s\"]\n", shortIDs[id], id))
	}
	for _, e := range wf.Edges {
		sb.WriteString(fmt.Sprintf("    %s -->|%s → %s| %s\n",
			shortIDs[e.FromNode], e.FromPort, e.ToPort, shortIDs[e.ToNode]))
	}

	return sb.String()
}
