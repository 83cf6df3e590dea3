package export

import (
	"encoding/json"

	"github.com/vk/sdcgrid/internal/workflow"
)

// jsonWorkflow is the serialized shape of a composed workflow.
type jsonWorkflow struct {
	Name   string          `json:"name"`
	Method string          `json:"method,omitempty"`
	Nodes  []jsonNode      `json:"nodes"`
	Edges  []workflow.Edge `json:"edges"`
}

type jsonNode struct {
	ID      string         `json:"id"`
	Inputs  []string       `json:"inputs"`
	Outputs []string       `json:"outputs"`
	Params  map[string]any `json:"params,omitempty"`
}

// JSON renders a workflow and its method label as indented JSON. Node order
// is sorted by ID and port lists are sorted, so the output is deterministic.
func JSON(wf *workflow.Workflow, method string) ([]byte, error) {
	out := jsonWorkflow{
		Name:   wf.Name,
		Method: method,
		Nodes:  make([]jsonNode, 0, len(wf.Nodes)),
		Edges:  append(make([]workflow.Edge, 0, len(wf.Edges)), wf.Edges...),
	}
	for _, id := range wf.NodeIDs() {
		n := wf.Nodes[id]
		out.Nodes = append(out.Nodes, jsonNode{
			ID:      n.ID,
			Inputs:  n.Inputs(),
			Outputs: n.Outputs(),
			Params:  n.Params,
		})
	}
	return json.MarshalIndent(out, "", "  ")
}
