// Package export renders composed workflows for inspection: a Mermaid
// diagram for humans, deterministic JSON for tooling. Rendering never
// modifies the workflow.
package export
