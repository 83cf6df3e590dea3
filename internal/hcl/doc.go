// Package hcl implements the config.Loader interface for HCL manifests. It
// parses manifest files with hclparse/gohcl and translates the decoded schema
// structs into the format-agnostic config model.
package hcl
