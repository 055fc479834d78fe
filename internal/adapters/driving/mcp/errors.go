// Package mcp provides an MCP (Model Context Protocol) server adapter for Scout.
// It enables AI assistants like Claude to query the local content index.
package mcp

import "errors"

// ErrMissingEngine is returned when the discovery engine is not provided.
var ErrMissingEngine = errors.New("mcp: discovery engine is required")
