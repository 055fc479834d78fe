package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/probe-labs/scout-cli/internal/core/ports/driven"
)

const (
	// uriScheme is the custom URI scheme for Scout resources.
	uriScheme = "scout://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the indexing status.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "status",
		Name:        "status",
		Description: "Current indexing status counters",
		MIMEType:    "application/json",
	}, s.handleStatusResource)

	// Static resource for persisted snapshots.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "snapshots",
		Name:        "snapshots",
		Description: "List of persisted index snapshots",
		MIMEType:    "application/json",
	}, s.handleSnapshotsResource)

	// Template for record relationships.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "records/{recordId}/relationships",
		Name:        "record-relationships",
		Description: "Relationship edges of a specific record",
		MIMEType:    "application/json",
	}, s.handleRelationshipsResource)
}

// handleStatusResource returns the current indexing status.
func (s *Server) handleStatusResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	status, err := s.ports.Engine.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading status: %w", err)
	}
	return jsonResource(req.Params.URI, status)
}

// handleSnapshotsResource lists persisted snapshots, newest first.
func (s *Server) handleSnapshotsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	infos := []driven.SnapshotInfo{}
	if s.ports.Snapshots != nil {
		var err error
		infos, err = s.ports.Snapshots.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("listing snapshots: %w", err)
		}
	}
	return jsonResource(req.Params.URI, infos)
}

// handleRelationshipsResource returns the relationship edges of one record.
func (s *Server) handleRelationshipsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	recordID := extractRecordID(req.Params.URI)
	if recordID == "" {
		return nil, fmt.Errorf("invalid record URI %s", req.Params.URI)
	}

	relationships, err := s.ports.Engine.Neighbors(ctx, recordID)
	if err != nil {
		return nil, fmt.Errorf("reading relationships for %s: %w", recordID, err)
	}
	return jsonResource(req.Params.URI, relationships)
}

// extractRecordID pulls the record ID out of a
// scout://records/{recordId}/relationships URI. Returns "" if the URI
// does not match.
func extractRecordID(uri string) string {
	rest, ok := strings.CutPrefix(uri, uriScheme+"records/")
	if !ok {
		return ""
	}
	id, ok := strings.CutSuffix(rest, "/relationships")
	if !ok {
		return ""
	}
	return id
}

// jsonResource wraps a value as a JSON resource result.
func jsonResource(uri string, value any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resource %s: %w", uri, err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
