package mcp

import (
	"context"
	"net/url"
	"strings"

	"github.com/five82/htmlref/internal/format"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const tagURIPrefix = "htmlref://tag/"

func (s *Server) registerResources() {
	s.server.AddResourceTemplate(
		&mcp.ResourceTemplate{
			URITemplate: tagURIPrefix + "{name}",
			Name:        "HTML tag",
			Description: "Reference page for one HTML tag",
			MIMEType:    "text/markdown",
		},
		s.handleReadTag,
	)
}

func (s *Server) handleReadTag(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	uri := req.Params.URI
	name, ok := tagNameFromURI(uri)
	if !ok {
		return nil, mcp.ResourceNotFoundError(uri)
	}

	page := s.detail.Resolve(name)
	if !page.Found {
		return nil, mcp.ResourceNotFoundError(uri)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      uri,
				MIMEType: "text/markdown",
				Text:     format.DetailMarkdown(page),
			},
		},
	}, nil
}

func tagNameFromURI(uri string) (string, bool) {
	rest, ok := strings.CutPrefix(uri, tagURIPrefix)
	if !ok || rest == "" || strings.Contains(rest, "/") {
		return "", false
	}
	name, err := url.PathUnescape(rest)
	if err != nil || name == "" {
		return "", false
	}
	return name, true
}
