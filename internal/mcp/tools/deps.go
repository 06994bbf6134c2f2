// Package tools contains the MCP tool implementations for the Homebox
// inventory service.
//
// Each tool is a thin, stateless mapping from a typed input to a client
// call, reshaping the raw remote records into the simplified shapes the
// calling AI client expects. Tools carry no cross-tool ordering
// guarantees; every one is independently invocable.
package tools

import (
	"github.com/oangelo/homebox-mcp/internal/config"
	"github.com/oangelo/homebox-mcp/pkg/client"
)

// Deps holds the dependencies shared by all tool handlers.
type Deps struct {
	Client *client.Client
	Config *config.Config
}
