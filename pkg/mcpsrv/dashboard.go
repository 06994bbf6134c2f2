package mcpsrv

import (
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/oangelo/homebox-mcp/internal/config"
	"github.com/oangelo/homebox-mcp/pkg/client"
)

// statusData is the payload served by /api/status and rendered by the
// dashboard page.
type statusData struct {
	HomeboxURL       string `json:"homebox_url"`
	HomeboxConnected bool   `json:"homebox_connected"`
	HomeboxError     string `json:"homebox_error,omitempty"`
	LocationsCount   int    `json:"locations_count"`
	ItemsCount       int    `json:"items_count"`
	LabelsCount      int    `json:"labels_count"`
	ServerUptime     string `json:"server_uptime"`
	MCPEndpoint      string `json:"mcp_endpoint"`
	MCPAuthEnabled   bool   `json:"mcp_auth_enabled"`
}

// dashboard serves the operator status page and JSON status endpoint.
type dashboard struct {
	client    *client.Client
	cfg       *config.Config
	startedAt time.Time
	page      *template.Template
}

func newDashboard(c *client.Client, cfg *config.Config, startedAt time.Time) *dashboard {
	return &dashboard{
		client:    c,
		cfg:       cfg,
		startedAt: startedAt,
		page:      template.Must(template.New("dashboard").Parse(dashboardPage)),
	}
}

// collect gathers inventory counts from Homebox. A failure to reach
// Homebox is reported in the payload rather than as an HTTP error, so
// the dashboard stays useful for diagnosing connectivity.
func (d *dashboard) collect(ctx context.Context) statusData {
	data := statusData{
		HomeboxURL:     d.cfg.HomeboxURL,
		ServerUptime:   time.Since(d.startedAt).Truncate(time.Second).String(),
		MCPEndpoint:    "/mcp",
		MCPAuthEnabled: d.cfg.MCPAuthEnabled,
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		locations, err := d.client.ListLocations(ctx)
		if err != nil {
			return fmt.Errorf("failed to list locations: %w", err)
		}
		data.LocationsCount = len(locations)
		return nil
	})
	g.Go(func() error {
		items, err := d.client.ListItems(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to list items: %w", err)
		}
		data.ItemsCount = len(items)
		return nil
	})
	g.Go(func() error {
		labels, err := d.client.ListLabels(ctx)
		if err != nil {
			return fmt.Errorf("failed to list labels: %w", err)
		}
		data.LabelsCount = len(labels)
		return nil
	})

	if err := g.Wait(); err != nil {
		slog.Warn("dashboard could not reach homebox", slog.String("error", err.Error()))
		data.HomeboxConnected = false
		data.HomeboxError = err.Error()
		return data
	}

	data.HomeboxConnected = true
	return data
}

func (d *dashboard) handleStatus(w http.ResponseWriter, r *http.Request) {
	data := d.collect(r.Context())
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode status", slog.String("error", err.Error()))
	}
}

func (d *dashboard) handleHome(w http.ResponseWriter, r *http.Request) {
	data := d.collect(r.Context())
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := d.page.Execute(w, data); err != nil {
		slog.Error("failed to render dashboard", slog.String("error", err.Error()))
	}
}

const dashboardPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Homebox MCP Server</title>
<style>
body { font-family: system-ui, sans-serif; max-width: 640px; margin: 2rem auto; padding: 0 1rem; color: #222; }
h1 { font-size: 1.4rem; }
table { border-collapse: collapse; width: 100%; }
td { padding: 0.4rem 0.6rem; border-bottom: 1px solid #eee; }
td:first-child { color: #666; width: 40%; }
.ok { color: #2a7a2a; font-weight: 600; }
.bad { color: #b33; font-weight: 600; }
code { background: #f4f4f4; padding: 0.1rem 0.3rem; border-radius: 3px; }
</style>
</head>
<body>
<h1>Homebox MCP Server</h1>
<table>
<tr><td>Homebox</td><td><code>{{.HomeboxURL}}</code></td></tr>
<tr><td>Connection</td><td>{{if .HomeboxConnected}}<span class="ok">connected</span>{{else}}<span class="bad">unreachable</span> {{.HomeboxError}}{{end}}</td></tr>
<tr><td>Locations</td><td>{{.LocationsCount}}</td></tr>
<tr><td>Items</td><td>{{.ItemsCount}}</td></tr>
<tr><td>Labels</td><td>{{.LabelsCount}}</td></tr>
<tr><td>Uptime</td><td>{{.ServerUptime}}</td></tr>
<tr><td>MCP endpoint</td><td><code>{{.MCPEndpoint}}</code></td></tr>
<tr><td>MCP auth</td><td>{{if .MCPAuthEnabled}}enabled{{else}}disabled{{end}}</td></tr>
</table>
</body>
</html>
`
