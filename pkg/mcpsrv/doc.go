// Package mcpsrv provides the public API for running the Homebox MCP
// server.
//
// Basic usage:
//
//	hb := client.New(client.WithBaseURL(cfg.APIBaseURL()))
//	server, err := mcpsrv.NewServer(hb)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer server.Close()
//	server.Run(ctx)
//
// The server speaks stdio by default. With MCP_TRANSPORT=http it serves
// streamable HTTP on SERVER_HOST:SERVER_PORT instead, with an optional
// bearer-token gate on the MCP endpoint and a status dashboard at /.
package mcpsrv
