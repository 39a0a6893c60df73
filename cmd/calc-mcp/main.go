// Command calc-mcp serves a calculator session over the Model Context
// Protocol (stdio by default, streamable HTTP with -port).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"calc/internal/buildinfo"
	"calc/internal/mcpserver"

	"github.com/mark3labs/mcp-go/server"
)

func main() {
	var (
		portFlag    = flag.Int("port", 0, "TCP port to listen on (0 for stdio)")
		versionFlag = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *versionFlag {
		fmt.Println("calc-mcp", buildinfo.Long())
		os.Exit(0)
	}

	// Stdout carries the protocol in stdio mode.
	log.SetOutput(os.Stderr)

	s := server.NewMCPServer(
		"calc-mcp",
		buildinfo.Short(),
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, false),
		server.WithRecovery(),
	)
	mcpserver.Register(s, mcpserver.NewSession())

	if *portFlag == 0 {
		if err := server.ServeStdio(s); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
		return
	}

	httpServer := server.NewStreamableHTTPServer(s)
	log.Printf("Starting HTTP server on port %d", *portFlag)
	if err := httpServer.Start(fmt.Sprintf(":%d", *portFlag)); err != nil {
		log.Fatalf("HTTP server failed: %v", err)
	}
}
