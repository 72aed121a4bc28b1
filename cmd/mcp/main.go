package main

import (
	"context"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ashleypule/soccer-score/config"
	"github.com/ashleypule/soccer-score/logger"
	"github.com/ashleypule/soccer-score/services"
)

func main() {
	// stdout 是 MCP 协议通道
	logger.SetOutput(os.Stderr, os.Stderr)

	cfg := config.Load()
	logger.SetLevel(cfg.LogLevel)

	stack, err := services.Bootstrap(cfg)
	if err != nil {
		logger.Fatalf("Failed to start services: %v", err)
	}
	defer stack.Close()

	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "soccer-score",
			Version: "0.1.0",
		},
		nil,
	)

	t := &tools{
		matches:     stack.Matches,
		predictions: stack.Predictions,
		highlights:  stack.Highlights,
	}
	t.register(server)

	// Run MCP server over stdin/stdout.
	if err := server.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
		logger.Fatalf("MCP server error: %v", err)
	}
}
