package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/ternarybob/arbor"
	arbor_models "github.com/ternarybob/arbor/models"

	"github.com/ternarybob/doceo/internal/common"
)

func main() {
	// Load configuration
	configPath := os.Getenv("DOCEO_CONFIG")
	if configPath == "" {
		if _, err := os.Stat("doceo.toml"); err == nil {
			configPath = "doceo.toml"
		}
	}

	config, err := common.LoadFromFile(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize minimal logger for MCP server (console only, no file output)
	logger := arbor.NewLogger().WithConsoleWriter(arbor_models.WriterConfiguration{
		Type:             arbor_models.LogWriterTypeConsole,
		TimeFormat:       "15:04:05",
		DisableTimestamp: false,
	}).WithLevelFromString("warn") // Minimal logging to avoid cluttering MCP stdio

	// Create MCP server
	mcpServer := server.NewMCPServer(
		"doceo",
		common.GetVersion(),
		server.WithToolCapabilities(true),
	)

	// Register conversion tools
	mcpServer.AddTool(createConvertPDFTool(), handleConvertPDF(config, logger))
	mcpServer.AddTool(createExtractPDFTextTool(), handleExtractPDFText(config, logger))

	// Start server (blocks on stdio)
	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Fatal().Err(err).Msg("MCP server failed")
	}
}
