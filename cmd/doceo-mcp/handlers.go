package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/doceo/internal/common"
	"github.com/ternarybob/doceo/internal/models"
	"github.com/ternarybob/doceo/internal/services/extract"
	"github.com/ternarybob/doceo/internal/services/llm"
	"github.com/ternarybob/doceo/internal/services/pdf"
)

func errorResult(format string, args ...interface{}) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(fmt.Sprintf("Error: "+format, args...)),
		},
	}
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

// handleConvertPDF implements the convert_pdf tool
func handleConvertPDF(config *common.Config, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path, err := request.RequireString("path")
		if err != nil || path == "" {
			return errorResult("path parameter is required"), nil
		}

		conversionReq := &models.ConversionRequest{
			Style:        request.GetString("style", config.Output.Style),
			Language:     request.GetString("language", config.Output.Language),
			TargetSlides: request.GetInt("slides", config.Output.TargetSlides),
			Provider:     request.GetString("provider", string(config.LLM.DefaultProvider)),
		}

		if pages := request.GetString("pages", ""); pages != "" {
			pageRange, err := models.ParsePageRange(pages)
			if err != nil {
				return errorResult("%v", err), nil
			}
			conversionReq.Pages = pageRange
		}

		if err := conversionReq.Validate(); err != nil {
			return errorResult("%v", err), nil
		}

		body, err := extractBody(ctx, config, logger, path, conversionReq.Pages)
		if err != nil {
			logger.Error().Err(err).Str("path", path).Msg("Extraction failed")
			return errorResult("%v", err), nil
		}

		factory := llm.NewProviderFactory(&config.Claude, &config.Gemini, &config.LLM, logger)
		defer factory.Close()

		converter := llm.NewMarpService(factory, nil, logger)

		result, err := converter.ConvertToMarp(ctx, body, conversionReq)
		if err != nil {
			logger.Error().Err(err).Str("path", path).Msg("Conversion failed")
			return errorResult("%v", err), nil
		}

		if outputPath := request.GetString("output_path", ""); outputPath != "" {
			if dir := filepath.Dir(outputPath); dir != "." && dir != "" {
				if err := os.MkdirAll(dir, 0755); err != nil {
					return errorResult("failed to create output directory: %v", err), nil
				}
			}
			if err := os.WriteFile(outputPath, []byte(result.Markdown), 0644); err != nil {
				return errorResult("failed to write presentation: %v", err), nil
			}
			return textResult(fmt.Sprintf(
				"Presentation saved to %s (%d slides, %s/%s)",
				outputPath, result.SlideCount, result.Provider, result.Model,
			)), nil
		}

		return textResult(result.Markdown), nil
	}
}

// handleExtractPDFText implements the extract_pdf_text tool
func handleExtractPDFText(config *common.Config, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path, err := request.RequireString("path")
		if err != nil || path == "" {
			return errorResult("path parameter is required"), nil
		}

		var pageRange *models.PageRange
		if pages := request.GetString("pages", ""); pages != "" {
			pageRange, err = models.ParsePageRange(pages)
			if err != nil {
				return errorResult("%v", err), nil
			}
		}

		body, err := extractBody(ctx, config, logger, path, pageRange)
		if err != nil {
			logger.Error().Err(err).Str("path", path).Msg("Extraction failed")
			return errorResult("%v", err), nil
		}

		return textResult(body), nil
	}
}

// extractBody opens a PDF and runs the cleaning pipeline over the requested
// pages.
func extractBody(ctx context.Context, config *common.Config, logger arbor.ILogger, path string, pages *models.PageRange) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("input file not found: %s", path)
	}
	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		return "", fmt.Errorf("input file must be a PDF: %s", path)
	}

	doc, err := pdf.Open(path, logger)
	if err != nil {
		return "", err
	}
	defer doc.Close()

	if doc.Metadata().IsEncrypted {
		return "", fmt.Errorf("PDF is encrypted: %s", path)
	}

	svc := extract.NewService(extract.HeuristicsFromConfig(config.Extract.Tables), logger)
	body, err := svc.BuildDocument(ctx, doc, pages)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(body) == "" {
		return "", fmt.Errorf("no text could be extracted from the PDF")
	}

	return body, nil
}
