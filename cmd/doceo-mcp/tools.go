package main

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// createConvertPDFTool returns the convert_pdf tool definition
func createConvertPDFTool() mcp.Tool {
	return mcp.NewTool("convert_pdf",
		mcp.WithDescription("Convert a PDF document into a Marp presentation (markdown slide deck)"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Path to the input PDF file"),
		),
		mcp.WithString("output_path",
			mcp.Description("Optional path to write the generated markdown; when omitted the deck is returned inline"),
		),
		mcp.WithString("style",
			mcp.Description("Presentation style: default, minimal, academic"),
		),
		mcp.WithString("language",
			mcp.Description("Output language: en (English), ja (Japanese)"),
		),
		mcp.WithNumber("slides",
			mcp.Description("Target number of slides (more slides = more detail)"),
		),
		mcp.WithString("pages",
			mcp.Description("Page range to extract, e.g. '66-100'"),
		),
		mcp.WithString("provider",
			mcp.Description("LLM provider: claude, gemini"),
		),
	)
}

// createExtractPDFTextTool returns the extract_pdf_text tool definition
func createExtractPDFTextTool() mcp.Tool {
	return mcp.NewTool("extract_pdf_text",
		mcp.WithDescription("Extract cleaned text and tables from a PDF without generating slides"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Path to the input PDF file"),
		),
		mcp.WithString("pages",
			mcp.Description("Page range to extract, e.g. '66-100'"),
		),
	)
}
