package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/chartfmt/chartfmt/internal/adapters/outbound/config"
	"github.com/chartfmt/chartfmt/internal/adapters/outbound/store"
	"github.com/chartfmt/chartfmt/internal/application"
	"github.com/chartfmt/chartfmt/internal/domain"
)

// registerTools registers all chartfmt MCP tools on the given server.
func registerTools(s *server.MCPServer, songbookPath string) {
	// 1. chartfmt_score
	s.AddTool(
		mcplib.NewTool("chartfmt_score",
			mcplib.WithDescription("Score a chart's formatting quality; returns the five sub-scores, percentage and grade as JSON"),
			mcplib.WithString("file",
				mcplib.Required(),
				mcplib.Description("Chart file path relative to the songbook directory"),
			),
		),
		handleScore(songbookPath),
	)

	// 2. chartfmt_check
	s.AddTool(
		mcplib.NewTool("chartfmt_check",
			mcplib.WithDescription("List a chart's formatting issues (severity, auto-fixability) and advisory suggestions"),
			mcplib.WithString("file",
				mcplib.Required(),
				mcplib.Description("Chart file path relative to the songbook directory"),
			),
		),
		handleCheck(songbookPath),
	)

	// 3. chartfmt_format
	s.AddTool(
		mcplib.NewTool("chartfmt_format",
			mcplib.WithDescription("Apply auto-fixes to a chart and return the formatting result with the change log"),
			mcplib.WithString("file",
				mcplib.Required(),
				mcplib.Description("Chart file path relative to the songbook directory"),
			),
			mcplib.WithBoolean("dry_run", mcplib.Description("Return the result without writing the file")),
			mcplib.WithString("preset", mcplib.Description("Option preset: standard, minimal or aggressive")),
		),
		handleFormat(songbookPath),
	)

	// 4. chartfmt_batch
	s.AddTool(
		mcplib.NewTool("chartfmt_batch",
			mcplib.WithDescription("Format every chart in the songbook directory and return the aggregate batch result"),
			mcplib.WithBoolean("dry_run", mcplib.Description("Analyze without writing files")),
			mcplib.WithString("preset", mcplib.Description("Option preset: standard, minimal or aggressive")),
		),
		handleBatch(songbookPath),
	)
}

func loadOptions(songbookPath, preset string) (domain.FormattingOptions, error) {
	if preset != "" {
		if !domain.IsValidPreset(preset) {
			return domain.FormattingOptions{}, fmt.Errorf("unknown preset %q", preset)
		}
		return domain.OptionsForPreset(preset), nil
	}
	return config.New().Load(songbookPath)
}

func handleScore(songbookPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		file, err := request.RequireString("file")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		text, err := store.New(songbookPath).Load(file)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		opts, err := loadOptions(songbookPath, "")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		opts.AnalyzeOnly = true

		result, err := application.NewFormatService().Format(text, opts)
		if err != nil {
			return errorResult(fmt.Sprintf("scoring failed: %v", err)), nil
		}
		return jsonResult(result.Score)
	}
}

func handleCheck(songbookPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		file, err := request.RequireString("file")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		text, err := store.New(songbookPath).Load(file)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		opts, err := loadOptions(songbookPath, "")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		opts.AnalyzeOnly = true

		result, err := application.NewFormatService().Format(text, opts)
		if err != nil {
			return errorResult(fmt.Sprintf("check failed: %v", err)), nil
		}
		return jsonResult(struct {
			Score       domain.QualityScore           `json:"score"`
			Issues      []domain.QualityIssue         `json:"issues"`
			Suggestions []domain.FormattingSuggestion `json:"suggestions"`
		}{result.Score, result.Issues, result.Suggestions})
	}
}

func handleFormat(songbookPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		file, err := request.RequireString("file")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		args := request.GetArguments()
		dryRun, _ := args["dry_run"].(bool)
		preset, _ := args["preset"].(string)

		st := store.New(songbookPath)
		text, err := st.Load(file)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		opts, err := loadOptions(songbookPath, preset)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		result, err := application.NewFormatService().Format(text, opts)
		if err != nil {
			return errorResult(fmt.Sprintf("formatting failed: %v", err)), nil
		}

		if !dryRun && result.FormattedText != result.OriginalText {
			if err := st.Store(file, result.FormattedText); err != nil {
				return errorResult(fmt.Sprintf("writing chart: %v", err)), nil
			}
		}
		return jsonResult(result)
	}
}

func handleBatch(songbookPath string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		args := request.GetArguments()
		dryRun, _ := args["dry_run"].(bool)
		preset, _ := args["preset"].(string)

		st := store.New(songbookPath)
		docs, err := st.LoadAll()
		if err != nil {
			return errorResult(fmt.Sprintf("collecting charts: %v", err)), nil
		}

		opts, err := loadOptions(songbookPath, preset)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		svc := application.NewBatchService(application.NewFormatService(), 0)
		result := svc.Format(ctx, docs, opts, nil)

		if !dryRun {
			for id, res := range result.Results {
				if res.FormattedText == res.OriginalText {
					continue
				}
				if err := st.Store(id, res.FormattedText); err != nil {
					return errorResult(fmt.Sprintf("writing %s: %v", id, err)), nil
				}
			}
		}
		return jsonResult(result)
	}
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
