package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/diario/pkg/journal"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerListTool(srv, "get_dashboard", "Summarize pending tasks, upcoming events, today's mood and the daily quote.", svc.Dashboard)
	registerListTool(srv, "list_tasks", "List pending and completed tasks.", svc.Tasks)
	registerListTool(srv, "list_events", "List upcoming and past events.", svc.Events)
	registerListTool(srv, "list_emotions", "List logged emotions, newest first.", svc.Emotions)
	registerListTool(srv, "get_statistics", "Counts, the emotion distribution and task productivity of the last seven days.", svc.Statistics)
	registerAddTaskTool(srv, svc)
	registerToggleTaskTool(srv, svc)
	registerMigrateTasksTool(srv, svc)
	registerClearCompletedTool(srv, svc)
	registerAddEventTool(srv, svc)
	registerLogEmotionTool(srv, svc)
	registerGetDayTool(srv, svc)
	registerGetCalendarTool(srv, svc)
}

func registerListTool(srv *server.MCPServer, name, description string, fn func() Reply) {
	tool := mcp.NewTool(name,
		mcp.WithDescription(description),
		mcp.WithReadOnlyHintAnnotation(true),
	)
	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return toJSONResult(fn())
	})
}

func registerAddTaskTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"add_task",
		mcp.WithDescription("Add a task to the journal."),
		mcp.WithString("content",
			mcp.Required(),
			mcp.Description("What needs doing."),
		),
		mcp.WithString("date",
			mcp.Description("Day the task is due, as YYYY-M-D or YYYY-MM-DD. Defaults to the selected day."),
		),
		mcp.WithString("symbol",
			mcp.Description("Bullet symbol for the task."),
			mcp.Enum("task", "event", "note"),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args AddTaskOptions
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		return toJSONResult(svc.AddTask(args))
	})
}

func registerToggleTaskTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"toggle_task",
		mcp.WithDescription("Mark a task completed, or reopen a completed one."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Task identifier or a unique prefix of it."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(svc.ToggleTask(id))
	})
}

func registerMigrateTasksTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"migrate_tasks",
		mcp.WithDescription("Move today's pending tasks to tomorrow."),
	)
	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return toJSONResult(svc.MigrateTasks())
	})
}

func registerClearCompletedTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"clear_completed_tasks",
		mcp.WithDescription("Delete every completed task. Nothing is deleted unless confirm is true."),
		mcp.WithBoolean("confirm",
			mcp.Required(),
			mcp.Description("Must be true to delete."),
		),
		mcp.WithDestructiveHintAnnotation(true),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Confirm bool `json:"confirm"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		return toJSONResult(svc.ClearCompleted(args.Confirm))
	})
}

func registerAddEventTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"add_event",
		mcp.WithDescription("Add an event on a day."),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Event title."),
		),
		mcp.WithString("date",
			mcp.Description("Day of the event, as YYYY-M-D or YYYY-MM-DD. Defaults to today."),
		),
		mcp.WithString("start_time",
			mcp.Description("Optional start time, e.g. 09:00."),
		),
		mcp.WithString("end_time",
			mcp.Description("Optional end time, e.g. 10:30."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Title     string `json:"title"`
			Date      string `json:"date"`
			StartTime string `json:"start_time"`
			EndTime   string `json:"end_time"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		return toJSONResult(svc.AddEvent(journal.EventInput{
			Title:     args.Title,
			Date:      args.Date,
			StartTime: args.StartTime,
			EndTime:   args.EndTime,
		}))
	})
}

func registerLogEmotionTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"log_emotion",
		mcp.WithDescription("Log how the user feels right now."),
		mcp.WithString("emotion",
			mcp.Required(),
			mcp.Description("Emotion name, e.g. feliz, triste, ansioso, agradecido."),
		),
		mcp.WithString("note",
			mcp.Description("Optional note."),
		),
		mcp.WithNumber("intensity",
			mcp.Description("Intensity from 0 to 5. Defaults to 5."),
			mcp.Min(0),
			mcp.Max(5),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Emotion   string `json:"emotion"`
			Note      string `json:"note"`
			Intensity *int   `json:"intensity"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		return toJSONResult(svc.LogEmotion(args.Emotion, args.Note, args.Intensity))
	})
}

func registerGetDayTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_day",
		mcp.WithDescription("Tasks and events of one day."),
		mcp.WithString("key",
			mcp.Description("Day as YYYY-M-D. Defaults to today."),
		),
		mcp.WithReadOnlyHintAnnotation(true),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return toJSONResult(svc.Day(request.GetString("key", "")))
	})
}

func registerGetCalendarTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_calendar",
		mcp.WithDescription("Month grid with the days that have tasks or events marked."),
		mcp.WithNumber("year",
			mcp.Description("Four digit year. Omit with month for the current month."),
		),
		mcp.WithNumber("month",
			mcp.Description("Month, 1 to 12."),
		),
		mcp.WithReadOnlyHintAnnotation(true),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return toJSONResult(svc.Calendar(request.GetInt("year", 0), request.GetInt("month", 0)))
	})
}

// toJSONResult encodes r as the text of the result. Failed replies are
// flagged as tool errors so the client sees the message.
func toJSONResult(r Reply) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	result := mcp.NewToolResultText(string(data))
	result.IsError = !r.OK && r.Error != ""
	return result, nil
}
