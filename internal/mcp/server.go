// Package mcp provides an MCP (Model Context Protocol) server that exposes
// the task list as MCP tools for AI coding assistants.
package mcp

import (
	"context"
	"fmt"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/valter-silva-au/tasklite/internal/storage"
	"github.com/valter-silva-au/tasklite/pkg/models"
)

// Server wraps a task store and exposes it as MCP tools.
type Server struct {
	server *gomcp.Server
	store  storage.TaskStore
}

// NewServer creates a new MCP server over the given task store.
func NewServer(store storage.TaskStore, version string) *Server {
	if version == "" {
		version = "dev"
	}

	s := &Server{store: store}
	s.server = gomcp.NewServer(
		&gomcp.Implementation{Name: "tasklite", Version: version},
		nil,
	)
	s.registerTools()
	return s
}

// Run starts the MCP server on stdio, blocking until the client disconnects
// or the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &gomcp.StdioTransport{})
}

// MCPServer returns the underlying mcp.Server for testing purposes.
func (s *Server) MCPServer() *gomcp.Server {
	return s.server
}

// --- Tool input/output types ---

type taskOutput struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

type addTaskInput struct {
	Title string `json:"title" jsonschema:"required,the task title (trimmed, 1-500 characters)"`
}

type listTasksInput struct {
	Filter string `json:"filter,omitempty" jsonschema:"filter tasks by completion (all, completed, pending). Defaults to the store's active filter."`
}

type listTasksOutput struct {
	Tasks  []taskOutput `json:"tasks"`
	Filter string       `json:"filter"`
	Count  int          `json:"count"`
}

type taskIDInput struct {
	TaskID string `json:"task_id" jsonschema:"required,the task's UUID"`
}

type messageOutput struct {
	Message string `json:"message"`
}

type setFilterInput struct {
	Filter string `json:"filter" jsonschema:"required,the filter to activate (all, completed, pending)"`
}

type clearCompletedOutput struct {
	Removed int `json:"removed"`
}

// --- Tool registration ---

func (s *Server) registerTools() {
	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "add_task",
		Description: "Add a new task with the given title. Returns the created task including its generated id.",
	}, s.handleAddTask)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "list_tasks",
		Description: "List tasks, optionally narrowed by a completion filter (all, completed, pending).",
	}, s.handleListTasks)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "toggle_task",
		Description: "Flip the completed flag of the task with the given id. A non-matching id changes nothing.",
	}, s.handleToggleTask)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "delete_task",
		Description: "Delete the task with the given id. A non-matching id changes nothing.",
	}, s.handleDeleteTask)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "set_filter",
		Description: "Set the persisted active filter. Valid values: all, completed, pending.",
	}, s.handleSetFilter)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "clear_completed",
		Description: "Remove every completed task, returning the number removed.",
	}, s.handleClearCompleted)
}

// --- Tool handlers ---

func (s *Server) handleAddTask(_ context.Context, _ *gomcp.CallToolRequest, input addTaskInput) (*gomcp.CallToolResult, taskOutput, error) {
	task, err := s.store.AddTask(input.Title)
	if err != nil {
		return errorResult(fmt.Sprintf("adding task: %s", err)), taskOutput{}, nil
	}
	return nil, taskToOutput(task), nil
}

func (s *Server) handleListTasks(_ context.Context, _ *gomcp.CallToolRequest, input listTasksInput) (*gomcp.CallToolResult, listTasksOutput, error) {
	filter := s.store.Filter()
	var tasks []models.Task

	if input.Filter != "" {
		f, err := models.ValidateFilter(input.Filter)
		if err != nil {
			return errorResult(fmt.Sprintf("listing tasks: %s", err)), listTasksOutput{}, nil
		}
		filter = f
		for _, t := range s.store.Tasks() {
			if f.Matches(t) {
				tasks = append(tasks, t)
			}
		}
	} else {
		tasks = s.store.FilteredTasks()
	}

	out := listTasksOutput{
		Tasks:  make([]taskOutput, len(tasks)),
		Filter: string(filter),
		Count:  len(tasks),
	}
	for i, t := range tasks {
		out.Tasks[i] = taskToOutput(t)
	}
	return nil, out, nil
}

func (s *Server) handleToggleTask(_ context.Context, _ *gomcp.CallToolRequest, input taskIDInput) (*gomcp.CallToolResult, messageOutput, error) {
	if input.TaskID == "" {
		return errorResult("task_id is required"), messageOutput{}, nil
	}
	s.store.ToggleTask(input.TaskID)
	return nil, messageOutput{Message: fmt.Sprintf("toggled task %s (no-op if it did not exist)", input.TaskID)}, nil
}

func (s *Server) handleDeleteTask(_ context.Context, _ *gomcp.CallToolRequest, input taskIDInput) (*gomcp.CallToolResult, messageOutput, error) {
	if input.TaskID == "" {
		return errorResult("task_id is required"), messageOutput{}, nil
	}
	s.store.DeleteTask(input.TaskID)
	return nil, messageOutput{Message: fmt.Sprintf("deleted task %s (no-op if it did not exist)", input.TaskID)}, nil
}

func (s *Server) handleSetFilter(_ context.Context, _ *gomcp.CallToolRequest, input setFilterInput) (*gomcp.CallToolResult, messageOutput, error) {
	if err := s.store.SetFilter(models.Filter(input.Filter)); err != nil {
		return errorResult(fmt.Sprintf("setting filter: %s", err)), messageOutput{}, nil
	}
	return nil, messageOutput{Message: fmt.Sprintf("filter set to %s", input.Filter)}, nil
}

func (s *Server) handleClearCompleted(_ context.Context, _ *gomcp.CallToolRequest, _ struct{}) (*gomcp.CallToolResult, clearCompletedOutput, error) {
	removed := s.store.ClearCompleted()
	return nil, clearCompletedOutput{Removed: removed}, nil
}

// --- Helpers ---

func taskToOutput(t models.Task) taskOutput {
	return taskOutput{ID: t.ID, Title: t.Title, Completed: t.Completed}
}

func errorResult(message string) *gomcp.CallToolResult {
	return &gomcp.CallToolResult{
		IsError: true,
		Content: []gomcp.Content{&gomcp.TextContent{Text: message}},
	}
}
