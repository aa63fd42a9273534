package mcp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"tubedeck/internal/i18n"
	"tubedeck/internal/logging"
	"tubedeck/internal/mainui"
	"tubedeck/internal/notify"
	"tubedeck/internal/settings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	serverName    = "tubedeck"
	serverVersion = "1.0.0"

	toolList   = "list_main_ui_settings"
	toolSelect = "select_main_ui_option"
	toolClose  = "close_main_ui_settings"
)

// Server is an MCP server around one Main UI settings dialog at a time.
type Server struct {
	mu        sync.Mutex
	presenter *mainui.Presenter
	notices   *notify.Recorder
	logger    *logging.AppLogger

	dialog *settings.Dialog

	mcpServer *server.MCPServer
}

func NewServer(prefs mainui.Preferences, strings *i18n.Strings, logger *logging.AppLogger) *Server {
	notices := notify.NewRecorder(strings)
	controller := settings.NewController(nil, logger)

	s := &Server{
		presenter: mainui.NewPresenter(prefs, controller, mainui.DetachedBrowse{}, notices, strings, logger),
		notices:   notices,
		logger:    logger,
	}
	opts := []server.ServerOption{
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	}
	if logger.IsDebug() {
		opts = append(opts, server.WithLogging())
	}
	s.mcpServer = server.NewMCPServer(serverName, serverVersion, opts...)
	s.registerTools()
	return s
}

// MCPServer returns the underlying mcp-go server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// Serve runs the stdio transport until ctx is done or in is closed.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	s.logger.Info("Starting MCP server", "name", serverName, "version", serverVersion)
	err := server.NewStdioServer(s.mcpServer).Listen(ctx, in, out)
	s.Stop()
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("MCP server failed: %w", err)
	}
	return nil
}

// Stop dismisses an open dialog so its dismissal work still runs.
func (s *Server) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dialog != nil {
		s.dialog.Dismiss()
		s.dialog = nil
	}
	s.logger.Info("MCP server stopped")
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool(toolList,
		mcp.WithDescription("Show the Main UI settings: color scheme, cards style, channels sorting and playlists style, with the current selection marked."),
	), s.handleList)

	s.mcpServer.AddTool(mcp.NewTool(toolSelect,
		mcp.WithDescription("Select an option in the Main UI settings. Radio categories switch to the option, checked categories toggle it. The change is saved immediately."),
		mcp.WithString("category", mcp.Required(), mcp.Description("Category title, e.g. \"Playlists style\"")),
		mcp.WithString("option", mcp.Required(), mcp.Description("Option title, e.g. \"Rows\"")),
	), s.handleSelect)

	s.mcpServer.AddTool(mcp.NewTool(toolClose,
		mcp.WithDescription("Close the Main UI settings and report notices, such as a required restart."),
	), s.handleClose)
}

// openDialog returns the open dialog, showing a fresh one if needed.
// Callers hold s.mu.
func (s *Server) openDialog() *settings.Dialog {
	if s.dialog == nil || s.dialog.Dismissed() {
		s.dialog, _ = s.presenter.Show()
	}
	return s.dialog
}

func (s *Server) handleList(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	text, err := dialogText(s.openDialog())
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(text), nil
}

func (s *Server) handleSelect(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	category, err := request.RequireString("category")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	option, err := request.RequireString("option")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.openDialog()
	ci, oi, err := d.Lookup(category, option)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := d.Select(ci, oi); err != nil {
		s.logger.Warn("MCP selection failed", "category", category, "option", option, "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	text, err := dialogText(d)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(text), nil
}

func (s *Server) handleClose(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dialog == nil {
		return mcp.NewToolResultText("Settings are not open"), nil
	}
	s.dialog.Dismiss()
	s.dialog = nil

	notices := s.notices.Take()
	if len(notices) == 0 {
		return mcp.NewToolResultText("Settings closed"), nil
	}
	return mcp.NewToolResultText("Settings closed\n" + strings.Join(notices, "\n")), nil
}

func dialogText(d *settings.Dialog) (string, error) {
	var b strings.Builder
	if err := settings.WriteText(&b, d); err != nil {
		return "", err
	}
	return b.String(), nil
}
