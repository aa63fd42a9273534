// Package mcp exposes the Main UI settings dialog over the Model Context
// Protocol, using the mcp-go library.
//
// An assistant drives the same dialog a user would see in the TUI:
//
//   - list_main_ui_settings shows the dialog (opening it if needed) as text
//   - select_main_ui_option selects an option by category and option title
//   - close_main_ui_settings dismisses the dialog and returns any notices,
//     such as the restart notice after a color scheme change
//
// Titles are matched without regard to case. Every selection is persisted
// immediately, like in the TUI.
//
// # Usage
//
// The server speaks JSON-RPC 2.0 over stdin/stdout and is usually started
// by the assistant as a subprocess:
//
//	tubedeck mcp
package mcp
