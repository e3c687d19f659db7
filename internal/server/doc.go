// Package server implements the MCP (Model Context Protocol) server for the
// fill-rotate image node.
//
// This package provides a JSON-RPC 2.0 server that exposes the fill-rotate
// transform and a few supporting inspection tools through the MCP protocol,
// so MCP-compatible clients can generate and examine tiled, rotated canvases.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - image_fill_rotate: Fill a canvas by tiling and rotating a source image
//   - image_load: Load image and get metadata (dimensions, format, channels)
//   - image_dimensions: Get width and height
//   - image_sample_color: Get color at a pixel (seam verification)
//
// # Image Caching
//
// The server maintains an in-memory cache of loaded source images, keyed by
// path and reused across tool calls for the lifetime of the process.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New()
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
