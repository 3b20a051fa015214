// Package mcp provides web content tools for LLM-assisted workflows.
// It fetches web pages, extracts their main content as markdown, HTML or
// plain text, searches the web, and exposes small utility tools (weather,
// weekday lookup) that an LLM agent can call.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, http/, gemini/).
package mcp
