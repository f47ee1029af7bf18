// SPDX-License-Identifier: MIT
//
// File: presets.go
// Role: Ready-made templates for database, API and document configurations.

package config

// Database returns a database configuration with pool and TLS sections.
func Database(host string, port int, database, username, password string) *Config {
	return New(KindDatabase,
		F("host", host),
		F("port", port),
		F("database", database),
		F("username", username),
		F("password", password),
		F("connection_pool", map[string]any{
			"min_connections": 5,
			"max_connections": 20,
			"timeout":         30,
		}),
		F("ssl", map[string]any{
			"enabled":   false,
			"cert_path": nil,
		}),
	)
}

// API returns an HTTP API client configuration with rate limit and header
// sections.
func API(baseURL, apiKey, version string) *Config {
	return New(KindAPI,
		F("base_url", baseURL),
		F("api_key", apiKey),
		F("version", version),
		F("timeout", 30),
		F("retry_attempts", 3),
		F("rate_limit", map[string]any{
			"requests_per_minute": 100,
			"burst_limit":         10,
		}),
		F("headers", map[string]any{
			"User-Agent": "MyApp/1.0",
			"Accept":     "application/json",
		}),
	)
}

// DocumentTemplate returns a document configuration with metadata,
// formatting and an empty content section.
func DocumentTemplate(title, author, templateType string) *Config {
	return New(KindDocument,
		F("title", title),
		F("author", author),
		F("template_type", templateType),
		F("created_at", nil),
		F("modified_at", nil),
		F("metadata", map[string]any{
			"version":  "1.0",
			"language": "en",
			"category": "general",
		}),
		F("formatting", map[string]any{
			"font_family":  "Arial",
			"font_size":    12,
			"line_spacing": 1.5,
			"margins":      map[string]any{"top": 1, "bottom": 1, "left": 1, "right": 1},
		}),
		F("content", map[string]any{
			"sections": []any{},
			"tables":   []any{},
			"images":   []any{},
		}),
	)
}
