// Package openai provides a thin client for the OpenAI chat-completion
// API. Each call sends a single user message and returns the first
// completion choice; SDK failures are mapped to sentinel errors the API
// layer translates into status codes.
package openai
