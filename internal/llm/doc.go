// Package llm provides a narrow interface to chat-completion APIs so the
// extractor can be tested against fakes.
package llm
