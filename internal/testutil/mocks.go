package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// MockCompleter mocks a chat-completion provider for testing
type MockCompleter struct {
	// Responses are returned in order, one per Complete call. When the
	// queue runs out, Response is returned.
	Responses []string
	Response  string
	Err       error
	Prompts   []string
}

// Complete records the prompt and returns the next canned response
func (m *MockCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	m.Prompts = append(m.Prompts, prompt)

	if m.Err != nil {
		return "", m.Err
	}

	if len(m.Prompts) <= len(m.Responses) {
		return m.Responses[len(m.Prompts)-1], nil
	}

	return m.Response, nil
}

// Name returns the provider name
func (m *MockCompleter) Name() string {
	return "mock"
}

// MockAudioProvider mocks a text-to-speech provider for testing
type MockAudioProvider struct {
	// Data is written to the output file; defaults to a mock MP3 header.
	Data []byte
	// FailOn makes synthesis of exactly this text fail.
	FailOn string
	Err    error
	Calls  []string
}

// GenerateAudio records the call and writes canned bytes to the output file
func (m *MockAudioProvider) GenerateAudio(ctx context.Context, text string, outputFile string) error {
	m.Calls = append(m.Calls, text)

	if m.Err != nil {
		return m.Err
	}
	if m.FailOn != "" && text == m.FailOn {
		return fmt.Errorf("mock synthesis failure for %q", text)
	}

	data := m.Data
	if data == nil {
		// Mock MP3 frame header
		data = []byte{0xFF, 0xFB, 0x90, 0x00, 0x00, 0x00, 0x00, 0x00}
	}

	if dir := filepath.Dir(outputFile); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	return os.WriteFile(outputFile, data, 0644)
}

// Name returns the provider name
func (m *MockAudioProvider) Name() string {
	return "mock"
}

// IsAvailable always reports the mock as available
func (m *MockAudioProvider) IsAvailable() error {
	return nil
}
