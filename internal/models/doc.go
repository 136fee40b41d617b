// Package models lists the OpenAI models available to the configured API
// key, backing the --list-models flag.
package models
