// Package extract turns newline-delimited text into vocabulary pairs by
// prompting a chat-completion model and parsing its CSV answer.
package extract
