// Package fsio loads documents from disk and writes them back. Loading
// tolerates foreign encodings: UTF-8 and UTF-16 byte order marks are
// stripped and UTF-16 content is transcoded, so the rest of the editor
// only ever sees UTF-8 bytes. Files that sniff as binary are refused
// instead of being rendered as garbage.
package fsio

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrBinaryFile is returned by LoadLines for content that does not look
// like text.
var ErrBinaryFile = errors.New("binary file")

// LoadLines reads path and splits its content into rows. Line endings are
// not preserved: both LF and CRLF terminators are stripped, and a trailing
// newline does not produce an extra empty row. Errors from the underlying
// read are returned as-is so callers can test for os.IsNotExist.
func LoadLines(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !IsTextFile(path, content) {
		return nil, fmt.Errorf("%s: %w", path, ErrBinaryFile)
	}
	return splitLines(NormalizeTextContent(content)), nil
}

// Save writes data to path, creating the file when missing and replacing
// it otherwise. It returns the number of bytes written.
func Save(path string, data []byte) (int, error) {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return 0, err
	}
	return len(data), nil
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, "\r")
	}
	return lines
}
