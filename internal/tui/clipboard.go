package tui

import "github.com/atotto/clipboard"

type systemClipboard struct{}

// NewSystemClipboard returns a Clipboard backed by the OS clipboard.
func NewSystemClipboard() Clipboard {
	return systemClipboard{}
}

func (systemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}
