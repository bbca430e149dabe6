package domain

import (
	"fmt"
	"strings"
)

const DefaultPrompt = "a cute 3D pastel cat with big eyes"

var quickPrompts = []string{
	"kawaii robot",
	"smiling donut",
	"pastel space whale",
	"tiny camera with face",
}

func QuickPrompts() []string {
	return append([]string(nil), quickPrompts...)
}

// QuickPrompt returns the n-th quick prompt, counting from 1.
func QuickPrompt(n int) (string, error) {
	if n < 1 || n > len(quickPrompts) {
		return "", fmt.Errorf("quick prompt out of range: %d (1-%d)", n, len(quickPrompts))
	}
	return quickPrompts[n-1], nil
}

func NormalizePrompt(raw string) (string, error) {
	prompt := strings.TrimSpace(raw)
	if prompt == "" {
		return "", ErrEmptyPrompt
	}
	return prompt, nil
}
