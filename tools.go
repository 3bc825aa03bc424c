//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// Mocks follow the moq layout (github.com/matryer/moq) but are maintained
// by hand; regenerate with moq if the interfaces grow.
