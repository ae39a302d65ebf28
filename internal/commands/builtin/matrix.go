package builtin

import (
	"context"
	"strings"

	"folioshell/internal/logger"
	"folioshell/pkg/foliotypes"
)

const (
	matrixRows = 10
	matrixCols = 50
)

// MatrixCommand prints a block of random bits and switches to the matrix theme.
type MatrixCommand struct {
	// Pick returns a random index below n; nil uses math/rand.
	Pick func(n int) int
}

// Name returns the command name "matrix" for registration and lookup.
func (c *MatrixCommand) Name() string {
	return "matrix"
}

// Description returns a brief description of what the matrix command does.
func (c *MatrixCommand) Description() string {
	return "Enter the Matrix"
}

// Usage returns the syntax for the matrix command.
func (c *MatrixCommand) Usage() string {
	return "matrix"
}

// Execute prints the rain. A missing matrix theme is logged and otherwise ignored.
func (c *MatrixCommand) Execute(_ context.Context, _ []string, env foliotypes.Env) (foliotypes.Output, error) {
	var sb strings.Builder
	for row := 0; row < matrixRows; row++ {
		for col := 0; col < matrixCols; col++ {
			sb.WriteByte("01"[pick(c.Pick, 2)])
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\nYou are in the Matrix now...")

	if err := env.Themes().Set("matrix"); err != nil {
		logger.Debug("Matrix theme unavailable", "error", err)
	}
	return foliotypes.Output{Text: sb.String(), Class: foliotypes.ClassASCII}, nil
}
