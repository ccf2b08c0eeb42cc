package logging

import (
	"context"
	"io"
)

type contextKey string

const outputWriterKey contextKey = "output_writer"

// GetWriter retrieves the command output writer from context.
// It falls back to the global output if no writer is attached.
func GetWriter(ctx context.Context) io.Writer {
	if writer, ok := ctx.Value(outputWriterKey).(io.Writer); ok && writer != nil {
		return writer
	}
	return GetGlobalOutput()
}

// WithWriter returns a new context carrying w as the output writer.
func WithWriter(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, outputWriterKey, w)
}
