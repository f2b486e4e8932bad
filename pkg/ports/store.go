package ports

import "context"

// OutputSink defines where rendered configuration ends up.
type OutputSink interface {
	// Write persists text at path, replacing whatever was there.
	// Failures are reported as *domain.OutputWriteError.
	Write(ctx context.Context, path string, text string) error
}
