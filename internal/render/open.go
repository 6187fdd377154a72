package render

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
)

// openCommand returns the platform launcher invocation for a file.
func openCommand(goos, path string) (name string, args []string) {
	switch goos {
	case "darwin":
		return "open", []string{path}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", path}
	default:
		return "xdg-open", []string{path}
	}
}

// Open shows a rendered page in the system's default browser. The launcher
// hands the file off and returns; the browser itself outlives the call.
func Open(ctx context.Context, path string) error {
	name, args := openCommand(runtime.GOOS, path)

	if _, err := exec.LookPath(name); err != nil {
		return &OpenError{
			Message: fmt.Sprintf("%s not found in PATH", name),
			Cause:   err,
		}
	}

	cmd := exec.CommandContext(ctx, name, args...)
	if err := cmd.Run(); err != nil {
		return &OpenError{
			Message: fmt.Sprintf("failed to open %s", path),
			Cause:   err,
		}
	}
	return nil
}
