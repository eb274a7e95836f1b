// Package clipboard provides system clipboard access for exported names.
package clipboard

import (
	"os/exec"
	"runtime"
)

// Clipboard defines the interface for clipboard operations.
type Clipboard interface {
	Copy(text string) error
}

// SystemClipboard implements Clipboard using the system clipboard.
type SystemClipboard struct{}

// Copy copies text to the system clipboard.
func (SystemClipboard) Copy(text string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("pbcopy")
	case "linux":
		cmd = exec.Command("xclip", "-selection", "clipboard")
	default:
		cmd = exec.Command("xclip", "-selection", "clipboard")
	}

	pipe, err := cmd.StdinPipe()
	if err != nil {
		return err
	}

	if err := cmd.Start(); err != nil {
		return err
	}

	if _, err := pipe.Write([]byte(text)); err != nil {
		return err
	}

	if err := pipe.Close(); err != nil {
		return err
	}

	return cmd.Wait()
}

// MockClipboard records copied text for testing.
type MockClipboard struct {
	Copied []string
}

// Copy stores the text and always succeeds.
func (m *MockClipboard) Copy(text string) error {
	m.Copied = append(m.Copied, text)
	return nil
}

// Last returns the most recently copied text, or "" if nothing was copied.
func (m *MockClipboard) Last() string {
	if len(m.Copied) == 0 {
		return ""
	}
	return m.Copied[len(m.Copied)-1]
}
