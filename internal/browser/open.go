// Package browser hands URLs to the user's default browser, used to
// show card artwork the terminal cannot render.
package browser

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Open opens the URL in the system browser. The command is started and
// not waited on.
func Open(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	case "linux":
		return exec.Command("xdg-open", url).Start()
	default:
		return fmt.Errorf("unsupported OS: %s", runtime.GOOS)
	}
}
