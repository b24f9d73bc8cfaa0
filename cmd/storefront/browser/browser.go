package browser

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Open launches the system browser at url. Used for the "browse the
// catalog" action; failures are reported, never fatal.
func Open(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open browser: %w", err)
	}
	return nil
}

// Navigator points the user at the shop catalog.
type Navigator struct {
	CatalogURL string
}

func (n Navigator) OpenCatalog() error {
	return Open(n.CatalogURL)
}
