package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pricepeek/pricepeek/internal/auth"
	"github.com/pricepeek/pricepeek/internal/store"
	"github.com/pricepeek/pricepeek/internal/tui"
	"github.com/pricepeek/pricepeek/pkg/client"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// dataDir returns the credential directory: PRICEPEEK_DATA_DIR if set,
// else ~/.pricepeek.
func dataDir() (string, error) {
	if dir := os.Getenv("PRICEPEEK_DATA_DIR"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".pricepeek"), nil
}

func apiURL() string {
	if u := os.Getenv("PRICEPEEK_API_URL"); u != "" {
		return u
	}
	return client.DefaultBaseURL
}

func run() error {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "version", "-v":
			fmt.Println("pricepeek " + version)
			return nil
		case "help", "--help", "-h":
			printHelp()
			return nil
		case "whoami":
			svc, err := newService()
			if err != nil {
				return err
			}
			fmt.Println(whoamiLine(svc))
			return nil
		case "logout":
			svc, err := newService()
			if err != nil {
				return err
			}
			if _, ok := svc.Current(); !ok {
				fmt.Println("Not signed in.")
				return nil
			}
			if err := svc.LogOut(); err != nil {
				return err
			}
			fmt.Println("Signed out.")
			return nil
		default:
			printHelp()
			return fmt.Errorf("unknown command %q", os.Args[1])
		}
	}

	svc, err := newService()
	if err != nil {
		return err
	}
	app := tui.NewApp(svc, client.New(apiURL()))

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

func newService() (*auth.Service, error) {
	dir, err := dataDir()
	if err != nil {
		return nil, err
	}
	fs, err := store.NewFileStore(dir)
	if err != nil {
		return nil, err
	}
	return auth.NewService(fs), nil
}

// whoamiLine formats the active session for the whoami subcommand.
func whoamiLine(svc *auth.Service) string {
	s, ok := svc.Current()
	if !ok {
		return "Not signed in."
	}
	return fmt.Sprintf("%s <%s>", s.Username, s.Email)
}
