package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func printHelp() {
	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#facc15")).
		Bold(true).
		Render("P R I C E P E E K")

	tagline := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		Italic(true).
		Render("Pokémon card prices and artwork, from your terminal.")

	cmdStyle := lipgloss.NewStyle().Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	sectionStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true)

	commands := []struct{ cmd, desc string }{
		{"pricepeek", "Launch the TUI (sign in, then search)"},
		{"pricepeek whoami", "Show who is signed in"},
		{"pricepeek logout", "Clear the local session"},
		{"pricepeek version", "Show version"},
		{"pricepeek help", "Show this help"},
	}

	envs := []struct{ name, desc string }{
		{"PRICEPEEK_API_URL", "Catalog API base URL (default https://api.pokemontcg.io)"},
		{"PRICEPEEK_DATA_DIR", "Credential directory (default ~/.pricepeek)"},
	}

	fmt.Printf("\n  %s\n\n  %s\n\n", title, tagline)

	fmt.Printf("  %s\n", sectionStyle.Render("Commands"))
	for _, c := range commands {
		fmt.Printf("    %s  %s\n", cmdStyle.Render(fmt.Sprintf("%-20s", c.cmd)), descStyle.Render(c.desc))
	}

	fmt.Printf("\n  %s\n", sectionStyle.Render("Environment"))
	for _, e := range envs {
		fmt.Printf("    %s  %s\n", cmdStyle.Render(fmt.Sprintf("%-20s", e.name)), descStyle.Render(e.desc))
	}
	fmt.Println()
}
