// Command jobmatch scores a candidate resume against a job specification
// and prints the explained 100-point match result.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobmatch",
	Short: "Hybrid resume/job match scoring",
	Long: `jobmatch evaluates how well a candidate fits a job opening.

The score combines deterministic rules (skills, experience, education,
salary, location), delegated semantic judgments (soft skills, culture
fit, growth potential, project relevance) and bonus signals (industry
experience, rare skills, career trajectory) into an explained result
with a recommendation tier.`,
}

func main() {
	// A .env file is optional; the environment wins over it either way.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
