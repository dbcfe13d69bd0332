package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/huh"
)

const rocketFolderName = ".rocket"

// rocketConfig is the on-disk shape of .rocket/config.json.
type rocketConfig struct {
	TimeoutSeconds int    `json:"timeout_seconds"`
	Theme          string `json:"theme"`
	BodySchema     string `json:"body_schema,omitempty"`
}

// initializeRocketFolder creates the .rocket directory on first run and
// walks the user through a short setup form. Later runs are no-ops.
func initializeRocketFolder() error {
	if _, err := os.Stat(rocketFolderName); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to check %s folder: %w", rocketFolderName, err)
	}

	fmt.Println("🔧 Initializing .rocket folder for the first time...")

	if err := os.Mkdir(rocketFolderName, 0755); err != nil {
		return fmt.Errorf("failed to create %s folder: %w", rocketFolderName, err)
	}

	config := promptForConfig()

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	configPath := filepath.Join(rocketFolderName, "config.json")
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Println("✓ .rocket folder initialized successfully!")
	return nil
}

// promptForConfig runs the huh setup form. If the form cannot run (no TTY,
// user aborted) the defaults are used instead.
func promptForConfig() rocketConfig {
	config := rocketConfig{TimeoutSeconds: 10, Theme: "dark"}

	timeoutStr := strconv.Itoa(config.TimeoutSeconds)
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Request timeout (seconds)").
				Value(&timeoutStr).
				Validate(func(s string) error {
					n, err := strconv.Atoi(s)
					if err != nil || n <= 0 {
						return fmt.Errorf("enter a positive number")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Theme").
				Options(
					huh.NewOption("Dark", "dark"),
					huh.NewOption("Light", "light"),
					huh.NewOption("Auto", "auto"),
				).
				Value(&config.Theme),
		),
	)

	if err := form.Run(); err != nil {
		return rocketConfig{TimeoutSeconds: 10, Theme: "dark"}
	}

	if n, err := strconv.Atoi(timeoutStr); err == nil && n > 0 {
		config.TimeoutSeconds = n
	}
	return config
}
