package llm

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// LoadGitHubToken loads the GitHub OAuth token used for Copilot access.
// It checks the GITHUB_TOKEN environment variable first, then the
// github-copilot hosts.json and apps.json files in the user config dir.
func LoadGitHubToken() (string, error) {
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		return token, nil
	}

	configDir, err := userConfigDir()
	if err != nil {
		return "", fmt.Errorf("getting config directory: %w", err)
	}

	for _, name := range []string{"hosts.json", "apps.json"} {
		token, err := tokenFromCopilotFile(filepath.Join(configDir, "github-copilot", name))
		if err == nil && token != "" {
			return token, nil
		}
	}

	return "", fmt.Errorf("GitHub token not found: set GITHUB_TOKEN or authenticate with GitHub Copilot in your IDE")
}

func userConfigDir() (string, error) {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if runtime.GOOS == "windows" {
		if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
			return localAppData, nil
		}
		return filepath.Join(home, "AppData", "Local"), nil
	}

	return filepath.Join(home, ".config"), nil
}

// tokenFromCopilotFile extracts the oauth_token from a Copilot config file.
// The file maps host identifiers (containing "github.com") to credentials.
func tokenFromCopilotFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	var hosts map[string]map[string]any
	if err := json.Unmarshal(data, &hosts); err != nil {
		return "", err
	}

	for key, creds := range hosts {
		if !strings.Contains(key, "github.com") {
			continue
		}
		if token, ok := creds["oauth_token"].(string); ok {
			return token, nil
		}
	}

	return "", fmt.Errorf("oauth_token not found in %s", path)
}
