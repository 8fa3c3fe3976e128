/*
File    : twig/config/config.go
*/

// Package config loads REPL/CLI presentation settings from a
// `.twigrc.yaml` file in the user's working directory, falling back to
// built-in defaults when the file is absent. None of these settings
// affect the language's semantics — they only control the banner,
// prompt, history file location, and whether output is colored — which
// is why config lives outside the diag/lexer/parser/resolver/eval core
// entirely.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds every REPL/CLI presentation setting a .twigrc.yaml file
// may override.
type Config struct {
	Prompt      string `yaml:"prompt"`
	Banner      string `yaml:"banner"`
	HistoryFile string `yaml:"history_file"`
	Color       bool   `yaml:"color"`
}

const defaultBanner = `
  ______       _
 /_  __/    __(_)___ _
  / / | /| / / / __ '/
 / /  | |/ |/ / / /_/ /
/_/   |__/|__/_/\__, /
               /____/
`

// Default returns the built-in configuration used when no .twigrc.yaml
// is found, grounded on the REPL banner/prompt/color conventions in
// _examples/akashmaji946-go-mix/main/main.go and repl/repl.go.
func Default() *Config {
	return &Config{
		Prompt:      "twig> ",
		Banner:      defaultBanner,
		HistoryFile: ".twig_history",
		Color:       true,
	}
}

// Load reads path and overlays its fields onto Default(). A missing
// file is not an error — it just means every field stays at its
// default — but a present, malformed file is.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
