// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package common

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings are the user's defaults for teeko's commands. Flags given on
// the command line take precedence over them.
type Settings struct {
	// Depth is the search depth of the engine.
	Depth int `yaml:"depth"`

	// Database is the path of the game records database.
	Database string `yaml:"database"`

	// Record makes play and demo store their games.
	Record bool `yaml:"record"`

	// Addr is the address the play server listens on.
	Addr string `yaml:"addr"`
}

// DefaultSettings returns the settings used when no settings file exists.
func DefaultSettings() Settings {
	return Settings{
		Depth:    1,
		Database: DatabaseFile,
		Record:   true,
		Addr:     ":8080",
	}
}

// LoadSettings reads the settings file at the given path, creating it with
// the default settings if it doesn't exist. Fields missing from the file
// keep their default values.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()

	defaults, err := yaml.Marshal(settings)
	if err != nil {
		return settings, err
	}

	if err := TryCreate(path, defaults); err != nil {
		return settings, err
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return settings, err
	}

	err = yaml.Unmarshal(file, &settings)
	return settings, err
}

// Dump writes the settings to the given path.
func (settings Settings) Dump(path string) error {
	file, err := yaml.Marshal(settings)
	if err != nil {
		return err
	}

	if err := TryMkdir(filepath.Dir(path)); err != nil {
		return err
	}

	return os.WriteFile(path, file, 0644)
}
