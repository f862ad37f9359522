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

// Package common contains the on-disk locations and the user settings
// shared by teeko's commands.
package common

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const FilePermissions = 0755

var (
	// Directory holds teeko's data, like the game records.
	Directory = filepath.Join(xdg.DataHome, "teeko")

	// ConfigDirectory holds teeko's settings.
	ConfigDirectory = filepath.Join(xdg.ConfigHome, "teeko")

	DatabaseFile = filepath.Join(Directory, "games.db")
	SettingsFile = filepath.Join(ConfigDirectory, "config.yaml")
)

// TryMkdir creates the given directory and its parents if it doesn't
// exist.
func TryMkdir(dir string) error {
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		return os.MkdirAll(dir, FilePermissions)
	}

	return nil
}

// TryCreate creates the given file with the given contents if it doesn't
// exist.
func TryCreate(file string, data []byte) error {
	if _, err := os.Stat(file); errors.Is(err, fs.ErrNotExist) {
		if err := TryMkdir(filepath.Dir(file)); err != nil {
			return err
		}

		return os.WriteFile(file, data, 0644)
	}

	return nil
}
