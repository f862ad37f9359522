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
	"testing"
)

func TestLoadSettingsCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teeko", "config.yaml")

	settings, err := LoadSettings(path)
	if err != nil {
		t.Fatal(err)
	}

	if settings != DefaultSettings() {
		t.Errorf("LoadSettings() = %+v; want %+v", settings, DefaultSettings())
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("settings file not created: %v", err)
	}
}

func TestLoadSettingsKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("depth: 3\n"), 0644); err != nil {
		t.Fatal(err)
	}

	settings, err := LoadSettings(path)
	if err != nil {
		t.Fatal(err)
	}

	want := DefaultSettings()
	want.Depth = 3
	if settings != want {
		t.Errorf("LoadSettings() = %+v; want %+v", settings, want)
	}
}

func TestSettingsDump(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	settings := DefaultSettings()
	settings.Addr = "localhost:9000"
	settings.Record = false
	if err := settings.Dump(path); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadSettings(path)
	if err != nil {
		t.Fatal(err)
	}

	if loaded != settings {
		t.Errorf("LoadSettings() = %+v; want %+v", loaded, settings)
	}
}

func TestTryMkdir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	if err := TryMkdir(dir); err != nil {
		t.Fatal(err)
	}

	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Errorf("directory %s not created: %v", dir, err)
	}

	// existing directories are left alone
	if err := TryMkdir(dir); err != nil {
		t.Error(err)
	}
}
