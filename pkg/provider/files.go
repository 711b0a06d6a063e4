// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package provider

import (
	"bytes"
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// ErrNotFound is returned when a target file does not exist
var ErrNotFound = errors.Base("file not found")

// 💾 FileManager reads and writes target files. It never creates or deletes
// content files.
type FileManager interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
	WriteFile(ctx context.Context, path string, content []byte) error
	FileExists(ctx context.Context, path string) (bool, error)
}

// LocalFiles implements FileManager on the local disk
type LocalFiles struct {
	root string
}

// NewLocalFiles creates a FileManager rooted at root
func NewLocalFiles(root string) *LocalFiles {
	return &LocalFiles{root: absRoot(root)}
}

func (m *LocalFiles) abs(path string) string {
	return filepath.Join(m.root, filepath.FromSlash(path))
}

func (m *LocalFiles) ReadFile(ctx context.Context, path string) ([]byte, error) {
	content, err := os.ReadFile(m.abs(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, errors.Errorf("reading file: %w", err)
	}
	return content, nil
}

// WriteFile replaces an existing file atomically, keeping its permissions.
func (m *LocalFiles) WriteFile(ctx context.Context, path string, content []byte) error {
	abs := m.abs(path)

	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return errors.Errorf("%w: %s", ErrNotFound, path)
		}
		return errors.Errorf("checking file: %w", err)
	}

	if err := atomic.WriteFile(abs, bytes.NewReader(content)); err != nil {
		return errors.Errorf("writing file: %w", err)
	}

	if err := os.Chmod(abs, info.Mode().Perm()); err != nil {
		return errors.Errorf("restoring file mode: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Str("path", path).Int("bytes", len(content)).Msg("wrote file")
	return nil
}

func (m *LocalFiles) FileExists(ctx context.Context, path string) (bool, error) {
	info, err := os.Stat(m.abs(path))
	if err == nil {
		return !info.IsDir(), nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, errors.Errorf("checking file existence: %w", err)
}
