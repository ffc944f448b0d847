/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package mapfs provides an in-memory filesystem implementation for testing.
package mapfs

import (
	"io/fs"
	"path"
	"slices"
	"strings"
	"sync"
	"testing/fstest"
	"time"
)

// MapFileSystem implements FileSystem using an in-memory fstest.MapFS.
// Paths are stored without their leading slash, so "/project/package.json"
// and "project/package.json" name the same file.
type MapFileSystem struct {
	mu      sync.RWMutex
	mapFS   fstest.MapFS
	modTime time.Time
}

// New creates a new in-memory filesystem for testing.
func New() *MapFileSystem {
	return &MapFileSystem{
		mapFS:   make(fstest.MapFS),
		modTime: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// AddFile adds a file to the in-memory filesystem.
func (mfs *MapFileSystem) AddFile(p string, content string, mode fs.FileMode) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	mfs.mapFS[mfs.cleanPath(p)] = &fstest.MapFile{
		Data:    []byte(content),
		Mode:    mode,
		ModTime: mfs.modTime,
	}
}

// ReadFile implements FileSystem.
func (mfs *MapFileSystem) ReadFile(name string) ([]byte, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	return fs.ReadFile(mfs.mapFS, mfs.cleanPath(name))
}

// WriteFile implements FileSystem.
func (mfs *MapFileSystem) WriteFile(name string, data []byte, perm fs.FileMode) error {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	mfs.mapFS[mfs.cleanPath(name)] = &fstest.MapFile{
		Data:    append([]byte(nil), data...),
		Mode:    perm,
		ModTime: mfs.modTime,
	}
	return nil
}

// Exists implements FileSystem. Directories exist if any file lives below them.
func (mfs *MapFileSystem) Exists(p string) bool {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	p = mfs.cleanPath(p)

	if _, exists := mfs.mapFS[p]; exists {
		return true
	}

	prefix := p + "/"
	for filePath := range mfs.mapFS {
		if strings.HasPrefix(filePath, prefix) {
			return true
		}
	}

	return false
}

// ListFiles returns every stored file path in sorted order, for debugging.
func (mfs *MapFileSystem) ListFiles() []string {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	files := make([]string, 0, len(mfs.mapFS))
	for p := range mfs.mapFS {
		files = append(files, "/"+p)
	}
	slices.Sort(files)
	return files
}

func (mfs *MapFileSystem) cleanPath(p string) string {
	cleaned := path.Clean(p)
	if !path.IsAbs(cleaned) {
		cleaned = "/" + cleaned
	}
	return strings.TrimPrefix(cleaned, "/")
}
