// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"errors"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/jeranaias/pollen/internal/logging"
)

const (
	folderPerm os.FileMode = 0755
	filePerm   os.FileMode = 0644
)

// ErrStorage matches every error returned by Vault.
var ErrStorage = errors.New("storage failure")

// StorageError describes a failed vault operation.
type StorageError struct {
	Op   string
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *StorageError) Unwrap() error {
	return e.Err
}

// Is reports ErrStorage as matching.
func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

// Vault is the destination for saved notes and images.
type Vault struct {
	fs     afero.Fs
	logger *zap.Logger
}

// NewVault creates a vault rooted at dir on the OS file system.
func NewVault(dir string, logger *zap.Logger) *Vault {
	return NewVaultWithFs(afero.NewBasePathFs(afero.NewOsFs(), dir), logger)
}

// NewVaultWithFs creates a vault over fs, whose root is the vault root.
func NewVaultWithFs(fs afero.Fs, logger *zap.Logger) *Vault {
	return &Vault{
		fs:     fs,
		logger: logging.OrNop(logger).Named("vault"),
	}
}

// Fs returns the underlying file system.
func (v *Vault) Fs() afero.Fs {
	return v.fs
}

// cleanFolder normalizes a configured folder to a vault-relative path.
func cleanFolder(folder string) string {
	folder = strings.Trim(strings.ReplaceAll(folder, "\\", "/"), "/ ")
	if folder == "" {
		return ""
	}
	return path.Clean(folder)
}

// EnsureFolder creates folder if it does not exist. An existing folder is
// left as is.
func (v *Vault) EnsureFolder(folder string) error {
	folder = cleanFolder(folder)
	if folder == "" {
		return nil
	}

	exists, err := afero.DirExists(v.fs, folder)
	if err != nil {
		return &StorageError{Op: "stat", Path: folder, Err: err}
	}
	if exists {
		return nil
	}

	if err := v.fs.MkdirAll(folder, folderPerm); err != nil {
		return &StorageError{Op: "mkdir", Path: folder, Err: err}
	}
	v.logger.Debug("created folder", zap.String("folder", folder))
	return nil
}

// Create writes data as a new file folder/name and returns its vault path.
// The folder is created first if missing. An existing file is never
// overwritten; that case fails with an error wrapping os.ErrExist.
func (v *Vault) Create(folder, name string, data []byte) (string, error) {
	if err := v.EnsureFolder(folder); err != nil {
		return "", err
	}

	p := path.Join(cleanFolder(folder), name)
	f, err := v.fs.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
	if err != nil {
		return "", &StorageError{Op: "create", Path: p, Err: err}
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		v.fs.Remove(p)
		return "", &StorageError{Op: "write", Path: p, Err: err}
	}
	if err := f.Close(); err != nil {
		return "", &StorageError{Op: "close", Path: p, Err: err}
	}

	v.logger.Info("file saved", zap.String("path", p), zap.Int("bytes", len(data)))
	return p, nil
}

// Exists reports whether a file or folder exists at p.
func (v *Vault) Exists(p string) bool {
	ok, err := afero.Exists(v.fs, p)
	return err == nil && ok
}

// ReadFile reads a vault file.
func (v *Vault) ReadFile(p string) ([]byte, error) {
	data, err := afero.ReadFile(v.fs, p)
	if err != nil {
		return nil, &StorageError{Op: "read", Path: p, Err: err}
	}
	return data, nil
}
