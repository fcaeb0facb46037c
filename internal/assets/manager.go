package assets

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	domainErrors "github.com/bandstand/bandstand/internal/domain/errors"
	"github.com/bandstand/bandstand/internal/domain/model"
)

// imageExtensions lists file extensions the manager treats as images.
var imageExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".webp": {},
	".svg":  {},
}

// Manager operates on image files inside two managed directories: uploads
// (primary, writable) and static (secondary, rename/delete fallback).
// Every operation validates the bare filename before touching the
// filesystem, so traversal outside the managed directories is impossible.
type Manager struct {
	uploadDir string
	staticDir string
	logger    *slog.Logger
}

// NewManager creates Manager and ensures the upload directory exists.
func NewManager(uploadDir, staticDir string, logger *slog.Logger) (*Manager, error) {
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Manager{uploadDir: uploadDir, staticDir: staticDir, logger: logger}, nil
}

// SanitizeFilename rejects anything that is not a bare image filename:
// empty names, path separators, ".." segments, hidden traversal tricks.
func SanitizeFilename(name string) error {
	if name == "" || name == "." {
		return domainErrors.ErrInvalidFilename
	}
	if strings.ContainsAny(name, `/\`) {
		return domainErrors.ErrInvalidFilename
	}
	if strings.Contains(name, "..") {
		return domainErrors.ErrInvalidFilename
	}
	if filepath.Base(name) != name {
		return domainErrors.ErrInvalidFilename
	}
	return nil
}

func isImage(name string) bool {
	_, ok := imageExtensions[strings.ToLower(filepath.Ext(name))]
	return ok
}

// List enumerates image files in the upload directory, newest first by
// modification time.
func (m *Manager) List() ([]model.ImageFile, error) {
	entries, err := os.ReadDir(m.uploadDir)
	if err != nil {
		return nil, fmt.Errorf("read upload dir: %w", err)
	}

	var files []model.ImageFile
	for _, entry := range entries {
		if entry.IsDir() || !isImage(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, model.ImageFile{
			Name:       entry.Name(),
			Size:       info.Size(),
			ModifiedAt: info.ModTime(),
		})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].ModifiedAt.After(files[j].ModifiedAt)
	})
	return files, nil
}

// Save stores an uploaded file under the upload directory. An existing
// file with the same name is never overwritten.
func (m *Manager) Save(name string, src io.Reader) (*model.ImageFile, error) {
	if err := SanitizeFilename(name); err != nil {
		return nil, err
	}
	if !isImage(name) {
		return nil, domainErrors.ErrInvalidFilename
	}

	path := filepath.Join(m.uploadDir, name)
	dst, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, fmt.Errorf("create file: %w", err)
	}

	size, err := io.Copy(dst, src)
	if err != nil {
		dst.Close()
		_ = os.Remove(path)
		return nil, fmt.Errorf("write file: %w", err)
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(path)
		return nil, fmt.Errorf("close file: %w", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat file: %w", err)
	}

	return &model.ImageFile{Name: name, Size: size, ModifiedAt: info.ModTime()}, nil
}

// locate finds the directory holding name: uploads first, then static.
func (m *Manager) locate(name string) (string, error) {
	for _, dir := range []string{m.uploadDir, m.staticDir} {
		if dir == "" {
			continue
		}
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return dir, nil
		}
	}
	return "", domainErrors.ErrNotFound
}

// Rename renames a managed file in place, trying the upload directory
// first and the static directory second.
func (m *Manager) Rename(oldName, newName string) error {
	if err := SanitizeFilename(oldName); err != nil {
		return err
	}
	if err := SanitizeFilename(newName); err != nil {
		return err
	}
	if !isImage(newName) {
		return domainErrors.ErrInvalidFilename
	}

	dir, err := m.locate(oldName)
	if err != nil {
		return err
	}

	target := filepath.Join(dir, newName)
	if _, err := os.Stat(target); err == nil {
		return domainErrors.ErrAlreadyExists
	}

	if err := os.Rename(filepath.Join(dir, oldName), target); err != nil {
		return fmt.Errorf("rename file: %w", err)
	}
	m.logger.Info("image renamed",
		slog.String("from", oldName),
		slog.String("to", newName),
		slog.String("dir", dir),
	)
	return nil
}

// Delete removes a managed file, trying the upload directory first and
// the static directory second.
func (m *Manager) Delete(name string) error {
	if err := SanitizeFilename(name); err != nil {
		return err
	}

	dir, err := m.locate(name)
	if err != nil {
		return err
	}

	if err := os.Remove(filepath.Join(dir, name)); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domainErrors.ErrNotFound
		}
		return fmt.Errorf("delete file: %w", err)
	}
	m.logger.Info("image deleted", slog.String("name", name), slog.String("dir", dir))
	return nil
}
