// Package storage persists uploaded resume files on disk and hands out
// opaque references for the database to keep.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"jobport/internal/models"

	"github.com/google/uuid"
)

// allowedResumeExts are the upload extensions accepted for resumes.
var allowedResumeExts = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".txt":  true,
}

// MaxResumeSize caps a single resume upload at 5MB.
const MaxResumeSize = 5 * 1024 * 1024

// ResumeStore writes resume files beneath a base directory. Each stored
// file is keyed by a fresh UUID; the returned reference is what the
// Application row records. Files are never deduplicated or cleaned up.
type ResumeStore struct {
	baseDir string
}

// NewResumeStore creates the base directory if needed and returns a store.
func NewResumeStore(baseDir string) (*ResumeStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create resume directory %q: %w", baseDir, err)
	}
	return &ResumeStore{baseDir: baseDir}, nil
}

// Save writes the upload to disk and returns its reference.
func (s *ResumeStore) Save(originalName string, size int64, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedResumeExts[ext] {
		return "", models.NewValidationError("Resume must be a PDF, DOC, DOCX or TXT file")
	}
	if size > MaxResumeSize {
		return "", models.NewValidationError("Resume exceeds the 5MB size limit")
	}

	ref := uuid.New().String() + ext
	dst, err := os.Create(filepath.Join(s.baseDir, ref))
	if err != nil {
		return "", models.NewInternalError(err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, io.LimitReader(r, MaxResumeSize+1)); err != nil {
		return "", models.NewInternalError(err)
	}
	return ref, nil
}

// Open returns a reader for a previously stored resume.
func (s *ResumeStore) Open(ref string) (io.ReadCloser, error) {
	path, err := s.Path(ref)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, models.NewNotFoundError("Resume", ref)
		}
		return nil, models.NewInternalError(err)
	}
	return f, nil
}

// Path resolves a reference to its on-disk path.
func (s *ResumeStore) Path(ref string) (string, error) {
	// References are UUID-derived; reject anything path-like.
	if ref == "" || ref != filepath.Base(ref) || strings.Contains(ref, "..") {
		return "", models.NewValidationError("Invalid resume reference")
	}
	return filepath.Join(s.baseDir, ref), nil
}

// Remove deletes a stored resume. Missing files are not an error.
func (s *ResumeStore) Remove(ref string) error {
	path, err := s.Path(ref)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return models.NewInternalError(err)
	}
	return nil
}
