package services

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// HotelUploadDir is the subdirectory under uploads/ for accommodation
// images. The DB stores bare filenames only.
const HotelUploadDir = "hotels"

// SaveUploadedImage writes a multipart upload under uploads/<subdir>
// with a randomized name (timestamp + random suffix + original
// extension) and returns the bare filename for the DB.
func SaveUploadedImage(fh *multipart.FileHeader, subdir string) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dir := filepath.Join("uploads", subdir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("mkdir uploads dir: %w", err)
	}

	ext := filepath.Ext(fh.Filename)
	filename := fmt.Sprintf("%d-%s%s", time.Now().UnixNano(), uuid.NewString()[:8], ext)
	fullpath := filepath.Join(dir, filename)

	dst, err := os.Create(fullpath)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(fullpath)
		return "", fmt.Errorf("write file: %w", err)
	}

	return filename, nil
}

// RemoveUploadedImage unlinks a stored file. Idempotent and
// best-effort: callers invoke it after their transaction commits, and
// a missing file is not an error.
func RemoveUploadedImage(subdir, filename string) {
	if filename == "" {
		return
	}
	path := filepath.Join("uploads", subdir, filepath.Base(filename))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Printf("⚠️ failed to remove uploaded file %s: %v", path, err)
	}
}
