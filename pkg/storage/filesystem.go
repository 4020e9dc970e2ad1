package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AssetClass distinguishes the stored image categories.
type AssetClass string

const (
	AssetActivityPhoto  AssetClass = "activity_photo"
	AssetSpeakerProfile AssetClass = "speaker_profile"
	AssetSignature      AssetClass = "signature"
)

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// LocalStorage manages report assets and exports under a base directory.
type LocalStorage struct {
	baseDir string
}

// NewLocalStorage ensures the directory layout exists and returns a handle.
func NewLocalStorage(baseDir string) (*LocalStorage, error) {
	if baseDir == "" {
		baseDir = "./data"
	}
	for _, dir := range []string{
		"images/activities",
		"images/speakers",
		"signatures",
		"exports",
	} {
		if err := os.MkdirAll(filepath.Join(baseDir, dir), 0o755); err != nil {
			return nil, fmt.Errorf("create storage directory: %w", err)
		}
	}
	return &LocalStorage{baseDir: baseDir}, nil
}

// ImportImage validates and copies an external image into managed storage,
// returning the stored path relative to the base directory. The activity ID
// scopes activity photos so cleanup can follow the parent record.
func (s *LocalStorage) ImportImage(srcPath string, class AssetClass, activityID int64, maxBytes int64) (string, error) {
	info, err := os.Stat(srcPath)
	if err != nil {
		return "", fmt.Errorf("stat source image: %w", err)
	}
	if maxBytes > 0 && info.Size() > maxBytes {
		return "", fmt.Errorf("image %s exceeds size limit of %d bytes", filepath.Base(srcPath), maxBytes)
	}
	ext := strings.ToLower(filepath.Ext(srcPath))
	if !imageExtensions[ext] {
		return "", fmt.Errorf("unsupported image type %q (want JPG or PNG)", ext)
	}

	relDir := s.classDir(class, activityID)
	name := uniqueFilename(ext)
	relPath := filepath.Join(relDir, name)

	absPath := filepath.Join(s.baseDir, relPath)
	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		return "", fmt.Errorf("prepare image directory: %w", err)
	}
	if err := copyFile(srcPath, absPath); err != nil {
		return "", fmt.Errorf("copy image: %w", err)
	}
	return relPath, nil
}

// SaveExport writes an export file atomically: the payload lands in a
// temporary file which is renamed into place, so a crash mid-write never
// leaves a truncated artifact at the destination.
func (s *LocalStorage) SaveExport(destPath string, data []byte) error {
	abs := s.resolve(destPath)
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return fmt.Errorf("prepare export directory: %w", err)
	}
	tmp := abs + ".tmp." + strconv.FormatInt(time.Now().UnixNano(), 36)
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write export file: %w", err)
	}
	if err := os.Rename(tmp, abs); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("finalize export file: %w", err)
	}
	return nil
}

// Open returns a read-only handle for a stored file.
func (s *LocalStorage) Open(path string) (*os.File, error) {
	file, err := os.Open(s.resolve(path))
	if err != nil {
		return nil, fmt.Errorf("open stored file: %w", err)
	}
	return file, nil
}

// Delete removes a stored file if present.
func (s *LocalStorage) Delete(path string) error {
	if err := os.Remove(s.resolve(path)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete stored file: %w", err)
	}
	return nil
}

// Exists reports whether the stored path resolves to a readable file.
func (s *LocalStorage) Exists(path string) bool {
	info, err := os.Stat(s.resolve(path))
	return err == nil && !info.IsDir()
}

// Path exposes the absolute path for a stored file.
func (s *LocalStorage) Path(path string) string {
	return s.resolve(path)
}

func (s *LocalStorage) classDir(class AssetClass, activityID int64) string {
	switch class {
	case AssetActivityPhoto:
		if activityID > 0 {
			return filepath.Join("images", "activities", strconv.FormatInt(activityID, 10))
		}
		return filepath.Join("images", "activities")
	case AssetSpeakerProfile:
		return filepath.Join("images", "speakers")
	case AssetSignature:
		return "signatures"
	default:
		return "images"
	}
}

func (s *LocalStorage) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(s.baseDir, path)
}

func uniqueFilename(ext string) string {
	stamp := time.Now().Format("20060102_150405")
	return fmt.Sprintf("%s_%s%s", stamp, uuid.NewString()[:8], ext)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close() //nolint:errcheck

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
