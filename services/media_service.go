package services

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ObjectStorage is the two-method contract the aggregate depends on for
// space and carousel photos. Local disk and remote buckets are
// interchangeable behind it; keys are relative paths like "spaces/x.jpg".
type ObjectStorage interface {
	Put(key string, data []byte, mimeType string) (string, error)
	Delete(key string) error
}

// LocalStorage writes under BaseDir (served statically at BaseURL by the
// router).
type LocalStorage struct {
	BaseDir string
	BaseURL string
}

func NewLocalStorage(baseDir, baseURL string) *LocalStorage {
	return &LocalStorage{BaseDir: baseDir, BaseURL: strings.TrimSuffix(baseURL, "/")}
}

func (s *LocalStorage) Put(key string, data []byte, mimeType string) (string, error) {
	fullpath := filepath.Join(s.BaseDir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(fullpath), 0755); err != nil {
		return "", fmt.Errorf("mkdir uploads dir: %w", err)
	}
	if err := os.WriteFile(fullpath, data, 0644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	return s.BaseURL + "/" + key, nil
}

func (s *LocalStorage) Delete(key string) error {
	return os.Remove(filepath.Join(s.BaseDir, filepath.FromSlash(key)))
}

// KeyFromPhotoURL recovers the "subdir/file" storage key from a public URL
// produced by Put, regardless of which storage backend minted it.
func KeyFromPhotoURL(url string) string {
	parts := strings.Split(strings.Trim(url, "/"), "/")
	if len(parts) < 2 {
		return url
	}
	return parts[len(parts)-2] + "/" + parts[len(parts)-1]
}

// DecodeBase64Image accepts both raw base64 and "data:image/...;base64,"
// payloads and returns the bytes plus a file extension for the key.
func DecodeBase64Image(b64 string) ([]byte, string, error) {
	ext := ".jpg"
	if strings.HasPrefix(b64, "data:") {
		if strings.Contains(b64, "image/png") {
			ext = ".png"
		} else if strings.Contains(b64, "image/webp") {
			ext = ".webp"
		}
	}
	if idx := strings.Index(b64, "base64,"); idx >= 0 {
		b64 = b64[idx+7:]
	}

	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return nil, "", fmt.Errorf("decode base64: %w", err)
	}
	return data, ext, nil
}

// NewObjectKey builds a collision-free key under subdir ("spaces", "hero").
func NewObjectKey(subdir, ext string) string {
	return subdir + "/" + uuid.NewString() + ext
}

func mimeTypeForExt(ext string) string {
	switch ext {
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	default:
		return "image/jpeg"
	}
}
