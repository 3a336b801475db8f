package services

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrAvatarTooLarge    = errors.New("avatar exceeds the maximum size")
	ErrAvatarInvalidType = errors.New("avatar must be a jpeg, png, gif or webp image")
	ErrAvatarMissing     = errors.New("avatar file is required")
)

var avatarExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// DiskAvatarStorage keeps uploaded avatars under dir and serves them below publicURL
type DiskAvatarStorage struct {
	dir       string
	publicURL string
	maxSize   int64
}

func NewDiskAvatarStorage(dir, publicURL string, maxSize int64) (AvatarStorageInterface, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &DiskAvatarStorage{
		dir:       dir,
		publicURL: strings.TrimRight(publicURL, "/"),
		maxSize:   maxSize,
	}, nil
}

// Save validates the upload by size and sniffed content type and returns its public URL
func (s *DiskAvatarStorage) Save(userID uuid.UUID, file *multipart.FileHeader) (string, error) {
	if file == nil {
		return "", ErrAvatarMissing
	}
	if s.maxSize > 0 && file.Size > s.maxSize {
		return "", ErrAvatarTooLarge
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	head := make([]byte, 512)
	n, err := io.ReadFull(src, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}

	ext, ok := avatarExtensions[http.DetectContentType(head[:n])]
	if !ok {
		return "", ErrAvatarInvalidType
	}

	name := fmt.Sprintf("%s-%s%s", userID, uuid.NewString()[:8], ext)
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create avatar file: %w", err)
	}
	defer dst.Close()

	if _, err := dst.Write(head[:n]); err != nil {
		return "", fmt.Errorf("failed to write avatar: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write avatar: %w", err)
	}

	return s.publicURL + "/" + name, nil
}

// Remove deletes a file previously returned by Save. URLs from elsewhere are ignored.
func (s *DiskAvatarStorage) Remove(url string) error {
	if url == "" || !strings.HasPrefix(url, s.publicURL+"/") {
		return nil
	}

	name := filepath.Base(strings.TrimPrefix(url, s.publicURL+"/"))
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove avatar: %w", err)
	}
	return nil
}
