package services_test

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"walletlink/internal/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0x0D, 'I', 'H', 'D', 'R'}

func uploadFile(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("avatar", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/users/avatar", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	return req.MultipartForm.File["avatar"][0]
}

func TestDiskAvatarStorage_SaveAndRemove(t *testing.T) {
	dir := t.TempDir()
	storage, err := services.NewDiskAvatarStorage(dir, "/uploads/avatars/", 1<<20)
	require.NoError(t, err)

	userID := uuid.New()
	url, err := storage.Save(userID, uploadFile(t, "me.png", pngHeader))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "/uploads/avatars/"+userID.String()))
	assert.True(t, strings.HasSuffix(url, ".png"))

	path := filepath.Join(dir, filepath.Base(url))
	stored, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, pngHeader, stored)

	require.NoError(t, storage.Remove(url))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestDiskAvatarStorage_RejectsNonImage(t *testing.T) {
	storage, err := services.NewDiskAvatarStorage(t.TempDir(), "/uploads/avatars", 1<<20)
	require.NoError(t, err)

	_, err = storage.Save(uuid.New(), uploadFile(t, "notes.png", []byte("just some text")))

	assert.ErrorIs(t, err, services.ErrAvatarInvalidType)
}

func TestDiskAvatarStorage_RejectsOversized(t *testing.T) {
	storage, err := services.NewDiskAvatarStorage(t.TempDir(), "/uploads/avatars", 8)
	require.NoError(t, err)

	_, err = storage.Save(uuid.New(), uploadFile(t, "me.png", pngHeader))

	assert.ErrorIs(t, err, services.ErrAvatarTooLarge)
}

func TestDiskAvatarStorage_MissingFile(t *testing.T) {
	storage, err := services.NewDiskAvatarStorage(t.TempDir(), "/uploads/avatars", 0)
	require.NoError(t, err)

	_, err = storage.Save(uuid.New(), nil)

	assert.ErrorIs(t, err, services.ErrAvatarMissing)
}

func TestDiskAvatarStorage_RemoveIgnoresForeignURL(t *testing.T) {
	storage, err := services.NewDiskAvatarStorage(t.TempDir(), "/uploads/avatars", 0)
	require.NoError(t, err)

	assert.NoError(t, storage.Remove("https://cdn.example.com/avatar.png"))
	assert.NoError(t, storage.Remove(""))
	assert.NoError(t, storage.Remove("/uploads/avatars/missing.png"))
}
