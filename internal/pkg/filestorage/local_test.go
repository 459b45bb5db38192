package filestorage

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("photo", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(body, writer.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["photo"][0]
}

func TestSaveFileUUIDNaming(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocalStorage(dir, "/static/uploads/", NamingUUID)
	require.NoError(t, err)

	first, err := storage.SaveFile(fileHeader(t, "me.PNG", "one"))
	require.NoError(t, err)
	second, err := storage.SaveFile(fileHeader(t, "me.PNG", "two"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, strings.HasSuffix(first, ".png"))

	data, err := os.ReadFile(filepath.Join(dir, first))
	require.NoError(t, err)
	assert.Equal(t, "one", string(data))

	assert.Equal(t, "/static/uploads/"+first, storage.URL(first))
}

func TestSaveFileOriginalNamingOverwrites(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocalStorage(dir, "/static/uploads", NamingOriginal)
	require.NoError(t, err)

	first, err := storage.SaveFile(fileHeader(t, "../../etc/me.jpg", "one"))
	require.NoError(t, err)
	assert.Equal(t, "me.jpg", first)

	second, err := storage.SaveFile(fileHeader(t, "me.jpg", "two"))
	require.NoError(t, err)
	assert.Equal(t, first, second)

	data, err := os.ReadFile(filepath.Join(dir, "me.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "two", string(data))
}

func TestSaveFileWithoutUpload(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "/static/uploads", NamingUUID)
	require.NoError(t, err)

	ref, err := storage.SaveFile(nil)
	require.NoError(t, err)
	assert.Empty(t, ref)
	assert.Empty(t, storage.URL(ref))
}

func TestDeleteFile(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocalStorage(dir, "/static/uploads", NamingUUID)
	require.NoError(t, err)

	ref, err := storage.SaveFile(fileHeader(t, "a.jpg", "x"))
	require.NoError(t, err)

	require.NoError(t, storage.DeleteFile(ref))
	_, err = os.Stat(filepath.Join(dir, ref))
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, storage.DeleteFile(ref))
	assert.NoError(t, storage.DeleteFile(""))
}

func TestDiscard(t *testing.T) {
	tests := []struct {
		name   string
		naming NamingPolicy
		kept   bool
	}{
		{name: "uuid names are removed", naming: NamingUUID, kept: false},
		{name: "original names are kept", naming: NamingOriginal, kept: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			storage, err := NewLocalStorage(dir, "/static/uploads", tt.naming)
			require.NoError(t, err)

			ref, err := storage.SaveFile(fileHeader(t, "me.jpg", "x"))
			require.NoError(t, err)

			require.NoError(t, storage.Discard(ref))
			_, err = os.Stat(filepath.Join(dir, ref))
			assert.Equal(t, tt.kept, err == nil)
		})
	}

	storage, err := NewLocalStorage(t.TempDir(), "/static/uploads", NamingUUID)
	require.NoError(t, err)
	assert.NoError(t, storage.Discard(""))
}
