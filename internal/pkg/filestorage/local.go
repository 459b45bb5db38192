package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/yigit/tutordesk/internal/pkg/logger"
)

// LocalStorage handles saving files to the local filesystem.
type LocalStorage struct {
	basePath string       // directory the files are written to
	baseURL  string       // URL prefix the directory is served under
	naming   NamingPolicy // how stored names are chosen
}

// NewLocalStorage creates a new LocalStorage instance, creating basePath if needed.
func NewLocalStorage(basePath, baseURL string, naming NamingPolicy) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Str("naming", string(naming)).Msg("Local storage directory ensured")

	if naming == "" {
		naming = NamingUUID
	}

	return &LocalStorage{
		basePath: basePath,
		baseURL:  strings.TrimRight(baseURL, "/"),
		naming:   naming,
	}, nil
}

// SaveFile copies the upload into the storage directory and returns the stored file name
func (ls *LocalStorage) SaveFile(fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader == nil || fileHeader.Filename == "" {
		return "", nil
	}

	name, err := ls.storedName(fileHeader.Filename)
	if err != nil {
		return "", err
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	dstPath := filepath.Join(ls.basePath, name)
	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	logger.Info().Str("filename", fileHeader.Filename).Str("saved_as", name).Msg("File saved successfully")
	return name, nil
}

func (ls *LocalStorage) storedName(clientName string) (string, error) {
	if ls.naming == NamingOriginal {
		name := filepath.Base(filepath.Clean("/" + strings.ReplaceAll(clientName, "\\", "/")))
		if name == "" || name == "." || name == "/" {
			return "", fmt.Errorf("invalid file name: %q", clientName)
		}
		return name, nil
	}
	return uuid.New().String() + strings.ToLower(filepath.Ext(clientName)), nil
}

// DeleteFile removes a stored file. Returns nil if the file doesn't exist.
func (ls *LocalStorage) DeleteFile(ref string) error {
	if ref == "" {
		return nil
	}

	name := filepath.Base(ref)
	if name == "." || name == "/" {
		return fmt.Errorf("invalid file reference: %s", ref)
	}

	physicalPath := filepath.Join(ls.basePath, name)
	if err := os.Remove(physicalPath); err != nil {
		if os.IsNotExist(err) {
			logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
			return nil
		}
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	logger.Info().Str("path", physicalPath).Msg("File deleted successfully")
	return nil
}

// Discard deletes ref unless uploads keep their client file names
func (ls *LocalStorage) Discard(ref string) error {
	if ref == "" {
		return nil
	}
	if ls.naming == NamingOriginal {
		logger.Warn().Str("file", ref).Msg("Keeping file of a rejected write, the name may be in use")
		return nil
	}
	return ls.DeleteFile(ref)
}

// URL returns the public URL for ref
func (ls *LocalStorage) URL(ref string) string {
	if ref == "" {
		return ""
	}
	return ls.baseURL + "/" + filepath.Base(ref)
}

// BasePath returns the storage directory
func (ls *LocalStorage) BasePath() string {
	return ls.basePath
}
