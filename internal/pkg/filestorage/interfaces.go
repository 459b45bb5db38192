package filestorage

import (
	"mime/multipart"
)

// NamingPolicy decides the on-disk name of an uploaded file
type NamingPolicy string

const (
	// NamingUUID stores every upload under a fresh uuid keeping the extension
	NamingUUID NamingPolicy = "uuid"
	// NamingOriginal keeps the client file name; a later upload with the same name overwrites it
	NamingOriginal NamingPolicy = "original"
)

// FileStorage defines the interface for photo intake
type FileStorage interface {
	// SaveFile stores the upload and returns its reference, or "" when no file was sent
	SaveFile(fileHeader *multipart.FileHeader) (string, error)

	// Discard removes a file stored for a write that was then rejected.
	// Under NamingOriginal the name may belong to an existing record, so the file is kept.
	Discard(ref string) error

	// URL returns the public URL of a stored reference, or "" for an empty reference
	URL(ref string) string
}
