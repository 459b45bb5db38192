package services

import (
	"github.com/rs/zerolog"

	"github.com/yigit/tutordesk/internal/pkg/filestorage"
)

// discardPhoto removes a photo stored for a write that did not happen
func discardPhoto(storage filestorage.FileStorage, logger zerolog.Logger, ref string) {
	if ref == "" {
		return
	}
	if err := storage.Discard(ref); err != nil {
		logger.Error().Err(err).Str("photo", ref).Msg("Failed to remove photo of a rejected write")
	}
}
