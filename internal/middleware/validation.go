package middleware

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/tutordesk/internal/app/models/dto"
)

// PhotoField is the multipart field carrying an optional photo
const PhotoField = "photo"

// BindForm binds a urlencoded or multipart form into obj. On failure it writes
// a 400 response and returns false.
func BindForm(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBind(obj); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewFailureResponse(dto.HandleValidationError(err)))
		c.Abort()
		return false
	}
	return true
}

// OptionalPhoto returns the uploaded photo, or nil when none was sent.
// An empty file input counts as no photo.
func OptionalPhoto(c *gin.Context) (*multipart.FileHeader, error) {
	fileHeader, err := c.FormFile(PhotoField)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if fileHeader.Filename == "" {
		return nil, nil
	}
	return fileHeader, nil
}

// MaxBodySize limits the size of request bodies
func MaxBodySize(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limit > 0 {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		}
		c.Next()
	}
}
