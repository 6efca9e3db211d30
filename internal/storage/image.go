package storage

import (
	"fmt"
	"path"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/shenikar/cityfix_backend/internal/models"
)

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// ValidateImage определяет тип по содержимому и проверяет, что это поддерживаемое изображение.
// Возвращает MIME-тип и расширение файла.
func ValidateImage(data []byte, maxBytes int64) (string, string, error) {
	if len(data) == 0 {
		return "", "", fmt.Errorf("%w: empty file", models.ErrInvalidFile)
	}
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return "", "", fmt.Errorf("%w: file exceeds %d bytes", models.ErrInvalidFile, maxBytes)
	}

	mt := mimetype.Detect(data)
	for m := mt; m != nil; m = m.Parent() {
		if ext, ok := allowedImageTypes[m.String()]; ok {
			return m.String(), ext, nil
		}
	}
	return "", "", fmt.Errorf("%w: unsupported type %s", models.ErrInvalidFile, mt.String())
}

// ObjectPath - путь для нового фото: complaints/<uid>/<uuid><ext>
func ObjectPath(folder, uid, ext string) string {
	return path.Join(folder, uid, uuid.NewString()+ext)
}
