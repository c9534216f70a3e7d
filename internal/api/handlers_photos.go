package api

import (
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"
	"github.com/jmcgreevy/mulligan/internal/imagestore"
	"github.com/jmcgreevy/mulligan/internal/models"
	"gorm.io/gorm"
)

const maxPhotoUploadBytes = 20 << 20

func (handler *Handler) ShowPhotos(c *fiber.Ctx) error {
	category := strings.TrimSpace(c.Query("category"))

	var photos []models.Photo
	var err error
	if category != "" {
		photos, err = handler.repositories.Photos.ListByCategory(category)
	} else {
		photos, err = handler.repositories.Photos.List()
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load photos")
	}

	return handler.render(c, "photos", fiber.Map{
		"Title":    "Photos",
		"Photos":   photos,
		"Category": category,
	})
}

// UploadPhoto proxies the multipart upload into the image store. A store
// failure here is surfaced to the user; this is the critical path.
func (handler *Handler) UploadPhoto(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return handler.respondFormError(c, "/photos", fiber.StatusBadRequest, "choose a photo to upload")
	}
	if fileHeader.Size > maxPhotoUploadBytes {
		return handler.respondFormError(c, "/photos", fiber.StatusBadRequest, "photo is too large")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to read upload")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxPhotoUploadBytes+1))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to read upload")
	}

	object, err := handler.images.Save(data, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		if errors.Is(err, imagestore.ErrUnsupportedImage) {
			return handler.respondFormError(c, "/photos", fiber.StatusBadRequest, "that file is not an image")
		}
		log.Error("photo upload failed", "user_id", user.ID, "error", err)
		return handler.respondFormError(c, "/photos", fiber.StatusBadGateway, "photo upload failed, try again")
	}

	photo := models.Photo{
		ObjectID: object.ID,
		URL:      object.URL,
		Caption:  strings.TrimSpace(c.FormValue("caption")),
		Category: strings.TrimSpace(c.FormValue("category")),
		UserID:   user.ID,
	}
	if err := handler.repositories.Photos.Create(&photo); err != nil {
		// The record is the source of truth; orphaned stored bytes get
		// cleaned up rather than left dangling.
		if removeErr := handler.images.Remove(object.ID); removeErr != nil {
			log.Warn("orphaned upload cleanup failed", "object_id", object.ID, "error", removeErr)
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to save photo")
	}

	return redirectOrJSON(c, "/photos")
}

func (handler *Handler) UpdatePhoto(c *fiber.Ctx) error {
	photoID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "malformed photo id")
	}

	photo, err := handler.repositories.Photos.FindByID(photoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError(c, fiber.StatusNotFound, "photo not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to load photo")
	}

	photo.Caption = strings.TrimSpace(c.FormValue("caption"))
	photo.Category = strings.TrimSpace(c.FormValue("category"))
	if err := handler.repositories.Photos.Save(&photo); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update photo")
	}

	return redirectOrJSON(c, "/photos")
}

// DeletePhoto removes the record first; the stored image is best-effort
// cleanup and never blocks the delete.
func (handler *Handler) DeletePhoto(c *fiber.Ctx) error {
	photoID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "malformed photo id")
	}

	photo, err := handler.repositories.Photos.FindByID(photoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError(c, fiber.StatusNotFound, "photo not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to load photo")
	}

	if err := handler.repositories.Photos.Delete(photo.ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete photo")
	}

	if err := handler.images.Remove(photo.ObjectID); err != nil {
		log.Warn("stored image cleanup failed", "photo_id", photo.ID, "object_id", photo.ObjectID, "error", err)
	}

	return redirectOrJSON(c, "/photos")
}
