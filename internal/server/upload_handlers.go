package server

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"inkwell/internal/models"
	"inkwell/internal/service"
)

type deleteImageRequest struct {
	PublicID string `json:"publicId"`
}

type uploadImageResponse struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

// UploadImage relays a multipart image to the media host
//
//	@Summary		Upload an image
//	@Description	Forward the uploaded file to the media host and return its URL
//	@Tags			upload
//	@Accept			multipart/form-data
//	@Produce		json
//	@Security		BearerAuth
//	@Param			image	formData	file	true	"Image file"
//	@Success		200		{object}	uploadImageResponse
//	@Failure		400		{object}	models.ErrorResponse
//	@Router			/api/upload/image [post]
func (s *Server) UploadImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("No image file provided"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return respondServiceError(c, models.NewInternalError(err))
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return respondServiceError(c, models.NewInternalError(err))
	}

	result, err := s.uploadService.UploadImage(c.UserContext(), service.UploadImageInput{
		Filename: fileHeader.Filename,
		Content:  content,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(uploadImageResponse{
		URL:      result.URL,
		PublicID: result.PublicID,
	})
}

// DeleteImage asks the media host to remove an asset
//
//	@Summary		Delete an uploaded image
//	@Tags			upload
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			body	body		deleteImageRequest	true	"Public ID of the asset"
//	@Success		200		{object}	map[string]string
//	@Failure		400		{object}	models.ErrorResponse
//	@Router			/api/upload/image [delete]
func (s *Server) DeleteImage(c *fiber.Ctx) error {
	var req deleteImageRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := s.uploadService.DeleteImage(c.UserContext(), req.PublicID); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Image deleted successfully"})
}
