package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/myanimeverse/animeverse_backend/internal/core/ports/services"
	"github.com/myanimeverse/animeverse_backend/internal/dto"
)

// FileHandler handles uploads and downloads of files stored in the database.
type FileHandler struct {
	fileService portssvc.FileSvcFacade
}

// NewFileHandler creates a new FileHandler.
func NewFileHandler(fs portssvc.FileSvcFacade) *FileHandler {
	return &FileHandler{fileService: fs}
}

// RegisterFileRoutes sets up the file routes. Uploads require a session;
// downloads are public so post images render for anonymous visitors.
func RegisterFileRoutes(r *gin.Engine, fileService portssvc.FileSvcFacade, authRequired gin.HandlerFunc) {
	h := NewFileHandler(fileService)

	r.POST("/file/upload", authRequired, h.Upload)
	r.GET("/file/:filename", h.Download)
}

// Upload godoc
// @Summary Upload an image
// @Description Accepts a multipart image (PNG/JPG/JPEG) and stores it in the database under a generated unique filename.
// @Tags files
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Success 201 {object} dto.UploadFileResponse
// @Failure 400 {object} MessageResponse
// @Failure 401 {object} MessageResponse
// @Router /file/upload [post]
func (h *FileHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, MessageResponse{Success: false, Message: "No file uploaded"})
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		respondError(c, err)
		return
	}

	stored, err := h.fileService.SaveUpload(c.Request.Context(), fileHeader.Filename, fileHeader.Header.Get("Content-Type"), data)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.UploadFileResponse{
		Success:  true,
		Message:  "File uploaded successfully",
		Filename: stored.Filename,
	})
}

// Download godoc
// @Summary Download a file
// @Description Streams a stored file's bytes with its original content type.
// @Tags files
// @Produce octet-stream
// @Param filename path string true "Stored filename"
// @Success 200 {file} binary
// @Failure 404 {object} MessageResponse
// @Router /file/{filename} [get]
func (h *FileHandler) Download(c *gin.Context) {
	file, err := h.fileService.GetFile(c.Request.Context(), c.Param("filename"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, file.ContentType, file.Data)
}
