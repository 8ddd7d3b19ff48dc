package rest

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"storage-dashboard/internal/application/ports"
	"storage-dashboard/internal/application/services"
	domain "storage-dashboard/internal/domain/file"
	"storage-dashboard/internal/infrastructure/backend"
	dtoFile "storage-dashboard/internal/interface/api/rest/dto/file"
	"storage-dashboard/internal/interface/api/rest/middleware"
	"storage-dashboard/internal/interface/api/rest/validator"
)

// 10MB
const maxUploadSize = int64(10 << 20)

type FileController struct {
	logger    *zap.Logger
	directory ports.DirectoryService
	uploader  ports.UploadService
	links     ports.LinkService
}

func NewFileController(
	r *gin.Engine,
	logger *zap.Logger,
	directory ports.DirectoryService,
	uploader ports.UploadService,
	links ports.LinkService,
	guard ports.Guard,
) *FileController {
	fc := &FileController{
		logger:    logger,
		directory: directory,
		uploader:  uploader,
		links:     links,
	}

	protected := middleware.SessionGuard(guard)
	r.GET(RouteFiles, protected, fc.ListFilesHandler)
	r.GET(RouteFilesCategory, protected, fc.ListCategoryHandler)
	r.POST(RouteFileUpload, protected, fc.UploadHandler)
	r.PUT(RouteFile, protected, fc.RenameHandler)
	r.DELETE(RouteFile, protected, fc.DeleteHandler)
	r.GET(RouteFilePreview, protected, fc.PreviewHandler)
	r.GET(RouteFileDownload, protected, fc.DownloadHandler)

	return fc
}

func (fc *FileController) ListFilesHandler(c *gin.Context) {
	s, ok := middleware.SessionFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"redirect": LoginRedirect})
		return
	}

	files, err := fc.directory.ListAll(c.Request.Context(), s)
	if err != nil {
		fc.respondBackendError(c, "ListAll", err)
		return
	}

	c.JSON(http.StatusOK, dtoFile.ResponseData{
		Data: dtoFile.ToResponseFiles(files),
	})
}

func (fc *FileController) ListCategoryHandler(c *gin.Context) {
	s, ok := middleware.SessionFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"redirect": LoginRedirect})
		return
	}

	category, ok := domain.ParseCategory(c.Param("category"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "unknown category"},
		)
		return
	}

	files, err := fc.directory.ListByCategory(c.Request.Context(), s, category)
	if err != nil {
		fc.respondBackendError(c, "ListByCategory", err)
		return
	}

	c.JSON(http.StatusOK, dtoFile.ResponseData{
		Data: dtoFile.ToResponseFiles(files),
	})
}

func (fc *FileController) UploadHandler(c *gin.Context) {
	s, ok := middleware.SessionFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"redirect": LoginRedirect})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "multipart form is required"})
		return
	}
	headers := form.File["files"]
	if len(headers) == 0 {
		headers = form.File["file"]
	}
	if len(headers) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	var opened []multipart.File
	defer func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}()

	batch := make([]ports.UploadInput, 0, len(headers))
	for _, fh := range headers {
		if fh.Size <= 0 || fh.Size > maxUploadSize {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large or empty"})
			return
		}
		f, openErr := fh.Open()
		if openErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read uploaded file"})
			return
		}
		opened = append(opened, f)
		batch = append(batch, ports.UploadInput{
			Filename: fh.Filename,
			MimeType: fh.Header.Get("Content-Type"),
			Size:     fh.Size,
			Content:  f,
		})
	}

	res, err := fc.uploader.Upload(c.Request.Context(), s, batch)
	if err != nil {
		if errors.Is(err, services.ErrUploadInFlight) {
			c.JSON(http.StatusConflict, gin.H{"error": "an upload is already in progress"})
			return
		}
		status := http.StatusBadGateway
		body := gin.H{"error": "Upload failed. Please try again."}
		if res != nil {
			body["uploaded"] = res.Uploaded
		}
		c.JSON(status, body)
		fc.logger.Error("Upload() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  fmt.Sprintf("Successfully uploaded %d file(s)!", res.Uploaded),
		"uploaded": res.Uploaded,
	})
}

func (fc *FileController) RenameHandler(c *gin.Context) {
	s, ok := middleware.SessionFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"redirect": LoginRedirect})
		return
	}
	id, ok := fileIDParam(c)
	if !ok {
		return
	}

	var req struct {
		Filename string `json:"filename"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if errs := validator.ValidateFilename(req.Filename); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	if err := fc.directory.Rename(c.Request.Context(), s, id, req.Filename); err != nil {
		if errors.Is(err, services.ErrFileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
			return
		}
		fc.respondBackendError(c, "Rename", err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (fc *FileController) DeleteHandler(c *gin.Context) {
	s, ok := middleware.SessionFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"redirect": LoginRedirect})
		return
	}
	id, ok := fileIDParam(c)
	if !ok {
		return
	}

	if err := fc.directory.Remove(c.Request.Context(), s, id); err != nil {
		fc.respondBackendError(c, "Remove", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// PreviewHandler resolves a fresh view URL and tells the view how to present
// it: images inline, video/audio/pdf/text in a new browsing context, anything
// else an explicit unavailable state naming the MIME type.
func (fc *FileController) PreviewHandler(c *gin.Context) {
	s, ok := middleware.SessionFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"redirect": LoginRedirect})
		return
	}
	id, ok := fileIDParam(c)
	if !ok {
		return
	}

	files, err := fc.directory.ListAll(c.Request.Context(), s)
	if err != nil {
		fc.respondBackendError(c, "ListAll", err)
		return
	}
	record := files.Find(id)
	if record == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
		return
	}

	var url string
	if domain.PreviewModeFor(record.MimeType) != domain.PreviewUnavailable {
		url = fc.links.ResolveViewURL(c.Request.Context(), s, id)
	}

	c.JSON(http.StatusOK, dtoFile.ToResponsePreview(*record, url))
}

func (fc *FileController) DownloadHandler(c *gin.Context) {
	s, ok := middleware.SessionFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"redirect": LoginRedirect})
		return
	}
	id, ok := fileIDParam(c)
	if !ok {
		return
	}

	link := fc.links.ResolveDownloadURL(c.Request.Context(), s, id)
	if link == nil {
		c.JSON(http.StatusOK, dtoFile.Download{Available: false})
		return
	}

	c.JSON(http.StatusOK, dtoFile.Download{
		Available:   true,
		DownloadURL: link.URL,
		Filename:    link.Filename,
	})
}

func (fc *FileController) respondBackendError(c *gin.Context, op string, err error) {
	if backend.IsAuthFailure(err) {
		c.JSON(http.StatusUnauthorized, gin.H{"redirect": LoginRedirect})
		return
	}
	c.JSON(
		http.StatusBadGateway,
		gin.H{"error": "storage backend unavailable"},
	)
	fc.logger.Error(op+"() error", zap.Error(err))
}

func fileIDParam(c *gin.Context) (domain.ID, bool) {
	raw := c.Param("file_id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "file_id must be a positive integer"},
		)
		return 0, false
	}
	return domain.ID(id), true
}
