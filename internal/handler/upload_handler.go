package handler

import (
	"io"
	"net/http"
	"os"
	"path/filepath"

	"artspace/internal/config"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// 画像アップロード。ローカルディスクに保存してURLを返す。
type UploadHandler struct {
	dir string
}

func NewUploadHandler(cfg config.Config) *UploadHandler {
	return &UploadHandler{dir: cfg.UploadDir}
}

type UploadResponse struct {
	URL     string `json:"url"`
	Message string `json:"message"`
}

func (h *UploadHandler) RegisterRoutes(api *echo.Group) {
	api.POST("/upload/image", h.uploadImage)
}

func (h *UploadHandler) uploadImage(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "please select a file to upload"})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid file"})
	}
	defer src.Close()

	//保存先ディレクトリが無ければ作る
	if err := os.MkdirAll(h.dir, 0o755); err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to upload file"})
	}

	//衝突しないファイル名を作る（元の拡張子は残す）
	filename := uuid.NewString() + filepath.Ext(fileHeader.Filename)

	dst, err := os.Create(filepath.Join(h.dir, filename))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to upload file"})
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to upload file"})
	}

	return c.JSON(http.StatusOK, UploadResponse{
		URL:     "/uploads/images/" + filename,
		Message: "file uploaded successfully",
	})
}
