package handler

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bulletin-board-api/internal/dto"
	"bulletin-board-api/internal/response"
	"bulletin-board-api/internal/service"
)

// formFieldFiles is the multipart field carrying uploads
const formFieldFiles = "files"

// FileHandler handles file attachment requests
type FileHandler struct {
	fileService service.FileService
	logger      *zap.Logger
}

// NewFileHandler creates a new FileHandler
func NewFileHandler(fileService service.FileService, logger *zap.Logger) *FileHandler {
	return &FileHandler{
		fileService: fileService,
		logger:      logger,
	}
}

// UploadFiles godoc
// @Summary      첨부 파일 업로드
// @Description  multipart 요청의 files 필드로 전달된 파일을 게시글에 첨부합니다
// @Description  하나라도 실패하면 이번 요청으로 저장된 파일은 모두 삭제됩니다
// @Tags         files
// @Accept       multipart/form-data
// @Produce      json
// @Param        id path int true "게시글 ID"
// @Param        files formData file true "업로드할 파일 (여러 개 가능)"
// @Success      200 {object} dto.UploadFilesResponse "Files uploaded successfully"
// @Failure      400 {object} response.ErrorResponse "No files part in the request"
// @Failure      404 {object} response.ErrorResponse "게시글을 찾을 수 없습니다."
// @Failure      413 {object} response.ErrorResponse "파일 크기 초과"
// @Router       /board/{id}/file/upload [post]
func (h *FileHandler) UploadFiles(c *gin.Context) {
	boardID, ok := parseID(c, "id")
	if !ok {
		return
	}

	form, err := c.MultipartForm()
	if err != nil || len(form.File[formFieldFiles]) == 0 {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "No files part in the request")
		return
	}

	headers := form.File[formFieldFiles]
	uploads := make([]service.UploadedFile, 0, len(headers))
	for _, fh := range headers {
		uploads = append(uploads, uploadedFile(fh))
	}

	files, err := h.fileService.UploadFiles(c.Request.Context(), boardID, uploads)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.UploadFilesResponse{
		Success: true,
		Message: "Files uploaded successfully",
		Files:   files,
	})
}

func uploadedFile(fh *multipart.FileHeader) service.UploadedFile {
	return service.UploadedFile{
		Filename: fh.Filename,
		Size:     fh.Size,
		Open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}

// DownloadFile godoc
// @Summary      첨부 파일 다운로드
// @Tags         files
// @Produce      octet-stream
// @Param        filename path string true "저장된 파일 이름"
// @Success      200 {file} file "파일 내용"
// @Failure      400 {object} response.ErrorResponse "잘못된 파일 이름"
// @Failure      404 {object} response.ErrorResponse "File not found"
// @Router       /uploads/{filename} [get]
func (h *FileHandler) DownloadFile(c *gin.Context) {
	filename := c.Param("filename")

	rc, info, err := h.fileService.OpenFile(c.Request.Context(), filename)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	defer rc.Close()

	contentType := mime.TypeByExtension(filepath.Ext(filename))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	c.DataFromReader(http.StatusOK, info.Size, contentType, rc, map[string]string{
		"Content-Disposition": mime.FormatMediaType("attachment", map[string]string{"filename": filename}),
	})
}

// DeleteFile godoc
// @Summary      첨부 파일 삭제
// @Tags         files
// @Produce      json
// @Param        id path int true "게시글 ID"
// @Param        fileId query int true "파일 ID"
// @Success      200 {object} response.MessageResponse "파일이 삭제되었습니다."
// @Failure      400 {object} response.ErrorResponse "fileId 누락"
// @Failure      404 {object} response.ErrorResponse "파일을 찾을 수 없습니다."
// @Router       /board/{id}/file/delete [delete]
func (h *FileHandler) DeleteFile(c *gin.Context) {
	boardID, ok := parseID(c, "id")
	if !ok {
		return
	}

	fileID, err := parseQueryID(c.Query("fileId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, err.Error())
		return
	}

	if err := h.fileService.DeleteFile(c.Request.Context(), boardID, fileID); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendMessage(c, http.StatusOK, true, "파일이 삭제되었습니다.")
}

func parseQueryID(raw string) (uint, error) {
	if raw == "" {
		return 0, errors.New("fileId is required")
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid fileId: %s", raw)
	}
	return uint(id), nil
}
