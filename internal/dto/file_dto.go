package dto

import "bulletin-board-api/internal/domain"

// FileResponse is the file entry shown in a board detail
type FileResponse struct {
	FileID         uint   `json:"fileId"`
	OriginFileName string `json:"originFileName"`
	FilePath       string `json:"filePath"`
}

// UploadFilesResponse is returned after a successful upload batch
type UploadFilesResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Files   []FileResponse `json:"files"`
}

// NewFileResponses converts file rows, never returning nil
func NewFileResponses(files []*domain.File) []FileResponse {
	result := make([]FileResponse, 0, len(files))
	for _, f := range files {
		result = append(result, FileResponse{
			FileID:         f.ID,
			OriginFileName: f.OriginFileName,
			FilePath:       f.FilePath,
		})
	}
	return result
}
