package domain

import "path"

// UploadPathPrefix is prepended to stored names to build FilePath
const UploadPathPrefix = "uploads"

// File is the metadata row for one stored upload
type File struct {
	ID             uint   `gorm:"column:file_id;primaryKey;autoIncrement" json:"fileId"`
	OriginFileName string `gorm:"type:varchar(255);not null" json:"originFileName"`
	FilePath       string `gorm:"type:varchar(512);not null;uniqueIndex:idx_files_file_path" json:"filePath"`
	BoardID        uint   `gorm:"not null;index:idx_files_board_id" json:"boardId"`
	Timestamps
	Board *Board `gorm:"foreignKey:BoardID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for File
func (File) TableName() string {
	return "files"
}

// StoredName returns the storage key encoded in FilePath
func (f File) StoredName() string {
	return path.Base(f.FilePath)
}

// FilePathFor builds the FilePath value for a stored name
func FilePathFor(storedName string) string {
	return UploadPathPrefix + "/" + storedName
}
