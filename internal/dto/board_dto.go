package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Search options accepted by the board list
const (
	SearchOptionTitle   = "title"
	SearchOptionContent = "content"
	SearchOptionWriter  = "writer"
)

// BoardSearch holds the optional list filter. Unknown options are ignored.
type BoardSearch struct {
	Option  string
	Keyword string
}

// Active reports whether the filter should be applied
func (s BoardSearch) Active() bool {
	if s.Option == "" || s.Keyword == "" {
		return false
	}
	switch s.Option {
	case SearchOptionTitle, SearchOptionContent, SearchOptionWriter:
		return true
	default:
		return false
	}
}

// OptionalID accepts a JSON number, a numeric string, or null
type OptionalID struct {
	Value *uint
}

// UnmarshalJSON implements json.Unmarshaler
func (o *OptionalID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		o.Value = nil
		return nil
	}

	raw := string(data)
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			o.Value = nil
			return nil
		}
		raw = s
	}

	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		return fmt.Errorf("invalid id %q", raw)
	}
	v := uint(n)
	o.Value = &v
	return nil
}

// MarshalJSON implements json.Marshaler
func (o OptionalID) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.Value)
}

// WriteBoardRequest represents the request to create a board
type WriteBoardRequest struct {
	Title    string     `json:"title" binding:"required,max=255" example:"첫 번째 게시글"`
	Content  string     `json:"content" example:"본문 내용"`
	WriterID OptionalID `json:"writerId" swaggertype:"integer" example:"1"`
}

// UpdateBoardRequest represents the request to overwrite a board's title and content
type UpdateBoardRequest struct {
	Title   string `json:"title" binding:"required,max=255" example:"수정된 제목"`
	Content string `json:"content" example:"수정된 본문"`
}

// BoardListItem is one row of the board list
type BoardListItem struct {
	ID          uint      `json:"id" gorm:"column:id"`
	Title       string    `json:"title" gorm:"column:title"`
	Content     string    `json:"content" gorm:"column:content"`
	ViewCount   int64     `json:"viewCount" gorm:"column:view_count"`
	CreatedDate time.Time `json:"createdDate" gorm:"column:created_date"`
	Writer      *string   `json:"writer" gorm:"column:writer"`
}

// BoardListResponse is the paginated board list
type BoardListResponse struct {
	Content       []BoardListItem `json:"content"`
	TotalElements int64           `json:"totalElements"`
	TotalPages    int             `json:"totalPages"`
}

// BoardDetailResponse is a board with its writer and files
type BoardDetailResponse struct {
	ID           uint           `json:"id"`
	Title        string         `json:"title"`
	Content      string         `json:"content"`
	ViewCount    int64          `json:"viewCount"`
	CreatedDate  time.Time      `json:"createdDate"`
	ModifiedDate time.Time      `json:"modifiedDate"`
	WriterEmail  *string        `json:"writerEmail"`
	WriterName   *string        `json:"writerName"`
	Files        []FileResponse `json:"files"`
}

// WriteBoardResponse is returned after a board is created
type WriteBoardResponse struct {
	BoardID uint `json:"boardId" example:"1"`
}

// UpdateBoardResponse is returned after a board is updated
type UpdateBoardResponse struct {
	Message string `json:"message"`
	BoardID uint   `json:"boardId"`
}
