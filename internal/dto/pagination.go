package dto

import (
	"fmt"
	"strconv"
)

const (
	DefaultBoardPageSize   = 10
	DefaultCommentPageSize = 5
	MaxPageSize            = 100
)

// PageRequest is a zero-based page window
type PageRequest struct {
	Page int
	Size int
}

// Offset returns the number of rows to skip. Only call it for pages that are not PastEnd.
func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// PastEnd reports whether the page starts after the last of total rows
func (p PageRequest) PastEnd(total int64) bool {
	return p.Page >= TotalPages(total, p.Size)
}

// ParsePageRequest parses raw page and size query values. Empty values fall back
// to page 0 and defaultSize.
func ParsePageRequest(rawPage, rawSize string, defaultSize int) (PageRequest, error) {
	req := PageRequest{Page: 0, Size: defaultSize}

	if rawPage != "" {
		page, err := strconv.Atoi(rawPage)
		if err != nil {
			return req, fmt.Errorf("page must be an integer")
		}
		req.Page = page
	}
	if rawSize != "" {
		size, err := strconv.Atoi(rawSize)
		if err != nil {
			return req, fmt.Errorf("size must be an integer")
		}
		req.Size = size
	}

	if req.Page < 0 {
		return req, fmt.Errorf("page must be greater than or equal to 0")
	}
	if req.Size < 1 || req.Size > MaxPageSize {
		return req, fmt.Errorf("size must be between 1 and %d", MaxPageSize)
	}

	return req, nil
}

// TotalPages returns ceil(total/size)
func TotalPages(total int64, size int) int {
	if size <= 0 || total <= 0 {
		return 0
	}
	pages := total / int64(size)
	if total%int64(size) != 0 {
		pages++
	}
	return int(pages)
}
