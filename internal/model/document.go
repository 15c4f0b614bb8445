package model

import "time"

type Document struct {
	ID          int64
	Title       string
	Content     string
	Description string
	Created     time.Time
	UserID      *int64
}

type DocumentCreateRequest struct {
	Title       string `json:"title" binding:"required"`
	Content     string `json:"content" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// DocumentUpdateRequest carries a partial update; empty fields keep the
// stored values.
type DocumentUpdateRequest struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	Description string `json:"description"`
}

type DocumentResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Description string    `json:"description"`
	Created     time.Time `json:"created"`
}

// DocumentListItem is the trimmed shape used by listings. Created is
// serialized as RFC3339 text so cached listings stay byte-stable.
type DocumentListItem struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Created string `json:"created"`
}

type DocumentPageResponse struct {
	Documents []DocumentListItem `json:"documents"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	PerPage   int                `json:"perPage"`
}

type SimilarityResponse struct {
	FirstID    int64   `json:"first"`
	SecondID   int64   `json:"second"`
	Similarity float64 `json:"similarity"`
}

func (d *Document) ToResponse() DocumentResponse {
	return DocumentResponse{
		ID:          d.ID,
		Title:       d.Title,
		Content:     d.Content,
		Description: d.Description,
		Created:     d.Created,
	}
}

func (d *Document) ToListItem() DocumentListItem {
	return DocumentListItem{
		ID:      d.ID,
		Title:   d.Title,
		Created: d.Created.UTC().Format(time.RFC3339),
	}
}
