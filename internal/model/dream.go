package model

import (
	"time"

	"github.com/google/uuid"
)

// Dream 夢境日記
type Dream struct {
	ID                int               `json:"id" db:"id"`
	DreamID           uuid.UUID         `json:"dream_id" db:"dream_id"`
	UserID            string            `json:"user_id" db:"user_id"`
	Title             string            `json:"title" db:"title"`
	Content           string            `json:"content" db:"content"`
	Tags              []string          `json:"tags" db:"tags"`
	HasGeneratedImage bool              `json:"has_generated_image" db:"has_generated_image"`
	CreatedAt         time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at" db:"updated_at"`
	DeletedAt         *time.Time        `json:"deleted_at,omitempty" db:"deleted_at"`
	GeneratedImages   []*GeneratedImage `json:"generated_images" db:"-"`
}

// IsDeleted 檢查夢境是否已刪除
func (d *Dream) IsDeleted() bool {
	return d.DeletedAt != nil
}

type UpdateDreamParams struct {
	Title   *string
	Content *string
	Tags    *[]string
}

type CreateDreamRequest struct {
	Title   string   `json:"title" binding:"required"`
	Content string   `json:"content" binding:"required"`
	Tags    []string `json:"tags"`
}

type UpdateDreamRequest struct {
	Title   *string   `json:"title"`
	Content *string   `json:"content"`
	Tags    *[]string `json:"tags"`
}

// ToParams 轉成 repository 使用的更新參數
func (r UpdateDreamRequest) ToParams() UpdateDreamParams {
	return UpdateDreamParams{Title: r.Title, Content: r.Content, Tags: r.Tags}
}
