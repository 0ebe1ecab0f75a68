package repository

import (
	"context"
	"dream-diary-api/internal/model"
	apperrors "dream-diary-api/pkg/app_errors"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DreamRepository interface {
	Create(ctx context.Context, dream *model.Dream) (*model.Dream, error)
	ListByUser(ctx context.Context, userID string) ([]*model.Dream, error)
	FindByDreamID(ctx context.Context, userID string, dreamID uuid.UUID) (*model.Dream, error)
	Update(ctx context.Context, userID string, dreamID uuid.UUID, params model.UpdateDreamParams) (*model.Dream, error)
	Delete(ctx context.Context, userID string, dreamID uuid.UUID) error

	// AddImage 寫入生圖結果並標記夢境已有圖片 (同一個 transaction)
	AddImage(ctx context.Context, userID string, dreamID uuid.UUID, image *model.GeneratedImage) (*model.GeneratedImage, error)
}

type DreamRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewDreamRepository(pool *pgxpool.Pool) DreamRepository {
	return &DreamRepositoryImpl{
		pool: pool,
	}
}

func (r *DreamRepositoryImpl) Create(ctx context.Context, dream *model.Dream) (*model.Dream, error) {
	query := `
		INSERT INTO dreams (dream_id, user_id, title, content, tags)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, dream_id, user_id, title, content, tags,
			has_generated_image, created_at, updated_at
	`

	if dream.Tags == nil {
		dream.Tags = []string{}
	}

	err := r.pool.QueryRow(ctx, query,
		dream.DreamID, dream.UserID, dream.Title, dream.Content, dream.Tags,
	).Scan(
		&dream.ID,
		&dream.DreamID,
		&dream.UserID,
		&dream.Title,
		&dream.Content,
		&dream.Tags,
		&dream.HasGeneratedImage,
		&dream.CreatedAt,
		&dream.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	dream.GeneratedImages = []*model.GeneratedImage{}
	return dream, nil
}

func (r *DreamRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]*model.Dream, error) {
	query := `
		SELECT id, dream_id, user_id, title, content, tags,
				has_generated_image, created_at, updated_at, deleted_at
		FROM dreams
		WHERE user_id = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dreams := make([]*model.Dream, 0)

	for rows.Next() {
		var dream model.Dream
		err := rows.Scan(
			&dream.ID,
			&dream.DreamID,
			&dream.UserID,
			&dream.Title,
			&dream.Content,
			&dream.Tags,
			&dream.HasGeneratedImage,
			&dream.CreatedAt,
			&dream.UpdatedAt,
			&dream.DeletedAt,
		)
		if err != nil {
			return nil, err
		}
		dream.GeneratedImages = []*model.GeneratedImage{}
		dreams = append(dreams, &dream)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return dreams, nil
}

func (r *DreamRepositoryImpl) FindByDreamID(ctx context.Context, userID string, dreamID uuid.UUID) (*model.Dream, error) {
	query := `
		SELECT id, dream_id, user_id, title, content, tags,
				has_generated_image, created_at, updated_at, deleted_at
		FROM dreams
		WHERE dream_id = $1 AND user_id = $2 AND deleted_at IS NULL
	`

	var dream model.Dream
	err := r.pool.QueryRow(ctx, query, dreamID, userID).Scan(
		&dream.ID,
		&dream.DreamID,
		&dream.UserID,
		&dream.Title,
		&dream.Content,
		&dream.Tags,
		&dream.HasGeneratedImage,
		&dream.CreatedAt,
		&dream.UpdatedAt,
		&dream.DeletedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDreamNotFound
		}
		return nil, err
	}

	images, err := r.listImages(ctx, dream.ID)
	if err != nil {
		return nil, err
	}
	dream.GeneratedImages = images

	return &dream, nil
}

func (r *DreamRepositoryImpl) listImages(ctx context.Context, dreamPK int) ([]*model.GeneratedImage, error) {
	query := `
		SELECT id, image_id, url, prompt, style, quality, cost, generated_at
		FROM dream_images
		WHERE dream_id = $1
		ORDER BY generated_at ASC
	`

	rows, err := r.pool.Query(ctx, query, dreamPK)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	images := make([]*model.GeneratedImage, 0)
	for rows.Next() {
		var image model.GeneratedImage
		err := rows.Scan(
			&image.ID,
			&image.ImageID,
			&image.URL,
			&image.Prompt,
			&image.Style,
			&image.Quality,
			&image.Cost,
			&image.GeneratedAt,
		)
		if err != nil {
			return nil, err
		}
		images = append(images, &image)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return images, nil
}

func (r *DreamRepositoryImpl) Update(ctx context.Context, userID string, dreamID uuid.UUID, params model.UpdateDreamParams) (*model.Dream, error) {
	sets := []string{}
	args := []interface{}{}
	argPos := 1

	if params.Title != nil {
		sets = append(sets, fmt.Sprintf("title = $%d", argPos))
		args = append(args, *params.Title)
		argPos++
	}
	if params.Content != nil {
		sets = append(sets, fmt.Sprintf("content = $%d", argPos))
		args = append(args, *params.Content)
		argPos++
	}
	if params.Tags != nil {
		sets = append(sets, fmt.Sprintf("tags = $%d", argPos))
		args = append(args, *params.Tags)
		argPos++
	}

	if len(sets) == 0 {
		return nil, apperrors.ErrInvalidInput
	}

	// add updated_at
	sets = append(sets, fmt.Sprintf("updated_at = $%d", argPos))
	args = append(args, time.Now().UTC())
	argPos++

	// add dream_id, user_id
	args = append(args, dreamID, userID)

	query := fmt.Sprintf(`
		UPDATE dreams
		SET %s
		WHERE dream_id = $%d AND user_id = $%d AND deleted_at IS NULL
		RETURNING id, dream_id, user_id, title, content, tags,
			has_generated_image, created_at, updated_at
	`, strings.Join(sets, ", "), argPos, argPos+1)

	var dream model.Dream
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&dream.ID,
		&dream.DreamID,
		&dream.UserID,
		&dream.Title,
		&dream.Content,
		&dream.Tags,
		&dream.HasGeneratedImage,
		&dream.CreatedAt,
		&dream.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDreamNotFound
		}
		return nil, err
	}

	dream.GeneratedImages = []*model.GeneratedImage{}
	return &dream, nil
}

func (r *DreamRepositoryImpl) Delete(ctx context.Context, userID string, dreamID uuid.UUID) error {
	query := `
		UPDATE dreams
		SET deleted_at = $1, updated_at = $2
		WHERE dream_id = $3 AND user_id = $4 AND deleted_at IS NULL
	`

	now := time.Now().UTC()
	result, err := r.pool.Exec(ctx, query, now, now, dreamID, userID)
	if err != nil {
		return err
	}

	// check if dream exists and not already deleted
	if result.RowsAffected() == 0 {
		return apperrors.ErrDreamNotFound
	}

	return nil
}

func (r *DreamRepositoryImpl) AddImage(ctx context.Context, userID string, dreamID uuid.UUID, image *model.GeneratedImage) (*model.GeneratedImage, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	// 鎖住夢境，避免同時刪除
	var dreamPK int
	err = tx.QueryRow(ctx, `
		SELECT id
		FROM dreams
		WHERE dream_id = $1 AND user_id = $2 AND deleted_at IS NULL
		FOR UPDATE
	`, dreamID, userID).Scan(&dreamPK)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDreamNotFound
		}
		return nil, err
	}

	if image.ImageID == uuid.Nil {
		image.ImageID = uuid.New()
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO dream_images (image_id, dream_id, url, prompt, style, quality, cost, generated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`,
		image.ImageID, dreamPK, image.URL, image.Prompt,
		image.Style, image.Quality, image.Cost, image.GeneratedAt,
	).Scan(&image.ID)
	if err != nil {
		return nil, err
	}

	_, err = tx.Exec(ctx, `
		UPDATE dreams
		SET has_generated_image = TRUE, updated_at = $1
		WHERE id = $2
	`, time.Now().UTC(), dreamPK)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return image, nil
}
