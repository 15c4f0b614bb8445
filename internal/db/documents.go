package db

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/docsim/backend/internal/model"
)

func (db *Postgres) CreateDocument(ctx context.Context, title, content, description string, userID *int64) (*model.Document, error) {
	query := `
		INSERT INTO documents (title, content, description, created, user_id)
		VALUES ($1, $2, $3, NOW(), $4)
		RETURNING id, title, content, description, created, user_id
	`
	var doc model.Document
	err := db.Pool.QueryRow(ctx, query, title, content, description, userID).Scan(
		&doc.ID,
		&doc.Title,
		&doc.Content,
		&doc.Description,
		&doc.Created,
		&doc.UserID,
	)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (db *Postgres) GetDocumentByID(ctx context.Context, id int64) (*model.Document, error) {
	query := `
		SELECT id, title, content, description, created, user_id
		FROM documents
		WHERE id = $1
	`
	var doc model.Document
	err := db.Pool.QueryRow(ctx, query, id).Scan(
		&doc.ID,
		&doc.Title,
		&doc.Content,
		&doc.Description,
		&doc.Created,
		&doc.UserID,
	)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (db *Postgres) GetDocumentByTitle(ctx context.Context, title string) (*model.Document, error) {
	query := `
		SELECT id, title, content, description, created, user_id
		FROM documents
		WHERE title = $1
		LIMIT 1
	`
	var doc model.Document
	err := db.Pool.QueryRow(ctx, query, title).Scan(
		&doc.ID,
		&doc.Title,
		&doc.Content,
		&doc.Description,
		&doc.Created,
		&doc.UserID,
	)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (db *Postgres) GetAllDocuments(ctx context.Context) ([]model.Document, error) {
	query := `
		SELECT id, title, content, description, created, user_id
		FROM documents
		ORDER BY id
	`
	rows, err := db.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDocuments(rows)
}

// GetDocumentsPaginated returns one page of documents ordered by id plus the
// total document count.
func (db *Postgres) GetDocumentsPaginated(ctx context.Context, p model.Pagination) ([]model.Document, int64, error) {
	order := "DESC"
	if p.Order == model.SortAsc {
		order = "ASC"
	}

	query := `
		SELECT id, title, content, description, created, user_id
		FROM documents
		ORDER BY id ` + order + `
		LIMIT $1 OFFSET $2
	`
	rows, err := db.Pool.Query(ctx, query, p.PerPage, p.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	docs, err := scanDocuments(rows)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM documents`).Scan(&total); err != nil {
		return nil, 0, err
	}

	return docs, total, nil
}

// UpdateDocument applies a partial update: empty fields keep stored values.
func (db *Postgres) UpdateDocument(ctx context.Context, id int64, update model.DocumentUpdateRequest) (*model.Document, error) {
	query := `
		UPDATE documents
		SET
			title = COALESCE(NULLIF($1, ''), title),
			content = COALESCE(NULLIF($2, ''), content),
			description = COALESCE(NULLIF($3, ''), description)
		WHERE id = $4
		RETURNING id, title, content, description, created, user_id
	`
	var doc model.Document
	err := db.Pool.QueryRow(ctx, query, update.Title, update.Content, update.Description, id).Scan(
		&doc.ID,
		&doc.Title,
		&doc.Content,
		&doc.Description,
		&doc.Created,
		&doc.UserID,
	)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (db *Postgres) DeleteDocument(ctx context.Context, id int64) (*model.Document, error) {
	query := `
		DELETE FROM documents
		WHERE id = $1
		RETURNING id, title, content, description, created, user_id
	`
	var doc model.Document
	err := db.Pool.QueryRow(ctx, query, id).Scan(
		&doc.ID,
		&doc.Title,
		&doc.Content,
		&doc.Description,
		&doc.Created,
		&doc.UserID,
	)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func scanDocuments(rows pgx.Rows) ([]model.Document, error) {
	var docs []model.Document
	for rows.Next() {
		var doc model.Document
		if err := rows.Scan(
			&doc.ID,
			&doc.Title,
			&doc.Content,
			&doc.Description,
			&doc.Created,
			&doc.UserID,
		); err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	if docs == nil {
		docs = []model.Document{}
	}
	return docs, rows.Err()
}
