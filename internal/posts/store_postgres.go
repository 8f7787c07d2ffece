// Copyright (c) 2026 Inkwell. All rights reserved.

package posts

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/inkwell-dev/inkwell/internal/platform/database/schema"
	"github.com/inkwell-dev/inkwell/internal/platform/dberr"
	"github.com/inkwell-dev/inkwell/pkg/uuidv7"
)

// PostgresRepository implements [Repository] on top of a pgx connection pool.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) CreatePost(context context.Context, p *Post) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING %s
	`,
		schema.RefPost.Table, schema.RefPost.ID, schema.RefPost.AuthorFirstName, schema.RefPost.AuthorLastName,
		schema.RefPost.Title, schema.RefPost.Content, schema.RefPost.CreatedAt,
		schema.RefPost.CreatedAt,
	)

	p.ID = uuidv7.New()

	err := repository.db.QueryRow(context, query,
		p.ID, p.AuthorFirstName, p.AuthorLastName, p.Title, p.Content,
	).Scan(&p.CreatedAt)
	return dberr.Wrap(err, "create_post")
}

func (repository *PostgresRepository) InsertPosts(context context.Context, records []*Post) error {
	if len(records) == 0 {
		return nil
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING %s
	`,
		schema.RefPost.Table, schema.RefPost.ID, schema.RefPost.AuthorFirstName, schema.RefPost.AuthorLastName,
		schema.RefPost.Title, schema.RefPost.Content, schema.RefPost.CreatedAt,
		schema.RefPost.CreatedAt,
	)

	// One round trip for the whole seed set.
	batch := &pgx.Batch{}
	for _, record := range records {
		record.ID = uuidv7.New()
		batch.Queue(query, record.ID, record.AuthorFirstName, record.AuthorLastName, record.Title, record.Content)
	}

	results := repository.db.SendBatch(context, batch)

	for _, record := range records {
		if err := results.QueryRow().Scan(&record.CreatedAt); err != nil {
			_ = results.Close()
			return dberr.Wrap(err, "insert_posts")
		}
	}

	return dberr.Wrap(results.Close(), "insert_posts_close")
}

func (repository *PostgresRepository) ListPosts(context context.Context) ([]*Post, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
	`,
		schema.RefPost.ID, schema.RefPost.AuthorFirstName, schema.RefPost.AuthorLastName,
		schema.RefPost.Title, schema.RefPost.Content, schema.RefPost.CreatedAt,
		schema.RefPost.Table,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_posts")
	}
	defer rows.Close()

	var records []*Post
	for rows.Next() {
		p := &Post{}
		if err := rows.Scan(&p.ID, &p.AuthorFirstName, &p.AuthorLastName, &p.Title, &p.Content, &p.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_post")
		}
		records = append(records, p)
	}

	return records, dberr.Wrap(rows.Err(), "list_posts_rows")
}

func (repository *PostgresRepository) GetPost(context context.Context, id string) (*Post, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.RefPost.ID, schema.RefPost.AuthorFirstName, schema.RefPost.AuthorLastName,
		schema.RefPost.Title, schema.RefPost.Content, schema.RefPost.CreatedAt,
		schema.RefPost.Table, schema.RefPost.ID,
	)
	p := &Post{}

	err := repository.db.QueryRow(context, query, id).Scan(
		&p.ID, &p.AuthorFirstName, &p.AuthorLastName, &p.Title, &p.Content, &p.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_post")
	}

	return p, nil
}

func (repository *PostgresRepository) GetAnyPost(context context.Context) (*Post, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		LIMIT 1
	`,
		schema.RefPost.ID, schema.RefPost.AuthorFirstName, schema.RefPost.AuthorLastName,
		schema.RefPost.Title, schema.RefPost.Content, schema.RefPost.CreatedAt,
		schema.RefPost.Table,
	)
	p := &Post{}

	err := repository.db.QueryRow(context, query).Scan(
		&p.ID, &p.AuthorFirstName, &p.AuthorLastName, &p.Title, &p.Content, &p.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_any_post")
	}

	return p, nil
}

func (repository *PostgresRepository) UpdatePost(context context.Context, id string, patch Patch) error {
	// COALESCE keeps columns untouched for nil patch fields. CreatedAt is
	// deliberately absent from the SET list.
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = COALESCE($2, %s),
		    %s = COALESCE($3, %s),
		    %s = COALESCE($4, %s),
		    %s = COALESCE($5, %s)
		WHERE %s = $1
	`,
		schema.RefPost.Table,
		schema.RefPost.AuthorFirstName, schema.RefPost.AuthorFirstName,
		schema.RefPost.AuthorLastName, schema.RefPost.AuthorLastName,
		schema.RefPost.Title, schema.RefPost.Title,
		schema.RefPost.Content, schema.RefPost.Content,
		schema.RefPost.ID,
	)

	cmd, err := repository.db.Exec(context, query,
		id, patch.AuthorFirstName, patch.AuthorLastName, patch.Title, patch.Content,
	)
	if err != nil {
		return dberr.Wrap(err, "update_post")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) DeletePost(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.RefPost.Table, schema.RefPost.ID,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_post")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
