package pgrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/fsdevblog/groph-gamestore/internal/domain"
	"github.com/fsdevblog/groph-gamestore/internal/repository/repoargs"
	"github.com/fsdevblog/groph-gamestore/pkg/uow"
)

type CommentRepository struct {
	db uow.DBTX
}

func NewCommentRepository(db uow.DBTX) *CommentRepository {
	return &CommentRepository{db: db}
}

const commentColumns = `id, created_at, updated_at, game_id, parent_id, name, body, status`

func (c *CommentRepository) Create(ctx context.Context, args repoargs.CommentCreate) (*domain.Comment, error) {
	row := c.db.QueryRow(ctx, `
		INSERT INTO comments (game_id, parent_id, name, body, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+commentColumns,
		args.GameID, args.ParentID, args.Name, args.Body, args.Status,
	)
	comment, err := scanComment(row)
	if err != nil {
		return nil, convertErr(err, "creating comment for game `%d`", args.GameID)
	}
	return comment, nil
}

func (c *CommentRepository) FindByID(ctx context.Context, commentID int64) (*domain.Comment, error) {
	row := c.db.QueryRow(ctx,
		`SELECT `+commentColumns+` FROM comments WHERE id = $1`, commentID,
	)
	comment, err := scanComment(row)
	if err != nil {
		return nil, convertErr(err, "finding comment by id `%d`", commentID)
	}
	return comment, nil
}

// GetByGameID возвращает все комментарии игры (включая удаленные) в порядке создания.
// Сборка дерева из плоского списка - забота сервисного слоя.
func (c *CommentRepository) GetByGameID(ctx context.Context, gameID int64) ([]domain.Comment, error) {
	rows, err := c.db.Query(ctx,
		`SELECT `+commentColumns+` FROM comments WHERE game_id = $1 ORDER BY id`, gameID,
	)
	if err != nil {
		return nil, convertErr(err, "getting comments of game `%d`", gameID)
	}
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		comment, scanErr := scanComment(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "getting comments of game `%d`", gameID)
		}
		comments = append(comments, *comment)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting comments of game `%d`", gameID)
	}
	return comments, nil
}

// MarkDeleted выполняет мягкое удаление: статус DELETED и тело-заглушка вместо
// оригинального текста. Дочерние комментарии не трогаем.
func (c *CommentRepository) MarkDeleted(ctx context.Context, commentID int64, placeholder string) (*domain.Comment, error) {
	row := c.db.QueryRow(ctx, `
		UPDATE comments SET status = $1, body = $2, updated_at = now()
		WHERE id = $3
		RETURNING `+commentColumns,
		domain.CommentStatusDeleted, placeholder, commentID,
	)
	comment, err := scanComment(row)
	if err != nil {
		return nil, convertErr(err, "deleting comment `%d`", commentID)
	}
	return comment, nil
}

func scanComment(row pgx.Row) (*domain.Comment, error) {
	var comment domain.Comment
	err := row.Scan(
		&comment.ID, &comment.CreatedAt, &comment.UpdatedAt, &comment.GameID,
		&comment.ParentID, &comment.Name, &comment.Body, &comment.Status,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &comment, nil
}
