package pgrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/fsdevblog/groph-gamestore/internal/domain"
	"github.com/fsdevblog/groph-gamestore/internal/repository/repoargs"
	"github.com/fsdevblog/groph-gamestore/pkg/uow"
)

type UserRepository struct {
	db uow.DBTX
}

func NewUserRepository(db uow.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, created_at, updated_at, username, password`

func (u *UserRepository) CreateUser(ctx context.Context, args repoargs.CreateUser) (*domain.User, error) {
	row := u.db.QueryRow(ctx,
		`INSERT INTO users (username, password) VALUES ($1, $2) RETURNING `+userColumns,
		args.Username, args.Password,
	)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "creating user `%s`", args.Username)
	}
	return user, nil
}

func (u *UserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	row := u.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = $1`, username,
	)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by username `%s`", username)
	}
	return user, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt, &user.Username, &user.Password)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &user, nil
}
