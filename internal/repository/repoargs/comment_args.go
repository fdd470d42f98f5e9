package repoargs

import "github.com/fsdevblog/groph-gamestore/internal/domain"

type CommentCreate struct {
	GameID   int64
	ParentID *int64
	Name     string
	Body     string
	Status   domain.CommentStatusType
}
