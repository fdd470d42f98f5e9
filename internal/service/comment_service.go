package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fsdevblog/groph-gamestore/internal/domain"
	"github.com/fsdevblog/groph-gamestore/internal/repository/repoargs"
	"github.com/fsdevblog/groph-gamestore/pkg/uow"
)

// DeletedCommentPlaceholder текст, который видят читатели вместо тела удаленного
// комментария. Сам комментарий из дерева не пропадает - дочерним нужен контекст.
const DeletedCommentPlaceholder = "This comment was deleted"

type CommentService struct {
	uow         uow.UOW
	commentRepo CommentRepository
	gameRepo    GameRepository
	banRepo     BanRepository
	now         func() time.Time
}

func NewCommentService(u uow.UOW) (*CommentService, error) {
	commentRepo, commentRepoErr := uow.GetRepositoryAs[CommentRepository](u, uow.RepositoryName(repoargs.CommentRepoName))
	if commentRepoErr != nil {
		return nil, commentRepoErr
	}
	gameRepo, gameRepoErr := uow.GetRepositoryAs[GameRepository](u, uow.RepositoryName(repoargs.GameRepoName))
	if gameRepoErr != nil {
		return nil, gameRepoErr
	}
	banRepo, banRepoErr := uow.GetRepositoryAs[BanRepository](u, uow.RepositoryName(repoargs.BanRepoName))
	if banRepoErr != nil {
		return nil, banRepoErr
	}
	return &CommentService{
		uow:         u,
		commentRepo: commentRepo,
		gameRepo:    gameRepo,
		banRepo:     banRepo,
		now:         time.Now,
	}, nil
}

// SetNowFunc подменяет источник времени. Нужен тестам ленивого истечения банов.
func (s *CommentService) SetNowFunc(fn func() time.Time) *CommentService {
	s.now = fn
	return s
}

type PostCommentArgs struct {
	GameAlias string
	Name      string
	Body      string
	Action    domain.CommentActionType
	ParentID  *int64
}

// Post публикует комментарий к игре. Забаненный автор получает domain.ErrUserBanned
// еще до обращения к дереву.
//
// Действия:
//   - Reply: обычный ответ, тело как есть.
//   - Quote: тело родителя цитируется префиксом перед собственным текстом.
//
// Родитель (если указан) обязан существовать и принадлежать той же игре, иначе
// domain.ErrCommentParentNotFound. Quote без родителя деградирует до обычного
// корневого комментария - цитировать нечего.
func (s *CommentService) Post(ctx context.Context, args PostCommentArgs) (*domain.Comment, error) {
	banned, bannedErr := s.IsBanned(ctx, args.Name)
	if bannedErr != nil {
		return nil, bannedErr
	}
	if banned {
		return nil, domain.ErrUserBanned
	}

	var comment *domain.Comment

	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		commentRepo, commentRepoErr := uow.GetAs[CommentRepository](tx, uow.RepositoryName(repoargs.CommentRepoName))
		if commentRepoErr != nil {
			return commentRepoErr //nolint:wrapcheck
		}
		gameRepo, gameRepoErr := uow.GetAs[GameRepository](tx, uow.RepositoryName(repoargs.GameRepoName))
		if gameRepoErr != nil {
			return gameRepoErr //nolint:wrapcheck
		}

		game, gameErr := gameRepo.FindByAlias(c, args.GameAlias)
		if gameErr != nil {
			return gameErr //nolint:wrapcheck
		}

		body := args.Body
		status := domain.CommentStatusActive

		if args.ParentID != nil {
			parent, parentErr := commentRepo.FindByID(c, *args.ParentID)
			if parentErr != nil {
				if errors.Is(parentErr, domain.ErrRecordNotFound) {
					return domain.ErrCommentParentNotFound
				}
				return parentErr //nolint:wrapcheck
			}
			if parent.GameID != game.ID {
				return domain.ErrCommentParentNotFound
			}
			if args.Action == domain.CommentActionQuote {
				body = quoteBody(parent.Body, args.Body)
				status = domain.CommentStatusQuote
			}
		}

		var createErr error
		comment, createErr = commentRepo.Create(c, repoargs.CommentCreate{
			GameID:   game.ID,
			ParentID: args.ParentID,
			Name:     args.Name,
			Body:     body,
			Status:   status,
		})
		return createErr //nolint:wrapcheck
	})

	if txErr != nil {
		return nil, fmt.Errorf("posting comment: %w", txErr)
	}
	return comment, nil
}

// Delete мягко удаляет комментарий: тело заменяется заглушкой, статус - DELETED,
// дочерние комментарии остаются на месте. Повторное удаление -
// domain.ErrCommentAlreadyDeleted.
func (s *CommentService) Delete(ctx context.Context, commentID int64) (*domain.Comment, error) {
	var comment *domain.Comment

	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		commentRepo, commentRepoErr := uow.GetAs[CommentRepository](tx, uow.RepositoryName(repoargs.CommentRepoName))
		if commentRepoErr != nil {
			return commentRepoErr //nolint:wrapcheck
		}

		existing, findErr := commentRepo.FindByID(c, commentID)
		if findErr != nil {
			return findErr //nolint:wrapcheck
		}
		if existing.Status == domain.CommentStatusDeleted {
			return domain.ErrCommentAlreadyDeleted
		}

		var delErr error
		comment, delErr = commentRepo.MarkDeleted(c, commentID, DeletedCommentPlaceholder)
		return delErr //nolint:wrapcheck
	})

	if txErr != nil {
		return nil, fmt.Errorf("deleting comment: %w", txErr)
	}
	return comment, nil
}

// CommentNode узел дерева комментариев для отображения. Дочерние узлы держат id
// родителя, а не указатель на него, циклы тут невозможны.
type CommentNode struct {
	Comment  domain.Comment
	Children []*CommentNode
}

// GetThreaded возвращает лес комментариев игры: корневые комментарии с рекурсивно
// вложенными ответами, порядок создания сохранен на каждом уровне.
func (s *CommentService) GetThreaded(ctx context.Context, gameAlias string) ([]*CommentNode, error) {
	game, gameErr := s.gameRepo.FindByAlias(ctx, gameAlias)
	if gameErr != nil {
		return nil, gameErr //nolint:wrapcheck
	}

	comments, commentsErr := s.commentRepo.GetByGameID(ctx, game.ID)
	if commentsErr != nil {
		return nil, commentsErr //nolint:wrapcheck
	}

	return buildCommentForest(comments), nil
}

// buildCommentForest собирает дерево из плоского списка за два прохода: сначала
// узел на каждый комментарий, затем каждый узел цепляется к списку детей родителя
// (или к корневому списку). O(n) по числу комментариев.
func buildCommentForest(comments []domain.Comment) []*CommentNode {
	nodes := make(map[int64]*CommentNode, len(comments))
	for _, comment := range comments {
		nodes[comment.ID] = &CommentNode{Comment: comment}
	}

	var roots []*CommentNode
	for _, comment := range comments {
		node := nodes[comment.ID]
		if comment.ParentID == nil {
			roots = append(roots, node)
			continue
		}
		parent, ok := nodes[*comment.ParentID]
		if !ok {
			// битая ссылка на родителя - показываем комментарий как корневой,
			// а не теряем его.
			roots = append(roots, node)
			continue
		}
		parent.Children = append(parent.Children, node)
	}
	return roots
}

// quoteBody строит тело цитирующего комментария: строки родителя с префиксом "> ",
// затем собственный текст. Чистое строковое преобразование, структуру дерева не меняет.
func quoteBody(parentBody, ownBody string) string {
	lines := strings.Split(parentBody, "\n")
	for i, line := range lines {
		lines[i] = "> " + line
	}
	return strings.Join(lines, "\n") + "\n\n" + ownBody
}

// Ban банит юзера по токену длительности из закрытого словаря. Повторный бан
// перезаписывает прежний - действует всегда последняя запись.
func (s *CommentService) Ban(ctx context.Context, username, durationToken string) (*domain.Ban, error) {
	duration, permanent, parseErr := ParseBanDuration(durationToken)
	if parseErr != nil {
		return nil, parseErr
	}

	var expiresAt *time.Time
	if !permanent {
		expiry := s.now().Add(duration)
		expiresAt = &expiry
	}

	ban, upsertErr := s.banRepo.Upsert(ctx, repoargs.BanUpsert{
		Username:  username,
		ExpiresAt: expiresAt,
	})
	if upsertErr != nil {
		return nil, upsertErr //nolint:wrapcheck
	}
	return ban, nil
}

// IsBanned проверяет действующий бан юзера. Истекшие баны отфильтровываются здесь же,
// при проверке - фоновой чистки записей нет и не нужно: баны читаются только в момент
// публикации комментария.
func (s *CommentService) IsBanned(ctx context.Context, username string) (bool, error) {
	ban, err := s.banRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return false, nil
		}
		return false, err //nolint:wrapcheck
	}
	return ban.Active(s.now()), nil
}

// BanDurationOptions список токенов длительности для выпадающего списка модератора.
func (s *CommentService) BanDurationOptions() []string {
	return BanDurationOptions()
}
