package service

import (
	"context"
	"testing"
	"time"

	"github.com/fsdevblog/groph-gamestore/internal/domain"
	"github.com/fsdevblog/groph-gamestore/internal/repository/repoargs"
	"github.com/fsdevblog/groph-gamestore/internal/service/mocks"
	"github.com/fsdevblog/groph-gamestore/pkg/uow"
	uowmocks "github.com/fsdevblog/groph-gamestore/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type CommentServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockUOW         *uowmocks.MockUOW
	mockTX          *uowmocks.MockTX
	mockCommentRepo *mocks.MockCommentRepository
	mockGameRepo    *mocks.MockGameRepository
	mockBanRepo     *mocks.MockBanRepository
	commentService  *CommentService
	txExpected      bool
}

func TestCommentServiceSuite(t *testing.T) {
	suite.Run(t, new(CommentServiceTestSuite))
}

func (s *CommentServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockCommentRepo = mocks.NewMockCommentRepository(s.mockCtrl)
	s.mockGameRepo = mocks.NewMockGameRepository(s.mockCtrl)
	s.mockBanRepo = mocks.NewMockBanRepository(s.mockCtrl)
	s.txExpected = false

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.CommentRepoName)).
		Return(s.mockCommentRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.GameRepoName)).
		Return(s.mockGameRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.BanRepoName)).
		Return(s.mockBanRepo, nil).AnyTimes()

	commentService, servErr := NewCommentService(s.mockUOW)
	s.Require().NoError(servErr)
	s.commentService = commentService
}

func (s *CommentServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *CommentServiceTestSuite) expectTransaction() {
	// Регистрируем ожидание один раз на тест: повторная регистрация MinTimes(1)
	// на том же контроллере никогда не получит вызовов - gomock отдает все вызовы
	// первому неисчерпанному ожиданию.
	if s.txExpected {
		return
	}
	s.txExpected = true

	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.CommentRepoName)).
		Return(s.mockCommentRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.GameRepoName)).
		Return(s.mockGameRepo, nil).AnyTimes()

	s.mockUOW.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		}).MinTimes(1)
}

// expectNotBanned проверка бана автора перед публикацией: записи нет.
func (s *CommentServiceTestSuite) expectNotBanned(username string) {
	s.mockBanRepo.EXPECT().
		FindByUsername(gomock.Any(), username).
		Return(nil, domain.ErrRecordNotFound)
}

func (s *CommentServiceTestSuite) TestPostRootComment() {
	game := domain.Game{ID: 7, Alias: "portal-2"}
	created := domain.Comment{
		ID:     1,
		GameID: game.ID,
		Name:   "alice",
		Body:   "great game",
		Status: domain.CommentStatusActive,
	}

	s.expectNotBanned("alice")
	s.expectTransaction()

	s.mockGameRepo.EXPECT().
		FindByAlias(gomock.Any(), game.Alias).
		Return(&game, nil)
	s.mockCommentRepo.EXPECT().
		Create(gomock.Any(), repoargs.CommentCreate{
			GameID: game.ID,
			Name:   "alice",
			Body:   "great game",
			Status: domain.CommentStatusActive,
		}).
		Return(&created, nil)

	comment, err := s.commentService.Post(s.T().Context(), PostCommentArgs{
		GameAlias: game.Alias,
		Name:      "alice",
		Body:      "great game",
		Action:    domain.CommentActionReply,
	})

	s.Require().NoError(err)
	s.Equal(&created, comment)
}

func (s *CommentServiceTestSuite) TestPostQuote() {
	game := domain.Game{ID: 7, Alias: "portal-2"}
	var parentID int64 = 1
	parent := domain.Comment{
		ID:     parentID,
		GameID: game.ID,
		Name:   "alice",
		Body:   "great game\nloved the ending",
		Status: domain.CommentStatusActive,
	}
	wantBody := "> great game\n> loved the ending\n\ntotally agree"

	s.expectNotBanned("bob")
	s.expectTransaction()

	s.mockGameRepo.EXPECT().
		FindByAlias(gomock.Any(), game.Alias).
		Return(&game, nil)
	s.mockCommentRepo.EXPECT().
		FindByID(gomock.Any(), parentID).
		Return(&parent, nil)
	s.mockCommentRepo.EXPECT().
		Create(gomock.Any(), repoargs.CommentCreate{
			GameID:   game.ID,
			ParentID: &parentID,
			Name:     "bob",
			Body:     wantBody,
			Status:   domain.CommentStatusQuote,
		}).
		DoAndReturn(func(_ context.Context, args repoargs.CommentCreate) (*domain.Comment, error) {
			return &domain.Comment{
				ID:       2,
				GameID:   args.GameID,
				ParentID: args.ParentID,
				Name:     args.Name,
				Body:     args.Body,
				Status:   args.Status,
			}, nil
		})

	comment, err := s.commentService.Post(s.T().Context(), PostCommentArgs{
		GameAlias: game.Alias,
		Name:      "bob",
		Body:      "totally agree",
		Action:    domain.CommentActionQuote,
		ParentID:  &parentID,
	})

	s.Require().NoError(err)
	s.Equal(wantBody, comment.Body)
	s.Equal(domain.CommentStatusQuote, comment.Status)
}

func (s *CommentServiceTestSuite) TestPostParentNotFound() {
	game := domain.Game{ID: 7, Alias: "portal-2"}
	var missingID int64 = 99

	s.Run("no such comment", func() {
		s.expectNotBanned("bob")
		s.expectTransaction()
		s.mockGameRepo.EXPECT().
			FindByAlias(gomock.Any(), game.Alias).
			Return(&game, nil)
		s.mockCommentRepo.EXPECT().
			FindByID(gomock.Any(), missingID).
			Return(nil, domain.ErrRecordNotFound)

		_, err := s.commentService.Post(s.T().Context(), PostCommentArgs{
			GameAlias: game.Alias,
			Name:      "bob",
			Body:      "hello",
			Action:    domain.CommentActionReply,
			ParentID:  &missingID,
		})

		s.Require().ErrorIs(err, domain.ErrCommentParentNotFound)
	})

	s.Run("parent from another game", func() {
		foreign := domain.Comment{ID: missingID, GameID: game.ID + 1}

		s.expectNotBanned("bob")
		s.expectTransaction()
		s.mockGameRepo.EXPECT().
			FindByAlias(gomock.Any(), game.Alias).
			Return(&game, nil)
		s.mockCommentRepo.EXPECT().
			FindByID(gomock.Any(), missingID).
			Return(&foreign, nil)

		_, err := s.commentService.Post(s.T().Context(), PostCommentArgs{
			GameAlias: game.Alias,
			Name:      "bob",
			Body:      "hello",
			Action:    domain.CommentActionReply,
			ParentID:  &missingID,
		})

		s.Require().ErrorIs(err, domain.ErrCommentParentNotFound)
	})
}

func (s *CommentServiceTestSuite) TestPostBannedAuthor() {
	expiry := time.Now().Add(time.Hour)
	ban := domain.Ban{Username: "troll", ExpiresAt: &expiry}

	s.mockBanRepo.EXPECT().
		FindByUsername(gomock.Any(), "troll").
		Return(&ban, nil)

	_, err := s.commentService.Post(s.T().Context(), PostCommentArgs{
		GameAlias: "portal-2",
		Name:      "troll",
		Body:      "spam",
		Action:    domain.CommentActionReply,
	})

	s.Require().ErrorIs(err, domain.ErrUserBanned)
}

func (s *CommentServiceTestSuite) TestDelete() {
	var commentID int64 = 1

	s.Run("ok", func() {
		existing := domain.Comment{ID: commentID, Body: "rude text", Status: domain.CommentStatusActive}
		deleted := existing
		deleted.Body = DeletedCommentPlaceholder
		deleted.Status = domain.CommentStatusDeleted

		s.expectTransaction()
		s.mockCommentRepo.EXPECT().
			FindByID(gomock.Any(), commentID).
			Return(&existing, nil)
		s.mockCommentRepo.EXPECT().
			MarkDeleted(gomock.Any(), commentID, DeletedCommentPlaceholder).
			Return(&deleted, nil)

		comment, err := s.commentService.Delete(s.T().Context(), commentID)

		s.Require().NoError(err)
		s.Equal(DeletedCommentPlaceholder, comment.Body)
		s.Equal(domain.CommentStatusDeleted, comment.Status)
	})

	s.Run("already deleted", func() {
		existing := domain.Comment{ID: commentID, Body: DeletedCommentPlaceholder, Status: domain.CommentStatusDeleted}

		s.expectTransaction()
		s.mockCommentRepo.EXPECT().
			FindByID(gomock.Any(), commentID).
			Return(&existing, nil)

		_, err := s.commentService.Delete(s.T().Context(), commentID)

		s.Require().ErrorIs(err, domain.ErrCommentAlreadyDeleted)
	})
}

func (s *CommentServiceTestSuite) TestGetThreaded() {
	game := domain.Game{ID: 7, Alias: "portal-2"}
	id := func(v int64) *int64 { return &v }

	// Плоский список в порядке создания: два корневых, у первого два ответа,
	// у одного из ответов свой ответ.
	comments := []domain.Comment{
		{ID: 1, GameID: game.ID, Name: "alice"},
		{ID: 2, GameID: game.ID, Name: "bob", ParentID: id(1)},
		{ID: 3, GameID: game.ID, Name: "carol"},
		{ID: 4, GameID: game.ID, Name: "dave", ParentID: id(1)},
		{ID: 5, GameID: game.ID, Name: "erin", ParentID: id(2)},
	}

	s.mockGameRepo.EXPECT().
		FindByAlias(gomock.Any(), game.Alias).
		Return(&game, nil)
	s.mockCommentRepo.EXPECT().
		GetByGameID(gomock.Any(), game.ID).
		Return(comments, nil)

	roots, err := s.commentService.GetThreaded(s.T().Context(), game.Alias)

	s.Require().NoError(err)
	s.Require().Len(roots, 2)
	s.Equal(int64(1), roots[0].Comment.ID)
	s.Equal(int64(3), roots[1].Comment.ID)

	s.Require().Len(roots[0].Children, 2)
	s.Equal(int64(2), roots[0].Children[0].Comment.ID)
	s.Equal(int64(4), roots[0].Children[1].Comment.ID)

	s.Require().Len(roots[0].Children[0].Children, 1)
	s.Equal(int64(5), roots[0].Children[0].Children[0].Comment.ID)
}

func (s *CommentServiceTestSuite) TestBan() {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	s.commentService.SetNowFunc(func() time.Time { return now })

	s.Run("fixed duration", func() {
		wantExpiry := now.Add(24 * time.Hour)

		s.mockBanRepo.EXPECT().
			Upsert(gomock.Any(), repoargs.BanUpsert{
				Username:  "troll",
				ExpiresAt: &wantExpiry,
			}).
			Return(&domain.Ban{Username: "troll", ExpiresAt: &wantExpiry}, nil)

		ban, err := s.commentService.Ban(s.T().Context(), "troll", "1 day")

		s.Require().NoError(err)
		s.Require().NotNil(ban.ExpiresAt)
		s.Equal(wantExpiry, *ban.ExpiresAt)
	})

	s.Run("permanent", func() {
		s.mockBanRepo.EXPECT().
			Upsert(gomock.Any(), repoargs.BanUpsert{Username: "troll"}).
			Return(&domain.Ban{Username: "troll"}, nil)

		ban, err := s.commentService.Ban(s.T().Context(), "troll", "permanent")

		s.Require().NoError(err)
		s.Nil(ban.ExpiresAt)
	})

	s.Run("unknown token", func() {
		_, err := s.commentService.Ban(s.T().Context(), "troll", "2 hours")

		s.Require().ErrorIs(err, domain.ErrInvalidBanDuration)
	})
}

func (s *CommentServiceTestSuite) TestBanLazyExpiry() {
	bannedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	expiry := bannedAt.Add(time.Hour)
	ban := domain.Ban{Username: "troll", ExpiresAt: &expiry}

	s.mockBanRepo.EXPECT().
		FindByUsername(gomock.Any(), "troll").
		Return(&ban, nil).Times(2)

	// Через полчаса бан еще действует.
	s.commentService.SetNowFunc(func() time.Time { return bannedAt.Add(30 * time.Minute) })
	banned, err := s.commentService.IsBanned(s.T().Context(), "troll")
	s.Require().NoError(err)
	s.True(banned)

	// Через два часа бан истек, хотя запись осталась в БД.
	s.commentService.SetNowFunc(func() time.Time { return bannedAt.Add(2 * time.Hour) })
	banned, err = s.commentService.IsBanned(s.T().Context(), "troll")
	s.Require().NoError(err)
	s.False(banned)
}

func TestQuoteBody(t *testing.T) {
	cases := []struct {
		name       string
		parentBody string
		ownBody    string
		want       string
	}{
		{
			name:       "single line",
			parentBody: "great game",
			ownBody:    "agree",
			want:       "> great game\n\nagree",
		},
		{
			name:       "multiline parent",
			parentBody: "line one\nline two",
			ownBody:    "reply",
			want:       "> line one\n> line two\n\nreply",
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			if got := quoteBody(tt.parentBody, tt.ownBody); got != tt.want {
				t.Errorf("quoteBody() = %q, want %q", got, tt.want)
			}
		})
	}
}
