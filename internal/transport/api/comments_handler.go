package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/fsdevblog/groph-gamestore/internal/domain"
	"github.com/fsdevblog/groph-gamestore/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type CommentsHandler struct {
	commentSvs CommentServicer
}

func NewCommentsHandler(commentSvs CommentServicer) *CommentsHandler {
	return &CommentsHandler{
		commentSvs: commentSvs,
	}
}

type CommentResponse struct {
	ID        int64                    `json:"id"`
	Name      string                   `json:"name"`
	Body      string                   `json:"body"`
	Status    domain.CommentStatusType `json:"status"`
	CreatedAt time.Time                `json:"createdAt"`
	Children  []CommentResponse        `json:"childComments"`
}

func newCommentResponses(nodes []*service.CommentNode) []CommentResponse {
	response := make([]CommentResponse, len(nodes))
	for i, node := range nodes {
		response[i] = CommentResponse{
			ID:        node.Comment.ID,
			Name:      node.Comment.Name,
			Body:      node.Comment.Body,
			Status:    node.Comment.Status,
			CreatedAt: node.Comment.CreatedAt,
			Children:  newCommentResponses(node.Children),
		}
	}
	return response
}

// Index GET RouteGroup + GameCommentsRoute. Лес комментариев игры: корневые с
// рекурсивно вложенными ответами.
func (h *CommentsHandler) Index(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	nodes, err := h.commentSvs.GetThreaded(reqCtx, c.Param("alias"))
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, newCommentResponses(nodes))
}

type PostCommentParams struct {
	Name     string `binding:"required,max=100"            json:"name"`
	Body     string `binding:"required,max_bytes=4096"     json:"body"`
	Action   string `binding:"required,oneof=Reply Quote"  json:"action"`
	ParentID *int64 `json:"parentId"`
}

// Create POST RouteGroup + GameCommentsRoute. Публикует комментарий (Reply или Quote).
func (h *CommentsHandler) Create(c *gin.Context) {
	var params PostCommentParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		var valErrs validator.ValidationErrors
		if errors.As(bindErr, &valErrs) {
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": valErrs})
			return
		}
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	comment, err := h.commentSvs.Post(reqCtx, service.PostCommentArgs{
		GameAlias: c.Param("alias"),
		Name:      params.Name,
		Body:      params.Body,
		Action:    domain.CommentActionType(params.Action),
		ParentID:  params.ParentID,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			c.AbortWithStatus(http.StatusNotFound)
		case errors.Is(err, domain.ErrCommentParentNotFound):
			_ = c.AbortWithError(http.StatusUnprocessableEntity, err).SetType(gin.ErrorTypePublic)
		case errors.Is(err, domain.ErrUserBanned):
			_ = c.AbortWithError(http.StatusForbidden, err).SetType(gin.ErrorTypePublic)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": comment.ID})
}

// Delete DELETE RouteGroup + CommentRoute. Мягкое удаление: комментарий остается в
// дереве с телом-заглушкой, дочерние не трогаются.
func (h *CommentsHandler) Delete(c *gin.Context) {
	commentID, parseErr := strconv.ParseInt(c.Param("id"), 10, 64)
	if parseErr != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if _, err := h.commentSvs.Delete(reqCtx, commentID); err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			c.AbortWithStatus(http.StatusNotFound)
		case errors.Is(err, domain.ErrCommentAlreadyDeleted):
			c.AbortWithStatus(http.StatusConflict)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.AbortWithStatus(http.StatusNoContent)
}

// BanDurations GET RouteGroup + BanDurationsRoute. Фиксированный словарь длительностей
// для выпадающего списка модератора.
func (h *CommentsHandler) BanDurations(c *gin.Context) {
	c.JSON(http.StatusOK, h.commentSvs.BanDurationOptions())
}

type BanParams struct {
	User     string `binding:"required,max=100" json:"user"`
	Duration string `binding:"required"         json:"duration"`
}

type BanResponse struct {
	User      string     `json:"user"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

// Ban POST RouteGroup + BanRoute. Банит юзера на срок из закрытого словаря.
// Повторный бан перезаписывает прежний.
func (h *CommentsHandler) Ban(c *gin.Context) {
	var params BanParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	ban, err := h.commentSvs.Ban(reqCtx, params.User, params.Duration)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidBanDuration) {
			_ = c.AbortWithError(http.StatusUnprocessableEntity, err).SetType(gin.ErrorTypePublic)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, BanResponse{
		User:      ban.Username,
		ExpiresAt: ban.ExpiresAt,
	})
}
