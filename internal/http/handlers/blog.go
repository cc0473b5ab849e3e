package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/blogmanager-backend/internal/core/commands"
	"github.com/yungbote/blogmanager-backend/internal/core/queries"
	"github.com/yungbote/blogmanager-backend/internal/dto"
	"github.com/yungbote/blogmanager-backend/internal/http/response"
	"github.com/yungbote/blogmanager-backend/internal/mediator"
	"github.com/yungbote/blogmanager-backend/internal/platform/apierr"
	"github.com/yungbote/blogmanager-backend/internal/platform/logger"
)

type BlogHandler struct {
	log *logger.Logger
	med *mediator.Mediator
}

func NewBlogHandler(log *logger.Logger, med *mediator.Mediator) *BlogHandler {
	return &BlogHandler{
		log: log.With("handler", "BlogHandler"),
		med: med,
	}
}

type createBlogRequest struct {
	AuthorID    string   `json:"author_id" binding:"required"`
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Content     string   `json:"content"`
	Tags        []string `json:"tags"`
}

type updateBlogRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Content     string   `json:"content"`
	Tags        []string `json:"tags"`
}

func (h *BlogHandler) List(c *gin.Context) {
	out, err := mediator.Send[[]dto.Blog](c.Request.Context(), h.med, queries.GetBlogList{
		IncludeAuthorInfo: queryBool(c, "include_author"),
	})
	if err != nil {
		h.fail(c, "List", err)
		return
	}
	response.RespondOK(c, gin.H{"blogs": out})
}

func (h *BlogHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	out, err := mediator.Send[*dto.Blog](c.Request.Context(), h.med, queries.GetBlogByID{
		ID:                id,
		IncludeAuthorInfo: queryBool(c, "include_author"),
	})
	if err != nil {
		h.fail(c, "Get", err)
		return
	}
	if out == nil {
		response.RespondAPIError(c, apierr.NotFound("not_found"))
		return
	}
	response.RespondOK(c, gin.H{"blog": out})
}

func (h *BlogHandler) Create(c *gin.Context) {
	var req createBlogRequest
	if err := bindJSON(c, &req); err != nil {
		response.RespondAPIError(c, err)
		return
	}
	authorID, err := uuid.Parse(req.AuthorID)
	if err != nil || authorID == uuid.Nil {
		response.RespondAPIError(c, apierr.BadRequest("invalid_request", errors.New("invalid author_id")))
		return
	}
	out, err := mediator.Send[*dto.Blog](c.Request.Context(), h.med, commands.CreateBlog{
		AuthorID:    authorID,
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		Tags:        req.Tags,
	})
	if err != nil {
		h.fail(c, "Create", err)
		return
	}
	response.RespondCreated(c, gin.H{"blog": out})
}

func (h *BlogHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	var req updateBlogRequest
	if err := bindJSON(c, &req); err != nil {
		response.RespondAPIError(c, err)
		return
	}
	out, err := mediator.Send[*dto.Blog](c.Request.Context(), h.med, commands.UpdateBlog{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		Tags:        req.Tags,
	})
	if err != nil {
		h.fail(c, "Update", err)
		return
	}
	if out == nil {
		response.RespondAPIError(c, apierr.NotFound("not_found"))
		return
	}
	response.RespondOK(c, gin.H{"blog": out})
}

func (h *BlogHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	deleted, err := mediator.Send[bool](c.Request.Context(), h.med, commands.DeleteBlog{ID: id})
	if err != nil {
		h.fail(c, "Delete", err)
		return
	}
	if !deleted {
		response.RespondAPIError(c, apierr.NotFound("not_found"))
		return
	}
	response.RespondNoContent(c)
}

func (h *BlogHandler) fail(c *gin.Context, op string, err error) {
	h.log.Error(op+" failed", "error", err)
	response.RespondAPIError(c, err)
}
