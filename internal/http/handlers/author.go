package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/blogmanager-backend/internal/core/commands"
	"github.com/yungbote/blogmanager-backend/internal/core/queries"
	"github.com/yungbote/blogmanager-backend/internal/dto"
	"github.com/yungbote/blogmanager-backend/internal/http/response"
	"github.com/yungbote/blogmanager-backend/internal/mediator"
	"github.com/yungbote/blogmanager-backend/internal/platform/apierr"
	"github.com/yungbote/blogmanager-backend/internal/platform/logger"
)

type AuthorHandler struct {
	log *logger.Logger
	med *mediator.Mediator
}

func NewAuthorHandler(log *logger.Logger, med *mediator.Mediator) *AuthorHandler {
	return &AuthorHandler{
		log: log.With("handler", "AuthorHandler"),
		med: med,
	}
}

type authorRequest struct {
	Name    string `json:"name" binding:"required"`
	Surname string `json:"surname"`
}

func (h *AuthorHandler) List(c *gin.Context) {
	out, err := mediator.Send[[]dto.Author](c.Request.Context(), h.med, queries.GetAuthorList{})
	if err != nil {
		h.fail(c, "List", err)
		return
	}
	response.RespondOK(c, gin.H{"authors": out})
}

func (h *AuthorHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	out, err := mediator.Send[*dto.Author](c.Request.Context(), h.med, queries.GetAuthorByID{ID: id})
	if err != nil {
		h.fail(c, "Get", err)
		return
	}
	if out == nil {
		response.RespondAPIError(c, apierr.NotFound("not_found"))
		return
	}
	response.RespondOK(c, gin.H{"author": out})
}

func (h *AuthorHandler) Create(c *gin.Context) {
	var req authorRequest
	if err := bindJSON(c, &req); err != nil {
		response.RespondAPIError(c, err)
		return
	}
	out, err := mediator.Send[*dto.Author](c.Request.Context(), h.med, commands.CreateAuthor{Name: req.Name, Surname: req.Surname})
	if err != nil {
		h.fail(c, "Create", err)
		return
	}
	response.RespondCreated(c, gin.H{"author": out})
}

func (h *AuthorHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	var req authorRequest
	if err := bindJSON(c, &req); err != nil {
		response.RespondAPIError(c, err)
		return
	}
	out, err := mediator.Send[*dto.Author](c.Request.Context(), h.med, commands.UpdateAuthor{ID: id, Name: req.Name, Surname: req.Surname})
	if err != nil {
		h.fail(c, "Update", err)
		return
	}
	if out == nil {
		response.RespondAPIError(c, apierr.NotFound("not_found"))
		return
	}
	response.RespondOK(c, gin.H{"author": out})
}

func (h *AuthorHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	deleted, err := mediator.Send[bool](c.Request.Context(), h.med, commands.DeleteAuthor{ID: id})
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

func (h *AuthorHandler) ListBlogs(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	out, err := mediator.Send[[]dto.Blog](c.Request.Context(), h.med, queries.GetBlogsByAuthor{
		AuthorID:          id,
		IncludeAuthorInfo: queryBool(c, "include_author"),
	})
	if err != nil {
		h.fail(c, "ListBlogs", err)
		return
	}
	response.RespondOK(c, gin.H{"blogs": out})
}

func (h *AuthorHandler) fail(c *gin.Context, op string, err error) {
	h.log.Error(op+" failed", "error", err)
	response.RespondAPIError(c, err)
}
