package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-catalog/internal/domains/author/model"
	"library-catalog/internal/domains/author/service"
	"library-catalog/internal/shared/apperror"
	"library-catalog/internal/shared/response"
	"library-catalog/internal/shared/utils"
)

type AuthorHandler struct {
	service service.ServiceInterface
}

func NewAuthorHandler(svc service.ServiceInterface) *AuthorHandler {
	return &AuthorHandler{
		service: svc,
	}
}

// DeleteResponse confirms a removed author
type DeleteResponse struct {
	ID      int64 `json:"id"`
	Deleted bool  `json:"deleted"`
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /api/v1/authors
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Create(c *gin.Context) {
	var req model.CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.InvalidRequest("Invalid request body"))
		return
	}

	a, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Author created", a.ToResponse())
}

// ════════════════════════════════════════════════════════════════
// READ: GET /api/v1/authors, GET /api/v1/authors/:id
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) List(c *gin.Context) {
	authors, err := h.service.List(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}

	out := make([]*model.AuthorResponse, len(authors))
	for i := range authors {
		out[i] = authors[i].ToResponse()
	}

	response.Success(c, http.StatusOK, "Success", out)
}

func (h *AuthorHandler) GetByID(c *gin.Context) {
	id, ok := authorID(c)
	if !ok {
		return
	}

	a, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Success", a.ToResponse())
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PUT/PATCH /api/v1/authors/:id
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Update(c *gin.Context) {
	id, ok := authorID(c)
	if !ok {
		return
	}

	var req model.UpdateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.InvalidRequest("Invalid request body"))
		return
	}

	a, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Author updated", a.ToResponse())
}

// ════════════════════════════════════════════════════════════════
// DELETE: DELETE /api/v1/authors/:id
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Delete(c *gin.Context) {
	id, ok := authorID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Author deleted", DeleteResponse{ID: id, Deleted: true})
}

func authorID(c *gin.Context) (int64, bool) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		response.FromError(c, apperror.InvalidRequest("Invalid author id"))
		return 0, false
	}
	return id, true
}
