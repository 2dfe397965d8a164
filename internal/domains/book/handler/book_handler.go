package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-catalog/internal/domains/book/model"
	"library-catalog/internal/domains/book/service"
	"library-catalog/internal/shared/apperror"
	"library-catalog/internal/shared/response"
	"library-catalog/internal/shared/utils"
)

// Handler - HTTP handler for /api/v1/books
type Handler struct {
	service service.ServiceInterface
}

// NewHandler - Constructor with DI
func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{
		service: service,
	}
}

// DeleteBookResponse confirms a removed book
type DeleteBookResponse struct {
	ID      int64 `json:"id"`
	Deleted bool  `json:"deleted"`
}

// ListBooks - GET /api/v1/books
func (h *Handler) ListBooks(c *gin.Context) {
	books, err := h.service.ListBooks(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}

	out := make([]*model.BookResponse, len(books))
	for i := range books {
		out[i] = books[i].ToResponse()
	}

	response.Success(c, http.StatusOK, "Success", out)
}

// GetBook - GET /api/v1/books/:id
func (h *Handler) GetBook(c *gin.Context) {
	id, ok := bookID(c)
	if !ok {
		return
	}

	book, err := h.service.GetBook(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Success", book.ToResponse())
}

// ListByAuthor - GET /api/v1/authors/:id/books
func (h *Handler) ListByAuthor(c *gin.Context) {
	authorID, err := utils.ParseID(c.Param("id"))
	if err != nil {
		response.FromError(c, apperror.InvalidRequest("Invalid author id"))
		return
	}

	books, err := h.service.ListByAuthor(c.Request.Context(), authorID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	out := make([]*model.BookResponse, len(books))
	for i := range books {
		out[i] = books[i].ToResponse()
	}

	response.Success(c, http.StatusOK, "Success", out)
}

// CreateBook - POST /api/v1/books
func (h *Handler) CreateBook(c *gin.Context) {
	var req model.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.InvalidRequest("Invalid request body"))
		return
	}

	book, err := h.service.CreateBook(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Book created", book.ToResponse())
}

// UpdateBook - PUT/PATCH /api/v1/books/:id
func (h *Handler) UpdateBook(c *gin.Context) {
	id, ok := bookID(c)
	if !ok {
		return
	}

	var req model.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.InvalidRequest("Invalid request body"))
		return
	}

	book, err := h.service.UpdateBook(c.Request.Context(), id, &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Book updated", book.ToResponse())
}

// DeleteBook - DELETE /api/v1/books/:id
func (h *Handler) DeleteBook(c *gin.Context) {
	id, ok := bookID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteBook(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Book deleted", DeleteBookResponse{ID: id, Deleted: true})
}

func bookID(c *gin.Context) (int64, bool) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		response.FromError(c, apperror.InvalidRequest("Invalid book id"))
		return 0, false
	}
	return id, true
}
