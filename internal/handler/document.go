package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/docsim/backend/internal/model"
	"github.com/docsim/backend/internal/service"
)

type DocumentHandler struct {
	svc *service.DocumentService
}

func NewDocumentHandler(svc *service.DocumentService) *DocumentHandler {
	return &DocumentHandler{svc: svc}
}

// GetAll godoc
// @Summary List all documents
// @Description Served from the response cache when populated; stale up to DOCS_CACHE_EXPIRY after writes.
// @Tags document
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.DocumentListItem
// @Failure 401 {object} model.ErrorResponse
// @Router /api/v1/document [get]
func (h *DocumentHandler) GetAll(c *gin.Context) {
	listing, err := h.svc.GetAll(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	// The cached listing is already serialized JSON; write it through as-is
	// so cached and fresh responses are byte-identical.
	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(listing))
}

// GetAllPaginated godoc
// @Summary List documents paginated
// @Tags document
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default 1)"
// @Param perPage query int false "Items per page, max 100 (default 10)"
// @Param order query string false "Sort order asc|desc (default desc)"
// @Success 200 {object} model.DocumentPageResponse
// @Failure 401 {object} model.ErrorResponse
// @Router /api/v1/document/paginated [get]
func (h *DocumentHandler) GetAllPaginated(c *gin.Context) {
	p := model.NewPagination(c.Query("page"), c.Query("perPage"), c.Query("order"))

	page, err := h.svc.GetAllPaginated(c.Request.Context(), p)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// GetByID godoc
// @Summary Get a document by id
// @Tags document
// @Produce json
// @Security BearerAuth
// @Param id path int true "Document id"
// @Success 200 {object} model.DocumentResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/document/{id} [get]
func (h *DocumentHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Message: "Invalid document id"})
		return
	}

	doc, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, doc.ToResponse())
}

// GetByTitle godoc
// @Summary Get a document by title
// @Tags document
// @Produce json
// @Security BearerAuth
// @Param title path string true "Document title"
// @Success 200 {object} model.DocumentResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/document/title/{title} [get]
func (h *DocumentHandler) GetByTitle(c *gin.Context) {
	doc, err := h.svc.GetByTitle(c.Request.Context(), c.Param("title"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, doc.ToResponse())
}

// Create godoc
// @Summary Create a document
// @Tags document
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.DocumentCreateRequest true "Title, content, and description"
// @Success 201 {object} model.DocumentResponse
// @Failure 400 {object} model.ErrorResponse
// @Router /api/v1/document [post]
func (h *DocumentHandler) Create(c *gin.Context) {
	var req model.DocumentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Message: "Invalid request body"})
		return
	}

	var userID *int64
	if claims := GetTokenClaims(c); claims != nil {
		userID = &claims.User.ID
	}

	doc, err := h.svc.Create(c.Request.Context(), req, userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, doc.ToResponse())
}

// Update godoc
// @Summary Update a document (partial)
// @Tags document
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Document id"
// @Param request body model.DocumentUpdateRequest true "Fields to change; empty fields keep stored values"
// @Success 200 {object} model.DocumentResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/document/{id} [patch]
func (h *DocumentHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Message: "Invalid document id"})
		return
	}

	var req model.DocumentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Message: "Invalid request body"})
		return
	}

	doc, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, doc.ToResponse())
}

// Delete godoc
// @Summary Delete a document
// @Tags document
// @Produce json
// @Security BearerAuth
// @Param id path int true "Document id"
// @Success 200 {object} model.MessageResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/document/{id} [delete]
func (h *DocumentHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Message: "Invalid document id"})
		return
	}

	message, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.MessageResponse{Message: message})
}

// Compare godoc
// @Summary Score the similarity of two documents
// @Tags document
// @Produce json
// @Security BearerAuth
// @Param first query int true "First document id"
// @Param second query int true "Second document id"
// @Success 200 {object} model.SimilarityResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/document/similarity [get]
func (h *DocumentHandler) Compare(c *gin.Context) {
	firstID, err := strconv.ParseInt(c.Query("first"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Message: "Invalid document id"})
		return
	}

	secondID, err := strconv.ParseInt(c.Query("second"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Message: "Invalid document id"})
		return
	}

	resp, err := h.svc.Compare(c.Request.Context(), firstID, secondID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
