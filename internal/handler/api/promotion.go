package api

import (
	"net/http"

	reqdto "badge-promotion-engine/internal/handler/dto/request"
	resdto "badge-promotion-engine/internal/handler/dto/response"
	"badge-promotion-engine/internal/usecase/commands"
	"badge-promotion-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PromotionHandler struct {
	cmds commands.PromotionCommands
	q    queries.PromotionQueries
}

func NewPromotionHandler(cmds commands.PromotionCommands, q queries.PromotionQueries) *PromotionHandler {
	return &PromotionHandler{cmds: cmds, q: q}
}

// @Summary Create promotion
// @Description Open a draft promotion from an active template
// @Tags promotions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePromotionRequest true "Create promotion request"
// @Success 201 {object} resdto.PromotionResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /promotions [post]
func (h *PromotionHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.CreatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}

	p, err := h.cmds.Create(c.Request.Context(), actor, req.TemplateID)
	if err != nil {
		respondError(c, err, scopeLifecycle)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromPromotion(p))
}

// @Summary Get promotion
// @Description Promotion with its reserved badge applications. Hidden from non-owners.
// @Tags promotions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Promotion ID"
// @Success 200 {object} resdto.PromotionDetailResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /promotions/{id} [get]
func (h *PromotionHandler) Get(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	detail, err := h.q.GetByID(c.Request.Context(), id, actor)
	if err != nil {
		respondError(c, err, scopeLifecycle)
		return
	}
	res, err := resdto.FromPromotionDetail(detail)
	if err != nil {
		respondError(c, err, scopeLifecycle)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary List promotions
// @Description Keyset-paginated promotions of the caller. Admins see all and may filter by creator.
// @Tags promotions
// @Produce json
// @Security BearerAuth
// @Param status query string false "draft, submitted, approved or rejected"
// @Param created_by query string false "Creator user ID (admins only)"
// @Param limit query int false "Page size (1-100, default 20)"
// @Param after query string false "Cursor from a previous page"
// @Success 200 {object} resdto.PromotionListResponse
// @Failure 400 {object} httperr.Response
// @Router /promotions [get]
func (h *PromotionHandler) List(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var query reqdto.ListPromotionsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortBadRequest(c, err, "Invalid query parameters")
		return
	}
	filters, err := query.ToFilters()
	if err != nil {
		respondError(c, err, scopeLifecycle)
		return
	}

	items, next, err := h.q.List(c.Request.Context(), actor, filters, query.ToCursor(), query.Limit)
	if err != nil {
		respondError(c, err, scopeLifecycle)
		return
	}
	res, err := resdto.FromPromotionList(items, next)
	if err != nil {
		respondError(c, err, scopeLifecycle)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Delete draft promotion
// @Description Releases every reservation and deletes the draft
// @Tags promotions
// @Security BearerAuth
// @Param id path string true "Promotion ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /promotions/{id} [delete]
func (h *PromotionHandler) Delete(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.cmds.Delete(c.Request.Context(), actor, id); err != nil {
		respondError(c, err, scopeLifecycle)
		return
	}
	c.Status(http.StatusNoContent)
}
