package api

import (
	"net/http"

	reqdto "badge-promotion-engine/internal/handler/dto/request"
	resdto "badge-promotion-engine/internal/handler/dto/response"

	"github.com/gin-gonic/gin"
)

// @Summary Submit promotion
// @Description Validates the reserved badges against the template and moves the draft to submitted
// @Tags promotions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Promotion ID"
// @Success 200 {object} resdto.PromotionResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response "invalid_status or validation_failed"
// @Router /promotions/{id}/submit [post]
func (h *PromotionHandler) Submit(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	p, err := h.cmds.Submit(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err, scopeLifecycle)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPromotion(p))
}

// @Summary Approve promotion
// @Description Admin only. Consumes every reservation permanently.
// @Tags promotions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Promotion ID"
// @Success 200 {object} resdto.PromotionResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /promotions/{id}/approve [post]
func (h *PromotionHandler) Approve(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	p, err := h.cmds.Approve(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err, scopeLifecycle)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPromotion(p))
}

// @Summary Reject promotion
// @Description Admin only. Releases every reservation so the badges can be reused.
// @Tags promotions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Promotion ID"
// @Param request body reqdto.RejectPromotionRequest true "Reject reason"
// @Success 200 {object} resdto.PromotionResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /promotions/{id}/reject [post]
func (h *PromotionHandler) Reject(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.RejectPromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}

	p, err := h.cmds.Reject(c.Request.Context(), actor, id, req.RejectReason)
	if err != nil {
		respondError(c, err, scopeLifecycle)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPromotion(p))
}
