package api

import (
	"net/http"

	reqdto "badge-promotion-engine/internal/handler/dto/request"
	resdto "badge-promotion-engine/internal/handler/dto/response"
	"badge-promotion-engine/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type PromotionBadgeHandler struct {
	cmds commands.BadgeCommands
}

func NewPromotionBadgeHandler(cmds commands.BadgeCommands) *PromotionBadgeHandler {
	return &PromotionBadgeHandler{cmds: cmds}
}

// @Summary Reserve badges for a promotion
// @Description Claims accepted badge applications for a draft promotion, all or nothing
// @Tags promotion-badges
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Promotion ID"
// @Param request body reqdto.BadgeApplicationIDsRequest true "1 to 100 distinct badge application IDs"
// @Success 200 {object} resdto.AddBadgesResponse
// @Failure 400 {object} httperr.Response "bad_request or badge_not_eligible"
// @Failure 403 {object} httperr.Response "not_owner or not_draft"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response "reservation_conflict"
// @Router /promotions/{id}/badges [post]
func (h *PromotionBadgeHandler) Add(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.BadgeApplicationIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}

	result, err := h.cmds.AddBadges(c.Request.Context(), actor, id, req.BadgeApplicationIDs)
	if err != nil {
		respondError(c, err, scopeBadgeEdit)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAddedBadges(result))
}

// @Summary Release badges from a promotion
// @Description Releases the given reservations of a draft promotion. Ids it does not hold are ignored.
// @Tags promotion-badges
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Promotion ID"
// @Param request body reqdto.BadgeApplicationIDsRequest true "1 to 100 distinct badge application IDs"
// @Success 200 {object} resdto.RemoveBadgesResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response "not_owner or not_draft"
// @Failure 404 {object} httperr.Response
// @Router /promotions/{id}/badges [delete]
func (h *PromotionBadgeHandler) Remove(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.BadgeApplicationIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}

	result, err := h.cmds.RemoveBadges(c.Request.Context(), actor, id, req.BadgeApplicationIDs)
	if err != nil {
		respondError(c, err, scopeBadgeEdit)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRemovedBadges(result))
}
