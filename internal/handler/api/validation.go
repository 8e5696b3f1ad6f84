package api

import (
	"net/http"

	resdto "badge-promotion-engine/internal/handler/dto/response"
	"badge-promotion-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ValidationHandler struct {
	q queries.ValidationQueries
}

func NewValidationHandler(q queries.ValidationQueries) *ValidationHandler {
	return &ValidationHandler{q: q}
}

// @Summary Validate promotion
// @Description Evaluates the reserved badges against the template rules without changing anything
// @Tags promotions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Promotion ID"
// @Success 200 {object} resdto.ValidationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /promotions/{id}/validation [get]
func (h *ValidationHandler) Get(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	view, err := h.q.Validate(c.Request.Context(), id, actor)
	if err != nil {
		respondError(c, err, scopeLifecycle)
		return
	}
	c.JSON(http.StatusOK, resdto.FromValidationView(view))
}
