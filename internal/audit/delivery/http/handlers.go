package http

import (
	"auth-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary List audit events
// @Description Paginate the authentication audit trail, newest first
// @Tags Audit
// @Produce json
// @Security BearerAuth
// @Param event_type query string false "Filter by event type"
// @Param subject query string false "Filter by subject"
// @Param limit query int false "Number of records per page (default 50)"
// @Param offset query int false "Number of records to skip (default 0)"
// @Success 200 {object} listEventsResp
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/audit-events [get]
func (h *handler) ListEvents(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListEventsRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "audit.delivery.http.ListEvents: processListEventsRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "audit.delivery.http.ListEvents: usecase List failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListEventsResp(o))
}
