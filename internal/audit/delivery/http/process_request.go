package http

import (
	"strconv"

	"auth-srv/internal/model"
	"auth-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processListEventsRequest(c *gin.Context) (listEventsReq, model.Scope, error) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	req := listEventsReq{
		EventType: c.Query("event_type"),
		Subject:   c.Query("subject"),
		Limit:     limit,
		Offset:    offset,
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}
