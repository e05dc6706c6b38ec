package http

import (
	"auth-srv/internal/model"
	"auth-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processIntrospectRequest(c *gin.Context) (introspectReq, error) {
	var req introspectReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processRevokeRequest(c *gin.Context) (revokeReq, model.Scope, error) {
	var req revokeReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}
