package http

import (
	"auth-srv/pkg/response"
	"auth-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// @Summary Current identity
// @Description Return the identity bound to the presented token
// @Tags Tokens
// @Produce json
// @Security BearerAuth
// @Success 200 {object} meResp
// @Failure 401 {object} response.Resp
// @Router /api/v1/me [get]
func (h *handler) Me(c *gin.Context) {
	sc := scope.GetScopeFromContext(c.Request.Context())
	response.OK(c, h.newMeResp(sc))
}

// @Summary Introspect a token
// @Description Report whether a token is active together with its claims
// @Tags Tokens
// @Accept json
// @Produce json
// @Param body body introspectReq true "Introspection request"
// @Success 200 {object} introspectResp
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /api/v1/tokens/introspect [post]
func (h *handler) Introspect(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processIntrospectRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "token.delivery.http.Introspect: processIntrospectRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Introspect(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "token.delivery.http.Introspect: usecase Introspect failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newIntrospectResp(o))
}

// @Summary Revoke a token
// @Description Blacklist a token until its natural expiry
// @Tags Tokens
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body revokeReq true "Revocation request"
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Failure 503 {object} response.Resp
// @Router /api/v1/tokens/revoke [post]
func (h *handler) Revoke(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processRevokeRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "token.delivery.http.Revoke: processRevokeRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	if err := h.uc.Revoke(ctx, sc, req.toInput()); err != nil {
		h.l.Errorf(ctx, "token.delivery.http.Revoke: usecase Revoke failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, nil)
}
