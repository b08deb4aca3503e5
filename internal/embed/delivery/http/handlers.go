package http

import (
	"smap-embeds/pkg/errors"
	"smap-embeds/pkg/response"

	"github.com/gin-gonic/gin"
)

// Limits returns the limits requests are validated against by default.
func (h *Handler) Limits(c *gin.Context) {
	response.OK(c, newLimitsResp(h.uc.Limits(c.Request.Context())))
}

// Preview builds and validates an embed and returns its wire form.
func (h *Handler) Preview(c *gin.Context) {
	ctx := c.Request.Context()

	var req PreviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "embed.delivery.http.Preview.ShouldBindJSON: %v", err)
		response.Error(c, errors.NewValidationError(ValidationErrorCode, "body", err.Error()), nil)
		return
	}
	if err := req.validate(); err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Preview(ctx, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newPreviewResp(out))
}

// Send builds every embed and posts them through the webhook.
func (h *Handler) Send(c *gin.Context) {
	ctx := c.Request.Context()

	var req SendReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "embed.delivery.http.Send.ShouldBindJSON: %v", err)
		response.Error(c, errors.NewValidationError(ValidationErrorCode, "body", err.Error()), nil)
		return
	}
	if err := req.validate(); err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Send(ctx, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newSendResp(out))
}
