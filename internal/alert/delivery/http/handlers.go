package http

import (
	"smap-embeds/pkg/errors"
	"smap-embeds/pkg/response"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Crisis(c *gin.Context) {
	var req CrisisReq
	if !h.bind(c, &req) {
		return
	}
	h.reply(c, h.uc.DispatchCrisisAlert(c.Request.Context(), req.toInput()))
}

func (h *Handler) Onboarding(c *gin.Context) {
	var req OnboardingReq
	if !h.bind(c, &req) {
		return
	}
	h.reply(c, h.uc.DispatchDataOnboarding(c.Request.Context(), req.toInput()))
}

func (h *Handler) Campaign(c *gin.Context) {
	var req CampaignReq
	if !h.bind(c, &req) {
		return
	}
	h.reply(c, h.uc.DispatchCampaignEvent(c.Request.Context(), req.toInput()))
}

func (h *Handler) bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		h.l.Warnf(c.Request.Context(), "alert.delivery.http.bind: %v", err)
		response.Error(c, errors.NewValidationError(ValidationErrorCode, "body", err.Error()), nil)
		return false
	}
	return true
}

func (h *Handler) reply(c *gin.Context, err error) {
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}
	response.OK(c, nil)
}
