package http

import (
	"github.com/gin-gonic/gin"

	"construction-visit-analysis/pkg/response"
)

// Analyze godoc
// @Summary     Analyze a visit transcript
// @Description Extracts tasks from a construction-visit transcript and computes a validated schedule with calendar dates.
// @Tags        Analyses
// @Accept      json
// @Produce     json
// @Param       body body analyzeReq true "Transcript and scheduling options"
// @Success     200 {object} analyzeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     422 {object} response.Resp "Unprocessable - cyclic dependencies or no tasks"
// @Failure     502 {object} response.Resp "Bad Gateway - extraction model unavailable"
// @Router      /api/v1/analyses [POST]
func (h *handler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAnalyzeReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	input, err := req.toInput()
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Analyze(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Analyze: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newAnalyzeResp(output))
}
