package http

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"construction-visit-analysis/pkg/response"
)

// CreateVisit godoc
// @Summary     Record a site visit
// @Description Creates a visit record for a construction location.
// @Tags        Visits
// @Accept      json
// @Produce     json
// @Param       body body createVisitReq true "Visit data"
// @Success     201 {object} visitResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/visits [POST]
func (h *handler) CreateVisit(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateVisitReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	input, err := req.toInput()
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	visit, err := h.uc.CreateVisit(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateVisit: %v", err)
		h.mapError(c, err)
		return
	}

	response.Created(c, newVisitResp(visit))
}

// ListVisits godoc
// @Summary     List visits for a location
// @Description Returns all recorded visits for a location, oldest first.
// @Tags        Visits
// @Produce     json
// @Param       location_id path string true "Location ID"
// @Success     200 {object} listVisitsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/locations/{location_id}/visits [GET]
func (h *handler) ListVisits(c *gin.Context) {
	ctx := c.Request.Context()

	locationID, err := uuid.Parse(c.Param("location_id"))
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	visits, err := h.uc.ListVisits(ctx, locationID)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListVisits: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newListVisitsResp(visits))
}

// AddEntry godoc
// @Summary     Add a chronogram entry
// @Description Records one planned task inside a visit's chronogram.
// @Tags        Chronogram
// @Accept      json
// @Produce     json
// @Param       visit_id path string      true "Visit ID"
// @Param       body     body addEntryReq true "Entry data"
// @Success     201 {object} entryResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Visit Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/visits/{visit_id}/chronogram [POST]
func (h *handler) AddEntry(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAddEntryReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	input, err := req.toInput()
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	entry, err := h.uc.AddEntry(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.AddEntry: %v", err)
		h.mapError(c, err)
		return
	}

	response.Created(c, newEntryResp(entry))
}

// UpdateProgress godoc
// @Summary     Update entry progress
// @Description Records actual execution data for a chronogram entry.
// @Tags        Chronogram
// @Accept      json
// @Produce     json
// @Param       entry_id path string            true "Entry ID"
// @Param       body     body updateProgressReq true "Progress data"
// @Success     200 {object} entryResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Entry Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chronogram/{entry_id}/progress [PATCH]
func (h *handler) UpdateProgress(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateProgressReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	input, err := req.toInput()
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	entry, err := h.uc.UpdateProgress(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateProgress: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newEntryResp(entry))
}

// GetHistory godoc
// @Summary     Historical context for a location
// @Description Returns the aggregated per-task-name statistics used to ground new analyses.
// @Tags        Visits
// @Produce     json
// @Param       location_id path string true "Location ID"
// @Success     200 {object} contextResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/locations/{location_id}/history [GET]
func (h *handler) GetHistory(c *gin.Context) {
	ctx := c.Request.Context()

	locationID, err := uuid.Parse(c.Param("location_id"))
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	hc := h.uc.Gather(ctx, locationID)
	response.OK(c, h.newContextResp(hc))
}
