package http

import (
	"errors"

	"github.com/gin-gonic/gin"
)

var errMissingParam = errors.New("missing path parameter")

// processCreateVisitReq binds and validates the create visit request body.
func (h *handler) processCreateVisitReq(c *gin.Context) (createVisitReq, error) {
	var req createVisitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processAddEntryReq binds the entry body and the visit ID path param.
func (h *handler) processAddEntryReq(c *gin.Context) (addEntryReq, error) {
	var req addEntryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.VisitID = c.Param("visit_id")
	if req.VisitID == "" {
		return req, errMissingParam
	}
	return req, nil
}

// processUpdateProgressReq binds the progress body and the entry ID path param.
func (h *handler) processUpdateProgressReq(c *gin.Context) (updateProgressReq, error) {
	var req updateProgressReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.EntryID = c.Param("entry_id")
	if req.EntryID == "" {
		return req, errMissingParam
	}
	return req, nil
}
