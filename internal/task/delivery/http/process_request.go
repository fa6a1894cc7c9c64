package http

import (
	"github.com/gin-gonic/gin"
)

// processParseReq binds the {text} body shared by parse and create.
func (h *handler) processParseReq(c *gin.Context) (parseReq, error) {
	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "processParseReq: %v", err)
		return req, errInvalidRequest
	}
	return req, nil
}

// processListReq binds the list query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, errInvalidRequest
	}
	return req, nil
}

// processUpdateReq binds the update body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, errMissingID
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "processUpdateReq: %v", err)
		return req, errInvalidRequest
	}
	return req, nil
}
