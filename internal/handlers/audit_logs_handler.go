package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
	"github.com/BruksfildServices01/service-marketplace/internal/httpresp"
	"github.com/BruksfildServices01/service-marketplace/internal/middleware"
	ucAuditLog "github.com/BruksfildServices01/service-marketplace/internal/usecase/auditlog"
)

type AuditLogsHandler struct {
	list *ucAuditLog.List
}

func NewAuditLogsHandler(list *ucAuditLog.List) *AuditLogsHandler {
	return &AuditLogsHandler{list: list}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	companyID, ok := pathID(c, "company_id")
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	caller, _ := middleware.Subject(c)
	res, err := h.list.Execute(c.Request.Context(), caller, ucAuditLog.Query{
		CompanyID: companyID,
		Action:    c.Query("action"),
		Entity:    c.Query("entity"),
		From:      c.Query("from"),
		To:        c.Query("to"),
		Page:      page,
		Limit:     limit,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Paged(c, res.Page, res.Limit, res.Total, res.Logs)
}
