package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/service-marketplace/internal/domain/access"
	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
	"github.com/BruksfildServices01/service-marketplace/internal/httpresp"
	"github.com/BruksfildServices01/service-marketplace/internal/middleware"
	ucCatalog "github.com/BruksfildServices01/service-marketplace/internal/usecase/catalog"
)

type ServiceHandler struct {
	create *ucCatalog.CreateService
	del    *ucCatalog.DeleteService
	list   *ucCatalog.ListServices
	master *ucCatalog.ListMasterServices
}

func NewServiceHandler(
	create *ucCatalog.CreateService,
	del *ucCatalog.DeleteService,
	list *ucCatalog.ListServices,
	master *ucCatalog.ListMasterServices,
) *ServiceHandler {
	return &ServiceHandler{
		create: create,
		del:    del,
		list:   list,
		master: master,
	}
}

type CreateServiceRequest struct {
	CompanyID   uint     `json:"companyid" binding:"required"`
	Name        string   `json:"name" binding:"required,max=120"`
	Description string   `json:"description"`
	Type        string   `json:"type" binding:"max=60"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Duration    int      `json:"duration" binding:"required,gt=0"`
	Available   *bool    `json:"available"`
	Image       *string  `json:"image" binding:"omitempty,max=75"`
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}

	svc, err := h.create.Execute(c.Request.Context(), ucCatalog.CreateServiceInput{
		CompanyID:   req.CompanyID,
		Name:        req.Name,
		Description: req.Description,
		Type:        req.Type,
		Price:       *req.Price,
		Duration:    req.Duration,
		Available:   req.Available,
		Image:       req.Image,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, svc)
}

// List answers GET /services, optionally narrowed by ?companies_id=.
func (h *ServiceHandler) List(c *gin.Context) {
	var companyID *uint
	if raw := c.Query("companies_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_companies_id", "companies_id must be a positive integer")
			return
		}
		v := uint(id)
		companyID = &v
	}

	services, err := h.list.Execute(c.Request.Context(), companyID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, services)
}

func (h *ServiceHandler) ListAll(c *gin.Context) {
	services, err := h.list.Execute(c.Request.Context(), nil)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, services)
}

func (h *ServiceHandler) ListMaster(c *gin.Context) {
	items, err := h.master.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, items)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	serviceID, ok := pathID(c, "service_id")
	if !ok {
		return
	}

	var caller *access.Subject
	if s, ok := middleware.Subject(c); ok {
		caller = &s
	}

	if err := h.del.Execute(c.Request.Context(), caller, userID, serviceID); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Msg(c, http.StatusOK, "Service deleted successfully")
}
