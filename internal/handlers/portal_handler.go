package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
	"github.com/BruksfildServices01/service-marketplace/internal/httpresp"
	"github.com/BruksfildServices01/service-marketplace/internal/middleware"
	ucAccount "github.com/BruksfildServices01/service-marketplace/internal/usecase/account"
)

// ======================================================
// HANDLER
// ======================================================

// PortalHandler serves the client portal and the company admin portal.
type PortalHandler struct {
	getClient     *ucAccount.GetClientProfile
	updateClient  *ucAccount.UpdateClientProfile
	getCompany    *ucAccount.GetCompany
	updateCompany *ucAccount.UpdateCompany
}

func NewPortalHandler(
	getClient *ucAccount.GetClientProfile,
	updateClient *ucAccount.UpdateClientProfile,
	getCompany *ucAccount.GetCompany,
	updateCompany *ucAccount.UpdateCompany,
) *PortalHandler {
	return &PortalHandler{
		getClient:     getClient,
		updateClient:  updateClient,
		getCompany:    getCompany,
		updateCompany: updateCompany,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type UpdateClientRequest struct {
	Name  *string `json:"name" binding:"omitempty,max=120"`
	Email *string `json:"email" binding:"omitempty,email,max=120"`
	Image *string `json:"image" binding:"omitempty,max=75"`
}

type UpdateCompanyRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=120"`
	Location *string `json:"location" binding:"omitempty,max=120"`
	Image    *string `json:"image" binding:"omitempty,max=75"`
	Owner    *uint   `json:"owner"`
}

// ======================================================
// CLIENT PORTAL
// ======================================================

func (h *PortalHandler) GetClient(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	caller, _ := middleware.Subject(c)

	user, err := h.getClient.Execute(c.Request.Context(), caller, userID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, user)
}

func (h *PortalHandler) UpdateClient(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}
	caller, _ := middleware.Subject(c)

	user, err := h.updateClient.Execute(c.Request.Context(), caller, userID, ucAccount.ClientProfilePatch{
		Name:  req.Name,
		Email: req.Email,
		Image: req.Image,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, user)
}

// ======================================================
// ADMIN PORTAL
// ======================================================

func (h *PortalHandler) GetCompany(c *gin.Context) {
	companyID, ok := pathID(c, "company_id")
	if !ok {
		return
	}
	caller, _ := middleware.Subject(c)

	company, err := h.getCompany.Execute(c.Request.Context(), caller, companyID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, company)
}

func (h *PortalHandler) UpdateCompany(c *gin.Context) {
	companyID, ok := pathID(c, "company_id")
	if !ok {
		return
	}

	var req UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}
	caller, _ := middleware.Subject(c)

	company, err := h.updateCompany.Execute(c.Request.Context(), caller, companyID, ucAccount.CompanyPatch{
		Name:     req.Name,
		Location: req.Location,
		Image:    req.Image,
		Owner:    req.Owner,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, company)
}
