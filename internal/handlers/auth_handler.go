package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
	"github.com/BruksfildServices01/service-marketplace/internal/httpresp"
	ucAccount "github.com/BruksfildServices01/service-marketplace/internal/usecase/account"
)

type AuthHandler struct {
	register        *ucAccount.Register
	registerCompany *ucAccount.RegisterCompany
	login           *ucAccount.Login
}

func NewAuthHandler(
	register *ucAccount.Register,
	registerCompany *ucAccount.RegisterCompany,
	login *ucAccount.Login,
) *AuthHandler {
	return &AuthHandler{
		register:        register,
		registerCompany: registerCompany,
		login:           login,
	}
}

// --------- Requests ---------

type SigninRequest struct {
	Name     string `json:"name" binding:"required,max=120"`
	Email    string `json:"email" binding:"required,email,max=120"`
	Password string `json:"password" binding:"required"`
	Rol      string `json:"rol" binding:"required,role"`
}

type SignupCompanyRequest struct {
	Name        string `json:"name" binding:"required,max=120"`
	Email       string `json:"email" binding:"required,email,max=120"`
	Password    string `json:"password" binding:"required"`
	Rol         string `json:"rol" binding:"omitempty,role"`
	CompanyName string `json:"company_name" binding:"required,max=120"`
	Location    string `json:"location" binding:"max=120"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
	UserID      uint      `json:"user_id"`
	Username    string    `json:"username"`
	Rol         string    `json:"rol"`
	CompanyID   *uint     `json:"company_id,omitempty"`
	CompanyName *string   `json:"companyname,omitempty"`
}

// --------- Handlers ---------

func (h *AuthHandler) Signin(c *gin.Context) {
	var req SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}

	user, err := h.register.Execute(c.Request.Context(), ucAccount.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Rol,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, user)
}

func (h *AuthHandler) SignupCompany(c *gin.Context) {
	var req SignupCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}

	user, _, err := h.registerCompany.Execute(c.Request.Context(), ucAccount.RegisterCompanyInput{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		Role:        req.Rol,
		CompanyName: req.CompanyName,
		Location:    req.Location,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}

	res, err := h.login.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, LoginResponse{
		AccessToken: res.AccessToken,
		TokenType:   "Bearer",
		ExpiresAt:   res.ExpiresAt,
		UserID:      res.UserID,
		Username:    res.Username,
		Rol:         res.Rol,
		CompanyID:   res.CompanyID,
		CompanyName: res.CompanyName,
	})
}

// Logout is stateless: the client drops its token.
func (h *AuthHandler) Logout(c *gin.Context) {
	httpresp.Msg(c, http.StatusOK, "Logout successful")
}
