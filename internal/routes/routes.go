package routes

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/service-marketplace/internal/audit"
	"github.com/BruksfildServices01/service-marketplace/internal/auth"
	"github.com/BruksfildServices01/service-marketplace/internal/config"
	"github.com/BruksfildServices01/service-marketplace/internal/domain/account"
	"github.com/BruksfildServices01/service-marketplace/internal/domain/booking"
	"github.com/BruksfildServices01/service-marketplace/internal/domain/catalog"
	"github.com/BruksfildServices01/service-marketplace/internal/handlers"
	"github.com/BruksfildServices01/service-marketplace/internal/middleware"
	ucAccount "github.com/BruksfildServices01/service-marketplace/internal/usecase/account"
	ucAuditLog "github.com/BruksfildServices01/service-marketplace/internal/usecase/auditlog"
	ucBooking "github.com/BruksfildServices01/service-marketplace/internal/usecase/booking"
	ucCatalog "github.com/BruksfildServices01/service-marketplace/internal/usecase/catalog"
	"github.com/BruksfildServices01/service-marketplace/internal/validators"
)

// Store is everything the HTTP surface reads and writes. Both the gorm
// repository and the memory store satisfy it.
type Store interface {
	account.Repository
	catalog.Repository
	booking.Repository
	audit.Reader
}

type Deps struct {
	Config *config.Config
	Store  Store
	Tokens *auth.TokenIssuer
	Audit  *audit.Dispatcher
	Logger *slog.Logger

	// optional
	Limiter middleware.Counter
	Images  handlers.ImageUploader
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := validators.RegisterRole(v); err != nil {
			panic(err)
		}
	}

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.AccessLog(d.Logger),
		middleware.CORSMiddleware(cfg.CORSOrigins),
	)

	// ======================================================
	// 🔧 INFRA
	// ======================================================
	var checkEmail ucAccount.EmailChecker
	if cfg.CheckEmailDomain {
		checkEmail = validators.IsEmailDomainValid
	}

	requireAuth := middleware.AuthMiddleware(d.Tokens)
	optionalAuth := middleware.OptionalAuth(d.Tokens)
	limit := middleware.RateLimit(d.Limiter, middleware.RateLimitOptions{
		Max:    cfg.RateLimit.Max,
		Window: cfg.RateLimit.Window,
		Prefix: cfg.RateLimit.Prefix,
	}, d.Logger)

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	registerUC := ucAccount.NewRegister(d.Store, d.Audit, checkEmail)
	registerCompanyUC := ucAccount.NewRegisterCompany(d.Store, d.Audit, checkEmail)
	loginUC := ucAccount.NewLogin(d.Store, d.Tokens)

	getClientUC := ucAccount.NewGetClientProfile(d.Store)
	updateClientUC := ucAccount.NewUpdateClientProfile(d.Store, checkEmail)
	getCompanyUC := ucAccount.NewGetCompany(d.Store)
	updateCompanyUC := ucAccount.NewUpdateCompany(d.Store, d.Audit)

	createServiceUC := ucCatalog.NewCreateService(d.Store, d.Audit)
	deleteServiceUC := ucCatalog.NewDeleteService(d.Store, d.Audit)
	listServicesUC := ucCatalog.NewListServices(d.Store)
	listMasterUC := ucCatalog.NewListMasterServices(d.Store)

	createBookingUC := ucBooking.NewCreateBooking(d.Store, d.Audit, cfg.Timezone)
	createRequestUC := ucBooking.NewCreateRequest(d.Store, d.Audit)
	updateRequestUC := ucBooking.NewUpdateRequest(d.Store, d.Audit)
	getRequestUC := ucBooking.NewGetRequest(d.Store)
	historyUC := ucBooking.NewHistory(d.Store)

	listAuditUC := ucAuditLog.NewList(d.Store, d.Store, cfg.Timezone)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	publicHandler := handlers.NewPublicHandler()
	authHandler := handlers.NewAuthHandler(registerUC, registerCompanyUC, loginUC)
	portalHandler := handlers.NewPortalHandler(getClientUC, updateClientUC, getCompanyUC, updateCompanyUC)
	serviceHandler := handlers.NewServiceHandler(createServiceUC, deleteServiceUC, listServicesUC, listMasterUC)
	bookingHandler := handlers.NewBookingHandler(createBookingUC, createRequestUC, updateRequestUC, getRequestUC, historyUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(listAuditUC)
	uploadHandler := handlers.NewUploadHandler(d.Images)

	// ------------------------------
	// 🌐 PÚBLICO
	// ------------------------------
	r.GET("/landing", publicHandler.Landing)
	r.GET("/health", publicHandler.Health)

	r.GET("/master_services", serviceHandler.ListMaster)
	r.GET("/services", serviceHandler.List)
	r.GET("/all_services", serviceHandler.ListAll)
	r.POST("/services", serviceHandler.Create)

	r.GET("/requests/:request_id", bookingHandler.GetRequest)
	r.GET("/user_bookings", bookingHandler.UserBookings)
	r.GET("/user_requests", bookingHandler.UserRequests)
	r.GET("/company_bookings", bookingHandler.CompanyBookings)
	r.GET("/company_requests", bookingHandler.CompanyRequests)
	r.POST("/update_request", bookingHandler.UpdateRequest)

	r.DELETE("/companyservices/:user_id/service/:service_id", optionalAuth, serviceHandler.Delete)

	// ------------------------------
	// 🔐 AUTH
	// ------------------------------
	r.POST("/signin", limit, authHandler.Signin)
	r.POST("/signup_company", limit, authHandler.SignupCompany)
	r.POST("/login", limit, authHandler.Login)

	// ------------------------------
	// 🔐 PRIVADO
	// ------------------------------
	secured := r.Group("/")
	secured.Use(requireAuth)
	{
		secured.POST("/logout", authHandler.Logout)

		secured.GET("/clientportal/:user_id", portalHandler.GetClient)
		secured.PUT("/clientportal/:user_id", portalHandler.UpdateClient)

		secured.GET("/adminportal/:company_id", portalHandler.GetCompany)
		secured.PUT("/adminportal/:company_id", portalHandler.UpdateCompany)
		secured.GET("/adminportal/:company_id/audit-logs", auditLogsHandler.List)

		secured.POST("/bookings", bookingHandler.CreateBooking)
		secured.POST("/requests", bookingHandler.CreateRequest)

		secured.POST("/uploads/images", uploadHandler.Image)
	}
}
