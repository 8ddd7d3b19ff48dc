package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"storage-dashboard/internal/application/ports"
	"storage-dashboard/internal/application/services"
	"storage-dashboard/internal/interface/api/rest/dto/auth"
	"storage-dashboard/internal/interface/api/rest/middleware"
	"storage-dashboard/internal/interface/api/rest/validator"
)

type AuthController struct {
	logger      *zap.Logger
	authService ports.AuthService
}

func NewAuthController(
	r *gin.Engine,
	logger *zap.Logger,
	authService ports.AuthService,
	guard ports.Guard,
) *AuthController {
	ac := &AuthController{
		logger:      logger,
		authService: authService,
	}

	r.POST(RouteLogin, ac.LoginHandler)
	r.POST(RouteRegister, ac.RegisterHandler)
	r.POST(RouteLogout, ac.LogoutHandler)
	r.GET(RouteSession, middleware.SessionGuard(guard), ac.SessionHandler)

	return ac
}

func (ac *AuthController) LoginHandler(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "invalid json"},
		)
		return
	}

	if errs := validator.ValidateLogin(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	s, err := ac.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password. Please try again."})
			return
		}
		c.JSON(
			http.StatusBadGateway,
			gin.H{"error": "login failed"},
		)
		ac.logger.Error("Login() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": s.Token,
		"email": s.Email,
	})
}

func (ac *AuthController) RegisterHandler(c *gin.Context) {
	var req auth.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "invalid json"},
		)
		return
	}

	if errs := validator.ValidateRegister(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	err := ac.authService.Register(c.Request.Context(), ports.RegisterInput{
		Email:       req.Email,
		Username:    req.Username,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		c.JSON(
			http.StatusBadGateway,
			gin.H{"error": "registration failed"},
		)
		ac.logger.Error("Register() error", zap.Error(err))
		return
	}

	c.Status(http.StatusCreated)
}

func (ac *AuthController) LogoutHandler(c *gin.Context) {
	if err := ac.authService.Logout(); err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "logout failed"},
		)
		ac.logger.Error("Logout() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"redirect": LoginRedirect})
}

func (ac *AuthController) SessionHandler(c *gin.Context) {
	s, ok := middleware.SessionFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"redirect": LoginRedirect})
		return
	}

	c.JSON(http.StatusOK, auth.SessionResponse{
		UserID:   s.UserID,
		Email:    s.Email,
		Username: s.Username,
	})
}
