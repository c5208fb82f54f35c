// Package controller contains HTTP request handlers.
package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/task-tracker/backend/internal/application/usecase/auth"
	domainerror "github.com/task-tracker/backend/internal/domain/error"
	"github.com/task-tracker/backend/internal/integration/entrypoint/dto"
)

// AuthController handles authentication-related HTTP requests.
type AuthController struct {
	registerUseCase *auth.RegisterUserUseCase
	loginUseCase    *auth.LoginUserUseCase
}

// NewAuthController creates a new auth controller instance.
func NewAuthController(
	registerUseCase *auth.RegisterUserUseCase,
	loginUseCase *auth.LoginUserUseCase,
) *AuthController {
	return &AuthController{
		registerUseCase: registerUseCase,
		loginUseCase:    loginUseCase,
	}
}

// Register handles POST /api/v1/auth/register requests.
func (ctrl *AuthController) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		issues := dto.IssuesFromBindingError(err)
		if issues == nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Message: "invalid request body",
			})
			return
		}
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
			Message: "validation failed",
			Code:    string(domainerror.ErrCodeMissingFields),
			Issues:  issues,
		})
		return
	}

	output, err := ctrl.registerUseCase.Execute(c.Request.Context(), auth.RegisterUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		ctrl.handleAuthError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.RegisterResponse{
		Message: "user registered successfully",
		User:    dto.ToUserResponse(output.User),
	})
}

// Login handles POST /api/v1/auth/login requests.
func (ctrl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		issues := dto.IssuesFromBindingError(err)
		if issues == nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Message: "invalid request body",
			})
			return
		}
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
			Message: "validation failed",
			Code:    string(domainerror.ErrCodeMissingFields),
			Issues:  issues,
		})
		return
	}

	output, err := ctrl.loginUseCase.Execute(c.Request.Context(), auth.LoginUserInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		ctrl.handleAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token: output.Token,
		User:  dto.ToUserResponse(output.User),
	})
}

// handleAuthError maps domain errors to HTTP responses.
func (ctrl *AuthController) handleAuthError(c *gin.Context, err error) {
	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		status := authErrorStatus(authErr.Code)
		c.JSON(status, dto.ErrorResponse{
			Message: authErr.Message,
			Code:    string(authErr.Code),
		})
		return
	}

	slog.Error("Unexpected error in auth controller", "error", err)
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Message: "internal server error",
	})
}

// authErrorStatus maps an auth error code to its HTTP status.
func authErrorStatus(code domainerror.AuthErrorCode) int {
	switch code {
	case domainerror.ErrCodeEmailExists:
		return http.StatusConflict
	case domainerror.ErrCodeWeakPassword, domainerror.ErrCodeInvalidEmail, domainerror.ErrCodeMissingFields:
		return http.StatusUnprocessableEntity
	case domainerror.ErrCodeInvalidCredentials:
		return http.StatusUnauthorized
	case domainerror.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	case domainerror.ErrCodeInvalidToken, domainerror.ErrCodeExpiredToken, domainerror.ErrCodeMissingToken:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
