package v1

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/httputil"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/models"
)

// RegisterAuthRoutes registers the unauthenticated auth routes with
// the RouterGroup that is passed.
func RegisterAuthRoutes(r *gin.RouterGroup) {
	r.POST("/register", Register)
	r.POST("/login", Login)
	r.POST("/logout", Logout)
	r.POST("/password-reset", RequestPasswordReset)
	r.POST("/password-reset/confirm", ConfirmPasswordReset)
}

// RegisterRequest are the parameters for creating an account.
type RegisterRequest struct {
	Email    string `json:"email" example:"maria@example.com"`
	Password string `json:"password" example:"correct horse battery staple"`
	Name     string `json:"name" example:"Maria"`
}

// LoginRequest are the credentials for signing in.
type LoginRequest struct {
	Email    string `json:"email" example:"maria@example.com"`
	Password string `json:"password" example:"correct horse battery staple"`
}

// SessionResponse carries a signed token and the authenticated user.
type SessionResponse struct {
	Token *string `json:"token"` // Bearer token for the Authorization header
	Data  *Me     `json:"data"`  // The authenticated user
	Error *string `json:"error"` // The error, if any occurred
}

// PasswordResetRequest asks for a reset token to be mailed.
type PasswordResetRequest struct {
	Email string `json:"email" example:"maria@example.com"`
}

// PasswordResetConfirm sets a new password using a reset token.
type PasswordResetConfirm struct {
	Email    string `json:"email" example:"maria@example.com"`
	Token    string `json:"token" example:"8e4f2c1ab76d90e3"`
	Password string `json:"password" example:"a new password"`
}

// signSession issues a token whose subject is the user ID.
func signSession(user models.User) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   user.ID.String(),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(deps.TokenLifetime)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(deps.JWTSecret))
}

// @Summary		Register
// @Description	Creates an account and returns a session token
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		201			{object}	SessionResponse
// @Failure		400			{object}	SessionResponse
// @Failure		500			{object}	SessionResponse
// @Param			registration	body	RegisterRequest	true	"Registration"
// @Router			/v1/auth/register [post]
func Register(c *gin.Context) {
	var request RegisterRequest
	err := httputil.BindData(c, &request)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &s,
		})
		return
	}

	if len(request.Password) < 8 {
		s := errPasswordTooShort.Error()
		c.JSON(http.StatusBadRequest, SessionResponse{
			Error: &s,
		})
		return
	}

	user := models.User{
		Email: request.Email,
		Name:  request.Name,
	}

	err = user.SetPassword(request.Password)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusInternalServerError, SessionResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Create(&user).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &s,
		})
		return
	}

	token, err := signSession(user)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusInternalServerError, SessionResponse{
			Error: &s,
		})
		return
	}

	data := newMe(user)
	c.JSON(http.StatusCreated, SessionResponse{
		Token: &token,
		Data:  &data,
	})
}

// @Summary		Login
// @Description	Verifies the credentials and returns a session token
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		200			{object}	SessionResponse
// @Failure		400			{object}	SessionResponse
// @Failure		401			{object}	SessionResponse
// @Param			credentials	body		LoginRequest	true	"Credentials"
// @Router			/v1/auth/login [post]
func Login(c *gin.Context) {
	var request LoginRequest
	err := httputil.BindData(c, &request)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &s,
		})
		return
	}

	var user models.User
	err = models.DB.Where("email = ?", request.Email).First(&user).Error

	// Do not leak whether the account exists
	if err != nil || !user.CheckPassword(request.Password) {
		s := errCredentialsInvalid.Error()
		c.JSON(http.StatusUnauthorized, SessionResponse{
			Error: &s,
		})
		return
	}

	token, err := signSession(user)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusInternalServerError, SessionResponse{
			Error: &s,
		})
		return
	}

	data := newMe(user)
	c.JSON(http.StatusOK, SessionResponse{
		Token: &token,
		Data:  &data,
	})
}

// @Summary		Logout
// @Description	Ends the session. Tokens are stateless, so the client discards its token; this endpoint exists so that sign-out is an explicit API operation.
// @Tags			Auth
// @Success		204
// @Router			/v1/auth/logout [post]
func Logout(c *gin.Context) {
	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Request password reset
// @Description	Mails a reset token to the account's address. Always returns 204 so that account existence is not leaked.
// @Tags			Auth
// @Accept			json
// @Success		204
// @Failure		400	{object}	httpError
// @Param			reset	body	PasswordResetRequest	true	"Reset request"
// @Router			/v1/auth/password-reset [post]
func RequestPasswordReset(c *gin.Context) {
	var request PasswordResetRequest
	err := httputil.BindData(c, &request)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	if request.Email == "" {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errEmailRequired.Error(),
		})
		return
	}

	var user models.User
	err = models.DB.Where("email = ?", request.Email).First(&user).Error
	if err != nil {
		c.JSON(http.StatusNoContent, nil)
		return
	}

	raw := make([]byte, 16)
	_, _ = rand.Read(raw)
	token := hex.EncodeToString(raw)

	expires := time.Now().Add(time.Hour)
	err = models.DB.Model(&user).Updates(map[string]any{
		"reset_token":         token,
		"reset_token_expires": expires,
	}).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	if deps.Mailer.Configured() {
		err = deps.Mailer.SendPasswordReset(user.Email, token)
		if err != nil {
			log.Error().Err(err).Str("email", user.Email).Msg("could not send reset mail")
		}
	} else {
		log.Info().Str("email", user.Email).Str("token", token).Msg("smtp not configured, reset token only logged")
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Confirm password reset
// @Description	Sets a new password using a previously mailed reset token
// @Tags			Auth
// @Accept			json
// @Success		204
// @Failure		400	{object}	httpError
// @Param			confirmation	body	PasswordResetConfirm	true	"Confirmation"
// @Router			/v1/auth/password-reset/confirm [post]
func ConfirmPasswordReset(c *gin.Context) {
	var request PasswordResetConfirm
	err := httputil.BindData(c, &request)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	if len(request.Password) < 8 {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errPasswordTooShort.Error(),
		})
		return
	}

	var user models.User
	err = models.DB.Where("email = ?", request.Email).First(&user).Error
	if err != nil ||
		user.ResetToken == "" ||
		user.ResetToken != request.Token ||
		user.ResetTokenExpires == nil ||
		user.ResetTokenExpires.Before(time.Now()) {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errResetTokenInvalid.Error(),
		})
		return
	}

	err = user.SetPassword(request.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Model(&user).Updates(map[string]any{
		"password_hash":       user.PasswordHash,
		"reset_token":         "",
		"reset_token_expires": nil,
	}).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
