package v1

import (
	"fmt"
	"io"
	"net/http"
	"path"

	"github.com/gin-gonic/gin"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/httputil"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/models"
)

// RegisterMeRoutes registers the routes for the authenticated user's
// profile with the RouterGroup that is passed.
func RegisterMeRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsMe)
	r.GET("", GetMe)
	r.PATCH("", UpdateMe)
	r.POST("/avatar", UploadAvatar)
	r.POST("/password", ChangePassword)
}

// MeEditable represents all user configurable profile parameters
type MeEditable struct {
	Name  string `json:"name" example:"Maria"`
	Phone string `json:"phone" example:"+55 11 91234-5678"`
}

// Me is the profile of the authenticated user.
type Me struct {
	models.DefaultModel
	Email          string `json:"email" example:"maria@example.com"`
	Name           string `json:"name" example:"Maria"`
	Phone          string `json:"phone" example:"+55 11 91234-5678"`
	AvatarURL      string `json:"avatarUrl" example:"https://storage.googleapis.com/zelo-avatars/u/maria.png"`
	SetupCompleted bool   `json:"setupCompleted" example:"true"`
}

func newMe(user models.User) Me {
	return Me{
		DefaultModel:   user.DefaultModel,
		Email:          user.Email,
		Name:           user.Name,
		Phone:          user.Phone,
		AvatarURL:      user.AvatarURL,
		SetupCompleted: user.SetupCompleted,
	}
}

type MeResponse struct {
	Data  *Me     `json:"data"`  // The authenticated user
	Error *string `json:"error"` // The error, if any occurred
}

// ChangePasswordRequest are the parameters for changing the password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" example:"the old password"`
	NewPassword     string `json:"newPassword" example:"a better password"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Me
// @Success		204
// @Router			/v1/me [options]
func OptionsMe(c *gin.Context) {
	httputil.OptionsGetPatch(c)
}

// @Summary		Get profile
// @Description	Returns the profile of the authenticated user
// @Tags			Me
// @Produce		json
// @Success		200	{object}	MeResponse
// @Failure		404	{object}	MeResponse
// @Failure		500	{object}	MeResponse
// @Router			/v1/me [get]
func GetMe(c *gin.Context) {
	var user models.User
	err := models.DB.First(&user, currentUser(c)).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MeResponse{
			Error: &s,
		})
		return
	}

	data := newMe(user)
	c.JSON(http.StatusOK, MeResponse{Data: &data})
}

// @Summary		Update profile
// @Description	Update the profile of the authenticated user. Only values to be updated need to be specified.
// @Tags			Me
// @Accept			json
// @Produce		json
// @Success		200		{object}	MeResponse
// @Failure		400		{object}	MeResponse
// @Failure		500		{object}	MeResponse
// @Param			profile	body		MeEditable	true	"Profile"
// @Router			/v1/me [patch]
func UpdateMe(c *gin.Context) {
	var user models.User
	err := models.DB.First(&user, currentUser(c)).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MeResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, MeEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MeResponse{
			Error: &s,
		})
		return
	}

	var data MeEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MeResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&user).Select("", updateFields...).Updates(models.User{
		Name:  data.Name,
		Phone: data.Phone,
	}).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MeResponse{
			Error: &s,
		})
		return
	}

	r := newMe(user)
	c.JSON(http.StatusOK, MeResponse{Data: &r})
}

// @Summary		Upload avatar
// @Description	Uploads an avatar image for the authenticated user and stores its public URL
// @Tags			Me
// @Accept			multipart/form-data
// @Produce		json
// @Success		200		{object}	MeResponse
// @Failure		400		{object}	MeResponse
// @Failure		500		{object}	MeResponse
// @Param			file	formData	file	true	"Avatar image"
// @Router			/v1/me/avatar [post]
func UploadAvatar(c *gin.Context) {
	if deps.Uploader == nil {
		s := errUploaderNotSet.Error()
		c.JSON(http.StatusBadRequest, MeResponse{
			Error: &s,
		})
		return
	}

	var user models.User
	err := models.DB.First(&user, currentUser(c)).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MeResponse{
			Error: &s,
		})
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		s := errAvatarFileRequired.Error()
		c.JSON(http.StatusBadRequest, MeResponse{
			Error: &s,
		})
		return
	}

	file, err := header.Open()
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, MeResponse{
			Error: &s,
		})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusInternalServerError, MeResponse{
			Error: &s,
		})
		return
	}

	objectPath := fmt.Sprintf("avatars/%s%s", user.ID, path.Ext(header.Filename))
	url, err := deps.Uploader.Upload(c.Request.Context(), objectPath, data, header.Header.Get("Content-Type"))
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusInternalServerError, MeResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&user).Update("avatar_url", url).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MeResponse{
			Error: &s,
		})
		return
	}

	user.AvatarURL = url
	r := newMe(user)
	c.JSON(http.StatusOK, MeResponse{Data: &r})
}

// @Summary		Change password
// @Description	Changes the password of the authenticated user. The current password must be correct.
// @Tags			Me
// @Accept			json
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			passwords	body	ChangePasswordRequest	true	"Passwords"
// @Router			/v1/me/password [post]
func ChangePassword(c *gin.Context) {
	var request ChangePasswordRequest
	err := httputil.BindData(c, &request)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	if len(request.NewPassword) < 8 {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errPasswordTooShort.Error(),
		})
		return
	}

	var user models.User
	err = models.DB.First(&user, currentUser(c)).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	if !user.CheckPassword(request.CurrentPassword) {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errCurrentPasswordWrong.Error(),
		})
		return
	}

	err = user.SetPassword(request.NewPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Model(&user).Update("password_hash", user.PasswordHash).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
