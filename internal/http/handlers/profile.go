package handlers

import (
	"errors"
	"net/http"

	"luxride/internal/domain"
	"luxride/internal/domain/models"
	"luxride/internal/http/middleware"
	"luxride/internal/services"
	"luxride/internal/utils"

	"github.com/gin-gonic/gin"
)

// The profile endpoints answer {success, message, data} so existing clients keep working.

func profileFail(c *gin.Context, err error, fallback string) {
	if domain.IsValidation(err) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	var internal domain.InternalError
	if errors.As(err, &internal) && internal.Msg != "" {
		fallback = internal.Msg
	}
	utils.LogEvent(middleware.GetRequestID(c), "profile", "error", err.Error())
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": fallback})
}

// bindProfile reads the body. An empty body binds nothing; malformed JSON answers 400.
func bindProfile[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return true
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"success": false, "message": "Request body too large"})
			return false
		}
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid JSON body"})
		return false
	}
	return true
}

func (a *API) SaveDriverProfile(c *gin.Context) {
	var in services.ProfileInput
	if !bindProfile(c, &in) {
		return
	}
	p, err := a.profileService(c).SaveProfile(c.Request.Context(), in)
	if err != nil {
		profileFail(c, err, "Error saving profile")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Profile saved successfully", "data": p})
}

func (a *API) GetDriverProfile(c *gin.Context) {
	p, err := a.profileService(c).GetProfile(c.Request.Context())
	if err != nil {
		profileFail(c, err, "Error loading profile")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": p})
}

func (a *API) SaveDriverPhoto(c *gin.Context) {
	var in services.PhotoInput
	if !bindProfile(c, &in) {
		return
	}
	p, err := a.profileService(c).SavePhoto(c.Request.Context(), in)
	if err != nil {
		profileFail(c, err, "Error saving photo")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Photo saved successfully", "uploadedAt": p.UploadedAt})
}

func (a *API) GetDriverPhoto(c *gin.Context) {
	p, err := a.profileService(c).GetPhoto(c.Request.Context())
	if err != nil {
		profileFail(c, err, "Error loading photo")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": p})
}

func (a *API) SaveFullProfile(c *gin.Context) {
	var in services.FullProfileInput
	if !bindProfile(c, &in) {
		return
	}
	p, err := a.profileService(c).SaveFullProfile(c.Request.Context(), in)
	if err != nil {
		profileFail(c, err, "Error saving profile")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Profile saved successfully", "data": p})
}

func (a *API) GetFullProfile(c *gin.Context) {
	p, err := a.profileService(c).GetFullProfile(c.Request.Context())
	if err != nil {
		profileFail(c, err, "Error loading profile")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": p})
}

func (a *API) GetAccount(c *gin.Context) {
	acct, err := a.profileService(c).GetAccount(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": acct})
}

func (a *API) UpdateAccount(c *gin.Context) {
	var in models.DriverAccountUpdate
	if !BindJSONOrError(c, &in) {
		return
	}
	acct, err := a.profileService(c).UpdateAccount(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile saved successfully", "data": acct})
}
