package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bluetech-store/constants"
	"bluetech-store/dto"
	"bluetech-store/services"
)

type IAuthController interface {
	Signup(ctx *gin.Context)
	Login(ctx *gin.Context)
}

type AuthController struct {
	service services.IAuthService
}

func NewAuthController(service services.IAuthService) IAuthController {
	return &AuthController{service: service}
}

func (c *AuthController) Signup(ctx *gin.Context) {
	var input dto.SignupInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if input.Name == "" || input.Email == "" || input.Password == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": constants.ErrMissingFields})
		return
	}

	user, err := c.service.Signup(ctx.Request.Context(), input)
	if err != nil {
		if err.Error() == constants.ErrEmailInUse {
			ctx.JSON(http.StatusBadRequest, gin.H{"message": constants.ErrEmailInUse})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": constants.MsgCreated, "user": user})
}

func (c *AuthController) Login(ctx *gin.Context) {
	var input dto.LoginInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user, token, err := c.service.Login(ctx.Request.Context(), input)
	if err != nil {
		if err.Error() == constants.ErrInvalidCredentials {
			ctx.JSON(http.StatusUnauthorized, gin.H{"message": constants.ErrInvalidCredentials})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": constants.MsgOK, "user": user, "token": token})
}
