package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bluetech-store/constants"
)

type IOrderController interface {
	Create(ctx *gin.Context)
}

type OrderController struct{}

func NewOrderController() IOrderController {
	return &OrderController{}
}

// Create は注文内容をそのまま返すだけで、何も永続化しない
func (c *OrderController) Create(ctx *gin.Context) {
	var body any
	if err := ctx.ShouldBindJSON(&body); err != nil {
		body = nil
	}

	ctx.JSON(http.StatusOK, gin.H{"message": constants.MsgOrderReceived, "order": body})
}
