package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"bluetech-store/constants"
	"bluetech-store/middlewares"
	"bluetech-store/services"
)

type IProductController interface {
	FindAll(ctx *gin.Context)
	FindById(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type ProductController struct {
	service services.IProductService
}

func NewProductController(service services.IProductService) IProductController {
	return &ProductController{service: service}
}

func (c *ProductController) FindAll(ctx *gin.Context) {
	products, err := c.service.FindAll(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, products)
}

func (c *ProductController) FindById(ctx *gin.Context) {
	product, err := c.service.FindByID(ctx.Request.Context(), ctx.Param("id"))
	if errors.Is(err, mongo.ErrNoDocuments) {
		ctx.JSON(http.StatusNotFound, gin.H{"message": constants.ErrProductNotFound})
		return
	}
	if err != nil {
		// 不正なIDもストア障害もそのまま500で返す
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, product)
}

func (c *ProductController) Create(ctx *gin.Context) {
	input, ok := middlewares.ProductInput(ctx)
	if !ok {
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Missing product input"})
		return
	}

	newProduct, err := c.service.Create(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, newProduct)
}

func (c *ProductController) Update(ctx *gin.Context) {
	input, ok := middlewares.ProductInput(ctx)
	if !ok {
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Missing product input"})
		return
	}

	updatedProduct, err := c.service.Update(ctx.Request.Context(), ctx.Param("id"), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	// 該当IDがない場合は404ではなく200 + nullを返す
	if updatedProduct == nil {
		ctx.JSON(http.StatusOK, nil)
		return
	}
	ctx.JSON(http.StatusOK, updatedProduct)
}

func (c *ProductController) Delete(ctx *gin.Context) {
	if err := c.service.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	// 存在しないIDでも200を返す
	ctx.JSON(http.StatusOK, gin.H{"message": constants.MsgDeleted})
}
