package middlewares

import (
	"fmt"
	"math/rand"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"bluetech-store/constants"
	"bluetech-store/dto"
)

const productInputKey = "productInput"

// HandleProductData はContent-Typeを見てJSONボディとmultipartフォームを振り分ける
// application/jsonの場合はファイルアップロードを扱わず、そのままJSONとして読む
// それ以外はmultipartとして解釈し、"image"フィールドのファイルをアップロード先に保存する
func HandleProductData(uploadDir string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var input dto.ProductInput

		if ctx.ContentType() == "application/json" {
			if err := ctx.ShouldBindJSON(&input); err != nil {
				ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			input.ResolveImage("")
		} else {
			input.Name = ctx.PostForm("name")
			input.Description = ctx.PostForm("description")
			input.Price = dto.CoercePrice(ctx.PostForm("price"))
			input.Image = ctx.PostForm("image")
			input.ImageURL = ctx.PostForm("imageUrl")

			uploadedPath := ""
			file, err := ctx.FormFile(constants.ImageFormField)
			if err == nil && file != nil {
				filename := GenerateFilename(file.Filename)
				if err := ctx.SaveUploadedFile(file, filepath.Join(uploadDir, filename)); err != nil {
					ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
					return
				}
				uploadedPath = constants.UploadURLPrefix + "/" + filename
			}
			input.ResolveImage(uploadedPath)
		}

		ctx.Set(productInputKey, input)
		ctx.Next()
	}
}

// ProductInput はHandleProductDataが解決した入力を取り出す
func ProductInput(ctx *gin.Context) (dto.ProductInput, bool) {
	value, exists := ctx.Get(productInputKey)
	if !exists {
		return dto.ProductInput{}, false
	}
	input, ok := value.(dto.ProductInput)
	return input, ok
}

// GenerateFilename はミリ秒タイムスタンプと乱数で実用上衝突しないファイル名を作る
func GenerateFilename(original string) string {
	return fmt.Sprintf("%d-%d-%s", time.Now().UnixMilli(), rand.Intn(1_000_000_000), filepath.Base(original))
}
