package dto

import (
	"encoding/json"
	"strconv"
	"strings"
)

// FlexNumber はJSONの数値と数値文字列の両方を受け付ける価格型
// 欠落・数値に変換できない値は0になる
type FlexNumber float64

func (f *FlexNumber) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case float64:
		*f = FlexNumber(v)
	case string:
		*f = CoercePrice(v)
	default:
		*f = 0
	}
	return nil
}

// CoercePrice はフォーム値などの文字列を価格に変換する
func CoercePrice(value string) FlexNumber {
	n, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0
	}
	return FlexNumber(n)
}

type ImageSourceKind int

const (
	ImageNone ImageSourceKind = iota
	ImageUploadedFile
	ImageURL
)

// ImageSource は画像の指定方法（なし・アップロード済みファイル・URL文字列）を表す
type ImageSource struct {
	Kind ImageSourceKind
	Path string
}

// ProductInput はJSONボディとmultipartフォームの両方から組み立てられる
// Image/ImageURLは生のフィールドで、境界で一度だけResolvedに解決される
type ProductInput struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Price       FlexNumber  `json:"price"`
	Image       string      `json:"image"`
	ImageURL    string      `json:"imageUrl"`
	Resolved    ImageSource `json:"-"`
}

// ResolveImage はファイルアップロードを最優先に画像ソースを決定する
func (p *ProductInput) ResolveImage(uploadedPath string) {
	switch {
	case uploadedPath != "":
		p.Resolved = ImageSource{Kind: ImageUploadedFile, Path: uploadedPath}
	case p.ImageURL != "":
		p.Resolved = ImageSource{Kind: ImageURL, Path: p.ImageURL}
	case p.Image != "":
		p.Resolved = ImageSource{Kind: ImageURL, Path: p.Image}
	default:
		p.Resolved = ImageSource{Kind: ImageNone}
	}
}
