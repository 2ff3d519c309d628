package constants

// ユーザーロール
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// レスポンスメッセージ
const (
	MsgCreated       = "Created"
	MsgOK            = "OK"
	MsgDeleted       = "Deleted"
	MsgOrderReceived = "Order received"
	MsgNotFound      = "Not found"
)

// エラーメッセージ
const (
	ErrMissingFields      = "Missing fields"
	ErrEmailInUse         = "Email already in use"
	ErrEmailExists        = "Email exists"
	ErrInvalidCredentials = "Invalid credentials"
	ErrProductNotFound    = "Product not found"
	ErrUserNotFound       = "User not found"
)

// 画像アップロード
const (
	UploadURLPrefix = "/uploads"
	ImageFormField  = "image"
)
