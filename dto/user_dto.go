package dto

// UpdateUserInput は部分更新のため各フィールドをポインタで持つ
type UpdateUserInput struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
}
