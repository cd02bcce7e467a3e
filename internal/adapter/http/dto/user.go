package dto

type UserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type UserItem struct {
	ID        string `json:"_id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}
