package request

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// RegisterMessages 校验失败时返回给前端的提示
var RegisterMessages = map[string]string{
	"Name":     "Name is required",
	"Email":    "Invalid email address",
	"Password": "Password must be at least 6 characters",
}
