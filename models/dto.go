package models

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" form:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email" form:"email" binding:"required,email"`
	OTP         string `json:"otp" form:"otp" binding:"required,len=6"`
	NewPassword string `json:"new_password" form:"new_password" binding:"required,min=6"`
}

type AddCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type EnquirySettingsRequest struct {
	WhatsAppNumber string `json:"whatsapp_number" form:"whatsapp_number" binding:"required,numeric"`
	PrefilledText  string `json:"prefilled_text" form:"prefilled_text" binding:"required,min=10"`
}
