package controllers

import (
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"time"

	"as-production-store/config"
	"as-production-store/models"
	"as-production-store/repositories"
	"as-production-store/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	users *repositories.UserRepository
}

func NewAuthController() *AuthController {
	return &AuthController{users: repositories.NewUserRepository()}
}

func otpKey(email string) string {
	return "pwreset:" + email
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// @Summary Admin login
// @Description Login with email and password, returns a JWT
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login Request"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	user, err := ctrl.users.FindByEmail(c.Request.Context(), req.Email)
	if err != nil || !utils.VerifyPassword(user.Password, req.Password) {
		c.JSON(401, gin.H{"success": false, "message": "Invalid email or password"})
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to generate token"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Login successful",
		"data":    models.LoginResponse{Token: token, User: *user},
	})
}

// @Summary Request password reset
// @Description Send a 6-digit OTP to the admin's email, valid for 10 minutes
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.ForgotPasswordRequest true "Forgot Password Request"
// @Success 200 {object} models.Response
// @Router /auth/forgot-password [post]
func (ctrl *AuthController) ForgotPassword(c *gin.Context) {
	var req models.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	// Always answer 200 so the endpoint cannot be used to probe for
	// registered emails.
	respond := func() {
		c.JSON(200, gin.H{"success": true, "message": "If the email is registered, an OTP has been sent"})
	}

	user, err := ctrl.users.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		respond()
		return
	}

	if config.RedisClient == nil {
		log.Println("Password reset requested but redis is unavailable")
		respond()
		return
	}

	otp, err := generateOTP()
	if err != nil {
		respond()
		return
	}

	if err := config.RedisClient.Set(c.Request.Context(), otpKey(user.Email), otp, 10*time.Minute).Err(); err != nil {
		log.Println("Failed to store OTP:", err)
		respond()
		return
	}

	emailService, err := models.NewEmailService()
	if err != nil {
		log.Println("Email service unavailable:", err)
		respond()
		return
	}

	if err := emailService.SendOTPEmail(user.Email, otp); err != nil {
		log.Println("Failed to send OTP email:", err)
	}

	respond()
}

// @Summary Reset password
// @Description Set a new password using the emailed OTP
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.ResetPasswordRequest true "Reset Password Request"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /auth/reset-password [post]
func (ctrl *AuthController) ResetPassword(c *gin.Context) {
	var req models.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	if config.RedisClient == nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid or expired OTP"})
		return
	}

	stored, err := config.RedisClient.Get(c.Request.Context(), otpKey(req.Email)).Result()
	if err != nil || stored != req.OTP {
		c.JSON(400, gin.H{"success": false, "message": "Invalid or expired OTP"})
		return
	}

	user, err := ctrl.users.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid or expired OTP"})
		return
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to reset password"})
		return
	}

	if err := ctrl.users.UpdatePassword(c.Request.Context(), user.ID, hash); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to reset password"})
		return
	}

	config.RedisClient.Del(c.Request.Context(), otpKey(req.Email))

	c.JSON(200, gin.H{"success": true, "message": "Password reset successfully"})
}
