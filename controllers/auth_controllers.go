package controllers

import (
	"context"
	"os"
	"strings"

	"myhotel/dto"
	"myhotel/models"
	"myhotel/response"
	"myhotel/services"
	"myhotel/validator"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
)

const accessTokenMinutes = 60 * 24 * 3

func toUserLoginResponse(user *models.User) dto.UserLoginResponse {
	return dto.UserLoginResponse{
		UserID:    user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		Status:    user.Status,
		CreatedAt: user.CreatedAt,
	}
}

func Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := services.GetUserByLogin(input.Username)
	if err != nil {
		response.BadRequest(c, "Tên đăng nhập hoặc mật khẩu không hợp lệ")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		response.BadRequest(c, "Tên đăng nhập hoặc mật khẩu không hợp lệ")
		return
	}

	userInfo := services.UserInfo{
		UserId: user.ID,
		Role:   user.Role,
	}

	accessToken, err := services.GenerateToken(userInfo, accessTokenMinutes, true)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	services.SetTokenCookies(c, accessToken)

	response.Success(c, gin.H{
		"user_info":   toUserLoginResponse(&user),
		"accessToken": accessToken,
	})
}

func Logout(c *gin.Context) {
	cookies := c.Request.Cookies()
	for _, cookie := range cookies {
		c.SetCookie(cookie.Name, "", -1, "/", "", cookie.Secure, cookie.HttpOnly)
	}

	response.Success(c, nil)
}

// RegisterUser đăng ký tài khoản mới kèm profile
// và đăng nhập luôn sau khi tạo thành công
func RegisterUser(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if input.Password != input.Password2 {
		response.ValidationError(c, "Mật khẩu nhập lại không khớp")
		return
	}

	user := models.User{
		Username:  strings.TrimSpace(input.Username),
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Email:     strings.ToLower(strings.TrimSpace(input.Email)),
		Password:  input.Password,
	}

	if err := validator.ValidateUser(&user); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	profile := models.Profile{
		Age:   input.Age,
		Phone: input.Phone,
	}

	if err := validator.ValidateProfile(&profile); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	created, err := services.CreateUserWithProfile(user, profile)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	// Đăng nhập luôn sau khi đăng ký
	accessToken, err := services.GenerateToken(services.UserInfo{
		UserId: created.ID,
		Role:   created.Role,
	}, accessTokenMinutes, true)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	services.SetTokenCookies(c, accessToken)

	response.Created(c, gin.H{
		"user_info":   toUserLoginResponse(&created),
		"accessToken": accessToken,
	})
}

// AuthGoogle đăng nhập bằng Google ID token.
// Tài khoản chưa tồn tại thì tạo mới kèm profile.
func AuthGoogle(c *gin.Context) {
	var input dto.GoogleLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	payload, err := verifyGoogleIDToken(input.IDToken)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		response.BadRequest(c, "Token Google không chứa email")
		return
	}
	email = strings.ToLower(email)

	user, err := services.GetUserByEmail(email)
	if err != nil {
		newUser := models.User{
			Username: email,
			Email:    email,
			// Tài khoản Google không đăng nhập bằng mật khẩu
			Password: services.RandomPassword(),
		}

		user, err = services.CreateUserWithProfile(newUser, models.Profile{})
		if err != nil {
			response.BadRequest(c, err.Error())
			return
		}
	}

	accessToken, err := services.GenerateToken(services.UserInfo{
		UserId: user.ID,
		Role:   user.Role,
	}, accessTokenMinutes, true)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	services.SetTokenCookies(c, accessToken)

	response.Success(c, gin.H{
		"user_info":   toUserLoginResponse(&user),
		"accessToken": accessToken,
	})
}

// verifyGoogleIDToken xác thực ID token từ Google
func verifyGoogleIDToken(tokenId string) (*idtoken.Payload, error) {
	clientID := os.Getenv("GOOGLE_CLIENT_ID")
	payload, err := idtoken.Validate(context.Background(), tokenId, clientID)
	if err != nil {
		return nil, err
	}
	return payload, nil
}
