package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"myhotel/config"
	"myhotel/models"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserInfo struct {
	UserId uint `json:"userid"`
	Role   int  `json:"role"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

var secretKey = []byte(config.GetEnv("SECRET_KEY_ACCESS_TOKEN"))
var refreshSecretKey = []byte(config.GetEnv("SECRET_KEY_REFRESH_TOKEN"))

// RandomPassword sinh mật khẩu ngẫu nhiên cho tài khoản tạo qua Google
func RandomPassword() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return ""
	}
	return hex.EncodeToString(b)
}

func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

func CheckPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

func GenerateToken(userInfo UserInfo, expiryMinutes int, isAccessToken bool) (string, error) {
	claims := &Claims{
		UserInfo: userInfo,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Minute * time.Duration(expiryMinutes)).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	var secretKeyToUse []byte
	if isAccessToken {
		secretKeyToUse = secretKey
	} else {
		secretKeyToUse = refreshSecretKey
	}

	return token.SignedString(secretKeyToUse)
}

func SetTokenCookies(c *gin.Context, accessToken string) {
	c.SetCookie(
		"access_token",
		accessToken,
		3*24*60*60,
		"/",
		"",
		true,
		false,
	)
}

func GetUserByUsername(username string) (models.User, error) {
	var user models.User
	result := config.DB.Preload("Profile").Where("username = ?", username).First(&user)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return user, fmt.Errorf("không tìm thấy người dùng %s", username)
	}

	if result.Error != nil {
		return user, result.Error
	}

	return user, nil
}

// GetUserByLogin tìm user theo username, không thấy thì thử theo email
func GetUserByLogin(login string) (models.User, error) {
	return resolveLoginUser(login, GetUserByUsername, GetUserByEmail)
}

func resolveLoginUser(login string, byUsername, byEmail func(string) (models.User, error)) (models.User, error) {
	user, err := byUsername(login)
	if err == nil {
		return user, nil
	}
	return byEmail(login)
}

func GetUserByEmail(email string) (models.User, error) {
	var user models.User
	result := config.DB.Preload("Profile").Where("email = ?", email).First(&user)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return user, fmt.Errorf("không tìm thấy người dùng với email %s", email)
	}

	if result.Error != nil {
		return user, result.Error
	}

	return user, nil
}

// CreateUserWithProfile tạo user kèm profile trong một transaction
func CreateUserWithProfile(input models.User, profile models.Profile) (models.User, error) {
	if input.Username == "" || input.Password == "" {
		return models.User{}, errors.New("không được để trống tên đăng nhập và mật khẩu")
	}

	if _, err := GetUserByUsername(input.Username); err == nil {
		return models.User{}, fmt.Errorf("tên đăng nhập %s đã được sử dụng", input.Username)
	}

	hashedPassword, err := HashPassword(input.Password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Username:  input.Username,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  hashedPassword,
		Role:      input.Role,
		Status:    1,
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		profile.UserID = user.ID
		if err := tx.Create(&profile).Error; err != nil {
			return err
		}

		user.Profile = &profile
		return nil
	})
	if err != nil {
		return models.User{}, err
	}

	return user, nil
}
