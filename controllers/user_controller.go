package controllers

import (
	"log"
	"net/http"

	"github.com/Brandon0902/HumanSport/models"
	"github.com/Brandon0902/HumanSport/services"
	"github.com/Brandon0902/HumanSport/utils"

	"github.com/gin-gonic/gin"
)

// Register handles the multipart signup form: validates the fields, stores
// the photo in S3 and persists the user with a hashed password.
func Register(c *gin.Context) {
	firstName := c.PostForm("firstName")
	lastName := c.PostForm("lastName")
	email := c.PostForm("email")
	birthdate := c.PostForm("birthdate")
	phone := c.PostForm("phone")
	role := c.PostForm("role")
	password := c.PostForm("password")

	var errs []utils.FieldError
	errs = utils.Require(errs, "firstName", firstName, "first name is required")
	errs = utils.Require(errs, "lastName", lastName, "last name is required")
	errs = utils.Require(errs, "phone", phone, "phone is required")
	if !utils.ValidEmail(email) {
		errs = append(errs, utils.FieldError{Field: "email", Message: "must be a valid email"})
	}
	parsedBirthdate, ok := utils.ParseBirthdate(birthdate)
	if !ok {
		errs = append(errs, utils.FieldError{Field: "birthdate", Message: "birthdate is invalid, expected YYYY-MM-DD"})
	}
	if role == "" {
		role = models.RoleUser
	} else if !models.ValidRole(role) {
		errs = append(errs, utils.FieldError{Field: "role", Message: "unknown role"})
	}
	if !utils.StrongPassword(password) {
		errs = append(errs, utils.FieldError{Field: "password", Message: "invalid password"})
	}
	if len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "validation failed", "errors": errs})
		return
	}

	photo := "default.jpg"
	if file, err := c.FormFile("photo"); err == nil {
		url, err := utils.UploadPhotoToS3(file)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "photo upload failed", "error": err.Error()})
			return
		}
		photo = url
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to hash password"})
		return
	}

	user := models.User{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Birthdate: parsedBirthdate,
		Phone:     phone,
		Role:      role,
		Password:  hashed,
		Photo:     photo,
		Status:    models.StatusActive,
	}

	if err := services.CreateUser(&user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to create user", "error": err.Error()})
		return
	}

	go func() {
		if err := utils.SendWelcomeEmail(user.Email, user.FirstName); err != nil {
			log.Printf("welcome mail to %s failed: %v", user.Email, err)
		}
	}()

	c.JSON(http.StatusCreated, gin.H{"user": user})
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user, err := services.FindUserByEmail(input.Email)
	if err != nil || !utils.CheckPasswordHash(input.Password, user.Password) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "wrong user or password"})
		return
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "welcome",
		"email":   user.Email,
		"jwtoken": token,
		"user":    user,
	})
}

// ListUsers honors ?role= and ?status= filters; member users carry their
// computed membership info in the listing.
func ListUsers(c *gin.Context) {
	users, err := services.ListUsers(c.Query("role"), c.Query("status"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to list users", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUserMemberships returns the derived membership state for one user. A
// user without a completed payment is a plain inactive answer, not an error.
func GetUserMemberships(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	info, err := services.ResolveMembership(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to resolve membership", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, info)
}

type PasswordInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func ChangePassword(c *gin.Context) {
	var input PasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if !utils.StrongPassword(input.Password) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "validation failed", "errors": []utils.FieldError{
			{Field: "password", Message: "invalid password"},
		}})
		return
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to hash password"})
		return
	}

	user, err := services.SetUserPassword(input.Email, hashed)
	if err != nil {
		respondLookupError(c, err, "user not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"userUpdate": user})
}

type UpdateUserInput struct {
	Email string `json:"email" binding:"required,email"`
	services.UserUpdateInput
}

// UpdateUserByEmail applies a partial merge; omitted fields keep their
// stored values.
func UpdateUserByEmail(c *gin.Context) {
	var input UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if input.Role != "" && !models.ValidRole(input.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "validation failed", "errors": []utils.FieldError{
			{Field: "role", Message: "unknown role"},
		}})
		return
	}

	user, err := services.UpdateUserByEmail(input.Email, input.UserUpdateInput)
	if err != nil {
		respondLookupError(c, err, "user not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"updatedUser": user})
}

// DeleteUser flips the account to inactive. The record stays retrievable.
func DeleteUser(c *gin.Context) {
	user, err := services.DeactivateUser(c.Param("email"))
	if err != nil {
		respondLookupError(c, err, "user not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"deletedUser": user})
}
