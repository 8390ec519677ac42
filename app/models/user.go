package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Role is the closed set of permission tags a user can carry.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// IsAdmin reports whether the role grants access to the admin area.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// User is an account that can log in with email and password. The email is
// the unique login principal; the password is stored as a bcrypt hash only.
type User struct {
	ID        string     `gorm:"type:char(36);primaryKey" json:"id"`
	Name      string     `gorm:"type:varchar(150)" json:"name" validate:"required,min=2"`
	Email     string     `gorm:"uniqueIndex;type:varchar(200)" json:"email" validate:"required"`
	Password  string     `gorm:"type:text" json:"-" validate:"required"`
	Role      Role       `gorm:"type:varchar(50);default:'USER'" json:"role" validate:"oneof=USER ADMIN"`
	ImageID   *string    `gorm:"type:char(36)" json:"image_id"`
	Image     *Image     `gorm:"foreignKey:ImageID" json:"image,omitempty"`
	LastLogin *time.Time `gorm:"type:timestamp;default:null" json:"last_login"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// BeforeCreate assigns a UUID primary key.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}

func (u *User) Validate() error {
	v := validator.New()

	return v.Struct(u)
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	return string(bytes), err
}

// CheckPasswordHash compares the given password with the stored hash.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))

	return err == nil
}

// CheckPassword verifies if the provided password matches the user's stored password
func (u *User) CheckPassword(password string) bool {
	return CheckPasswordHash(password, u.Password)
}

// SetPassword hashes and sets a new password for the user
func (u *User) SetPassword(password string) error {
	hashedPassword, err := HashPassword(password)
	if err != nil {
		return err
	}
	u.Password = hashedPassword
	return nil
}
