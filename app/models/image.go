package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Image holds an uploaded profile picture. Replacing an image mutates the
// existing row; new rows are only created at registration.
type Image struct {
	ID        string    `gorm:"type:char(36);primaryKey" json:"id"`
	Mime      string    `gorm:"type:varchar(100)" json:"mime"`
	Name      string    `gorm:"type:varchar(255)" json:"name"`
	Content   []byte    `gorm:"type:longblob" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// BeforeCreate assigns a UUID primary key.
func (i *Image) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	return nil
}
