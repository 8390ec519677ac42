package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// News represents a news article. Deleting an article flips Status to
// false; rows are never physically removed.
type News struct {
	ID       string    `gorm:"type:char(36);primaryKey" json:"id"`
	Title    string    `gorm:"type:varchar(255)" json:"title" validate:"required"`
	Body     string    `gorm:"type:text;not null" json:"body" validate:"required"`
	Status   bool      `gorm:"type:tinyint(1);default:1" json:"status"`
	Date     time.Time `gorm:"autoUpdateTime" json:"date"`
	AuthorID string    `gorm:"type:char(36);index;not null" json:"author_id" validate:"required"`
	Author   Author    `gorm:"foreignKey:AuthorID" json:"author"`
}

// TableName specifies the table name for the News model
func (News) TableName() string {
	return "news"
}

// BeforeCreate assigns a UUID primary key and marks the article visible.
func (n *News) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	n.Status = true
	return nil
}

func (n *News) Validate() error {
	v := validator.New()

	return v.Struct(n)
}
