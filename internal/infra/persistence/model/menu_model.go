package model

import (
	"time"

	"dabeli/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MenuItemModel is the GORM-specific struct for the 'menu_items' table.
// Modifier groups are stored inline as JSONB.
type MenuItemModel struct {
	ID         uuid.UUID                                 `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name       string                                    `gorm:"type:varchar(255);not null"`
	Price      float64                                   `gorm:"type:numeric(10,2);not null"`
	Category   string                                    `gorm:"type:varchar(100);not null;index"`
	ImageURL   string                                    `gorm:"type:text"`
	InStock    bool                                      `gorm:"not null;default:true"`
	IsFeatured bool                                      `gorm:"not null;default:false"`
	Modifiers  datatypes.JSONSlice[entity.ModifierGroup] `gorm:"type:jsonb;not null;default:'[]'"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (MenuItemModel) TableName() string {
	return "menu_items"
}

// FeedbackModel is the GORM-specific struct for the 'feedback' table.
type FeedbackModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Contact   string    `gorm:"type:varchar(255)"`
	Rating    int       `gorm:"type:smallint;not null;check:rating BETWEEN 1 AND 5"`
	Message   string    `gorm:"type:text;not null"`
	IsRead    bool      `gorm:"not null;default:false"`
	IsPublic  bool      `gorm:"not null;default:false;index"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FeedbackModel) TableName() string {
	return "feedback"
}
