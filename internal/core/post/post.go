package post

import (
	"time"

	"github.com/gofrs/uuid"
)

type Post struct {
	ID        uuid.UUID  `gorm:"primary_key;type:char(36);default:uuid()"`
	AuthorID  string     `gorm:"type:varchar(64);not null;index"` // opaque id owned by the user directory
	Content   string     `gorm:"type:text;not null"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime"`
	DeletedAt *time.Time `gorm:"index"`
}
