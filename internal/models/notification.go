package models

type Notification struct {
	BaseModel
	UserID  string  `gorm:"size:36;not null;index" json:"user_id"`
	Type    string  `gorm:"size:64;not null" json:"type"`
	Title   string  `gorm:"size:255;not null" json:"title"`
	Message string  `gorm:"type:text" json:"message"`
	Link    *string `gorm:"size:1024" json:"link"`
	IsRead  bool    `gorm:"not null;index" json:"is_read"`
}
