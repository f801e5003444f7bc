package models

type NotificationModel struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"not null;index"`
	Title     string `gorm:"size:200;not null"`
	Body      string `gorm:"type:text"`
	Read      bool   `gorm:"not null;default:false;index"`
	ReadAt    *int64
	CreatedAt int64 `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}

type TemplateModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex;size:100;not null"`
	Kind      string `gorm:"size:20;not null;index"`
	Subject   string `gorm:"size:200"`
	Body      string `gorm:"type:text;not null"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (TemplateModel) TableName() string {
	return "message_templates"
}
