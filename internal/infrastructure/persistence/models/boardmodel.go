package models

type ColumnModel struct {
	ID        uint   `gorm:"primaryKey"`
	Title     string `gorm:"size:100;not null"`
	Status    string `gorm:"uniqueIndex;size:50;not null"`
	SortOrder int    `gorm:"not null;default:0"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (ColumnModel) TableName() string {
	return "board_columns"
}
