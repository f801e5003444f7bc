package models

type SprintModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:200;not null"`
	Goal      string `gorm:"type:text"`
	Status    string `gorm:"size:20;not null;index"`
	StartDate *int64
	EndDate   *int64
	CreatedAt int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (SprintModel) TableName() string {
	return "sprints"
}

type TaskModel struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:200;not null"`
	Description string `gorm:"type:text"`
	Status      string `gorm:"size:20;not null;index"`
	SprintID    *uint  `gorm:"index"`
	AssigneeID  *uint  `gorm:"index"`
	DueDate     *int64
	CreatedAt   int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (TaskModel) TableName() string {
	return "tasks"
}
