package models

type AccountModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:200;not null;index"`
	Industry  string `gorm:"size:100"`
	Website   string `gorm:"size:255"`
	Phone     string `gorm:"size:50"`
	Email     string `gorm:"size:255"`
	OwnerID   uint   `gorm:"not null;index"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (AccountModel) TableName() string {
	return "crm_accounts"
}

type ContactModel struct {
	ID        uint   `gorm:"primaryKey"`
	FirstName string `gorm:"size:100;not null"`
	LastName  string `gorm:"size:100;not null"`
	Email     string `gorm:"size:255;index"`
	Phone     string `gorm:"size:50"`
	JobTitle  string `gorm:"size:100"`
	AccountID *uint  `gorm:"index"`
	OwnerID   uint   `gorm:"not null;index"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (ContactModel) TableName() string {
	return "crm_contacts"
}

type LeadModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:200;not null"`
	Email     string `gorm:"size:255"`
	Phone     string `gorm:"size:50"`
	Company   string `gorm:"size:200"`
	Source    string `gorm:"size:100"`
	Status    string `gorm:"size:20;not null;index"`
	OwnerID   uint   `gorm:"not null;index"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (LeadModel) TableName() string {
	return "crm_leads"
}

type OpportunityModel struct {
	ID        uint    `gorm:"primaryKey"`
	Name      string  `gorm:"size:200;not null"`
	Amount    float64 `gorm:"not null;default:0"`
	Stage     string  `gorm:"size:20;not null;index"`
	Position  int64   `gorm:"not null;index"`
	AccountID *uint   `gorm:"index"`
	OwnerID   uint    `gorm:"not null;index"`
	CloseDate *int64
	CreatedAt int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (OpportunityModel) TableName() string {
	return "crm_opportunities"
}

type CaseModel struct {
	ID          uint   `gorm:"primaryKey"`
	Subject     string `gorm:"size:200;not null"`
	Description string `gorm:"type:text"`
	Status      string `gorm:"size:20;not null;index"`
	AccountID   *uint  `gorm:"index"`
	OwnerID     uint   `gorm:"not null;index"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (CaseModel) TableName() string {
	return "crm_cases"
}
