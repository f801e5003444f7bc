package migration

import (
	"flowdesk/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.ColumnModel{},
		&models.TicketModel{},
		&models.CommentModel{},
		&models.AccountModel{},
		&models.ContactModel{},
		&models.LeadModel{},
		&models.OpportunityModel{},
		&models.CaseModel{},
		&models.SprintModel{},
		&models.TaskModel{},
		&models.EmployeeModel{},
		&models.AttendanceModel{},
		&models.PayrollModel{},
		&models.NotificationModel{},
		&models.TemplateModel{},
	}
}
