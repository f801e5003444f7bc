package mappers

import (
	"fmt"

	"flowdesk/internal/domain/crm"
	"flowdesk/internal/infrastructure/persistence/models"
)

// CRMMapper handles the conversion between the CRM domain entities and
// their persistence models.
type CRMMapper interface {
	AccountToModel(entity *crm.Account) *models.AccountModel
	AccountToDomain(model *models.AccountModel) (*crm.Account, error)
	AccountsToDomain(list []*models.AccountModel) ([]*crm.Account, error)

	ContactToModel(entity *crm.Contact) *models.ContactModel
	ContactToDomain(model *models.ContactModel) (*crm.Contact, error)
	ContactsToDomain(list []*models.ContactModel) ([]*crm.Contact, error)

	LeadToModel(entity *crm.Lead) *models.LeadModel
	LeadToDomain(model *models.LeadModel) (*crm.Lead, error)
	LeadsToDomain(list []*models.LeadModel) ([]*crm.Lead, error)

	OpportunityToModel(entity *crm.Opportunity) *models.OpportunityModel
	OpportunityToDomain(model *models.OpportunityModel) (*crm.Opportunity, error)
	OpportunitiesToDomain(list []*models.OpportunityModel) ([]*crm.Opportunity, error)

	CaseToModel(entity *crm.Case) *models.CaseModel
	CaseToDomain(model *models.CaseModel) (*crm.Case, error)
	CasesToDomain(list []*models.CaseModel) ([]*crm.Case, error)
}

type CRMMapperImpl struct{}

func NewCRMMapper() CRMMapper {
	return &CRMMapperImpl{}
}

func (m *CRMMapperImpl) AccountToModel(entity *crm.Account) *models.AccountModel {
	return &models.AccountModel{
		ID:        entity.ID(),
		Name:      entity.Name(),
		Industry:  entity.Industry(),
		Website:   entity.Website(),
		Phone:     entity.Phone(),
		Email:     entity.Email(),
		OwnerID:   entity.OwnerID(),
		CreatedAt: entity.CreatedAt().UnixMilli(),
		UpdatedAt: entity.UpdatedAt().UnixMilli(),
	}
}

func (m *CRMMapperImpl) AccountToDomain(model *models.AccountModel) (*crm.Account, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := crm.ReconstructAccount(
		model.ID,
		model.Name,
		model.Industry,
		model.Website,
		model.Phone,
		model.Email,
		model.OwnerID,
		milliToTime(model.CreatedAt),
		milliToTime(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct account entity: %w", err)
	}

	return entity, nil
}

func (m *CRMMapperImpl) AccountsToDomain(list []*models.AccountModel) ([]*crm.Account, error) {
	entities := make([]*crm.Account, 0, len(list))
	for _, model := range list {
		entity, err := m.AccountToDomain(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

func (m *CRMMapperImpl) ContactToModel(entity *crm.Contact) *models.ContactModel {
	return &models.ContactModel{
		ID:        entity.ID(),
		FirstName: entity.FirstName(),
		LastName:  entity.LastName(),
		Email:     entity.Email(),
		Phone:     entity.Phone(),
		JobTitle:  entity.JobTitle(),
		AccountID: entity.AccountID(),
		OwnerID:   entity.OwnerID(),
		CreatedAt: entity.CreatedAt().UnixMilli(),
		UpdatedAt: entity.UpdatedAt().UnixMilli(),
	}
}

func (m *CRMMapperImpl) ContactToDomain(model *models.ContactModel) (*crm.Contact, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := crm.ReconstructContact(
		model.ID,
		model.AccountID,
		model.FirstName,
		model.LastName,
		model.Email,
		model.Phone,
		model.JobTitle,
		model.OwnerID,
		milliToTime(model.CreatedAt),
		milliToTime(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct contact entity: %w", err)
	}

	return entity, nil
}

func (m *CRMMapperImpl) ContactsToDomain(list []*models.ContactModel) ([]*crm.Contact, error) {
	entities := make([]*crm.Contact, 0, len(list))
	for _, model := range list {
		entity, err := m.ContactToDomain(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

func (m *CRMMapperImpl) LeadToModel(entity *crm.Lead) *models.LeadModel {
	return &models.LeadModel{
		ID:        entity.ID(),
		Name:      entity.Name(),
		Email:     entity.Email(),
		Phone:     entity.Phone(),
		Company:   entity.Company(),
		Source:    entity.Source(),
		Status:    entity.Status().String(),
		OwnerID:   entity.OwnerID(),
		CreatedAt: entity.CreatedAt().UnixMilli(),
		UpdatedAt: entity.UpdatedAt().UnixMilli(),
	}
}

func (m *CRMMapperImpl) LeadToDomain(model *models.LeadModel) (*crm.Lead, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := crm.ReconstructLead(
		model.ID,
		model.Name,
		model.Company,
		model.Email,
		model.Phone,
		model.Source,
		crm.LeadStatus(model.Status),
		model.OwnerID,
		milliToTime(model.CreatedAt),
		milliToTime(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct lead entity: %w", err)
	}

	return entity, nil
}

func (m *CRMMapperImpl) LeadsToDomain(list []*models.LeadModel) ([]*crm.Lead, error) {
	entities := make([]*crm.Lead, 0, len(list))
	for _, model := range list {
		entity, err := m.LeadToDomain(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

func (m *CRMMapperImpl) OpportunityToModel(entity *crm.Opportunity) *models.OpportunityModel {
	return &models.OpportunityModel{
		ID:        entity.ID(),
		Name:      entity.Name(),
		Amount:    entity.Amount(),
		Stage:     entity.Stage().String(),
		Position:  entity.Position(),
		AccountID: entity.AccountID(),
		OwnerID:   entity.OwnerID(),
		CloseDate: timePtrToMilliPtr(entity.CloseDate()),
		CreatedAt: entity.CreatedAt().UnixMilli(),
		UpdatedAt: entity.UpdatedAt().UnixMilli(),
	}
}

func (m *CRMMapperImpl) OpportunityToDomain(model *models.OpportunityModel) (*crm.Opportunity, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := crm.ReconstructOpportunity(
		model.ID,
		model.Name,
		model.AccountID,
		model.Amount,
		crm.OpportunityStage(model.Stage),
		milliPtrToTimePtr(model.CloseDate),
		model.Position,
		model.OwnerID,
		milliToTime(model.CreatedAt),
		milliToTime(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct opportunity entity: %w", err)
	}

	return entity, nil
}

func (m *CRMMapperImpl) OpportunitiesToDomain(list []*models.OpportunityModel) ([]*crm.Opportunity, error) {
	entities := make([]*crm.Opportunity, 0, len(list))
	for _, model := range list {
		entity, err := m.OpportunityToDomain(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

func (m *CRMMapperImpl) CaseToModel(entity *crm.Case) *models.CaseModel {
	return &models.CaseModel{
		ID:          entity.ID(),
		Subject:     entity.Subject(),
		Description: entity.Description(),
		Status:      entity.Status().String(),
		AccountID:   entity.AccountID(),
		OwnerID:     entity.OwnerID(),
		CreatedAt:   entity.CreatedAt().UnixMilli(),
		UpdatedAt:   entity.UpdatedAt().UnixMilli(),
	}
}

func (m *CRMMapperImpl) CaseToDomain(model *models.CaseModel) (*crm.Case, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := crm.ReconstructCase(
		model.ID,
		model.Subject,
		model.Description,
		crm.CaseStatus(model.Status),
		model.AccountID,
		model.OwnerID,
		milliToTime(model.CreatedAt),
		milliToTime(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct case entity: %w", err)
	}

	return entity, nil
}

func (m *CRMMapperImpl) CasesToDomain(list []*models.CaseModel) ([]*crm.Case, error) {
	entities := make([]*crm.Case, 0, len(list))
	for _, model := range list {
		entity, err := m.CaseToDomain(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
