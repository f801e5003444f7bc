package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"flowdesk/internal/application/crm/usecases"
	"flowdesk/internal/shared/errors"
	"flowdesk/internal/shared/logger"
	"flowdesk/internal/shared/utils"
)

// CRMHandler serves accounts, contacts, leads, opportunities and cases.
type CRMHandler struct {
	accounts      *usecases.AccountUseCases
	contacts      *usecases.ContactUseCases
	leads         *usecases.LeadUseCases
	opportunities *usecases.OpportunityUseCases
	cases         *usecases.CaseUseCases
	logger        logger.Interface
}

func NewCRMHandler(
	accounts *usecases.AccountUseCases,
	contacts *usecases.ContactUseCases,
	leads *usecases.LeadUseCases,
	opportunities *usecases.OpportunityUseCases,
	cases *usecases.CaseUseCases,
) *CRMHandler {
	return &CRMHandler{
		accounts:      accounts,
		contacts:      contacts,
		leads:         leads,
		opportunities: opportunities,
		cases:         cases,
		logger:        logger.NewLogger(),
	}
}

type AccountRequest struct {
	Name     string `json:"name" binding:"required,max=200"`
	Industry string `json:"industry"`
	Website  string `json:"website"`
	Phone    string `json:"phone"`
	Email    string `json:"email" binding:"omitempty,email"`
}

type ContactRequest struct {
	AccountID *uint  `json:"account_id"`
	FirstName string `json:"first_name" binding:"required,max=100"`
	LastName  string `json:"last_name" binding:"required,max=100"`
	Email     string `json:"email" binding:"omitempty,email"`
	Phone     string `json:"phone"`
	JobTitle  string `json:"job_title"`
}

type LeadRequest struct {
	Name    string  `json:"name" binding:"required,max=200"`
	Company string  `json:"company"`
	Email   string  `json:"email" binding:"omitempty,email"`
	Phone   string  `json:"phone"`
	Source  string  `json:"source"`
	Status  *string `json:"status" binding:"omitempty,oneof=new contacted qualified lost"`
}

type OpportunityRequest struct {
	Name      string     `json:"name" binding:"required,max=200"`
	AccountID *uint      `json:"account_id"`
	Amount    float64    `json:"amount" binding:"gte=0"`
	CloseDate *time.Time `json:"close_date"`
	Stage     *string    `json:"stage" binding:"omitempty,oneof=prospecting proposal negotiation won lost"`
}

type MoveOpportunityRequest struct {
	Stage   string `json:"stage" binding:"omitempty,oneof=prospecting proposal negotiation won lost"`
	AfterID *uint  `json:"after_id"`
}

type CaseRequest struct {
	Subject     string  `json:"subject" binding:"required,max=200"`
	Description string  `json:"description"`
	AccountID   *uint   `json:"account_id"`
	Status      *string `json:"status" binding:"omitempty,oneof=open pending closed"`
}

// Accounts

func (h *CRMHandler) ListAccounts(c *gin.Context) {
	q := usecases.ListAccountsQuery{
		BaseFilter: parseBaseFilter(c),
		OwnerID:    queryUint(c, "owner_id"),
	}

	result, err := h.accounts.List(c.Request.Context(), q)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Accounts, result.Total, q.Page, q.PageSize)
}

func (h *CRMHandler) CreateAccount(c *gin.Context) {
	var req AccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.accounts.Create(c.Request.Context(), usecases.CreateAccountCommand{
		Name:     req.Name,
		Industry: req.Industry,
		Website:  req.Website,
		Phone:    req.Phone,
		Email:    req.Email,
		OwnerID:  utils.CurrentUserID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

func (h *CRMHandler) UpdateAccount(c *gin.Context) {
	accountID, err := utils.ParseIDParam(c, "account")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.accounts.Update(c.Request.Context(), usecases.UpdateAccountCommand{
		AccountID: accountID,
		Name:      req.Name,
		Industry:  req.Industry,
		Website:   req.Website,
		Phone:     req.Phone,
		Email:     req.Email,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Account updated", result)
}

func (h *CRMHandler) DeleteAccount(c *gin.Context) {
	accountID, err := utils.ParseIDParam(c, "account")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.accounts.Delete(c.Request.Context(), usecases.DeleteAccountCommand{AccountID: accountID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// Contacts

func (h *CRMHandler) ListContacts(c *gin.Context) {
	q := usecases.ListContactsQuery{
		BaseFilter: parseBaseFilter(c),
		AccountID:  queryUint(c, "account_id"),
		OwnerID:    queryUint(c, "owner_id"),
	}

	result, err := h.contacts.List(c.Request.Context(), q)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Contacts, result.Total, q.Page, q.PageSize)
}

func (h *CRMHandler) CreateContact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.contacts.Create(c.Request.Context(), usecases.CreateContactCommand{
		AccountID: req.AccountID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		JobTitle:  req.JobTitle,
		OwnerID:   utils.CurrentUserID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

func (h *CRMHandler) UpdateContact(c *gin.Context) {
	contactID, err := utils.ParseIDParam(c, "contact")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.contacts.Update(c.Request.Context(), usecases.UpdateContactCommand{
		ContactID: contactID,
		AccountID: req.AccountID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		JobTitle:  req.JobTitle,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Contact updated", result)
}

func (h *CRMHandler) DeleteContact(c *gin.Context) {
	contactID, err := utils.ParseIDParam(c, "contact")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.contacts.Delete(c.Request.Context(), usecases.DeleteContactCommand{ContactID: contactID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// Leads

func (h *CRMHandler) ListLeads(c *gin.Context) {
	q := usecases.ListLeadsQuery{
		BaseFilter: parseBaseFilter(c),
		Status:     queryString(c, "status"),
		OwnerID:    queryUint(c, "owner_id"),
	}

	result, err := h.leads.List(c.Request.Context(), q)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Leads, result.Total, q.Page, q.PageSize)
}

func (h *CRMHandler) CreateLead(c *gin.Context) {
	var req LeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.leads.Create(c.Request.Context(), usecases.CreateLeadCommand{
		Name:    req.Name,
		Company: req.Company,
		Email:   req.Email,
		Phone:   req.Phone,
		Source:  req.Source,
		OwnerID: utils.CurrentUserID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

func (h *CRMHandler) UpdateLead(c *gin.Context) {
	leadID, err := utils.ParseIDParam(c, "lead")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req LeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.leads.Update(c.Request.Context(), usecases.UpdateLeadCommand{
		LeadID:  leadID,
		Name:    req.Name,
		Company: req.Company,
		Email:   req.Email,
		Phone:   req.Phone,
		Source:  req.Source,
		Status:  req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Lead updated", result)
}

func (h *CRMHandler) DeleteLead(c *gin.Context) {
	leadID, err := utils.ParseIDParam(c, "lead")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.leads.Delete(c.Request.Context(), usecases.DeleteLeadCommand{LeadID: leadID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// Opportunities

func (h *CRMHandler) ListOpportunities(c *gin.Context) {
	q := usecases.ListOpportunitiesQuery{
		BaseFilter: parseBaseFilter(c),
		Stage:      queryString(c, "stage"),
		AccountID:  queryUint(c, "account_id"),
		OwnerID:    queryUint(c, "owner_id"),
	}

	result, err := h.opportunities.List(c.Request.Context(), q)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Opportunities, result.Total, q.Page, q.PageSize)
}

func (h *CRMHandler) CreateOpportunity(c *gin.Context) {
	var req OpportunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.opportunities.Create(c.Request.Context(), usecases.CreateOpportunityCommand{
		Name:      req.Name,
		AccountID: req.AccountID,
		Amount:    req.Amount,
		CloseDate: req.CloseDate,
		OwnerID:   utils.CurrentUserID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

func (h *CRMHandler) UpdateOpportunity(c *gin.Context) {
	opportunityID, err := utils.ParseIDParam(c, "opportunity")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req OpportunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.opportunities.Update(c.Request.Context(), usecases.UpdateOpportunityCommand{
		OpportunityID: opportunityID,
		Name:          req.Name,
		AccountID:     req.AccountID,
		Amount:        req.Amount,
		CloseDate:     req.CloseDate,
		Stage:         req.Stage,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Opportunity updated", result)
}

func (h *CRMHandler) DeleteOpportunity(c *gin.Context) {
	opportunityID, err := utils.ParseIDParam(c, "opportunity")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.opportunities.Delete(c.Request.Context(), usecases.DeleteOpportunityCommand{OpportunityID: opportunityID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *CRMHandler) MoveOpportunity(c *gin.Context) {
	opportunityID, err := utils.ParseIDParam(c, "opportunity")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req MoveOpportunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.opportunities.Move(c.Request.Context(), usecases.MoveOpportunityCommand{
		OpportunityID: opportunityID,
		Stage:         req.Stage,
		AfterID:       req.AfterID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Opportunity moved", result)
}

// Cases

func (h *CRMHandler) ListCases(c *gin.Context) {
	q := usecases.ListCasesQuery{
		BaseFilter: parseBaseFilter(c),
		Status:     queryString(c, "status"),
		AccountID:  queryUint(c, "account_id"),
		OwnerID:    queryUint(c, "owner_id"),
	}

	result, err := h.cases.List(c.Request.Context(), q)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Cases, result.Total, q.Page, q.PageSize)
}

func (h *CRMHandler) CreateCase(c *gin.Context) {
	var req CaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.cases.Create(c.Request.Context(), usecases.CreateCaseCommand{
		Subject:     req.Subject,
		Description: req.Description,
		AccountID:   req.AccountID,
		OwnerID:     utils.CurrentUserID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

func (h *CRMHandler) UpdateCase(c *gin.Context) {
	caseID, err := utils.ParseIDParam(c, "case")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.cases.Update(c.Request.Context(), usecases.UpdateCaseCommand{
		CaseID:      caseID,
		Subject:     req.Subject,
		Description: req.Description,
		AccountID:   req.AccountID,
		Status:      req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Case updated", result)
}

func (h *CRMHandler) DeleteCase(c *gin.Context) {
	caseID, err := utils.ParseIDParam(c, "case")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.cases.Delete(c.Request.Context(), usecases.DeleteCaseCommand{CaseID: caseID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
