// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/budgetbook/backend/internal/application/usecase/scheduled"
	"github.com/budgetbook/backend/internal/domain/entity"
)

// CreateScheduledRequest represents the request body for creating a
// scheduled transaction template. Scheduled endpoints cannot be the split
// placeholder, so both sides carry real ids.
type CreateScheduledRequest struct {
	Name        string           `json:"name" binding:"required,min=1,max=100"`
	Frequency   string           `json:"frequency" binding:"required,oneof=daily weekly biweekly semi_monthly monthly yearly"`
	StartDate   string           `json:"start_date" binding:"required"` // YYYY-MM-DD
	EndDate     *string          `json:"end_date,omitempty"`
	Amount      string           `json:"amount" binding:"required"`
	From        SourceRefRequest `json:"from" binding:"required"`
	To          SourceRefRequest `json:"to" binding:"required"`
	Description string           `json:"description,omitempty" binding:"omitempty,max=255"`
	Memo        string           `json:"memo,omitempty" binding:"omitempty,max=1000"`
}

// MaterializeRequest represents the request body for an on-demand
// materialization run. An empty date means today.
type MaterializeRequest struct {
	AsOf string `json:"as_of,omitempty"` // YYYY-MM-DD
}

// ScheduledResponse represents a scheduled transaction template in API
// responses.
type ScheduledResponse struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Frequency   string         `json:"frequency"`
	StartDate   time.Time      `json:"start_date"`
	EndDate     *time.Time     `json:"end_date,omitempty"`
	LastRun     *time.Time     `json:"last_run,omitempty"`
	Amount      string         `json:"amount"`
	From        SourceResponse `json:"from"`
	To          SourceResponse `json:"to"`
	Description string         `json:"description,omitempty"`
	Memo        string         `json:"memo,omitempty"`
	NextDue     *time.Time     `json:"next_due,omitempty"`
}

// ScheduledListResponse represents the response for listing scheduled
// transaction templates.
type ScheduledListResponse struct {
	Scheduled []ScheduledResponse `json:"scheduled"`
}

// MaterializeResponse represents the response for a materialization run.
type MaterializeResponse struct {
	Created int `json:"created"`
}

// ToScheduledResponse converts a ScheduledOutput to a response DTO.
func ToScheduledResponse(output *scheduled.ScheduledOutput) ScheduledResponse {
	response := ScheduledResponse{
		ID:          output.ID.String(),
		Name:        output.Name,
		Frequency:   string(output.Frequency),
		StartDate:   output.StartDate,
		EndDate:     output.EndDate,
		Amount:      FormatAmount(output.Amount),
		From:        toScheduledSourceResponse(output.From),
		To:          toScheduledSourceResponse(output.To),
		Description: output.Description,
		Memo:        output.Memo,
		NextDue:     output.NextDue,
	}
	if !output.LastRun.IsZero() {
		lastRun := output.LastRun
		response.LastRun = &lastRun
	}
	return response
}

// ToScheduledListResponse converts a ListScheduledOutput to a response DTO.
func ToScheduledListResponse(output *scheduled.ListScheduledOutput) ScheduledListResponse {
	templates := make([]ScheduledResponse, len(output.Scheduled))
	for i, s := range output.Scheduled {
		templates[i] = ToScheduledResponse(s)
	}
	return ScheduledListResponse{Scheduled: templates}
}

// ToScheduledSourceRef converts a SourceRefRequest to a scheduled use case
// SourceRef.
func ToScheduledSourceRef(r SourceRefRequest) (scheduled.SourceRef, error) {
	ref, err := r.ToSourceRef()
	if err != nil {
		return scheduled.SourceRef{}, err
	}
	return scheduled.SourceRef{Kind: ref.Kind, ID: ref.ID}, nil
}

func toScheduledSourceResponse(s scheduled.SourceOutput) SourceResponse {
	response := SourceResponse{
		Kind:     string(s.Kind),
		Name:     s.Name,
		FullName: s.FullName,
	}
	if s.Kind != entity.SourceKindSplit {
		response.ID = s.ID.String()
	}
	return response
}
