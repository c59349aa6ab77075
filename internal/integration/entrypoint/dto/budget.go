// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/budgetbook/backend/internal/application/usecase/budget"
)

// EvaluationResponse represents one category's budgeted-versus-actual
// figures in API responses.
type EvaluationResponse struct {
	CategoryID           string    `json:"category_id"`
	Name                 string    `json:"name"`
	FullName             string    `json:"full_name"`
	PeriodType           string    `json:"period_type"`
	Income               bool      `json:"income"`
	Depth                int       `json:"depth"`
	PeriodStart          time.Time `json:"period_start"`
	PeriodEnd            time.Time `json:"period_end"`
	BudgetedOwn          string    `json:"budgeted_own"`
	BudgetedWithChildren string    `json:"budgeted_with_children"`
	ActualOwn            string    `json:"actual_own"`
	ActualWithChildren   string    `json:"actual_with_children"`
}

// EvaluateBudgetResponse represents the response for a budget evaluation.
type EvaluateBudgetResponse struct {
	Evaluations []EvaluationResponse `json:"evaluations"`
}

// NetIncomeResponse represents the response for a budgeted net income query.
type NetIncomeResponse struct {
	PeriodType  string    `json:"period_type"`
	PeriodStart time.Time `json:"period_start"`
	NetIncome   string    `json:"net_income"`
}

// NetWorthResponse represents the response for a net worth query.
type NetWorthResponse struct {
	AsOf     time.Time `json:"as_of"`
	NetWorth string    `json:"net_worth"`
}

// ToEvaluateBudgetResponse converts an EvaluateBudgetOutput to a response
// DTO.
func ToEvaluateBudgetResponse(output *budget.EvaluateBudgetOutput) EvaluateBudgetResponse {
	evaluations := make([]EvaluationResponse, len(output.Evaluations))
	for i, e := range output.Evaluations {
		evaluations[i] = EvaluationResponse{
			CategoryID:           e.CategoryID.String(),
			Name:                 e.Name,
			FullName:             e.FullName,
			PeriodType:           string(e.PeriodType),
			Income:               e.Income,
			Depth:                e.Depth,
			PeriodStart:          e.PeriodStart,
			PeriodEnd:            e.PeriodEnd,
			BudgetedOwn:          FormatAmount(e.BudgetedOwn),
			BudgetedWithChildren: FormatAmount(e.BudgetedWithChildren),
			ActualOwn:            FormatAmount(e.ActualOwn),
			ActualWithChildren:   FormatAmount(e.ActualWithChildren),
		}
	}
	return EvaluateBudgetResponse{Evaluations: evaluations}
}

// ToNetIncomeResponse converts a GetNetIncomeOutput to a response DTO.
func ToNetIncomeResponse(output *budget.GetNetIncomeOutput) NetIncomeResponse {
	return NetIncomeResponse{
		PeriodType:  string(output.PeriodType),
		PeriodStart: output.PeriodStart,
		NetIncome:   FormatAmount(output.NetIncome),
	}
}

// ToNetWorthResponse converts a GetNetWorthOutput to a response DTO.
func ToNetWorthResponse(output *budget.GetNetWorthOutput) NetWorthResponse {
	return NetWorthResponse{
		AsOf:     output.AsOf,
		NetWorth: FormatAmount(output.NetWorth),
	}
}
