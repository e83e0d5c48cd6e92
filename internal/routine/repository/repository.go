package repository

import (
	"context"

	"lifeops-backend/internal/backing"
	"lifeops-backend/internal/provision"
	"lifeops-backend/internal/routine/domain"
	"lifeops-backend/internal/sheetstore"
)

// CheckRepository is the routine log
type CheckRepository interface {
	List(ctx context.Context, userID string, refresh bool) ([]domain.Check, error)
	Find(ctx context.Context, userID, id string) (domain.Check, error)
	Create(ctx context.Context, userID string, c domain.Check) error
	Update(ctx context.Context, userID, id string, c domain.Check) error
}

type checkMapper struct{}

func (checkMapper) ID(c domain.Check) string { return c.ID }

func (checkMapper) ToRow(c domain.Check) []string {
	return []string{c.ID, c.RoutineID, c.Label, c.Detail, c.Date, sheetstore.Bool(c.Completed), c.CompletedAt}
}

func (checkMapper) FromRow(row, _ []string) domain.Check {
	return domain.Check{
		ID:          sheetstore.Cell(row, 0),
		RoutineID:   sheetstore.Cell(row, 1),
		Label:       sheetstore.Cell(row, 2),
		Detail:      sheetstore.Cell(row, 3),
		Date:        sheetstore.Cell(row, 4),
		Completed:   sheetstore.ParseBool(sheetstore.Cell(row, 5)),
		CompletedAt: sheetstore.Cell(row, 6),
	}
}

// NewSheetRepository stores checks on the 루틴 기록 tab
func NewSheetRepository(sheets backing.Spreadsheets, workbooks *provision.Workbooks) CheckRepository {
	return sheetstore.NewCollection[domain.Check](sheets, workbooks, provision.MustTab(provision.TabRoutineLog), checkMapper{})
}
