package repository

import (
	"lifeops-backend/internal/backing"
	"lifeops-backend/internal/provision"
	"lifeops-backend/internal/sheetstore"
	"lifeops-backend/internal/task/domain"
)

type taskMapper struct{}

func (taskMapper) ID(t domain.Task) string { return t.ID }

func (taskMapper) ToRow(t domain.Task) []string {
	return []string{t.ID, t.Title, sheetstore.Bool(t.Completed), t.Due, t.CreatedAt}
}

func (taskMapper) FromRow(row, _ []string) domain.Task {
	return domain.Task{
		ID:        sheetstore.Cell(row, 0),
		Title:     sheetstore.Cell(row, 1),
		Completed: sheetstore.ParseBool(sheetstore.Cell(row, 2)),
		Due:       sheetstore.Cell(row, 3),
		CreatedAt: sheetstore.Cell(row, 4),
	}
}

// NewSheetRepository stores tasks on the 오늘 할일 tab of each user's workbook
func NewSheetRepository(sheets backing.Spreadsheets, workbooks *provision.Workbooks) TaskRepository {
	return sheetstore.NewCollection[domain.Task](sheets, workbooks, provision.MustTab(provision.TabTodayTasks), taskMapper{})
}
