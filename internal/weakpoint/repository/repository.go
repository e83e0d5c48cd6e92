package repository

import (
	"context"

	"lifeops-backend/internal/backing"
	"lifeops-backend/internal/provision"
	"lifeops-backend/internal/sheetstore"
	"lifeops-backend/internal/weakpoint/domain"
)

// WeakPointRepository defines the interface for weak point data access
type WeakPointRepository interface {
	List(ctx context.Context, userID string, refresh bool) ([]domain.WeakPoint, error)
	Find(ctx context.Context, userID, id string) (domain.WeakPoint, error)
	Create(ctx context.Context, userID string, w domain.WeakPoint) error
	Update(ctx context.Context, userID, id string, w domain.WeakPoint) error
	Delete(ctx context.Context, userID, id string) error
}

type weakPointMapper struct{}

func (weakPointMapper) ID(w domain.WeakPoint) string { return w.ID }

func (weakPointMapper) ToRow(w domain.WeakPoint) []string {
	return []string{w.ID, w.Name, string(w.Category), w.CurrentLevel, w.TargetLevel, string(w.Status), w.Notes, w.AcquiredDate}
}

func (weakPointMapper) FromRow(row, headers []string) domain.WeakPoint {
	f := sheetstore.Fields(row, headers)
	w := domain.WeakPoint{
		ID:           f["id"],
		Name:         f["name"],
		Category:     domain.Category(f["category"]),
		CurrentLevel: f["currentLevel"],
		TargetLevel:  f["targetLevel"],
		Status:       domain.Status(f["status"]),
		Notes:        f["notes"],
		AcquiredDate: f["acquiredDate"],
	}
	if w.Category == "" {
		w.Category = domain.CategoryEtc
	}
	if w.Status == "" {
		w.Status = domain.StatusNotStarted
	}
	return w
}

// NewSheetRepository stores weak points on the 부족한점 tab
func NewSheetRepository(sheets backing.Spreadsheets, workbooks *provision.Workbooks) WeakPointRepository {
	return sheetstore.NewCollection[domain.WeakPoint](sheets, workbooks, provision.MustTab(provision.TabWeakPoints), weakPointMapper{})
}
