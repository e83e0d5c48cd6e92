package repository

import (
	"lifeops-backend/internal/backing"
	"lifeops-backend/internal/company/domain"
	"lifeops-backend/internal/provision"
	"lifeops-backend/internal/sheetstore"
)

// companyMapper reads rows by header name, so a reordered tab still maps
// after EnsureSheet rewrites the header
type companyMapper struct{}

func (companyMapper) ID(c domain.AppliedCompany) string { return c.ID }

func (companyMapper) ToRow(c domain.AppliedCompany) []string {
	return []string{c.ID, c.CompanyName, c.Position, c.AppliedDate, string(c.Status), c.Deadline, c.Notes, c.Result, c.URL}
}

func (companyMapper) FromRow(row, headers []string) domain.AppliedCompany {
	f := sheetstore.Fields(row, headers)
	status := domain.Status(f["status"])
	if status == "" {
		status = domain.StatusApplied
	}
	return domain.AppliedCompany{
		ID:          f["id"],
		CompanyName: f["companyName"],
		Position:    f["position"],
		AppliedDate: f["appliedDate"],
		Status:      status,
		Deadline:    f["deadline"],
		Notes:       f["notes"],
		Result:      f["result"],
		URL:         f["url"],
	}
}

// NewSheetRepository stores applications on the 지원회사 tab
func NewSheetRepository(sheets backing.Spreadsheets, workbooks *provision.Workbooks) CompanyRepository {
	return sheetstore.NewCollection[domain.AppliedCompany](sheets, workbooks, provision.MustTab(provision.TabAppliedCompany), companyMapper{})
}
