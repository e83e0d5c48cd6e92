package repository

import (
	"context"
	"fmt"
	"log"

	"lifeops-backend/internal/backing"
	"lifeops-backend/internal/provision"
)

const (
	FolderName      = "LifeOps"
	FolderKey       = "lifeops_folder_id"
	SpreadsheetName = "LifeOps API Keys"
	SpreadsheetKey  = "lifeops_apikeys_spreadsheet_id"
)

// Sheet is the vault tab; columns are positional
var Sheet = provision.SheetConfig{
	Key:     "apiKeys",
	Title:   "ApiKeys",
	Headers: []string{"ID", "서비스명", "키 이름", "API Key", "설명", "생성일", "수정일"},
}

// vaultLocator resolves the vault spreadsheet inside the LifeOps folder. A
// spreadsheet without the ApiKeys tab is not the vault and is passed over.
type vaultLocator struct {
	resolver *provision.Resolver
	sheets   backing.Spreadsheets
	files    backing.Files
}

func (l *vaultLocator) Spreadsheet(ctx context.Context) (string, error) {
	folderID, err := l.resolver.Folder(ctx, FolderName, FolderKey)
	if err != nil {
		return "", err
	}
	res, err := l.resolver.Resolve(ctx, provision.Target{
		Kind:     "spreadsheet",
		CacheKey: SpreadsheetKey,
		Name:     SpreadsheetName,
		MimeType: backing.MimeSpreadsheet,
		ParentID: folderID,
		Accept:   l.hasVaultTab,
		Create: func(ctx context.Context) (string, error) {
			return l.create(ctx, folderID)
		},
	})
	if err != nil {
		return "", err
	}
	return res.ID, nil
}

func (l *vaultLocator) hasVaultTab(ctx context.Context, id string) (bool, error) {
	props, err := l.sheets.Sheets(ctx, id)
	if err != nil {
		return false, err
	}
	for _, p := range props {
		if p.Title == Sheet.Title {
			return true, nil
		}
	}
	return false, nil
}

func (l *vaultLocator) create(ctx context.Context, folderID string) (string, error) {
	id, err := l.sheets.Create(ctx, SpreadsheetName, []string{Sheet.Title})
	if err != nil {
		return "", err
	}
	if err := l.files.AddParent(ctx, id, folderID); err != nil {
		return "", fmt.Errorf("unable to move vault into folder: %w", err)
	}
	if err := l.sheets.UpdateValues(ctx, id, backing.SheetRange(Sheet.Title, "A1"), [][]string{Sheet.Headers}); err != nil {
		log.Printf("[Vault] header row for %s not written: %v", id, err)
	}
	return id, nil
}
