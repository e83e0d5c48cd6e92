package google

import (
	"context"
	"fmt"

	"lifeops-backend/internal/backing"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

func (s *Service) sheetsService(ctx context.Context) (*sheets.Service, error) {
	client, err := s.httpClient(ctx)
	if err != nil {
		return nil, err
	}
	srv, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to create Sheets service: %v", err)
	}
	return srv, nil
}

// Create creates a spreadsheet with the given tabs
func (s *Service) Create(ctx context.Context, title string, sheetTitles []string) (string, error) {
	srv, err := s.sheetsService(ctx)
	if err != nil {
		return "", err
	}
	tabs := make([]*sheets.Sheet, 0, len(sheetTitles))
	for _, t := range sheetTitles {
		tabs = append(tabs, &sheets.Sheet{Properties: &sheets.SheetProperties{Title: t}})
	}
	resp, err := srv.Spreadsheets.Create(&sheets.Spreadsheet{
		Properties: &sheets.SpreadsheetProperties{Title: title},
		Sheets:     tabs,
	}).Fields("spreadsheetId").Context(ctx).Do()
	if err != nil {
		return "", translate(err, "create spreadsheet")
	}
	return resp.SpreadsheetId, nil
}

// Sheets reads tab titles and numeric ids
func (s *Service) Sheets(ctx context.Context, spreadsheetID string) ([]backing.SheetProps, error) {
	srv, err := s.sheetsService(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := srv.Spreadsheets.Get(spreadsheetID).Fields("sheets.properties(sheetId,title)").Context(ctx).Do()
	if err != nil {
		return nil, translate(err, "read spreadsheet metadata")
	}
	props := make([]backing.SheetProps, 0, len(resp.Sheets))
	for _, sh := range resp.Sheets {
		if sh.Properties == nil {
			continue
		}
		props = append(props, backing.SheetProps{SheetID: sh.Properties.SheetId, Title: sh.Properties.Title})
	}
	return props, nil
}

func (s *Service) AddSheet(ctx context.Context, spreadsheetID, title string) error {
	return s.batchUpdate(ctx, spreadsheetID, "add sheet", &sheets.Request{
		AddSheet: &sheets.AddSheetRequest{Properties: &sheets.SheetProperties{Title: title}},
	})
}

func (s *Service) Values(ctx context.Context, spreadsheetID, rng string) ([][]string, error) {
	srv, err := s.sheetsService(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := srv.Spreadsheets.Values.Get(spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, translate(err, "read values")
	}
	rows := make([][]string, 0, len(resp.Values))
	for _, r := range resp.Values {
		row := make([]string, 0, len(r))
		for _, cell := range r {
			row = append(row, fmt.Sprint(cell))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *Service) UpdateValues(ctx context.Context, spreadsheetID, rng string, rows [][]string) error {
	srv, err := s.sheetsService(ctx)
	if err != nil {
		return err
	}
	_, err = srv.Spreadsheets.Values.Update(spreadsheetID, rng, &sheets.ValueRange{Values: cells(rows)}).
		ValueInputOption("RAW").Context(ctx).Do()
	return translate(err, "write values")
}

func (s *Service) BatchUpdateValues(ctx context.Context, spreadsheetID string, ranges []backing.ValueRange) error {
	srv, err := s.sheetsService(ctx)
	if err != nil {
		return err
	}
	data := make([]*sheets.ValueRange, 0, len(ranges))
	for _, r := range ranges {
		data = append(data, &sheets.ValueRange{Range: r.Range, Values: cells(r.Rows)})
	}
	_, err = srv.Spreadsheets.Values.BatchUpdate(spreadsheetID, &sheets.BatchUpdateValuesRequest{
		ValueInputOption: "RAW",
		Data:             data,
	}).Context(ctx).Do()
	return translate(err, "batch write values")
}

func (s *Service) AppendValues(ctx context.Context, spreadsheetID, rng string, rows [][]string) error {
	srv, err := s.sheetsService(ctx)
	if err != nil {
		return err
	}
	_, err = srv.Spreadsheets.Values.Append(spreadsheetID, rng, &sheets.ValueRange{Values: cells(rows)}).
		ValueInputOption("RAW").InsertDataOption("INSERT_ROWS").Context(ctx).Do()
	return translate(err, "append values")
}

func (s *Service) DeleteRows(ctx context.Context, spreadsheetID string, sheetID, start, end int64) error {
	return s.batchUpdate(ctx, spreadsheetID, "delete rows", &sheets.Request{
		DeleteDimension: &sheets.DeleteDimensionRequest{
			Range: &sheets.DimensionRange{
				SheetId:    sheetID,
				Dimension:  "ROWS",
				StartIndex: start,
				EndIndex:   end,
				// the first tab has id 0
				ForceSendFields: []string{"SheetId", "StartIndex"},
			},
		},
	})
}

func (s *Service) batchUpdate(ctx context.Context, spreadsheetID, action string, requests ...*sheets.Request) error {
	srv, err := s.sheetsService(ctx)
	if err != nil {
		return err
	}
	_, err = srv.Spreadsheets.BatchUpdate(spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: requests,
	}).Context(ctx).Do()
	return translate(err, action)
}

func cells(rows [][]string) [][]interface{} {
	out := make([][]interface{}, 0, len(rows))
	for _, r := range rows {
		row := make([]interface{}, 0, len(r))
		for _, c := range r {
			row = append(row, c)
		}
		out = append(out, row)
	}
	return out
}
