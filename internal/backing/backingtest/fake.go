// Package backingtest provides an in-memory stand-in for the Google Sheets,
// Drive and Docs surfaces, for use in tests.
package backingtest

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"unicode/utf16"

	"lifeops-backend/internal/backing"
)

// Token is the access token Context attaches
const Token = "test-access-token"

// Context returns a signed-in context
func Context() context.Context {
	return backing.WithAccessToken(context.Background(), Token)
}

type file struct {
	id      string
	name    string
	mime    string
	parents []string
	trashed bool
}

type tab struct {
	id    int64
	title string
	rows  [][]string
}

// Fake implements backing.Spreadsheets, backing.Files and backing.Documents
type Fake struct {
	mu sync.Mutex

	// Unauthorized makes every call fail with backing.ErrUnauthorized
	Unauthorized bool
	// Fail injects an error for the named method ("AppendValues", "Stat", ...)
	Fail map[string]error

	files  map[string]*file
	order  []string
	books  map[string][]*tab
	docs   map[string][]uint16
	calls  []string
	seq    int
	tabSeq int64
}

// New returns an empty fake
func New() *Fake {
	return &Fake{
		Fail:  map[string]error{},
		files: map[string]*file{},
		books: map[string][]*tab{},
		docs:  map[string][]uint16{},
	}
}

func (f *Fake) enter(ctx context.Context, method string) error {
	f.calls = append(f.calls, method)
	if f.Unauthorized || backing.AccessToken(ctx) == "" {
		return backing.ErrUnauthorized
	}
	if err := f.Fail[method]; err != nil {
		return err
	}
	return nil
}

func (f *Fake) nextID(prefix string) string {
	f.seq++
	return prefix + "-" + strconv.Itoa(f.seq)
}

func (f *Fake) addFile(name, mime, parentID string) *file {
	fl := &file{id: f.nextID(kindOf(mime)), name: name, mime: mime}
	if parentID != "" {
		fl.parents = []string{parentID}
	}
	f.files[fl.id] = fl
	f.order = append(f.order, fl.id)
	return fl
}

func kindOf(mime string) string {
	switch mime {
	case backing.MimeSpreadsheet:
		return "sheet"
	case backing.MimeFolder:
		return "folder"
	case backing.MimeDocument:
		return "doc"
	}
	return "file"
}

// Calls returns how many times method was invoked
func (f *Fake) Calls(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == method {
			n++
		}
	}
	return n
}

// ResetCalls clears the call log
func (f *Fake) ResetCalls() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = nil
}

// --- Spreadsheets ---

func (f *Fake) Create(ctx context.Context, title string, sheetTitles []string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter(ctx, "Create"); err != nil {
		return "", err
	}
	return f.createBook(title, sheetTitles, ""), nil
}

func (f *Fake) createBook(title string, sheetTitles []string, parentID string) string {
	fl := f.addFile(title, backing.MimeSpreadsheet, parentID)
	if len(sheetTitles) == 0 {
		sheetTitles = []string{"Sheet1"}
	}
	tabs := make([]*tab, 0, len(sheetTitles))
	for _, t := range sheetTitles {
		tabs = append(tabs, &tab{id: f.tabSeq, title: t})
		f.tabSeq++
	}
	f.books[fl.id] = tabs
	return fl.id
}

func (f *Fake) Sheets(ctx context.Context, spreadsheetID string) ([]backing.SheetProps, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter(ctx, "Sheets"); err != nil {
		return nil, err
	}
	tabs, ok := f.books[spreadsheetID]
	if !ok {
		return nil, backing.ErrNotFound
	}
	props := make([]backing.SheetProps, 0, len(tabs))
	for _, t := range tabs {
		props = append(props, backing.SheetProps{SheetID: t.id, Title: t.title})
	}
	return props, nil
}

func (f *Fake) AddSheet(ctx context.Context, spreadsheetID, title string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter(ctx, "AddSheet"); err != nil {
		return err
	}
	tabs, ok := f.books[spreadsheetID]
	if !ok {
		return backing.ErrNotFound
	}
	for _, t := range tabs {
		if t.title == title {
			return fmt.Errorf("sheet %q already exists", title)
		}
	}
	f.books[spreadsheetID] = append(tabs, &tab{id: f.tabSeq, title: title})
	f.tabSeq++
	return nil
}

func (f *Fake) Values(ctx context.Context, spreadsheetID, rng string) ([][]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter(ctx, "Values"); err != nil {
		return nil, err
	}
	t, r, err := f.locate(spreadsheetID, rng)
	if err != nil {
		return nil, err
	}
	var out [][]string
	for i := r.startRow - 1; i < len(t.rows); i++ {
		if r.endRow > 0 && i >= r.endRow {
			break
		}
		row := t.rows[i]
		var cells []string
		if r.startCol < len(row) {
			end := len(row)
			if r.endCol > 0 && r.endCol < end {
				end = r.endCol
			}
			cells = append(cells, row[r.startCol:end]...)
		}
		out = append(out, trimRow(cells))
	}
	for len(out) > 0 && len(out[len(out)-1]) == 0 {
		out = out[:len(out)-1]
	}
	return out, nil
}

func (f *Fake) UpdateValues(ctx context.Context, spreadsheetID, rng string, rows [][]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter(ctx, "UpdateValues"); err != nil {
		return err
	}
	return f.write(spreadsheetID, rng, rows)
}

func (f *Fake) BatchUpdateValues(ctx context.Context, spreadsheetID string, ranges []backing.ValueRange) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter(ctx, "BatchUpdateValues"); err != nil {
		return err
	}
	for _, vr := range ranges {
		if err := f.write(spreadsheetID, vr.Range, vr.Rows); err != nil {
			return err
		}
	}
	return nil
}

func (f *Fake) AppendValues(ctx context.Context, spreadsheetID, rng string, rows [][]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter(ctx, "AppendValues"); err != nil {
		return err
	}
	t, _, err := f.locate(spreadsheetID, rng)
	if err != nil {
		return err
	}
	last := len(t.rows)
	for last > 0 && len(trimRow(t.rows[last-1])) == 0 {
		last--
	}
	t.rows = t.rows[:last]
	for _, row := range rows {
		t.rows = append(t.rows, append([]string(nil), row...))
	}
	return nil
}

func (f *Fake) DeleteRows(ctx context.Context, spreadsheetID string, sheetID, start, end int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter(ctx, "DeleteRows"); err != nil {
		return err
	}
	for _, t := range f.books[spreadsheetID] {
		if t.id != sheetID {
			continue
		}
		if start < 0 || end <= start || int(end) > len(t.rows) {
			return fmt.Errorf("invalid row range [%d, %d)", start, end)
		}
		t.rows = append(t.rows[:start], t.rows[end:]...)
		return nil
	}
	return backing.ErrNotFound
}

func (f *Fake) write(spreadsheetID, rng string, rows [][]string) error {
	t, r, err := f.locate(spreadsheetID, rng)
	if err != nil {
		return err
	}
	for i, row := range rows {
		at := r.startRow - 1 + i
		for len(t.rows) <= at {
			t.rows = append(t.rows, nil)
		}
		target := t.rows[at]
		for len(target) < r.startCol+len(row) {
			target = append(target, "")
		}
		copy(target[r.startCol:], row)
		t.rows[at] = target
	}
	return nil
}

func (f *Fake) locate(spreadsheetID, rng string) (*tab, a1, error) {
	tabs, ok := f.books[spreadsheetID]
	if !ok {
		return nil, a1{}, backing.ErrNotFound
	}
	title, r, err := parseA1(rng)
	if err != nil {
		return nil, a1{}, err
	}
	for _, t := range tabs {
		if t.title == title {
			return t, r, nil
		}
	}
	return nil, a1{}, fmt.Errorf("unable to parse range: %s", rng)
}

// --- Files ---

func (f *Fake) Stat(ctx context.Context, fileID string) (*backing.File, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter(ctx, "Stat"); err != nil {
		return nil, err
	}
	fl, ok := f.files[fileID]
	if !ok {
		return nil, backing.ErrNotFound
	}
	return &backing.File{ID: fl.id, Name: fl.name, Trashed: fl.trashed}, nil
}

func (f *Fake) FindByName(ctx context.Context, name, mimeType, parentID string) (*backing.File, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter(ctx, "FindByName"); err != nil {
		return nil, err
	}
	for _, id := range f.order {
		fl := f.files[id]
		if fl.name != name || fl.mime != mimeType || fl.trashed {
			continue
		}
		if parentID != "" && !contains(fl.parents, parentID) {
			continue
		}
		return &backing.File{ID: fl.id, Name: fl.name}, nil
	}
	return nil, nil
}

func (f *Fake) CreateFile(ctx context.Context, name, mimeType, parentID string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter(ctx, "CreateFile"); err != nil {
		return "", err
	}
	if mimeType == backing.MimeSpreadsheet {
		return f.createBook(name, nil, parentID), nil
	}
	fl := f.addFile(name, mimeType, parentID)
	if mimeType == backing.MimeDocument {
		f.docs[fl.id] = utf16.Encode([]rune("\n"))
	}
	return fl.id, nil
}

func (f *Fake) AddParent(ctx context.Context, fileID, folderID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter(ctx, "AddParent"); err != nil {
		return err
	}
	fl, ok := f.files[fileID]
	if !ok {
		return backing.ErrNotFound
	}
	if !contains(fl.parents, folderID) {
		fl.parents = append(fl.parents, folderID)
	}
	return nil
}

// --- Documents ---

func (f *Fake) Text(ctx context.Context, documentID string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter(ctx, "Text"); err != nil {
		return "", err
	}
	doc, ok := f.docs[documentID]
	if !ok {
		return "", backing.ErrNotFound
	}
	return string(utf16.Decode(doc)), nil
}

func (f *Fake) InsertText(ctx context.Context, documentID string, index int64, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter(ctx, "InsertText"); err != nil {
		return err
	}
	doc, ok := f.docs[documentID]
	if !ok {
		return backing.ErrNotFound
	}
	out, err := insertAt(doc, index, text)
	if err != nil {
		return err
	}
	f.docs[documentID] = out
	return nil
}

func (f *Fake) ReplaceRange(ctx context.Context, documentID string, start, end int64, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter(ctx, "ReplaceRange"); err != nil {
		return err
	}
	doc, ok := f.docs[documentID]
	if !ok {
		return backing.ErrNotFound
	}
	// The final newline of the body can never be deleted.
	if start < 1 || end <= start || end > int64(len(doc)) {
		return fmt.Errorf("invalid deletion range [%d, %d)", start, end)
	}
	cut := make([]uint16, 0, len(doc))
	cut = append(cut, doc[:start-1]...)
	cut = append(cut, doc[end-1:]...)
	out, err := insertAt(cut, start, text)
	if err != nil {
		return err
	}
	f.docs[documentID] = out
	return nil
}

func insertAt(doc []uint16, index int64, text string) ([]uint16, error) {
	pos := index - 1
	if pos < 0 || pos >= int64(len(doc)) {
		return nil, fmt.Errorf("index %d must be inside the body", index)
	}
	ins := utf16.Encode([]rune(text))
	out := make([]uint16, 0, len(doc)+len(ins))
	out = append(out, doc[:pos]...)
	out = append(out, ins...)
	out = append(out, doc[pos:]...)
	return out, nil
}

// --- seeding and inspection helpers ---

// SeedSpreadsheet creates a spreadsheet directly, bypassing call accounting
func (f *Fake) SeedSpreadsheet(title, parentID string, sheetTitles ...string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.createBook(title, sheetTitles, parentID)
}

// SeedFile creates a Drive file directly; documents start with the given body text
func (f *Fake) SeedFile(name, mimeType, parentID, body string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	fl := f.addFile(name, mimeType, parentID)
	if mimeType == backing.MimeDocument {
		f.docs[fl.id] = utf16.Encode([]rune(body))
	}
	return fl.id
}

// SetRows replaces the rows of a tab
func (f *Fake) SetRows(spreadsheetID, title string, rows [][]string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range f.books[spreadsheetID] {
		if t.title == title {
			t.rows = nil
			for _, r := range rows {
				t.rows = append(t.rows, append([]string(nil), r...))
			}
			return
		}
	}
	panic("backingtest: unknown tab " + title)
}

// Rows returns a copy of a tab's rows, trailing empty cells trimmed
func (f *Fake) Rows(spreadsheetID, title string) [][]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range f.books[spreadsheetID] {
		if t.title == title {
			out := make([][]string, 0, len(t.rows))
			for _, r := range t.rows {
				out = append(out, trimRow(append([]string(nil), r...)))
			}
			return out
		}
	}
	return nil
}

// SheetTitles lists a spreadsheet's tabs in order
func (f *Fake) SheetTitles(spreadsheetID string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var titles []string
	for _, t := range f.books[spreadsheetID] {
		titles = append(titles, t.title)
	}
	return titles
}

// Trash marks a file as trashed
func (f *Fake) Trash(fileID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if fl, ok := f.files[fileID]; ok {
		fl.trashed = true
	}
}

// Parents returns the parent folders of a file
func (f *Fake) Parents(fileID string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if fl, ok := f.files[fileID]; ok {
		return append([]string(nil), fl.parents...)
	}
	return nil
}

// CountFiles counts non-trashed files with the given mime type
func (f *Fake) CountFiles(mimeType string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, fl := range f.files {
		if fl.mime == mimeType && !fl.trashed {
			n++
		}
	}
	return n
}

// DocumentText returns a document body without call accounting
func (f *Fake) DocumentText(documentID string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return string(utf16.Decode(f.docs[documentID]))
}

// --- helpers ---

type a1 struct {
	startRow int // 1-based
	endRow   int // inclusive, 0 when open
	startCol int // 0-based
	endCol   int // exclusive, 0 when open
}

func parseA1(rng string) (string, a1, error) {
	r := a1{startRow: 1}
	if !strings.HasPrefix(rng, "'") {
		return "", r, fmt.Errorf("unquoted range %q", rng)
	}
	closing := strings.LastIndex(rng, "'")
	if closing == 0 {
		return "", r, fmt.Errorf("unterminated range %q", rng)
	}
	title := strings.ReplaceAll(rng[1:closing], "''", "'")
	cells := strings.TrimPrefix(rng[closing+1:], "!")
	if cells == "" {
		return title, r, nil
	}
	parts := strings.SplitN(cells, ":", 2)
	col, row := splitCell(parts[0])
	if col >= 0 {
		r.startCol = col
	}
	if row > 0 {
		r.startRow = row
	}
	if len(parts) == 1 {
		r.endRow = r.startRow
		r.endCol = r.startCol + 1
		return title, r, nil
	}
	col, row = splitCell(parts[1])
	if col >= 0 {
		r.endCol = col + 1
	}
	if row > 0 {
		r.endRow = row
	}
	return title, r, nil
}

// splitCell parses "B12" into (1, 12); a missing part is -1 or 0
func splitCell(ref string) (int, int) {
	i := 0
	col := -1
	for i < len(ref) && ref[i] >= 'A' && ref[i] <= 'Z' {
		if col < 0 {
			col = 0
		}
		col = col*26 + int(ref[i]-'A'+1)
		i++
	}
	if col > 0 {
		col--
	}
	row, _ := strconv.Atoi(ref[i:])
	return col, row
}

func trimRow(row []string) []string {
	for len(row) > 0 && row[len(row)-1] == "" {
		row = row[:len(row)-1]
	}
	if row == nil {
		return []string{}
	}
	return row
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
