package services

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/google/uuid"

	"wanderplan/internal/models/db_models"
	"wanderplan/pkg/utils"
)

var errFake = errors.New("fake failure")

type fakeAccountRepo struct {
	mu       sync.Mutex
	accounts map[uuid.UUID]*db_models.Account
	inserts  int
	updates  int
}

func newFakeAccountRepo(accounts ...*db_models.Account) *fakeAccountRepo {
	r := &fakeAccountRepo{accounts: map[uuid.UUID]*db_models.Account{}}
	for _, a := range accounts {
		if a.ID == uuid.Nil {
			a.ID = uuid.New()
		}
		r.accounts[a.ID] = a
	}
	return r
}

func (r *fakeAccountRepo) InsertTx(account *db_models.Account, _ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	r.accounts[account.ID] = account
	r.inserts++
	return nil
}

func (r *fakeAccountRepo) Update(_ context.Context, account *db_models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.accounts[account.ID] = account
	r.updates++
	return nil
}

func (r *fakeAccountRepo) FindById(_ context.Context, id string) (*db_models.Account, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.accounts[parsed], nil
}

func (r *fakeAccountRepo) find(match func(*db_models.Account) bool) *db_models.Account {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.accounts {
		if match(a) {
			return a
		}
	}
	return nil
}

func (r *fakeAccountRepo) FindByEmail(_ context.Context, email string) (*db_models.Account, error) {
	return r.find(func(a *db_models.Account) bool { return a.Email == email }), nil
}

func (r *fakeAccountRepo) FindByGoogleSubject(_ context.Context, subject string) (*db_models.Account, error) {
	return r.find(func(a *db_models.Account) bool { return a.GoogleSubject != "" && a.GoogleSubject == subject }), nil
}

type fakePreferenceRepo struct {
	prefs map[uuid.UUID]*db_models.TravelPreference
	err   error
}

func newFakePreferenceRepo() *fakePreferenceRepo {
	return &fakePreferenceRepo{prefs: map[uuid.UUID]*db_models.TravelPreference{}}
}

func (r *fakePreferenceRepo) FindByAccountID(_ context.Context, accountID uuid.UUID) (*db_models.TravelPreference, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.prefs[accountID], nil
}

func (r *fakePreferenceRepo) Upsert(_ context.Context, pref *db_models.TravelPreference) error {
	if r.err != nil {
		return r.err
	}
	r.prefs[pref.AccountID] = pref
	return nil
}

type fakeHistoryRepo struct {
	mu        sync.Mutex
	records   []*db_models.HistoryRecord
	createErr error
	lastPage  [2]int
}

func (r *fakeHistoryRepo) Create(_ context.Context, record *db_models.HistoryRecord) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	record.CreatedAt = int64(1700000000 + len(r.records))
	r.records = append(r.records, record)
	return nil
}

func (r *fakeHistoryRepo) FindByID(_ context.Context, accountID, id uuid.UUID) (*db_models.HistoryRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range r.records {
		if rec.ID == id && rec.AccountID == accountID {
			return rec, nil
		}
	}
	return nil, nil
}

func (r *fakeHistoryRepo) ListByAccount(_ context.Context, accountID uuid.UUID, kind string, page, pageSize int) ([]db_models.HistoryRecord, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastPage = [2]int{page, pageSize}
	var matched []db_models.HistoryRecord
	for i := len(r.records) - 1; i >= 0; i-- {
		rec := r.records[i]
		if rec.AccountID == accountID && (kind == "" || rec.Kind == kind) {
			matched = append(matched, *rec)
		}
	}
	total := int64(len(matched))
	start := (page - 1) * pageSize
	if start >= len(matched) {
		return nil, total, nil
	}
	end := min(start+pageSize, len(matched))
	return matched[start:end], total, nil
}

func (r *fakeHistoryRepo) Delete(_ context.Context, accountID, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, rec := range r.records {
		if rec.ID == id && rec.AccountID == accountID {
			r.records = append(r.records[:i], r.records[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type fakeMemoryRepo struct {
	memories []db_models.Memory
}

func (r *fakeMemoryRepo) Create(_ context.Context, memory *db_models.Memory) error {
	if memory.ID == uuid.Nil {
		memory.ID = uuid.New()
	}
	r.memories = append(r.memories, *memory)
	return nil
}

func (r *fakeMemoryRepo) ListByHistory(_ context.Context, accountID, historyID uuid.UUID) ([]db_models.Memory, error) {
	var out []db_models.Memory
	for _, m := range r.memories {
		if m.AccountID == accountID && m.HistoryID == historyID {
			out = append(out, m)
		}
	}
	return out, nil
}

// fakeGenerator replies with fixed chunks, optionally failing after failAfter chunks.
type fakeGenerator struct {
	reply     string
	chunks    []string
	err       error
	failAfter int
	requests  []utils.GenerateRequest
}

func (g *fakeGenerator) Generate(_ context.Context, req utils.GenerateRequest) (string, error) {
	g.requests = append(g.requests, req)
	if g.err != nil {
		return "", g.err
	}
	return g.reply, nil
}

func (g *fakeGenerator) Stream(_ context.Context, req utils.GenerateRequest, onChunk func(string) error) error {
	g.requests = append(g.requests, req)
	for i, c := range g.chunks {
		if g.err != nil && i == g.failAfter {
			return g.err
		}
		if err := onChunk(c); err != nil {
			return err
		}
	}
	if g.err != nil && g.failAfter >= len(g.chunks) {
		return g.err
	}
	return nil
}

func (g *fakeGenerator) Close() error { return nil }

type fakeGoogle struct {
	identity  *GoogleIdentity
	exchErr   error
	uploadErr error
	uploads   []DriveFile
	tokens    []string
}

func (f *fakeGoogle) AuthCodeURL(state string) string {
	return "https://accounts.example.com/auth?state=" + state
}

func (f *fakeGoogle) Exchange(_ context.Context, _ string) (*GoogleIdentity, error) {
	if f.exchErr != nil {
		return nil, f.exchErr
	}
	return f.identity, nil
}

func (f *fakeGoogle) UploadFile(_ context.Context, refreshToken string, file DriveFile) (*DriveUpload, error) {
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	_, _ = io.ReadAll(file.Content)
	f.uploads = append(f.uploads, file)
	f.tokens = append(f.tokens, refreshToken)
	return &DriveUpload{FileID: "drive-1", Link: "https://drive.example.com/drive-1"}, nil
}
