package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"wanderplan/internal/models/request_models"
	"wanderplan/internal/models/response_models"
	"wanderplan/internal/services"
	"wanderplan/pkg/enrich"
	"wanderplan/pkg/middleware"
	"wanderplan/pkg/planparse"
	"wanderplan/pkg/utils"
)

const testSecret = "controller-test-secret-0123456789"

func init() {
	gin.SetMode(gin.TestMode)
}

type envelope struct {
	Status  string          `json:"status"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return env
}

func bearer(t *testing.T, id uuid.UUID) string {
	t.Helper()
	token, err := utils.CreateToken(testSecret, id, "user")
	if err != nil {
		t.Fatal(err)
	}
	return "Bearer " + token
}

// fakes

type fakeAccountService struct {
	services.AccountServiceInterface
	loginErr error
}

func (f *fakeAccountService) CreateAccount(req request_models.SignUpRequest, _ context.Context) (response_models.AuthResponse, error) {
	return response_models.AuthResponse{Token: "t", Account: response_models.AccountResponse{Email: req.Email}}, nil
}

func (f *fakeAccountService) Login(_ request_models.LoginRequest, _ context.Context) (response_models.AuthResponse, error) {
	return response_models.AuthResponse{}, f.loginErr
}

type fakeLiveService struct {
	events []response_models.LiveEvent
	err    error
	gotID  uuid.UUID
}

func (f *fakeLiveService) Stream(_ context.Context, accountID uuid.UUID, _ request_models.LiveStreamRequest, emit func(response_models.LiveEvent) error) error {
	f.gotID = accountID
	if f.err != nil {
		return f.err
	}
	for _, e := range f.events {
		if err := emit(e); err != nil {
			return nil
		}
	}
	return nil
}

type fakeHistoryService struct {
	services.HistoryServiceInterface
	deleteErr error
	listReq   request_models.HistoryListRequest
}

func (f *fakeHistoryService) List(_ context.Context, _ uuid.UUID, req request_models.HistoryListRequest) (response_models.HistoryPageResponse, error) {
	f.listReq = req
	return response_models.HistoryPageResponse{Items: []response_models.HistoryItemResponse{}, Page: 1, PageSize: 20}, nil
}

func (f *fakeHistoryService) Delete(context.Context, uuid.UUID, uuid.UUID) error {
	return f.deleteErr
}

type fakeMemoryService struct {
	services.MemoryServiceInterface
	upload services.MemoryUpload
	body   string
}

func (f *fakeMemoryService) Upload(_ context.Context, _ uuid.UUID, upload services.MemoryUpload) (response_models.MemoryResponse, error) {
	f.upload = upload
	data, _ := io.ReadAll(upload.Content)
	f.body = string(data)
	return response_models.MemoryResponse{ID: "m1", Day: upload.Day}, nil
}

type fakePlanService struct {
	services.PlanServiceInterface
	generated request_models.GeneratePlanRequest
}

func (f *fakePlanService) Generate(_ context.Context, _ uuid.UUID, req request_models.GeneratePlanRequest) (response_models.PlanResponse, error) {
	f.generated = req
	return response_models.PlanResponse{HistoryID: "h1"}, nil
}

func (f *fakePlanService) Parse(markdown, hint string) planparse.PlanView {
	return planparse.BuildPlanView(markdown, hint)
}

type fakePlaceService struct {
	services.PlaceServiceInterface
}

func (fakePlaceService) Enrich(_ context.Context, req request_models.PlaceEnrichRequest) []enrich.PlaceEnrichment {
	out := make([]enrich.PlaceEnrichment, len(req.Places))
	for i, p := range req.Places {
		out[i] = enrich.PlaceEnrichment{Name: p}
	}
	return out
}

func newRouter(register func(public, api *gin.RouterGroup)) *gin.Engine {
	r := gin.New()
	api := r.Group("/api", middleware.JWTAuthMiddleware(testSecret))
	register(&r.RouterGroup, api)
	return r
}

func TestRegisterReturnsCreated(t *testing.T) {
	ctrl := NewAccountController(&fakeAccountService{})
	r := newRouter(func(public, _ *gin.RouterGroup) { public.POST("/accounts/register", ctrl.Register) })

	body := `{"displayName":"Ana","email":"ana@example.com","password":"longenough"}`
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/accounts/register", strings.NewReader(body)))

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(string(decode(t, w).Data), "ana@example.com") {
		t.Fatalf("body = %s", w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/accounts/register", strings.NewReader(`{"email":"bad"}`)))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("invalid body status = %d", w.Code)
	}
}

func TestLoginMapsServiceErrors(t *testing.T) {
	ctrl := NewAccountController(&fakeAccountService{loginErr: utils.ErrInvalidCredentials})
	r := newRouter(func(public, _ *gin.RouterGroup) { public.POST("/accounts/login", ctrl.Login) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/accounts/login", strings.NewReader(`{"email":"ana@example.com","password":"x"}`)))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	ctrl := NewHistoryController(&fakeHistoryService{})
	r := newRouter(func(_, api *gin.RouterGroup) { api.GET("/history", ctrl.ListHistory) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/history", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestListHistoryBindsQuery(t *testing.T) {
	svc := &fakeHistoryService{}
	ctrl := NewHistoryController(svc)
	r := newRouter(func(_, api *gin.RouterGroup) { api.GET("/history", ctrl.ListHistory) })

	req := httptest.NewRequest(http.MethodGet, "/api/history?page=2&pageSize=5&kind=trip_plan", nil)
	req.Header.Set("Authorization", bearer(t, uuid.New()))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	if svc.listReq.Page != 2 || svc.listReq.PageSize != 5 || svc.listReq.Kind != "trip_plan" {
		t.Fatalf("request = %+v", svc.listReq)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/history?page=abc", nil)
	req.Header.Set("Authorization", bearer(t, uuid.New()))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad page status = %d", w.Code)
	}
}

func TestDeleteHistory(t *testing.T) {
	svc := &fakeHistoryService{deleteErr: utils.ErrHistoryNotFound}
	ctrl := NewHistoryController(svc)
	r := newRouter(func(_, api *gin.RouterGroup) { api.DELETE("/history/:id", ctrl.DeleteHistory) })
	auth := bearer(t, uuid.New())

	req := httptest.NewRequest(http.MethodDelete, "/api/history/not-a-uuid", nil)
	req.Header.Set("Authorization", auth)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad id status = %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/history/"+uuid.NewString(), nil)
	req.Header.Set("Authorization", auth)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing status = %d", w.Code)
	}
}

func TestLiveStreamWritesServerSentEvents(t *testing.T) {
	svc := &fakeLiveService{events: []response_models.LiveEvent{
		{Type: response_models.LiveEventChunk, Text: "Hello "},
		{Type: response_models.LiveEventChunk, Text: "Rome"},
		{Type: response_models.LiveEventDone, HistoryID: "h1"},
	}}
	ctrl := NewLiveController(svc)
	r := newRouter(func(_, api *gin.RouterGroup) { api.POST("/live/stream", ctrl.Stream) })

	accountID := uuid.New()
	req := httptest.NewRequest(http.MethodPost, "/api/live/stream", strings.NewReader(`{"message":"hi"}`))
	req.Header.Set("Authorization", bearer(t, accountID))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK || w.Header().Get("Content-Type") != "text/event-stream" {
		t.Fatalf("status = %d, content type %q", w.Code, w.Header().Get("Content-Type"))
	}
	want := `data: {"type":"chunk","text":"Hello "}` + "\n\n" +
		`data: {"type":"chunk","text":"Rome"}` + "\n\n" +
		`data: {"type":"done","historyId":"h1"}` + "\n\n"
	if w.Body.String() != want {
		t.Fatalf("body = %q", w.Body.String())
	}
	if svc.gotID != accountID {
		t.Fatalf("account = %s", svc.gotID)
	}
}

func TestLiveStreamValidationIsJSON(t *testing.T) {
	ctrl := NewLiveController(&fakeLiveService{err: utils.ErrInvalidInput})
	r := newRouter(func(_, api *gin.RouterGroup) { api.POST("/live/stream", ctrl.Stream) })

	req := httptest.NewRequest(http.MethodPost, "/api/live/stream", strings.NewReader(`{}`))
	req.Header.Set("Authorization", bearer(t, uuid.New()))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest || !strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		t.Fatalf("status = %d, content type %q", w.Code, w.Header().Get("Content-Type"))
	}
}

func TestGeneratePlanAcceptsEmptyBody(t *testing.T) {
	svc := &fakePlanService{}
	ctrl := NewPlanController(svc)
	r := newRouter(func(_, api *gin.RouterGroup) { api.POST("/plans", ctrl.GeneratePlan) })

	req := httptest.NewRequest(http.MethodPost, "/api/plans", nil)
	req.Header.Set("Authorization", bearer(t, uuid.New()))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodPost, "/api/plans", strings.NewReader(`{"destination":"Oslo","travelers":3}`))
	req.Header.Set("Authorization", bearer(t, uuid.New()))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated || svc.generated.Destination != "Oslo" || svc.generated.Travelers != 3 {
		t.Fatalf("status = %d, request = %+v", w.Code, svc.generated)
	}
}

func TestParsePlan(t *testing.T) {
	ctrl := NewPlanController(&fakePlanService{})
	r := newRouter(func(_, api *gin.RouterGroup) { api.POST("/plans/parse", ctrl.ParsePlan) })
	auth := bearer(t, uuid.New())

	body, _ := json.Marshal(request_models.ParsePlanRequest{Markdown: "## Budget Allocation\n- Flights: $500", DestinationHint: "Rome"})
	req := httptest.NewRequest(http.MethodPost, "/api/plans/parse", bytes.NewReader(body))
	req.Header.Set("Authorization", auth)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var view planparse.PlanView
	if err := json.Unmarshal(decode(t, w).Data, &view); err != nil {
		t.Fatal(err)
	}
	if len(view.Budget) != 1 || view.Budget[0].Label != "Flights" || view.PrimaryDestination != "Rome" {
		t.Fatalf("view = %+v", view)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/plans/parse", strings.NewReader(`{}`))
	req.Header.Set("Authorization", auth)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing markdown status = %d", w.Code)
	}
}

func TestEnrichPlacesLimits(t *testing.T) {
	ctrl := NewPlaceController(fakePlaceService{})
	r := newRouter(func(_, api *gin.RouterGroup) { api.POST("/places/enrich", ctrl.EnrichPlaces) })
	auth := bearer(t, uuid.New())

	req := httptest.NewRequest(http.MethodPost, "/api/places/enrich", strings.NewReader(`{"places":["Louvre","Orsay"]}`))
	req.Header.Set("Authorization", auth)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Orsay") {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodPost, "/api/places/enrich", strings.NewReader(`{"places":[]}`))
	req.Header.Set("Authorization", auth)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("empty places status = %d", w.Code)
	}
}

func TestUploadMemoryMultipart(t *testing.T) {
	svc := &fakeMemoryService{}
	ctrl := NewMemoryController(svc)
	r := newRouter(func(_, api *gin.RouterGroup) { api.POST("/memories", ctrl.UploadMemory) })

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	_ = mw.WriteField("historyId", "h1")
	_ = mw.WriteField("day", "2")
	_ = mw.WriteField("caption", "Sunset")
	part, _ := mw.CreateFormFile("file", "sunset.png")
	_, _ = part.Write([]byte("\x89PNG\r\n\x1a\nrest-of-file"))
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/memories", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", bearer(t, uuid.New()))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	if svc.upload.Day != 2 || svc.upload.Caption != "Sunset" || svc.upload.MimeType != "image/png" || svc.upload.FileName != "sunset.png" {
		t.Fatalf("upload = %+v", svc.upload)
	}
	if !strings.HasPrefix(svc.body, "\x89PNG") {
		t.Fatalf("content = %q", svc.body)
	}
}
