package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mon-refugee/membership-api/internal/config"
	"github.com/mon-refugee/membership-api/internal/delivery"
	"github.com/mon-refugee/membership-api/internal/intake"
	"github.com/mon-refugee/membership-api/internal/mailer"
	"github.com/mon-refugee/membership-api/internal/models"
	"github.com/mon-refugee/membership-api/internal/pdfgen"
	"github.com/mon-refugee/membership-api/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type fakeMailer struct {
	sent   bool
	to     string
	docURL string
	err    error
}

func (f *fakeMailer) SendDocument(to, docURL string, attachments []mailer.Attachment) error {
	f.sent = true
	f.to = to
	f.docURL = docURL
	return f.err
}

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&models.Submission{}); err != nil {
		t.Fatalf("failed to auto migrate: %v", err)
	}
	return db
}

func testSubmissionHandler(t *testing.T, db *gorm.DB, fm mailer.Mailer) *SubmissionHandler {
	t.Helper()
	cfg := &config.Config{
		BaseURL:   "http://localhost:3000",
		UploadDir: t.TempDir(),
	}
	dispatcher := &delivery.Dispatcher{
		PDFDir:  t.TempDir(),
		QRDir:   t.TempDir(),
		BaseURL: cfg.BaseURL,
		Mailer:  fm,
	}
	return NewSubmissionHandler(cfg, repository.NewSubmissions(db), &pdfgen.Renderer{}, dispatcher)
}

func multipartForm(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	return &buf, w.FormDataContentType()
}

func validFields() map[string]string {
	return map[string]string{
		"reference": "R1",
		"fullname":  "Jane Doe",
		"email":     "jane@x.com",
		"phone":     "123",
		"dob":       "1990-01-01",
		"arrival":   "2020-05-05",
	}
}

func TestHandleSubmitPipeline(t *testing.T) {
	db := testDB(t)
	fm := &fakeMailer{}
	handler := testSubmissionHandler(t, db, fm)

	fields := validFields()
	fields["family_members"] = "2"
	fields["fam_1_fullname"] = "Tom"
	fields["fam_2_fullname"] = "Amy"

	body, contentType := multipartForm(t, fields)
	req := httptest.NewRequest(http.MethodPost, "/submit", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	handler.HandleSubmit(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("expected application/pdf, got %s", ct)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")) {
		t.Error("response body does not begin with PDF header bytes")
	}

	var stored models.Submission
	if err := db.First(&stored).Error; err != nil {
		t.Fatalf("no stored submission: %v", err)
	}
	if stored.DOB != "01/01/1990" {
		t.Errorf("dob = %q, want 01/01/1990", stored.DOB)
	}
	if stored.Arrival != "05/05/2020" {
		t.Errorf("arrival = %q, want 05/05/2020", stored.Arrival)
	}
	family, err := stored.Family()
	if err != nil {
		t.Fatalf("Family: %v", err)
	}
	if len(family) != 2 || family[0].FullName != "Tom" || family[1].FullName != "Amy" {
		t.Errorf("family sequence wrong: %+v", family)
	}

	if !fm.sent || fm.to != "jane@x.com" {
		t.Errorf("expected mail to applicant, got %+v", fm)
	}
}

func TestHandleSubmitValidationFailure(t *testing.T) {
	db := testDB(t)
	handler := testSubmissionHandler(t, db, &fakeMailer{})

	fields := validFields()
	fields["email"] = "not-an-email"
	body, contentType := multipartForm(t, fields)
	req := httptest.NewRequest(http.MethodPost, "/submit", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	handler.HandleSubmit(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var resp struct {
		Errors []intake.FieldError `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not structured JSON: %v", err)
	}
	if len(resp.Errors) != 1 || resp.Errors[0].Field != "email" {
		t.Errorf("expected email field error, got %+v", resp.Errors)
	}

	// Rejected submissions never reach storage.
	var count int64
	db.Model(&models.Submission{}).Count(&count)
	if count != 0 {
		t.Errorf("expected no stored rows, got %d", count)
	}
}

func TestHandleSubmitMailFailureIs500(t *testing.T) {
	db := testDB(t)
	fm := &fakeMailer{err: http.ErrHandlerTimeout}
	handler := testSubmissionHandler(t, db, fm)

	body, contentType := multipartForm(t, validFields())
	req := httptest.NewRequest(http.MethodPost, "/submit", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	handler.HandleSubmit(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	// The row was committed before delivery failed: accepted orphan.
	var count int64
	db.Model(&models.Submission{}).Count(&count)
	if count != 1 {
		t.Errorf("expected 1 orphan row, got %d", count)
	}
}
