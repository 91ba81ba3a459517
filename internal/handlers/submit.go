package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/mon-refugee/membership-api/internal/config"
	"github.com/mon-refugee/membership-api/internal/delivery"
	"github.com/mon-refugee/membership-api/internal/intake"
	"github.com/mon-refugee/membership-api/internal/models"
	"github.com/mon-refugee/membership-api/internal/pdfgen"
	"github.com/mon-refugee/membership-api/internal/qr"
	"github.com/mon-refugee/membership-api/internal/repository"
)

const (
	maxPhotoSize = 2 << 20 // 2MB upload limit
	maxFormSize  = 8 << 20
)

type SubmissionHandler struct {
	cfg        *config.Config
	repo       *repository.Submissions
	renderer   *pdfgen.Renderer
	dispatcher *delivery.Dispatcher
}

func NewSubmissionHandler(cfg *config.Config, repo *repository.Submissions, renderer *pdfgen.Renderer, dispatcher *delivery.Dispatcher) *SubmissionHandler {
	return &SubmissionHandler{cfg: cfg, repo: repo, renderer: renderer, dispatcher: dispatcher}
}

// HandleSubmit runs the whole intake pipeline: validate, build family
// records, persist, then render and deliver the certificate. The row is
// committed before rendering starts, so a late failure leaves a stored
// submission without a document.
func (h *SubmissionHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxFormSize); err != nil {
		writeValidationErrors(w, []intake.FieldError{{Field: "form", Message: "Malformed multipart form"}})
		return
	}

	if errs := intake.ValidateSubmitForm(r.FormValue); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	photoPath, photoURL, err := h.savePhoto(r)
	if err != nil {
		var fieldErr *photoError
		if errors.As(err, &fieldErr) {
			writeValidationErrors(w, []intake.FieldError{fieldErr.FieldError})
			return
		}
		log.Printf("Error saving photo: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	family := intake.BuildFamily(r.FormValue("family_members"), r.FormValue)

	sub := &models.Submission{
		Reference:        r.FormValue("reference"),
		UNHCRStatus:      r.FormValue("unhcr_status"),
		UNHCRFileNumber:  r.FormValue("unhcr_file_number"),
		IndividualNumber: r.FormValue("individual_number"),
		FullName:         r.FormValue("fullname"),
		FatherName:       r.FormValue("father_name"),
		MotherName:       r.FormValue("mother_name"),
		Email:            r.FormValue("email"),
		Phone:            r.FormValue("phone"),
		Phone2:           r.FormValue("phone2"),
		Country:          r.FormValue("country"),
		Ethnicity:        r.FormValue("ethnicity"),
		Religion:         r.FormValue("religion"),
		Gender:           r.FormValue("gender"),
		DOB:              intake.DisplayDate(r.FormValue("dob")),
		Arrival:          intake.DisplayDate(r.FormValue("arrival")),
		AddressState:     r.FormValue("address_state"),
		PhotoPath:        photoPath,
		FamilyCount:      r.FormValue("family_members"),
		Vulnerability:    r.FormValue("vulnerability"),
		Consent:          r.FormValue("consent"),
	}

	if _, err := h.repo.Insert(r.Context(), sub, family); err != nil {
		log.Printf("Error inserting submission: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	// The document's identity is fixed before rendering so the embedded
	// QR code can point at the document's own URL.
	identity := h.dispatcher.AllocateIdentity(sub.Reference)

	qrPNG, err := qr.Generate(identity.URL)
	if err != nil {
		log.Printf("Error generating QR code: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	pdfBytes, err := h.renderer.Render(sub, family, qrPNG, photoURL)
	if err != nil {
		log.Printf("Error rendering document: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	out, err := h.dispatcher.Dispatch(identity, pdfBytes, qrPNG, sub.Email)
	if err != nil {
		log.Printf("Error delivering document: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "inline; filename=registration.pdf")
	w.Header().Set("Content-Length", strconv.Itoa(len(out)))
	w.Write(out)
}

// photoError marks an upload problem the applicant can fix.
type photoError struct {
	intake.FieldError
}

func (e *photoError) Error() string { return e.Message }

// savePhoto stores an uploaded passport photo under the uploads
// directory and returns its disk path and hosted URL. A missing photo
// is fine; an oversized one is a validation error.
func (h *SubmissionHandler) savePhoto(r *http.Request) (path, url string, err error) {
	file, header, err := r.FormFile("photo")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", "", nil
		}
		return "", "", fmt.Errorf("read photo field: %w", err)
	}
	defer file.Close()

	if header.Size > maxPhotoSize {
		return "", "", &photoError{intake.FieldError{Field: "photo", Message: "Photo must be 2MB or smaller"}}
	}

	name := fmt.Sprintf("%d%s", time.Now().UnixNano(), filepath.Ext(header.Filename))
	path = filepath.Join(h.cfg.UploadDir, name)
	if err := writeUpload(path, file); err != nil {
		return "", "", err
	}
	return path, h.cfg.BaseURL + "/uploads/" + name, nil
}

func writeUpload(path string, file multipart.File) error {
	dst, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()
	if _, err := dst.ReadFrom(file); err != nil {
		return fmt.Errorf("write upload file: %w", err)
	}
	return nil
}

func writeValidationErrors(w http.ResponseWriter, errs []intake.FieldError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(map[string][]intake.FieldError{"errors": errs})
}
