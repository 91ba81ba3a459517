package handlers

import (
	"context"
	"log"
	"net/http"
	"strconv"

	"github.com/mon-refugee/membership-api/internal/export"
	"github.com/mon-refugee/membership-api/internal/models"
	"github.com/mon-refugee/membership-api/internal/repository"
)

// Backup is the external spreadsheet appender behind GET /backup.
type Backup interface {
	Append(ctx context.Context, rows []models.Submission) (int64, error)
}

type AdminHandler struct {
	repo   *repository.Submissions
	backup Backup
}

func NewAdminHandler(repo *repository.Submissions, backup Backup) *AdminHandler {
	return &AdminHandler{repo: repo, backup: backup}
}

type dashboardData struct {
	Rows      []models.Submission
	Search    string
	SortField string
	SortOrder string
	Page      int
	Pages     []int
}

// HandleDashboard renders the searchable, sortable, paginated
// submissions listing.
func (h *AdminHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	q := repository.Query{
		Search:    r.URL.Query().Get("search"),
		SortField: r.URL.Query().Get("sortField"),
		SortOrder: r.URL.Query().Get("sortOrder"),
	}
	if q.SortField == "" {
		q.SortField = "id"
	}
	q.Page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	if q.Page < 1 {
		q.Page = 1
	}

	rows, total, err := h.repo.List(r.Context(), q)
	if err != nil {
		log.Printf("Error fetching submissions: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	totalPages := int((total + repository.PageSize - 1) / repository.PageSize)
	pages := make([]int, 0, totalPages)
	for i := 1; i <= totalPages; i++ {
		pages = append(pages, i)
	}

	data := dashboardData{
		Rows:      rows,
		Search:    q.Search,
		SortField: q.SortField,
		SortOrder: q.SortOrder,
		Page:      q.Page,
		Pages:     pages,
	}
	if err := dashboardTmpl.Execute(w, data); err != nil {
		log.Printf("Error rendering dashboard: %v", err)
	}
}

type analyticsData struct {
	Labels []string
	Counts []int64
}

// HandleAnalytics renders the submissions-per-country chart page.
func (h *AdminHandler) HandleAnalytics(w http.ResponseWriter, r *http.Request) {
	counts, err := h.repo.CountByField(r.Context(), "country")
	if err != nil {
		log.Printf("Error fetching analytics: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := analyticsData{}
	for _, c := range counts {
		data.Labels = append(data.Labels, c.Value)
		data.Counts = append(data.Counts, c.Count)
	}
	if err := analyticsTmpl.Execute(w, data); err != nil {
		log.Printf("Error rendering analytics: %v", err)
	}
}

// HandleExport streams all submissions as an xlsx download.
func (h *AdminHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	rows, err := h.repo.All(r.Context())
	if err != nil {
		log.Printf("Error fetching submissions: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	book, err := export.Workbook(rows)
	if err != nil {
		log.Printf("Error building workbook: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Disposition", "attachment; filename=submissions.xlsx")
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Write(book)
}

// HandleBackup appends every submission to the external spreadsheet
// and reports the cell count.
func (h *AdminHandler) HandleBackup(w http.ResponseWriter, r *http.Request) {
	rows, err := h.repo.All(r.Context())
	if err != nil {
		log.Printf("Error fetching submissions: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	cells, err := h.backup.Append(r.Context(), rows)
	if err != nil {
		log.Printf("Error during spreadsheet backup: %v", err)
		http.Error(w, "Backup failed.", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("Backup successful! " + strconv.FormatInt(cells, 10) + " cells updated."))
}
