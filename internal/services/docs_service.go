package services

import (
	"bytes"
	"database/sql"
	"fmt"
	"time"

	intconfig "aqarhub/internal/config"
	"aqarhub/internal/domain"
	"aqarhub/internal/domain/models"
	"aqarhub/internal/repositories"
	"aqarhub/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders the admin listings report as PDF.
type DocsService struct {
	Repo      repositories.ListingRepository
	DB        *sql.DB
	RequestID string
}

func (s DocsService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s DocsService) repo() repositories.ListingRepository {
	if s.Repo.DB != nil {
		return s.Repo
	}
	return repositories.ListingRepository{DB: s.db()}
}

// ExportListings builds a PDF of listings matching the filter, in the
// same display order the admin grid shows.
func (s DocsService) ExportListings(f models.ListingFilter) ([]byte, string, error) {
	f.Page = 0
	f.PageSize = 0
	listings, _, err := s.repo().List(f)
	if err != nil {
		return nil, "", domain.InternalError{Msg: "failed to load listings for export", Err: err}
	}

	utils.LogEvent(s.RequestID, "docs", "export_listings", fmt.Sprintf("count=%d", len(listings)))
	return buildListingsPDF(listings)
}

func buildListingsPDF(listings []models.Listing) ([]byte, string, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Listings Report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "LISTINGS REPORT")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, "Generated: "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(10)

	widths := []float64{12, 80, 45, 22, 28, 18, 18, 18}
	headers := []string{"#", "Title", "Slug", "Status", "Price", "Featured", "New", "Order"}

	pdf.SetFont("Helvetica", "B", 10)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, l := range listings {
		// core PDF fonts cannot shape Arabic; fall back to the slug
		title := l.TitleEN
		if title == "" {
			title = l.Slug
		}
		cells := []string{
			fmt.Sprintf("%d", l.ID),
			title,
			l.Slug,
			l.Status,
			fmt.Sprintf("%.2f", l.Price),
			yesNo(l.IsFeatured),
			yesNo(l.IsNew),
			fmt.Sprintf("%d", l.OrderIndex),
		}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 6, c, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", domain.InternalError{Msg: "failed to render listings PDF", Err: err}
	}

	filename := fmt.Sprintf("LISTINGS_%s.pdf", time.Now().Format("20060102_1504"))
	return buf.Bytes(), filename, nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
