package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"luxride/internal/domain"
	"luxride/internal/domain/models"
	"luxride/internal/repositories"
	"luxride/internal/utils"

	"github.com/phpdave11/gofpdf"
)

const baseFare = 10.0

// ReceiptService serves ride receipts, trip history and ratings.
type ReceiptService struct {
	Bookings  *repositories.BookingRepository
	Trips     *repositories.TripRepository
	Ratings   *repositories.RatingRepository
	Location  *time.Location
	Now       func() time.Time
	RequestID string
}

func (s ReceiptService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s ReceiptService) loc() *time.Location {
	if s.Location != nil {
		return s.Location
	}
	return time.Local
}

// ListTrips returns stored trips followed by completed bookings not already present.
func (s ReceiptService) ListTrips(ctx context.Context) ([]models.Trip, error) {
	stored, err := s.Trips.List(ctx)
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to load trips", Err: err}
	}
	items, err := s.Bookings.List(ctx)
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to load bookings", Err: err}
	}
	return MergeTrips(stored, FilterByStatus(items, domain.StatusCompleted)), nil
}

func MergeTrips(stored []models.Trip, done []models.Booking) []models.Trip {
	out := make([]models.Trip, 0, len(stored)+len(done))
	seen := make(map[string]bool, len(stored))
	for _, t := range stored {
		seen[t.ID] = true
		out = append(out, t)
	}
	for _, b := range done {
		if seen[b.ID] {
			continue
		}
		seen[b.ID] = true
		out = append(out, TripFromBooking(b))
	}
	return out
}

func TripFromBooking(b models.Booking) models.Trip {
	return models.Trip{
		ID:     b.ID,
		Route:  b.Pickup + " to " + b.Destination,
		Date:   b.When(),
		Type:   utils.FirstNonEmpty(b.VehicleName, b.VehicleType),
		Price:  b.Price,
		Status: string(b.Status),
	}
}

// BookingFromTrip rebuilds a receipt-shaped booking from a history record.
func BookingFromTrip(t models.Trip) models.Booking {
	pickup, destination := t.Route, t.Route
	if parts := strings.SplitN(t.Route, " to ", 2); len(parts) == 2 {
		pickup, destination = parts[0], parts[1]
	}
	return models.Booking{
		ID:          t.ID,
		Pickup:      pickup,
		Destination: destination,
		Date:        t.Date,
		Datetime:    t.Date,
		Timestamp:   t.Date,
		VehicleType: strings.Replace(strings.ToLower(t.Type), " ", "-", 1),
		VehicleName: t.Type,
		Price:       t.Price,
		Status:      domain.BookingStatus(strings.ToLower(t.Status)),
	}
}

// Find looks in bookings first, then in trip history.
func (s ReceiptService) Find(ctx context.Context, id string) (models.Booking, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return models.Booking{}, domain.ValidationError{Field: "id", Msg: "receipt id is required"}
	}
	b, err := s.Bookings.GetByID(ctx, id)
	if err == nil {
		return b, nil
	}
	if !errors.Is(err, repositories.ErrBookingNotFound) {
		return models.Booking{}, domain.InternalError{Msg: "failed to load booking", Err: err}
	}
	trips, err := s.Trips.List(ctx)
	if err != nil {
		return models.Booking{}, domain.InternalError{Msg: "failed to load trips", Err: err}
	}
	for _, t := range trips {
		if t.ID == id {
			return BookingFromTrip(t), nil
		}
	}
	return models.Booking{}, domain.NotFoundError{Resource: "receipt"}
}

func (s ReceiptService) Text(ctx context.Context, id string) ([]byte, string, error) {
	b, err := s.Find(ctx, id)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "receipts", "download_text", "booking_id="+b.ID)
	return []byte(BuildReceiptText(b, s.loc())), receiptFilename(b.ID, "txt"), nil
}

func (s ReceiptService) PDF(ctx context.Context, id string) ([]byte, string, error) {
	b, err := s.Find(ctx, id)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "receipts", "download_pdf", "booking_id="+b.ID)
	data, err := buildReceiptPDF(b, s.loc())
	if err != nil {
		return nil, "", domain.InternalError{Msg: "failed to render receipt", Err: err}
	}
	return data, receiptFilename(b.ID, "pdf"), nil
}

// Rate records a 1..5 star rating for a completed ride.
func (s ReceiptService) Rate(ctx context.Context, id string, stars int) (models.Rating, error) {
	if stars < 1 || stars > 5 {
		return models.Rating{}, domain.ValidationError{Field: "rating", Msg: "rating must be between 1 and 5"}
	}
	b, err := s.Find(ctx, id)
	if err != nil {
		return models.Rating{}, err
	}
	if b.Status != domain.StatusCompleted {
		return models.Rating{}, domain.ConflictError{Resource: "booking", Msg: "only completed rides can be rated"}
	}
	r := models.Rating{BookingID: b.ID, Rating: stars, Timestamp: utils.NowISO(s.now())}
	if err := s.Ratings.Append(ctx, r); err != nil {
		return models.Rating{}, domain.InternalError{Msg: "failed to save rating", Err: err}
	}
	utils.LogEvent(s.RequestID, "receipts", "rate", fmt.Sprintf("booking_id=%s rating=%d", b.ID, stars))
	return r, nil
}

func receiptFilename(id, ext string) string {
	return fmt.Sprintf("luxride-receipt-%s.%s", utils.SafeFilenamePart(id), ext)
}

func formatAmount(v *float64) string {
	if v == nil {
		return "0"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func receiptLines(b models.Booking, loc *time.Location) (header, body []string) {
	header = []string{
		"Booking ID: " + b.ID,
		"Date: " + utils.FormatDateTime(b.When(), loc),
		"Status: " + strings.ToUpper(string(b.Status)),
	}
	body = []string{
		"Base Fare: " + utils.FormatCurrency(baseFare),
		"Distance: " + formatAmount(b.Distance) + " km",
		"Time: " + formatAmount(b.Duration) + " min",
	}
	return header, body
}

// BuildReceiptText renders the plain-text receipt download.
func BuildReceiptText(b models.Booking, loc *time.Location) string {
	header, fare := receiptLines(b, loc)
	var sb strings.Builder
	sb.WriteString("LUXRIDE RECEIPT\n")
	sb.WriteString("==============================\n\n")
	for _, l := range header {
		sb.WriteString(l + "\n")
	}
	fmt.Fprintf(&sb, "\nPICKUP LOCATION\n%s\n", b.Pickup)
	fmt.Fprintf(&sb, "\nDESTINATION\n%s\n", b.Destination)
	fmt.Fprintf(&sb, "\nVEHICLE\n%s\n", b.VehicleName)
	sb.WriteString("\nFARE BREAKDOWN\n")
	for _, l := range fare {
		sb.WriteString(l + "\n")
	}
	sb.WriteString("--------------------------------\n")
	fmt.Fprintf(&sb, "TOTAL: %s\n", utils.FormatCurrency(b.Price))
	sb.WriteString("\nPayment Method: Cash/Card\n")
	fmt.Fprintf(&sb, "Driver: %s\n", utils.FirstNonEmpty(b.Driver, "Assigned Driver"))
	sb.WriteString("\nThank you for choosing Luxride!\n")
	return sb.String()
}

func buildReceiptPDF(b models.Booking, loc *time.Location) ([]byte, error) {
	header, fare := receiptLines(b, loc)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Luxride Receipt", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "LUXRIDE RECEIPT")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	for _, l := range header {
		pdf.Cell(0, 7, l)
		pdf.Ln(7)
	}

	section := func(title, value string) {
		pdf.Ln(3)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 7, title)
		pdf.Ln(7)
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, utils.FirstNonEmpty(value, "-"), "", "", false)
	}
	section("Pickup Location", b.Pickup)
	section("Destination", b.Destination)
	section("Vehicle", b.VehicleName)

	pdf.Ln(3)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Fare Breakdown")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for _, l := range fare {
		pdf.Cell(0, 6, l)
		pdf.Ln(6)
	}
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Total: "+utils.FormatCurrency(b.Price))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, "Payment Method: Cash/Card")
	pdf.Ln(6)
	pdf.Cell(0, 6, "Driver: "+utils.FirstNonEmpty(b.Driver, "Assigned Driver"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Thank you for choosing Luxride!", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
