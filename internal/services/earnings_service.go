package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"luxride/internal/domain"
	"luxride/internal/domain/models"
	"luxride/internal/repositories"
	"luxride/internal/utils"

	"github.com/xuri/excelize/v2"
)

const (
	chartMonths   = 6
	dashboardList = 5
	defaultRating = 4.9
)

// EarningsService derives earnings figures from completed bookings.
type EarningsService struct {
	Bookings  *repositories.BookingRepository
	Ratings   *repositories.RatingRepository
	Location  *time.Location
	Now       func() time.Time
	RequestID string
}

func (s EarningsService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s EarningsService) loc() *time.Location {
	if s.Location != nil {
		return s.Location
	}
	return time.Local
}

func (s EarningsService) completed(ctx context.Context) ([]models.Booking, error) {
	items, err := s.Bookings.List(ctx)
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to load bookings", Err: err}
	}
	return FilterByStatus(items, domain.StatusCompleted), nil
}

func (s EarningsService) Summary(ctx context.Context) (models.EarningsSummary, error) {
	done, err := s.completed(ctx)
	if err != nil {
		return models.EarningsSummary{}, err
	}
	return SummarizeEarnings(done, s.now(), s.loc()), nil
}

func (s EarningsService) Monthly(ctx context.Context) ([]models.EarningsData, error) {
	done, err := s.completed(ctx)
	if err != nil {
		return nil, err
	}
	return MonthlyEarnings(done, s.now(), s.loc(), chartMonths), nil
}

func (s EarningsService) Dashboard(ctx context.Context) (models.DashboardStats, error) {
	items, err := s.Bookings.List(ctx)
	if err != nil {
		return models.DashboardStats{}, domain.InternalError{Msg: "failed to load bookings", Err: err}
	}
	var ratings []models.Rating
	if s.Ratings != nil {
		if ratings, err = s.Ratings.List(ctx); err != nil {
			return models.DashboardStats{}, domain.InternalError{Msg: "failed to load ratings", Err: err}
		}
	}
	return BuildDashboard(items, ratings, s.now(), s.loc()), nil
}

// SummarizeEarnings expects completed bookings only.
// A booking whose date cannot be parsed still counts toward Total and Rides.
func SummarizeEarnings(done []models.Booking, now time.Time, loc *time.Location) models.EarningsSummary {
	out := models.EarningsSummary{Rides: len(done)}
	lastMonth := utils.MonthStart(now, -1, loc)
	for _, b := range done {
		out.Total += b.Price
		at, ok := utils.ParseInstant(b.When(), loc)
		if !ok {
			continue
		}
		switch {
		case utils.SameMonth(at, now, loc):
			out.ThisMonth += b.Price
		case utils.SameMonth(at, lastMonth, loc):
			out.LastMonth += b.Price
		}
	}
	out.Total = utils.RoundMoney(out.Total)
	out.ThisMonth = utils.RoundMoney(out.ThisMonth)
	out.LastMonth = utils.RoundMoney(out.LastMonth)
	return out
}

// MonthlyEarnings returns n buckets, oldest first, ending with the current month.
func MonthlyEarnings(done []models.Booking, now time.Time, loc *time.Location, n int) []models.EarningsData {
	out := make([]models.EarningsData, 0, n)
	for i := n - 1; i >= 0; i-- {
		start := utils.MonthStart(now, -i, loc)
		bucket := models.EarningsData{Month: start.Format("Jan")}
		for _, b := range done {
			at, ok := utils.ParseInstant(b.When(), loc)
			if !ok || !utils.SameMonth(at, start, loc) {
				continue
			}
			bucket.Earnings += b.Price
			bucket.Rides++
		}
		bucket.Earnings = utils.RoundMoney(bucket.Earnings)
		out = append(out, bucket)
	}
	return out
}

// BuildDashboard computes the dashboard cards over all bookings.
func BuildDashboard(items []models.Booking, ratings []models.Rating, now time.Time, loc *time.Location) models.DashboardStats {
	out := models.DashboardStats{Rating: AverageRating(ratings), Recent: FirstRequested(items, dashboardList)}
	for _, b := range items {
		if b.Status.Active() {
			out.ActiveRides++
		}
		if b.Status != domain.StatusCompleted {
			continue
		}
		out.TotalRides++
		out.TotalEarnings += b.Price
		if at, ok := utils.ParseInstant(b.When(), loc); ok && utils.SameDay(at, now, loc) {
			out.TodayRides++
			out.TodayEarnings += b.Price
		}
	}
	out.TotalEarnings = utils.RoundMoney(out.TotalEarnings)
	out.TodayEarnings = utils.RoundMoney(out.TodayEarnings)
	return out
}

// AverageRating rounds to one decimal and falls back to 4.9 with no ratings.
func AverageRating(ratings []models.Rating) float64 {
	sum, n := 0, 0
	for _, r := range ratings {
		if r.Rating < 1 || r.Rating > 5 {
			continue
		}
		sum += r.Rating
		n++
	}
	if n == 0 {
		return defaultRating
	}
	return math.Round(float64(sum)/float64(n)*10) / 10
}

// ExportXLSX writes the summary and the monthly chart to a workbook.
func (s EarningsService) ExportXLSX(ctx context.Context) ([]byte, string, error) {
	done, err := s.completed(ctx)
	if err != nil {
		return nil, "", err
	}
	now := s.now()
	summary := SummarizeEarnings(done, now, s.loc())
	monthly := MonthlyEarnings(done, now, s.loc(), chartMonths)

	f := excelize.NewFile()
	defer f.Close()

	const summarySheet = "Summary"
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, "", domain.InternalError{Msg: "failed to build workbook", Err: err}
	}
	rows := [][]any{
		{"Metric", "Value"},
		{"Total Earnings", summary.Total},
		{"This Month", summary.ThisMonth},
		{"Last Month", summary.LastMonth},
		{"Completed Rides", summary.Rides},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return nil, "", domain.InternalError{Msg: "failed to build workbook", Err: err}
		}
	}

	const monthlySheet = "Monthly"
	if _, err := f.NewSheet(monthlySheet); err != nil {
		return nil, "", domain.InternalError{Msg: "failed to build workbook", Err: err}
	}
	header := []any{"Month", "Earnings", "Rides"}
	if err := f.SetSheetRow(monthlySheet, "A1", &header); err != nil {
		return nil, "", domain.InternalError{Msg: "failed to build workbook", Err: err}
	}
	for i, m := range monthly {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []any{m.Month, m.Earnings, m.Rides}
		if err := f.SetSheetRow(monthlySheet, cell, &row); err != nil {
			return nil, "", domain.InternalError{Msg: "failed to build workbook", Err: err}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", domain.InternalError{Msg: "failed to write workbook", Err: err}
	}
	utils.LogEvent(s.RequestID, "earnings", "export_xlsx", fmt.Sprintf("rides=%d", summary.Rides))
	filename := fmt.Sprintf("luxride-earnings-%s.xlsx", now.In(s.loc()).Format("2006-01"))
	return buf.Bytes(), filename, nil
}
