package service

import (
	"fmt"
	"time"

	"go-shop-pos/internal/model"
	"go-shop-pos/internal/repository"

	"github.com/xuri/excelize/v2"
)

const chartDays = 7

// DailyRevenue is one bar of the 7-day chart, keyed by dd/MM.
type DailyRevenue struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
}

type SalesSummary struct {
	TodayTotal  float64        `json:"today_total"`
	TodayOrders int64          `json:"today_orders"`
	Week        []DailyRevenue `json:"week"`
	RecentSales []model.Sale   `json:"recent_sales"`
}

type ReportService interface {
	Summary() (*SalesSummary, error)
	// Export serializes every historical sale to an xlsx workbook and
	// returns the dated filename alongside the file content.
	Export() (filename string, content []byte, err error)
}

type reportService struct {
	saleRepo repository.SaleRepository
	now      func() time.Time
}

func NewReportService(saleRepo repository.SaleRepository) ReportService {
	return &reportService{saleRepo: saleRepo, now: time.Now}
}

func (s *reportService) Summary() (*SalesSummary, error) {
	today := s.now()
	startOfToday := startOfDay(today)
	endOfToday := startOfToday.AddDate(0, 0, 1).Add(-time.Nanosecond)

	todayTotal, todayOrders, err := s.saleRepo.SumBetween(startOfToday, endOfToday)
	if err != nil {
		return nil, err
	}

	week, err := s.weekSeries(today, endOfToday)
	if err != nil {
		return nil, err
	}

	recent, err := s.saleRepo.FindRecent(5)
	if err != nil {
		return nil, err
	}

	return &SalesSummary{
		TodayTotal:  todayTotal,
		TodayOrders: todayOrders,
		Week:        week,
		RecentSales: recent,
	}, nil
}

// weekSeries buckets the trailing 7 calendar days (today included) by
// dd/MM. Every bucket defaults to 0 so days without sales still chart.
func (s *reportService) weekSeries(today, end time.Time) ([]DailyRevenue, error) {
	series := make([]DailyRevenue, 0, chartDays)
	index := make(map[string]int, chartDays)
	for i := chartDays - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i).Format("02/01")
		index[day] = len(series)
		series = append(series, DailyRevenue{Date: day})
	}

	start := startOfDay(today.AddDate(0, 0, -(chartDays - 1)))
	sales, err := s.saleRepo.FindBetween(start, end)
	if err != nil {
		return nil, err
	}

	for _, sale := range sales {
		if i, ok := index[sale.CreatedAt.Format("02/01")]; ok {
			series[i].Total += sale.TotalAmount
		}
	}
	return series, nil
}

func (s *reportService) Export() (string, []byte, error) {
	sales, err := s.saleRepo.FindAll()
	if err != nil {
		return "", nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sales"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return "", nil, err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return "", nil, err
	}

	headers := []string{"Date", "Order ID", "Total", "Payment Method"}
	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return "", nil, err
		}
	}

	for row, sale := range sales {
		values := []interface{}{
			sale.CreatedAt.Format("2006-01-02 15:04"),
			sale.ShortID(),
			sale.TotalAmount,
			sale.PaymentMethod,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return "", nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return "", nil, err
	}

	filename := fmt.Sprintf("Sales_Report_%s.xlsx", s.now().Format("2006-01-02"))
	return filename, buf.Bytes(), nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
