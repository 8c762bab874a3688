package api

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/helenmarch/vita/internal/models"
	"github.com/helenmarch/vita/internal/services"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

func (handler *Handler) ReportPDF(c *fiber.Ctx) error {
	user, customer, fromKey, toKey, status, message := handler.reportUserAndRange(c)
	if status != 0 {
		return apiError(c, status, message)
	}

	records, err := handler.fetchReportRecords(user.ID, customer.ID, fromKey, toKey)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load records")
	}

	now := time.Now().In(handler.location)
	document, err := buildReportPDF(customer, records, fromKey, toKey, now)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build report")
	}

	setReportAttachmentHeaders(c, "application/pdf", buildReportFilename(customer, now, "pdf"))
	return c.Send(document)
}

func buildReportPDF(customer models.Customer, records []models.HealthRecord, fromKey string, toKey string, now time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(12, text.NewCol(12, "Health Report", props.Text{
		Size:  18,
		Style: fontstyle.Bold,
		Align: align.Left,
	}))
	m.AddRow(8, text.NewCol(12, services.CustomerDisplayName(customer), props.Text{
		Size:  12,
		Style: fontstyle.Bold,
		Align: align.Left,
	}))
	m.AddRow(6, text.NewCol(12, describeReportRange(fromKey, toKey), props.Text{
		Size:  9,
		Align: align.Left,
	}))
	m.AddRow(6, text.NewCol(12, "Generated "+now.Format("2006-01-02 15:04"), props.Text{
		Size:  8,
		Align: align.Left,
	}))

	if len(records) == 0 {
		m.AddRow(10, text.NewCol(12, "No records in range.", props.Text{
			Size:  10,
			Align: align.Left,
		}))
	}

	for _, record := range records {
		m.AddRow(9, text.NewCol(12, record.DateKey, props.Text{
			Size:  11,
			Style: fontstyle.Bold,
			Align: align.Left,
			Top:   2,
		}))

		for _, key := range models.MetricKeys() {
			value := record.MetricValue(key)
			metricStatus := services.StatusFor(key, value)
			m.AddRow(5,
				text.NewCol(5, services.MetricLabel(key), props.Text{Size: 8, Align: align.Left}),
				text.NewCol(4, formatReportValue(key, value), props.Text{Size: 8, Align: align.Left}),
				text.NewCol(3, statusDisplayLabel(metricStatus), props.Text{
					Size:  8,
					Style: fontstyle.Bold,
					Align: align.Left,
					Color: statusPDFColor(metricStatus),
				}),
			)
		}
	}

	document, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate report pdf: %w", err)
	}
	return document.GetBytes(), nil
}

func describeReportRange(fromKey string, toKey string) string {
	switch {
	case fromKey == "" && toKey == "":
		return "All recorded dates"
	case fromKey == "":
		return "Through " + toKey
	case toKey == "":
		return "From " + fromKey
	default:
		return fromKey + " to " + toKey
	}
}

func formatReportValue(key models.MetricKey, value *float64) string {
	if value == nil {
		return "—"
	}
	return fmt.Sprintf("%g %s", *value, services.MetricUnit(key))
}

func statusPDFColor(status models.MetricStatus) *props.Color {
	switch status {
	case models.StatusNormal:
		return &props.Color{Red: 22, Green: 130, Blue: 64}
	case models.StatusModerate, models.StatusLow:
		return &props.Color{Red: 186, Green: 134, Blue: 14}
	case models.StatusHigh:
		return &props.Color{Red: 185, Green: 40, Blue: 40}
	default:
		return &props.Color{Red: 120, Green: 120, Blue: 120}
	}
}
