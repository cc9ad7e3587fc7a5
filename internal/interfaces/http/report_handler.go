package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sarvcafe/cafepos-api/internal/application/reporting"
)

// ReportHandler handles the dashboard summary and accounting reports.
type ReportHandler struct {
	uc *reporting.ReportUseCase
}

// NewReportHandler builds the handler.
func NewReportHandler(uc *reporting.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Summary godoc
// @Summary      Dashboard totals: revenue and sale count
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SummaryResponse
// @Router       /api/reports/summary [get]
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	s := SessionFromCtx(c)
	out, err := h.uc.Summary(s.UserID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Timeframe godoc
// @Summary      Accounting report segmented over a preset timeframe
// @Description  Timeframes: week (7 days), month (4 weeks), sixMonths (6 months), year (12 months), all (yearly since first sale). Weeks start on Saturday.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        timeframe       query  string  true   "week | month | sixMonths | year | all"
// @Param        payment_method  query  string  false  "CASH | CARD_TO_CARD | POS"
// @Success      200  {object}  dto.TimeframeReportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/accounting [get]
func (h *ReportHandler) Timeframe(c *fiber.Ctx) error {
	s := SessionFromCtx(c)
	out, err := h.uc.Timeframe(s.UserID, c.Query("timeframe", "week"), c.Query("payment_method"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Analytics godoc
// @Summary      Sales analytics with top items (PROFESSIONAL plan)
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        start  query  string  false  "RFC3339 range start"
// @Param        end    query  string  false  "RFC3339 range end"
// @Success      200  {object}  dto.AnalyticsResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/reports/analytics [get]
func (h *ReportHandler) Analytics(c *fiber.Ctx) error {
	s := SessionFromCtx(c)
	start := parseTimeQuery(c.Query("start"))
	end := parseTimeQuery(c.Query("end"))
	out, err := h.uc.Analytics(s.UserID, start, end)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// MaterialsSpend godoc
// @Summary      Purchase spend per raw material from positive ledger entries
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.MaterialsSpendRowResponse
// @Router       /api/reports/materials [get]
func (h *ReportHandler) MaterialsSpend(c *fiber.Ctx) error {
	s := SessionFromCtx(c)
	out, err := h.uc.MaterialsSpend(s.UserID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func parseTimeQuery(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil
	}
	return &t
}
