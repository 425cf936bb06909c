package handler

import (
	"bytes"
	"net/http"
	"time"

	"pos/internal/middleware"
	"pos/internal/model"
	"pos/internal/service"
	"pos/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	queryDateLayout = "2006-01-02"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type StatisticsHandler struct {
	reportService service.ReportService
	exportService service.ExportService
	auth          *middleware.Authenticator
}

func NewStatisticsHandler(reportService service.ReportService, exportService service.ExportService, auth *middleware.Authenticator) *StatisticsHandler {
	return &StatisticsHandler{reportService: reportService, exportService: exportService, auth: auth}
}

func (h *StatisticsHandler) RegisterRoutes(router *gin.RouterGroup) {
	reports := router.Group("/api/reports")
	reports.Use(h.auth.RequirePermission(model.PermViewReports))
	{
		reports.GET("/summary", h.GetSummary)
		reports.GET("/export", h.Export)
	}
	router.GET("/api/analytics", h.auth.RequirePermission(model.PermViewAnalytics), h.GetSummary)
	router.GET("/api/dashboard", h.auth.RequireSession(), h.GetDashboard)
}

// resolveRange reads either ?period= or ?from=&to= (yyyy-mm-dd). It defaults to the current month.
func (h *StatisticsHandler) resolveRange(c *gin.Context) (service.DateRange, error) {
	if period := c.Query("period"); period != "" {
		return service.PeriodRange(period, h.reportService.Now())
	}

	fromStr, toStr := c.Query("from"), c.Query("to")
	if fromStr == "" && toStr == "" {
		return service.PeriodRange(service.PeriodThisMonth, h.reportService.Now())
	}

	loc := h.reportService.Location()
	now := h.reportService.Now()
	from, to := now, now
	var err error
	if fromStr != "" {
		if from, err = time.ParseInLocation(queryDateLayout, fromStr, loc); err != nil {
			return service.DateRange{}, &service.ValidationError{Field: "from", Kind: service.InvalidValue}
		}
	}
	if toStr != "" {
		if to, err = time.ParseInLocation(queryDateLayout, toStr, loc); err != nil {
			return service.DateRange{}, &service.ValidationError{Field: "to", Kind: service.InvalidValue}
		}
	}
	return service.DayRange(from, to, loc)
}

// GetSummary aggregates revenue, products and payments over a date range
// @Summary      Sales summary
// @Description  Aggregates transactions over ?period=today|week|month|this_month|quarter|year or ?from=&to= (yyyy-mm-dd). Defaults to the current month.
// @Tags         reports
// @Security     BearerAuth
// @Produce      json
// @Param        period  query     string  false  "Named period"
// @Param        from    query     string  false  "Start date (yyyy-mm-dd)"
// @Param        to      query     string  false  "End date (yyyy-mm-dd)"
// @Success      200     {object}  response.Response{data=model.AnalyticsSnapshot}
// @Failure      400     {object}  response.Response
// @Router       /api/reports/summary [get]
// @Router       /api/analytics [get]
func (h *StatisticsHandler) GetSummary(c *gin.Context) {
	r, err := h.resolveRange(c)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.reportService.Summarize(r)))
}

// GetDashboard returns today's figures, low stock and recent sales
// @Summary      Dashboard
// @Tags         reports
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=model.Dashboard}
// @Router       /api/dashboard [get]
func (h *StatisticsHandler) GetDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.reportService.Dashboard()))
}

// Export downloads the transactions in a range as CSV or XLSX
// @Summary      Export transactions
// @Tags         reports
// @Security     BearerAuth
// @Produce      text/csv
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        format  query     string  false  "csv (default) or xlsx"
// @Param        period  query     string  false  "Named period"
// @Param        from    query     string  false  "Start date (yyyy-mm-dd)"
// @Param        to      query     string  false  "End date (yyyy-mm-dd)"
// @Success      200     {file}    file
// @Failure      400     {object}  response.Response
// @Router       /api/reports/export [get]
func (h *StatisticsHandler) Export(c *gin.Context) {
	r, err := h.resolveRange(c)
	if err != nil {
		writeError(c, err)
		return
	}
	txns := h.reportService.Transactions(r)
	stamp := h.reportService.Now().Format("20060102")

	var buf bytes.Buffer
	var contentType, filename string
	switch format := c.DefaultQuery("format", "csv"); format {
	case "csv":
		err = h.exportService.CSV(&buf, txns)
		contentType, filename = "text/csv; charset=utf-8", "transaksi-"+stamp+".csv"
	case "xlsx":
		err = h.exportService.XLSX(&buf, txns, h.reportService.Summarize(r))
		contentType, filename = xlsxContentType, "transaksi-"+stamp+".xlsx"
	default:
		writeError(c, &service.ValidationError{Field: "format", Kind: service.InvalidValue})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to export transactions: "+err.Error()))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, buf.Bytes())
}
