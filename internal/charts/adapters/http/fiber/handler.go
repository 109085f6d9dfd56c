package fiber

import (
	"context"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/stevanlohja/mn-pulse-alpha/internal/charts/core/domain"
	"github.com/stevanlohja/mn-pulse-alpha/internal/charts/core/usecase"
	dataset "github.com/stevanlohja/mn-pulse-alpha/internal/dataset/core/domain"
)

type ChartViewsUseCase interface {
	Execute(ctx context.Context, in usecase.GetChartViewsInput) (*domain.ChartViews, error)
}

type FilterOptionsUseCase interface {
	Execute(ctx context.Context) (*domain.FilterOptions, error)
}

// AggregateRenderer draws the aggregate view as a static PNG.
type AggregateRenderer interface {
	RenderPNG(views *domain.ChartViews) ([]byte, error)
}

// WorkbookExporter turns the current views into a downloadable workbook.
type WorkbookExporter interface {
	Export(views *domain.ChartViews) (data []byte, filename string, err error)
}

type ChartsHandler struct {
	viewsUC   ChartViewsUseCase
	optionsUC FilterOptionsUseCase
	renderer  AggregateRenderer
	exporter  WorkbookExporter
}

func NewChartsHandler(viewsUC ChartViewsUseCase, optionsUC FilterOptionsUseCase, renderer AggregateRenderer, exporter WorkbookExporter) *ChartsHandler {
	return &ChartsHandler{
		viewsUC:   viewsUC,
		optionsUC: optionsUC,
		renderer:  renderer,
		exporter:  exporter,
	}
}

// GetCharts godoc
// @Summary Get the three chart views
// @Description Recomputes per-metric, aggregate and normalized-trend series for the given filter
// @Tags Charts
// @Produce json
// @Param year query string false "Year or 'all'"
// @Param quarter query string false "Quarter 1-4 or 'all'"
// @Param months query string false "Month pair as 'a-b' (0-based) or 'all'"
// @Success 200 {object} ChartViewsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/charts [get]
func (h *ChartsHandler) GetCharts(c *fiber.Ctx) error {
	views, err := h.views(c)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toChartViewsResponse(views))
}

// GetFilters godoc
// @Summary Get filter options
// @Description Years derived from the data (descending), fixed quarters and month pairs
// @Tags Charts
// @Produce json
// @Success 200 {object} FilterOptionsResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/filters [get]
func (h *ChartsHandler) GetFilters(c *fiber.Ctx) error {
	opts, err := h.optionsUC.Execute(c.UserContext())
	if err != nil {
		return h.mapError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toFilterOptionsResponse(opts))
}

// GetAggregatePNG godoc
// @Summary Render the aggregate chart as PNG
// @Tags Charts
// @Produce png
// @Param year query string false "Year or 'all'"
// @Param quarter query string false "Quarter 1-4 or 'all'"
// @Param months query string false "Month pair as 'a-b' (0-based) or 'all'"
// @Success 200 {file} binary
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/charts/aggregate.png [get]
func (h *ChartsHandler) GetAggregatePNG(c *fiber.Ctx) error {
	views, err := h.views(c)
	if err != nil {
		return h.mapError(c, err)
	}

	png, err := h.renderer.RenderPNG(views)
	if err != nil {
		return h.mapError(c, err)
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Status(http.StatusOK).Send(png)
}

// ExportWorkbook godoc
// @Summary Download the filtered dataset as a workbook
// @Tags Charts
// @Produce octet-stream
// @Param year query string false "Year or 'all'"
// @Param quarter query string false "Quarter 1-4 or 'all'"
// @Param months query string false "Month pair as 'a-b' (0-based) or 'all'"
// @Success 200 {file} binary
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/export [get]
func (h *ChartsHandler) ExportWorkbook(c *fiber.Ctx) error {
	views, err := h.views(c)
	if err != nil {
		return h.mapError(c, err)
	}

	data, filename, err := h.exporter.Export(views)
	if err != nil {
		return h.mapError(c, err)
	}

	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return c.Status(http.StatusOK).Send(data)
}

func (h *ChartsHandler) views(c *fiber.Ctx) (*domain.ChartViews, error) {
	in := usecase.GetChartViewsInput{
		Year:      c.Query("year", "all"),
		Quarter:   c.Query("quarter", "all"),
		MonthPair: c.Query("months", "all"),
	}
	return h.viewsUC.Execute(c.UserContext(), in)
}

func (h *ChartsHandler) mapError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidYear),
		errors.Is(err, usecase.ErrInvalidQuarter),
		errors.Is(err, usecase.ErrInvalidMonthPair):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_filter",
			Message: err.Error(),
		})
	case errors.Is(err, dataset.ErrDatasetUnavailable):
		// terminal for the session, the UI shows this instead of charts
		return c.Status(http.StatusServiceUnavailable).JSON(ErrorResponse{
			Error:   "dataset_unavailable",
			Message: err.Error(),
		})
	case errors.Is(err, domain.ErrNothingToRender):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Error:   "no_data",
			Message: err.Error(),
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}
