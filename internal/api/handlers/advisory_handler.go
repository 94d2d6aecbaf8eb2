package handlers

import (
	"ghars/internal/catalog"
	"ghars/internal/dto"
	"ghars/internal/models"
	"ghars/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AdvisoryHandler serves the prediction, recommendation, and reference
// catalog endpoints.
type AdvisoryHandler struct {
	predictionService     *service.PredictionService
	recommendationService *service.RecommendationService
	chatService           *service.ChatService
	catalogs              *catalog.Catalogs
	logger                *zap.Logger
}

func NewAdvisoryHandler(
	predictionService *service.PredictionService,
	recommendationService *service.RecommendationService,
	chatService *service.ChatService,
	catalogs *catalog.Catalogs,
	logger *zap.Logger,
) *AdvisoryHandler {
	return &AdvisoryHandler{
		predictionService:     predictionService,
		recommendationService: recommendationService,
		chatService:           chatService,
		catalogs:              catalogs,
		logger:                logger,
	}
}

// Predict godoc
// @Summary Estimate planting success
// @Description Estimate success for one species in a governorate and season, with optional climate overrides
// @Tags advisory
// @Accept json
// @Produce json
// @Param request body dto.PredictRequest true "Prediction request"
// @Success 200 {object} dto.Response
// @Failure 400 {object} map[string]string
// @Router /api/v1/predict [post]
func (h *AdvisoryHandler) Predict(c *fiber.Ctx) error {
	var req dto.PredictRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	season, ok := models.ParseSeason(req.Season)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Season must be one of spring, summer, autumn, winter",
		})
	}

	result := h.predictionService.PredictSuccess(c.Context(), req.TreeName, req.Governorate, season, req.Overrides())
	return c.JSON(dto.OK(result))
}

// PredictBatch godoc
// @Summary Estimate planting success for several requests
// @Tags advisory
// @Accept json
// @Produce json
// @Param request body dto.BatchPredictRequest true "Batch of prediction requests"
// @Success 200 {object} dto.Response
// @Failure 400 {object} map[string]string
// @Router /api/v1/predict/batch [post]
func (h *AdvisoryHandler) PredictBatch(c *fiber.Ctx) error {
	var reqs dto.BatchPredictRequest
	if err := c.BodyParser(&reqs); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	results := make([]service.PredictionResult, 0, len(reqs))
	for _, req := range reqs {
		season, ok := models.ParseSeason(req.Season)
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Season must be one of spring, summer, autumn, winter",
			})
		}
		results = append(results, h.predictionService.PredictSuccess(c.Context(), req.TreeName, req.Governorate, season, req.Overrides()))
	}

	return c.JSON(dto.OKCount(len(results), results))
}

// Recommendations godoc
// @Summary Recommend trees for a governorate and season
// @Tags advisory
// @Produce json
// @Param governorate path string true "Governorate name (Arabic or English)"
// @Param season path string true "Season key"
// @Param limit query int false "Maximum results" default(5)
// @Success 200 {object} dto.Response
// @Failure 400 {object} map[string]string
// @Router /api/v1/recommendations/{governorate}/{season} [get]
func (h *AdvisoryHandler) Recommendations(c *fiber.Ctx) error {
	season, ok := models.ParseSeason(c.Params("season"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Season must be one of spring, summer, autumn, winter",
		})
	}

	limit := c.QueryInt("limit", service.DefaultTopK)
	recommendations := h.recommendationService.Recommend(governorateParam(c), season, limit)
	return c.JSON(dto.OKCount(len(recommendations), recommendations))
}

// SeasonalAdvice godoc
// @Summary Seasonal planting advice for a governorate
// @Tags advisory
// @Produce json
// @Param governorate path string true "Governorate name (Arabic or English)"
// @Param season path string true "Season key"
// @Success 200 {object} dto.Response
// @Failure 404 {object} map[string]string
// @Router /api/v1/seasonal-advice/{governorate}/{season} [get]
func (h *AdvisoryHandler) SeasonalAdvice(c *fiber.Ctx) error {
	season, ok := models.ParseSeason(c.Params("season"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Season must be one of spring, summer, autumn, winter",
		})
	}

	governorate := governorateParam(c)
	advice, ok := h.chatService.SeasonalAdvice(governorate, season)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "No data for this governorate and season",
		})
	}

	return c.JSON(dto.OK(dto.SeasonalAdvice{
		Governorate: governorate,
		Season:      string(season),
		Advice:      advice,
	}))
}

// Climate godoc
// @Summary Resolved climate profile for a governorate and season
// @Tags catalog
// @Produce json
// @Param governorate path string true "Governorate name (Arabic or English)"
// @Param season path string true "Season key"
// @Success 200 {object} dto.Response
// @Failure 404 {object} map[string]string
// @Router /api/v1/climate/{governorate}/{season} [get]
func (h *AdvisoryHandler) Climate(c *fiber.Ctx) error {
	season, ok := models.ParseSeason(c.Params("season"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Season must be one of spring, summer, autumn, winter",
		})
	}

	profile, ok := h.catalogs.ClimateFor(governorateParam(c), season)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "No data for this governorate and season",
		})
	}
	return c.JSON(dto.OK(profile))
}

// ListTrees godoc
// @Summary List all species in the catalog
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.Response
// @Router /api/v1/trees [get]
func (h *AdvisoryHandler) ListTrees(c *fiber.Ctx) error {
	species := h.catalogs.Species()
	return c.JSON(dto.OKCount(len(species), species))
}

// GetTree godoc
// @Summary Get one species by Arabic or English name
// @Tags catalog
// @Produce json
// @Param name path string true "Species name"
// @Success 200 {object} dto.Response
// @Failure 404 {object} map[string]string
// @Router /api/v1/trees/{name} [get]
func (h *AdvisoryHandler) GetTree(c *fiber.Ctx) error {
	name, err := paramUnescaped(c, "name")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid species name",
		})
	}

	species, ok := h.catalogs.SpeciesByName(name)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Species not found",
		})
	}
	return c.JSON(dto.OK(species))
}

// ListGovernorates godoc
// @Summary List all governorates
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.Response
// @Router /api/v1/governorates [get]
func (h *AdvisoryHandler) ListGovernorates(c *fiber.Ctx) error {
	govs := h.catalogs.Governorates()
	infos := make([]dto.GovernorateInfo, 0, len(govs))
	for _, gov := range govs {
		infos = append(infos, dto.GovernorateInfo{Name: gov.Name, NameEn: gov.NameEn})
	}
	return c.JSON(dto.OKCount(len(infos), infos))
}

// Statistics godoc
// @Summary Catalog statistics
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.Response
// @Router /api/v1/statistics [get]
func (h *AdvisoryHandler) Statistics(c *fiber.Ctx) error {
	species := h.catalogs.Species()
	typeCounts := make(map[string]int)
	for _, sp := range species {
		typeCounts[string(sp.Type)]++
	}

	return c.JSON(dto.OK(dto.Statistics{
		TotalTrees:        len(species),
		TotalGovernorates: len(h.catalogs.Governorates()),
		Seasons:           len(models.Seasons()),
		TreeTypes:         typeCounts,
	}))
}
