package handler

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/meeting-lens-team/meeting-lens/errors"
	dto "github.com/meeting-lens-team/meeting-lens/internal/adapter/dto/analysis"
	"github.com/meeting-lens-team/meeting-lens/internal/usecase/analysis"
	"github.com/meeting-lens-team/meeting-lens/pkg/config"
)

// AnalysisController handles the analyze and rename endpoints
type AnalysisController struct {
	svc    *analysis.Service
	cfg    *config.Config
	logger *zap.Logger
}

// NewAnalysisController creates a new analysis controller
func NewAnalysisController(svc *analysis.Service, cfg *config.Config, logger *zap.Logger) *AnalysisController {
	return &AnalysisController{svc: svc, cfg: cfg, logger: logger}
}

// Analyze runs the analysis chain over a transcript or an uploaded recording
// @Summary      Analyze a meeting transcript
// @Description  Accepts a labeled transcript (JSON) or an audio/video upload (multipart) and returns the structured communication analysis
// @Tags         analysis
// @Accept       json
// @Accept       multipart/form-data
// @Produce      json
// @Param        request  body      dto.AnalyzeTextRequest  false  "Text mode body"
// @Success      200      {object}  dto.AnalyzeResponse
// @Failure      400      {object}  dto.ErrorResponse  "Missing or invalid input"
// @Failure      415      {object}  dto.ErrorResponse  "Unsupported content type"
// @Failure      500      {object}  dto.ErrorResponse  "Downstream failure"
// @Router       /api/analyze [post]
func (ac *AnalysisController) Analyze(c echo.Context) error {
	contentType := c.Request().Header.Get(echo.HeaderContentType)
	switch {
	case strings.HasPrefix(contentType, echo.MIMEApplicationJSON):
		return ac.analyzeText(c)
	case strings.HasPrefix(contentType, echo.MIMEMultipartForm):
		return ac.analyzeFile(c)
	default:
		return HandleError(ac.logger, c, errors.ErrUnsupportedMedia(contentType))
	}
}

func (ac *AnalysisController) analyzeText(c echo.Context) error {
	var req dto.AnalyzeTextRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(ac.logger, c, errors.ErrInvalidInput("Request body is not valid JSON"))
	}
	if req.Model == "" {
		req.Model = dto.DefaultModel
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(ac.logger, c, errors.ErrInvalidInput("Transcript is required and model must be a supported identifier"))
	}
	if strings.TrimSpace(req.Transcript) == "" {
		return HandleError(ac.logger, c, errors.ErrInvalidInput("Transcript is required"))
	}

	result, err := ac.svc.AnalyzeText(c.Request().Context(), req.Transcript, req.Model)
	if err != nil {
		return HandleError(ac.logger, c, err)
	}
	return c.JSON(http.StatusOK, dto.AnalyzeResponse{Analysis: result})
}

func (ac *AnalysisController) analyzeFile(c echo.Context) error {
	model := c.FormValue("model")
	if model == "" {
		model = dto.DefaultModel
	}
	if !dto.ValidModel(model) {
		return HandleError(ac.logger, c, errors.ErrInvalidInput("Model must be a supported identifier"))
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return HandleError(ac.logger, c, errors.ErrInvalidInput("A media file is required"))
	}
	if fileHeader.Size > ac.cfg.Upload.MaxSizeBytes {
		return HandleError(ac.logger, c, errors.ErrInvalidInput("File exceeds the 50MB upload limit"))
	}
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !ac.cfg.AllowedExtension(ext) {
		return HandleError(ac.logger, c, errors.ErrInvalidInput("File type is not supported"))
	}

	media, err := fileHeader.Open()
	if err != nil {
		return HandleError(ac.logger, c, errors.ErrInternal(err))
	}
	defer media.Close()

	result, labeled, err := ac.svc.AnalyzeFile(c.Request().Context(), media, model)
	if err != nil {
		return HandleError(ac.logger, c, err)
	}
	return c.JSON(http.StatusOK, dto.AnalyzeResponse{Analysis: result, LabeledTranscript: labeled})
}

// Rename substitutes speaker display names into a returned analysis
// @Summary      Rename speakers in an analysis
// @Description  Applies a speaker-label to display-name mapping over a previously returned analysis and returns the rewritten copy
// @Tags         analysis
// @Accept       json
// @Produce      json
// @Param        request  body      dto.RenameRequest  true  "Analysis plus name mapping"
// @Success      200      {object}  dto.RenameResponse
// @Failure      400      {object}  dto.ErrorResponse  "Malformed body"
// @Router       /api/rename [post]
func (ac *AnalysisController) Rename(c echo.Context) error {
	var req dto.RenameRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(ac.logger, c, errors.ErrInvalidInput("Request body is not valid JSON"))
	}
	if req.Names == nil {
		return HandleError(ac.logger, c, errors.ErrInvalidInput("A speaker name mapping is required"))
	}

	renamed := analysis.RenameSpeakers(&req.Analysis, req.Names)
	return c.JSON(http.StatusOK, dto.RenameResponse{Analysis: renamed})
}
