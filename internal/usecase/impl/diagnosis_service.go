// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "agriassist/internal/delivery/context"
	"agriassist/internal/domain/entity"
	domainerrors "agriassist/internal/domain/errors"
	"agriassist/internal/domain/repository"
	"agriassist/internal/domain/service"
	"agriassist/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	degradedFindingName    = "AI Analysis Unavailable"
	degradedAnalysis       = "AI image analysis is currently unavailable. Set INFERENCE_APIKEY to enable this feature."
	degradedRecommendation = "Please consult with local agricultural experts for crop diagnosis. " +
		"Visit the Experts page to find verified agricultural extension officers in your area."

	defaultImageMimeType = "image/jpeg"
)

// diagnosisService implements the DiagnosisUsecase interface.
type diagnosisService struct {
	cropRepo      repository.CropRepository
	diagnosisRepo repository.DiagnosisRepository
	gateway       service.InferenceGateway
	logger        *slog.Logger
}

// DiagnosisServiceParams holds dependencies for DiagnosisService, injected by Fx.
type DiagnosisServiceParams struct {
	fx.In

	CropRepo      repository.CropRepository
	DiagnosisRepo repository.DiagnosisRepository
	Gateway       service.InferenceGateway `optional:"true"`
	Logger        *slog.Logger
}

// NewDiagnosisService is the constructor for diagnosisService. A nil Gateway selects degraded mode.
func NewDiagnosisService(params DiagnosisServiceParams) usecase.DiagnosisUsecase {
	return &diagnosisService{
		cropRepo:      params.CropRepo,
		diagnosisRepo: params.DiagnosisRepo,
		gateway:       params.Gateway,
		logger:        params.Logger,
	}
}

func (srv *diagnosisService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateDiagnosis validates the request, runs image analysis when possible and persists the outcome.
func (srv *diagnosisService) CreateDiagnosis(ctx context.Context, input usecase.DiagnosisInput) (*entity.Diagnosis, error) {
	diagnosis := entity.Diagnosis{
		ImageURL: input.ImageURL,
		CropID:   input.CropID,
		Symptoms: input.Symptoms,
		UserID:   input.UserID,
	}

	if isBlank(input.ImageURL) || isBlank(input.CropID) {
		srv.log(ctx).Debug("Storing manual diagnosis without image analysis")

		return srv.persist(ctx, diagnosis)
	}

	crop, ok := srv.cropRepo.FindCropByID(ctx, *input.CropID)
	if !ok {
		srv.log(ctx).Warn("Diagnosis references unknown crop", slog.String("cropID", *input.CropID))

		return nil, domainerrors.ErrInvalidCrop.WithDetails(*input.CropID)
	}

	result, err := srv.analyze(ctx, ParseImagePayload(*input.ImageURL), crop.Name, input.Symptoms)
	if err != nil {
		return nil, err
	}

	diagnosis.Results = result.Findings
	diagnosis.AIAnalysis = &result.Analysis
	diagnosis.Recommendations = &result.Recommendations

	return srv.persist(ctx, diagnosis)
}

// analyze calls the gateway, or substitutes the fixed degraded result when none is configured.
func (srv *diagnosisService) analyze(ctx context.Context, image service.ImagePayload, cropName string, symptoms []string) (*service.ImageDiagnosis, error) {
	if srv.gateway == nil {
		srv.log(ctx).Warn("Inference gateway not configured, returning degraded diagnosis", slog.String("crop", cropName))

		return degradedImageDiagnosis(), nil
	}

	if symptoms == nil {
		symptoms = []string{}
	}

	result, err := srv.gateway.DiagnoseImage(ctx, image, cropName, symptoms)
	if err != nil {
		srv.log(ctx).Error("Image analysis failed", slog.String("crop", cropName), slog.Any("error", err))
		if !domainerrors.IsInference(err) {
			return nil, domainerrors.ErrInferenceFailed.WrapMessage(err.Error())
		}

		return nil, errors.WithStack(err)
	}
	if result == nil {
		srv.log(ctx).Error("Image analysis returned no result", slog.String("crop", cropName))

		return nil, domainerrors.ErrInferenceFailed.WithDetails("empty analysis result")
	}

	return result, nil
}

func (srv *diagnosisService) persist(ctx context.Context, diagnosis entity.Diagnosis) (*entity.Diagnosis, error) {
	created, err := srv.diagnosisRepo.CreateDiagnosis(ctx, diagnosis)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create diagnosis")
	}

	srv.log(ctx).Info("Diagnosis created", slog.String("diagnosisID", created.ID), slog.Int("findings", len(created.Results)))

	return created, nil
}

// ListDiagnoses returns diagnoses in creation order, optionally for one user.
func (srv *diagnosisService) ListDiagnoses(ctx context.Context, userID string) []*entity.Diagnosis {
	return srv.diagnosisRepo.ListDiagnoses(ctx, userID)
}

// GetDiagnosis returns a single diagnosis.
func (srv *diagnosisService) GetDiagnosis(ctx context.Context, id string) (*entity.Diagnosis, bool) {
	return srv.diagnosisRepo.FindDiagnosisByID(ctx, id)
}

func degradedImageDiagnosis() *service.ImageDiagnosis {
	return &service.ImageDiagnosis{
		Findings: []entity.DiseaseFinding{
			{Name: degradedFindingName, Confidence: 0, RiskLevel: entity.RiskLevelMedium},
		},
		Analysis:        degradedAnalysis,
		Recommendations: degradedRecommendation,
	}
}

// ParseImagePayload strips a data-URL envelope ("data:image/png;base64,") from imageURL.
// A value without a usable envelope is passed through whole as JPEG data.
func ParseImagePayload(imageURL string) service.ImagePayload {
	payload := service.ImagePayload{MimeType: defaultImageMimeType, Data: imageURL}

	header, data, found := strings.Cut(imageURL, ",")
	if !found || data == "" {
		return payload
	}
	payload.Data = data

	if mime, ok := strings.CutPrefix(header, "data:"); ok {
		mime, _, _ = strings.Cut(mime, ";")
		if strings.HasPrefix(mime, "image/") {
			payload.MimeType = mime
		}
	}

	return payload
}

func isBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}
