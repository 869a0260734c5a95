// Package inference implements the domain InferenceGateway on top of an OpenAI-compatible
// chat-completions endpoint.
package inference

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"agriassist/config"
	"agriassist/internal/domain/entity"
	domainerrors "agriassist/internal/domain/errors"
	"agriassist/internal/domain/service"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

const (
	diagnosisSystemPrompt = `You are an expert agricultural pathologist specializing in crop disease diagnosis. ` +
		`Analyze images and provide detailed, actionable recommendations following FAO and ICAR guidelines. ` +
		`Always respond in JSON format with: { "diseases": [{"name": string, "confidence": number (0-1), ` +
		`"riskLevel": "high"|"medium"|"low"}], "analysis": string, "recommendations": string }`

	chatSystemPrompt = `You are an AI agricultural assistant helping farmers with crop disease diagnosis, ` +
		`pest management, and farming practices. Provide practical, safe, and evidence-based advice following ` +
		`FAO-ICAR guidelines. Be concise and clear. If the user asks about diseases, provide organic treatment options first.`

	defaultAnalysis        = "Unable to analyze image"
	defaultRecommendations = "Consult with local agricultural expert"
	defaultChatReply       = "I'm sorry, I couldn't generate a response. Please try again."

	maxFindings = 3
)

// gateway implements service.InferenceGateway with the openai-go SDK.
type gateway struct {
	client         openai.Client
	model          string
	timeout        time.Duration
	maxImageTokens int64
	maxChatTokens  int64
	logger         *slog.Logger
}

// New creates the gateway, or returns nil when no API key is configured.
// A nil gateway puts the orchestrators in degraded mode.
func New(cfg *config.Config, logger *slog.Logger) service.InferenceGateway {
	if !cfg.Inference.Configured() {
		logger.Warn("Inference API key not configured, AI features run in degraded mode")

		return nil
	}

	return newGateway(cfg.Inference, logger)
}

func newGateway(cfg config.InferenceConfig, logger *slog.Logger, extra ...option.RequestOption) *gateway {
	opts := []option.RequestOption{
		option.WithAPIKey(strings.TrimSpace(cfg.APIKey)),
		// single attempt per request
		option.WithMaxRetries(0),
	}
	if trimmed := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"); trimmed != "" {
		opts = append(opts, option.WithBaseURL(trimmed))
	}
	opts = append(opts, extra...)

	return &gateway{
		client:         openai.NewClient(opts...),
		model:          cfg.Model,
		timeout:        cfg.Timeout,
		maxImageTokens: cfg.MaxImageTokens,
		maxChatTokens:  cfg.MaxChatTokens,
		logger:         logger,
	}
}

// imageAnalysis is the JSON object the model is asked to return.
type imageAnalysis struct {
	Diseases []struct {
		Name       string  `json:"name"`
		Confidence float64 `json:"confidence"`
		RiskLevel  string  `json:"riskLevel"`
	} `json:"diseases"`
	Analysis        string `json:"analysis"`
	Recommendations string `json:"recommendations"`
}

// DiagnoseImage asks the model for the most likely diseases in the image.
func (g *gateway) DiagnoseImage(ctx context.Context, image service.ImagePayload, cropName string, symptoms []string) (*service.ImageDiagnosis, error) {
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	dataURL := fmt.Sprintf("data:%s;base64,%s", image.MimeType, image.Data)

	resp, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: shared.ChatModel(g.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(diagnosisSystemPrompt),
			openai.UserMessage([]openai.ChatCompletionContentPartUnionParam{
				openai.TextContentPart(diagnosisPrompt(cropName, symptoms)),
				openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{URL: dataURL}),
			}),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
		MaxCompletionTokens: openai.Int(g.maxImageTokens),
	})
	if err != nil {
		g.logger.Error("Image analysis request failed", slog.String("crop", cropName), slog.Any("error", err))

		return nil, domainerrors.ErrInferenceFailed.WithDetails("failed to analyze crop image").WrapMessage(err.Error())
	}

	content := "{}"
	if len(resp.Choices) > 0 && strings.TrimSpace(resp.Choices[0].Message.Content) != "" {
		content = resp.Choices[0].Message.Content
	}

	return parseImageAnalysis(content)
}

// Converse asks the model for the next assistant reply.
func (g *gateway) Converse(ctx context.Context, history []service.ChatTurn, userContext map[string]any) (string, error) {
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	system, err := chatSystemMessage(userContext)
	if err != nil {
		return "", err
	}

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(history)+1)
	messages = append(messages, openai.SystemMessage(system))
	for _, turn := range history {
		if turn.Role == entity.ChatRoleAssistant {
			messages = append(messages, openai.AssistantMessage(turn.Content))
		} else {
			messages = append(messages, openai.UserMessage(turn.Content))
		}
	}

	resp, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:               shared.ChatModel(g.model),
		Messages:            messages,
		MaxCompletionTokens: openai.Int(g.maxChatTokens),
	})
	if err != nil {
		g.logger.Error("Chat request failed", slog.Int("turns", len(history)), slog.Any("error", err))

		return "", domainerrors.ErrInferenceFailed.WithDetails("failed to get chat response").WrapMessage(err.Error())
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return defaultChatReply, nil
	}

	return resp.Choices[0].Message.Content, nil
}

func (g *gateway) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if g.timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, g.timeout)
}

func diagnosisPrompt(cropName string, symptoms []string) string {
	symptomsText := ""
	if len(symptoms) > 0 {
		symptomsText = "Observed symptoms: " + strings.Join(symptoms, ", ")
	}

	return fmt.Sprintf(
		"Analyze this %s plant image for diseases or pest damage. %s. Provide the top %d most likely issues "+
			"with confidence scores, risk assessment, detailed analysis, and organic/chemical treatment recommendations.",
		cropName, symptomsText, maxFindings,
	)
}

func chatSystemMessage(userContext map[string]any) (string, error) {
	if len(userContext) == 0 {
		return chatSystemPrompt, nil
	}

	encoded, err := json.Marshal(userContext)
	if err != nil {
		return "", domainerrors.ErrValidationFailed.WithDetails("metadata is not JSON encodable").WrapMessage(err.Error())
	}

	return chatSystemPrompt + "\nUser context: " + string(encoded), nil
}

// parseImageAnalysis decodes the model's JSON answer, filling in defaults for missing fields
// and normalizing every finding.
func parseImageAnalysis(content string) (*service.ImageDiagnosis, error) {
	var parsed imageAnalysis
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return nil, domainerrors.ErrInferenceFailed.WithDetails("model returned malformed JSON").WrapMessage(err.Error())
	}

	result := &service.ImageDiagnosis{
		Findings:        make([]entity.DiseaseFinding, 0, len(parsed.Diseases)),
		Analysis:        parsed.Analysis,
		Recommendations: parsed.Recommendations,
	}
	if strings.TrimSpace(result.Analysis) == "" {
		result.Analysis = defaultAnalysis
	}
	if strings.TrimSpace(result.Recommendations) == "" {
		result.Recommendations = defaultRecommendations
	}

	for _, d := range parsed.Diseases {
		result.Findings = append(result.Findings, normalizeFinding(d.Name, d.Confidence, d.RiskLevel))
	}

	return result, nil
}

func normalizeFinding(name string, confidence float64, risk string) entity.DiseaseFinding {
	level := entity.RiskLevel(strings.ToLower(strings.TrimSpace(risk)))
	if !level.IsValid() {
		level = entity.RiskLevelMedium
	}

	return entity.DiseaseFinding{
		Name:       strings.TrimSpace(name),
		Confidence: min(max(confidence, 0), 1),
		RiskLevel:  level,
	}
}
