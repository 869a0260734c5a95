// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"agriassist/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler   *handler.CatalogHandler
	DiagnosisHandler *handler.DiagnosisHandler
	AdvisoryHandler  *handler.AdvisoryHandler
	ChatHandler      *handler.ChatHandler
	FeedbackHandler  *handler.FeedbackHandler
	UserHandler      *handler.UserHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler   *handler.CatalogHandler
	diagnosisHandler *handler.DiagnosisHandler
	advisoryHandler  *handler.AdvisoryHandler
	chatHandler      *handler.ChatHandler
	feedbackHandler  *handler.FeedbackHandler
	userHandler      *handler.UserHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler:   params.CatalogHandler,
		diagnosisHandler: params.DiagnosisHandler,
		advisoryHandler:  params.AdvisoryHandler,
		chatHandler:      params.ChatHandler,
		feedbackHandler:  params.FeedbackHandler,
		userHandler:      params.UserHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	crops := api.Group("/crops")
	{
		crops.GET("", r.catalogHandler.ListCrops)
		crops.GET("/:id", r.catalogHandler.GetCrop)
		crops.POST("", r.catalogHandler.CreateCrop)
	}

	diseases := api.Group("/diseases")
	{
		diseases.GET("", r.catalogHandler.ListDiseases)
		diseases.GET("/:id", r.catalogHandler.GetDisease)
		diseases.POST("", r.catalogHandler.CreateDisease)
	}

	diagnoses := api.Group("/diagnoses")
	{
		diagnoses.GET("", r.diagnosisHandler.ListDiagnoses)
		diagnoses.GET("/:id", r.diagnosisHandler.GetDiagnosis)
		diagnoses.POST("", r.diagnosisHandler.CreateDiagnosis)
	}

	experts := api.Group("/experts")
	{
		experts.GET("", r.advisoryHandler.ListExperts)
		experts.POST("", r.advisoryHandler.CreateExpert)
	}

	alerts := api.Group("/alerts")
	{
		alerts.GET("", r.advisoryHandler.ListAlerts)
		alerts.POST("", r.advisoryHandler.PublishAlert)
	}

	chat := api.Group("/chat")
	{
		chat.GET("/:userId", r.chatHandler.ListMessages)
		chat.POST("", r.chatHandler.SendMessage)
	}

	feedback := api.Group("/feedback")
	{
		feedback.GET("", r.feedbackHandler.ListFeedback)
		feedback.POST("", r.feedbackHandler.SubmitFeedback)
	}

	users := api.Group("/users")
	{
		users.POST("", r.userHandler.RegisterUser)
		users.GET("/:username", r.userHandler.GetUser)
	}
}
