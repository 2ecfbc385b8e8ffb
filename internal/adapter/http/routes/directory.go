package routes

import (
	"antenna_ops/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathContacts  = "/contacts"
	PathTrainings = "/trainings"
	PathLetters   = "/letters"
	PathTasks     = "/tasks"
)

func addContactRoutes(rg *gin.RouterGroup, contactHandler *handlers.ContactHandler) {
	contacts := rg.Group(PathContacts)
	{
		contacts.GET("", contactHandler.ListContacts)
		contacts.POST("", contactHandler.CreateContact)
		contacts.GET("/lookup", contactHandler.Lookup)
		contacts.GET("/:id", contactHandler.GetContact)
		contacts.PUT("/:id", contactHandler.UpdateContact)
		contacts.DELETE("/:id", contactHandler.DeleteContact)
	}
}

func addTrainingRoutes(rg *gin.RouterGroup, trainingHandler *handlers.TrainingHandler) {
	trainings := rg.Group(PathTrainings)
	{
		trainings.GET("", trainingHandler.ListTrainings)
		trainings.POST("", trainingHandler.CreateTraining)
		trainings.GET("/prefill", trainingHandler.Prefill)
		trainings.GET("/:id", trainingHandler.GetTraining)
		trainings.PUT("/:id", trainingHandler.UpdateTraining)
		trainings.DELETE("/:id", trainingHandler.DeleteTraining)
		trainings.PATCH("/:id/complete", trainingHandler.CompleteTraining)
		trainings.GET("/:id/certificate", trainingHandler.Certificate)
		trainings.GET("/:id/pdf", trainingHandler.TrainingPDF)
	}
}

func addLetterRoutes(rg *gin.RouterGroup, letterHandler *handlers.LetterHandler) {
	letters := rg.Group(PathLetters)
	{
		letters.GET("", letterHandler.ListLetters)
		letters.POST("", letterHandler.CreateLetter)
		letters.GET("/:id", letterHandler.GetLetter)
		letters.PUT("/:id", letterHandler.UpdateLetter)
		letters.DELETE("/:id", letterHandler.DeleteLetter)
		letters.PATCH("/:id/status", letterHandler.SetStatus)
		letters.GET("/:id/pdf", letterHandler.LetterPDF)
	}
}

func addTaskRoutes(rg *gin.RouterGroup, taskHandler *handlers.TaskHandler) {
	tasks := rg.Group(PathTasks)
	{
		tasks.GET("", taskHandler.ListTasks)
		tasks.POST("", taskHandler.CreateTask)
		tasks.GET("/:id", taskHandler.GetTask)
		tasks.PUT("/:id", taskHandler.UpdateTask)
		tasks.DELETE("/:id", taskHandler.DeleteTask)
		tasks.PATCH("/:id/status", taskHandler.SetStatus)
	}
}
