package routes

import (
	"kyndly_ichra/internal/adapter/http/handlers"
	"kyndly_ichra/internal/adapter/http/middleware"
	"kyndly_ichra/internal/domain/auth"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes    = "/quotes"
	PathEmployers = "/employers"
	PathBrokers   = "/brokers"
	PathDocuments = "/documents"
	PathUsers     = "/users"
	PathAssistant = "/ai"
)

func addPortalRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler, employerHandler *handlers.EmployerHandler, brokerHandler *handlers.BrokerHandler, documentHandler *handlers.DocumentHandler, userHandler *handlers.UserHandler, assistantHandler *handlers.AssistantHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", middleware.RequireCapabilities(auth.CapabilityWriteQuotes), quoteHandler.CreateQuote)
		quotes.GET("", middleware.RequireCapabilities(auth.CapabilityReadQuotes), quoteHandler.GetQuotes)
		quotes.GET("/:id", middleware.RequireCapabilities(auth.CapabilityReadQuotes), quoteHandler.GetQuoteByID)
		quotes.PATCH("/:id/status", middleware.RequireCapabilities(auth.CapabilityWriteQuotes), quoteHandler.UpdateQuoteStatus)
		quotes.DELETE("/:id", middleware.RequireCapabilities(auth.CapabilityWriteQuotes), quoteHandler.DeleteQuote)
	}

	employers := rg.Group(PathEmployers)
	{
		employers.POST("", middleware.RequireCapabilities(auth.CapabilityWriteEmployers), employerHandler.CreateEmployer)
		employers.GET("", middleware.RequireCapabilities(auth.CapabilityReadEmployers), employerHandler.GetEmployers)
		employers.GET("/:id", middleware.RequireCapabilities(auth.CapabilityReadEmployers), employerHandler.GetEmployerByID)
		employers.PUT("/:id", middleware.RequireCapabilities(auth.CapabilityWriteEmployers), employerHandler.UpdateEmployer)
		employers.DELETE("/:id", middleware.RequireCapabilities(auth.CapabilityWriteEmployers), employerHandler.DeleteEmployer)

		// Documents listed under the employer that owns them.
		employers.GET("/:id/documents", middleware.RequireCapabilities(auth.CapabilityReadDocuments), documentHandler.GetDocumentsByEmployer)
	}

	brokers := rg.Group(PathBrokers)
	{
		brokers.POST("", middleware.RequireCapabilities(auth.CapabilityWriteBrokers), brokerHandler.CreateBroker)
		brokers.GET("", middleware.RequireCapabilities(auth.CapabilityReadBrokers), brokerHandler.GetBrokers)
		brokers.GET("/:id", middleware.RequireCapabilities(auth.CapabilityReadBrokers), brokerHandler.GetBrokerByID)
		brokers.PUT("/:id", middleware.RequireCapabilities(auth.CapabilityWriteBrokers), brokerHandler.UpdateBroker)
		brokers.DELETE("/:id", middleware.RequireCapabilities(auth.CapabilityWriteBrokers), brokerHandler.DeleteBroker)
	}

	documents := rg.Group(PathDocuments)
	{
		documents.POST("", middleware.RequireCapabilities(auth.CapabilityWriteDocuments), documentHandler.UploadDocument)
		documents.GET("/:id", middleware.RequireCapabilities(auth.CapabilityReadDocuments), documentHandler.GetDocumentByID)
		documents.DELETE("/:id", middleware.RequireCapabilities(auth.CapabilityWriteDocuments), documentHandler.DeleteDocument)
	}

	users := rg.Group(PathUsers)
	{
		users.POST("", middleware.RequireCapabilities(auth.CapabilityWriteUsers), userHandler.CreateUser)
		users.GET("", middleware.RequireCapabilities(auth.CapabilityReadUsers), userHandler.GetUsers)
		users.GET("/:id", middleware.RequireCapabilities(auth.CapabilityReadUsers), userHandler.GetUserByID)
		users.PUT("/:id", middleware.RequireCapabilities(auth.CapabilityWriteUsers), userHandler.UpdateUser)
		users.DELETE("/:id", middleware.RequireCapabilities(auth.CapabilityWriteUsers), userHandler.DeleteUser)
	}

	// The knowledge center holds no tenant data; any authenticated
	// actor may ask it questions.
	ai := rg.Group(PathAssistant)
	{
		ai.POST("/chat", assistantHandler.Chat)
		ai.POST("/ichra-info", assistantHandler.TopicInfo)
	}
}
