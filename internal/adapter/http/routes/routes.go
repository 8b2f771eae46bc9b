package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	_ "kyndly_ichra/docs" // This will be auto-generated
	"kyndly_ichra/internal/adapter/http/handlers"
	"kyndly_ichra/internal/adapter/http/middleware"
	repository2 "kyndly_ichra/internal/adapter/persistence/repository"
	"kyndly_ichra/internal/infrastructure/assistant"
	"kyndly_ichra/internal/infrastructure/database"
	"kyndly_ichra/internal/infrastructure/notify"
	"kyndly_ichra/internal/infrastructure/storage"
	"kyndly_ichra/internal/usecase"
	"kyndly_ichra/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	awsCfg, err := database.NewAWSConfigFromEnv(context.Background())
	if err != nil {
		log.Fatalf("Failed to load AWS config: %v", err)
	}
	fileStore := storage.NewS3Store(awsCfg, os.Getenv("AWS_S3_BUCKET"))

	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)
	employerRepo := repository2.NewEmployerDynamoRepository(ddb)
	brokerRepo := repository2.NewBrokerDynamoRepository(ddb)
	documentRepo := repository2.NewDocumentDynamoRepository(ddb)
	userRepo := repository2.NewUserDynamoRepository(ddb)

	// Notification channels are optional: when unconfigured the intake
	// pipeline still runs, it just skips that channel.
	var mailer interfaces.ITeamMailer
	sesMailer, err := notify.NewSESMailer(ses.NewFromConfig(awsCfg), os.Getenv("SES_SENDER_EMAIL"), os.Getenv("KYNDLY_TEAM_EMAIL"))
	if err != nil {
		log.Printf("Team mailer not configured: %v", err)
	} else {
		mailer = sesMailer
	}

	var webhook interfaces.IWorkflowWebhook
	workflowWebhook, err := notify.NewWorkflowWebhook(os.Getenv("ZAPIER_WEBHOOK_URL"))
	if err != nil {
		log.Printf("Workflow webhook not configured: %v", err)
	} else {
		webhook = workflowWebhook
	}

	// Same optionality for the knowledge center: no API key, no chat.
	var chatAssistant interfaces.IAssistant
	openAIClient, err := assistant.NewOpenAIClient(os.Getenv("OPENAI_API_KEY"), os.Getenv("OPENAI_MODEL"))
	if err != nil {
		log.Printf("Assistant not configured: %v", err)
	} else {
		chatAssistant = openAIClient
	}

	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, fileStore, mailer, webhook)
	employerUseCase := usecase.NewEmployerUseCase(employerRepo, documentRepo, fileStore)
	brokerUseCase := usecase.NewBrokerUseCase(brokerRepo)
	documentUseCase := usecase.NewDocumentUseCase(documentRepo, employerRepo, fileStore)
	userUseCase := usecase.NewUserUseCase(userRepo)
	assistantUseCase := usecase.NewAssistantUseCase(chatAssistant)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	employerHandler := handlers.NewEmployerHandler(employerUseCase)
	brokerHandler := handlers.NewBrokerHandler(brokerUseCase)
	documentHandler := handlers.NewDocumentHandler(documentUseCase)
	userHandler := handlers.NewUserHandler(userUseCase)
	assistantHandler := handlers.NewAssistantHandler(assistantUseCase)

	// Public routes
	v1 := router.Group("/v1")
	addPingRoutes(v1)

	// Everything under the portal requires a verified token.
	portal := v1.Group("")
	portal.Use(middleware.Authenticate(middleware.NewAuthConfigFromEnv()))
	addPortalRoutes(portal, quoteHandler, employerHandler, brokerHandler, documentHandler, userHandler, assistantHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
