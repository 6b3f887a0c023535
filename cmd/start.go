package cmd

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/eduquery/eduquery-be/config"
	"github.com/eduquery/eduquery-be/database"
	"github.com/eduquery/eduquery-be/handler"
	"github.com/eduquery/eduquery-be/middleware"
	"github.com/eduquery/eduquery-be/repository"
	"github.com/eduquery/eduquery-be/service"
)

var startServerCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the question answering server",
	Long:  `Starts the HTTP server exposing document upload, curriculum lookup and question answering.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(cfgFile)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load config")
		}

		ctx := context.Background()
		mongoClient, err := database.NewMongoClient(ctx, cfg.MongoURI)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
		}
		mongoDb := mongoClient.Database("eduquery")

		weaviateDb, err := database.NewWeaviateStore(cfg.WeaviateHost, cfg.WeaviateKey)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Weaviate database")
		}

		// init repos
		userRepo := repository.NewUserRepo(mongoDb.Collection("users"))
		documentRepo := repository.NewDocumentRepo(mongoDb.Collection("user_documents"))
		curriculumRepo := repository.NewCurriculumRepo(
			mongoDb.Collection("stateboard"),
			mongoDb.Collection("cbse"),
		)

		// init core pipeline
		chunker, err := service.NewChunker(cfg.Chunking.ChunkSize, cfg.Chunking.Overlap)
		if err != nil {
			log.Fatal().Err(err).Msg("Invalid chunking config")
		}
		embedder := service.NewOpenAIEmbedder(
			cfg.Embedding.Endpoint,
			cfg.Embedding.APIKey,
			cfg.Embedding.Model,
			cfg.Embedding.Dimension,
		)
		generator, err := newGenerator(cfg.Generation)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize generator")
		}

		ingestService := service.NewIngestService(
			service.NewExtractService(),
			chunker,
			embedder,
			weaviateDb,
			documentRepo,
		)
		accessService := service.NewAccessService(documentRepo, curriculumRepo)
		answerService := service.NewAnswerService(
			accessService,
			service.NewRetrievalService(embedder, weaviateDb),
			service.NewSynthesizer(generator),
		)
		userService := service.NewUserService(userRepo)
		fileService, err := service.NewFileService(cfg.UploadDir, ingestService)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize upload directory")
		}

		// init handlers
		corsHandler := handler.NewCorsHandler()
		authHandler := handler.NewAuthHandler(userService)
		profileHandler := handler.NewProfileHandler(userService)
		curriculumHandler := handler.NewCurriculumHandler(curriculumRepo)
		documentHandler := handler.NewDocumentHandler(fileService, documentRepo)
		askHandler := handler.NewAskHandler(answerService)

		router := gin.Default()
		router.Use(corsHandler.CorsMiddleware)

		apiV1 := router.Group("/api/v1")
		apiV1.POST("/signup", authHandler.HandleSignup)
		apiV1.POST("/login", authHandler.HandleLogin)

		// public curriculum catalog
		apiV1.GET("/curriculum/subjects", curriculumHandler.HandleListSubjects)
		apiV1.GET("/curriculum/groups", curriculumHandler.HandleListGroups)
		apiV1.GET("/curriculum/document", curriculumHandler.HandleSubjectDocument)

		userRoutes := apiV1.Group("/")
		userRoutes.Use(middleware.AuthMiddleware)
		{
			userRoutes.GET("/profile", profileHandler.HandleGetProfile)
			userRoutes.PUT("/profile", profileHandler.HandleUpdateProfile)
			userRoutes.POST("/documents/upload", documentHandler.HandleUpload)
			userRoutes.GET("/documents", documentHandler.HandleListDocuments)
			userRoutes.POST("/documents/ask", askHandler.HandleAskDocument)
			userRoutes.POST("/ask", askHandler.HandleAsk)
		}

		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := router.Run(":" + cfg.Port); err != nil {
			log.Fatal().Err(err).Msg("Server error")
		}
	},
}

func newGenerator(cfg config.GenerationConfig) (service.Generator, error) {
	if strings.EqualFold(cfg.Provider, "gemini") {
		keys := cfg.APIKeys
		if len(keys) == 0 && cfg.APIKey != "" {
			keys = []string{cfg.APIKey}
		}
		return service.NewGeminiGenerator(keys, cfg.Model)
	}
	return service.NewOpenAIGenerator(cfg.Endpoint, cfg.APIKey, cfg.Model), nil
}

func init() {
	rootCmd.AddCommand(startServerCmd)
}
