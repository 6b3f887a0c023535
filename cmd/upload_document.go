package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/eduquery/eduquery-be/config"
	"github.com/eduquery/eduquery-be/database"
	"github.com/eduquery/eduquery-be/repository"
	"github.com/eduquery/eduquery-be/service"
	"github.com/eduquery/eduquery-be/types"
)

// uploadDocumentCmd ingests a local file through the same pipeline the
// upload endpoint uses and prints the resulting document id. Useful for
// seeding curriculum documents from the command line.
var uploadDocumentCmd = &cobra.Command{
	Use:   "upload-document",
	Short: "Ingest a local document file",
	Long: `Extracts, chunks, embeds and indexes a local document file, registering
it under the given owner email. Prints the generated document id.`,
	Run: func(cmd *cobra.Command, args []string) {
		filePath, _ := cmd.Flags().GetString("file")
		ownerEmail, _ := cmd.Flags().GetString("owner")
		if filePath == "" {
			log.Fatal().Msg("Please provide a document file using the --file flag")
		}

		extractor := service.NewExtractService()
		if !extractor.Supported(filePath) {
			log.Fatal().Err(types.ErrUnsupportedFormat).Str("file", filePath).Msg("Expected a .pdf, .docx or .txt file")
		}

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
		ingestService := service.NewIngestService(
			extractor,
			chunker,
			embedder,
			weaviateDb,
			repository.NewDocumentRepo(mongoDb.Collection("user_documents")),
		)

		documentID, err := ingestService.Ingest(ctx, filePath, filepath.Base(filePath), types.Requester{
			Email: ownerEmail,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to ingest document")
		}
		fmt.Println(documentID)
	},
}

func init() {
	rootCmd.AddCommand(uploadDocumentCmd)

	uploadDocumentCmd.Flags().StringP("file", "f", "", "Path to the document file")
	uploadDocumentCmd.Flags().StringP("owner", "o", "", "Owner email to register the document under")
}
