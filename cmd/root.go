package cmd

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "eduquery-be",
	Short: "Document-grounded question answering backend",
	Long: `eduquery-be answers questions strictly from the contents of a chosen
document: curriculum syllabus documents resolved by board, class and
subject, or documents uploaded by individual users. Documents are
chunked, embedded and indexed at upload; questions are answered from
the most similar chunks with a context-constrained language model.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig, initLogger)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "config/config.yaml", "config file")
}

func initLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
}

// initConfig reads in ENV variables; the config file itself is loaded by
// each command through config.LoadConfig.
func initConfig() {
	viper.AutomaticEnv()
}
