// Package commands implements the portalctl admin CLI. It operates on the
// same services the HTTP API uses, with an operator identity carrying the
// admin role.
package commands

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/coopfed/portal/config"
	"github.com/coopfed/portal/internal/auth"
	"github.com/coopfed/portal/internal/db"
	"github.com/coopfed/portal/internal/storage"
)

var (
	cfg      *config.Config
	database *gorm.DB
	store    storage.Store
)

// operator is the identity CLI mutations run under.
var operator = auth.Identity{UserID: "portalctl", Role: auth.RoleAdmin}

func init() {
	RootCmd.AddCommand(GetContentCmd())
	RootCmd.AddCommand(GetSeedCmd())
	RootCmd.AddCommand(GetUploadsCmd())
}

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "portalctl",
	Short: "portalctl - manage the federation site's content",
	Long: `portalctl is a command line tool for managing the federation
site's content records and uploaded files directly against the database.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		_ = godotenv.Load()

		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}

		database, err = db.New(db.Options{
			Host:     cfg.DBHost,
			Port:     cfg.DBPort,
			User:     cfg.DBUser,
			Password: cfg.DBPassword,
			DBName:   cfg.DBName,
			SSLMode:  cfg.DBSSLMode,
			LogLevel: gormlogger.Silent,
		})
		if err != nil {
			return err
		}

		store, err = storage.NewDisk(cfg.UploadDir, cfg.PublicBaseURL)
		return err
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
