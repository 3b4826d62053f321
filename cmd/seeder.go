package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/frahmantamala/homecare-staffing/internal/auth"
	"github.com/frahmantamala/homecare-staffing/internal/employee"
	employeepg "github.com/frahmantamala/homecare-staffing/internal/employee/postgres"
	"github.com/frahmantamala/homecare-staffing/pkg/logger"
	"github.com/spf13/cobra"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var (
	seedAdminFirst string
	seedAdminLast  string
	seedAdminEmail string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with an administrator account",
	Long: `Create the initial administrator employee. The account goes through the
regular provisioning path, so it gets a user profile (with a forced password
change pending) and a compliance record. The generated temporary password is
printed once and not stored anywhere in plaintext.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		logger.Init("development")
		appLogger := logger.LoggerWrapper()

		db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		defer db.Close()

		gormDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: db.DB}), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
		if err != nil {
			log.Fatalf("failed to init orm: %v", err)
		}

		lifecycle := employee.NewLifecycle(appLogger)
		repo := employeepg.NewEmployeeRepository(gormDB,
			[]employee.CreateHook{lifecycle.ProvisionAccount},
			[]employee.UpdateHook{lifecycle.DetectPasswordChange},
		)

		username := employee.DeriveUsername(seedAdminFirst, seedAdminLast)
		exists, err := repo.UsernameExists(username)
		if err != nil {
			log.Fatalf("failed to check username: %v", err)
		}
		if exists {
			fmt.Printf("admin user %q already exists, nothing to do\n", username)
			return
		}

		credentials := auth.NewCredentialGenerator(cfg.Security.BCryptCost)
		plaintext, err := credentials.Generate()
		if err != nil {
			log.Fatalf("failed to generate password: %v", err)
		}
		hash, err := credentials.Hash(plaintext)
		if err != nil {
			log.Fatalf("failed to hash password: %v", err)
		}

		admin := &employee.Employee{
			Username:     username,
			PasswordHash: hash,
			FirstName:    seedAdminFirst,
			LastName:     seedAdminLast,
			Email:        seedAdminEmail,
			IsActive:     true,
			IsSuperuser:  true,
			HiredAt:      time.Now(),
		}
		if err := repo.Create(admin); err != nil {
			log.Fatalf("failed to create admin user: %v", err)
		}

		fmt.Printf("Seeded administrator %q (employee id %d)\n", username, admin.ID)
		fmt.Printf("Temporary password (change on first login): %s\n", plaintext)
	},
}

func init() {
	seedCmd.Flags().StringVar(&seedAdminFirst, "first-name", "Site", "administrator first name")
	seedCmd.Flags().StringVar(&seedAdminLast, "last-name", "Admin", "administrator last name")
	seedCmd.Flags().StringVar(&seedAdminEmail, "email", "admin@example.com", "administrator email")
}
