package infra

import (
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"tripboard/internal/models/db_models"
	"tripboard/pkg/config"
)

// InitPostgresql opens the connection pool and migrates the schema.
// TranslateError makes unique-constraint violations surface as
// gorm.ErrDuplicatedKey, which the services turn into conflict responses.
func InitPostgresql(settings *config.Settings, logger *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(settings.DatabaseURL()), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		logger.Error("connecting to database", zap.Error(err))
		return nil, err
	}

	if err := AutoMigrate(db); err != nil {
		logger.Error("migrating database", zap.Error(err))
		return nil, err
	}

	logger.Info("connected to postgres",
		zap.String("host", settings.PostgresHost),
		zap.String("database", settings.PostgresDB),
	)
	return db, nil
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&db_models.Trip{},
		&db_models.Calendar{},
		&db_models.Activity{},
		&db_models.Participant{},
		&db_models.Expense{},
		&db_models.ExpensePayment{},
		&db_models.ExpenseSplit{},
	)
}

func ClosePostgresql(db *gorm.DB, logger *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("getting database instance", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("closing database connection", zap.Error(err))
		return
	}
	logger.Info("postgres connection closed")
}
