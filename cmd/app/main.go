package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"freightline/cmd"
	"freightline/internal/adapters/out/postgres/orderrepo"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := connectDB(configs)

	root := cmd.NewCompositionRoot(cmd.CompositionConfig{
		DirectoryURL:  configs.DirectoryURL,
		SessionURL:    configs.SessionURL,
		ConsoleUserID: configs.ConsoleUserID,
		ConsoleRole:   configs.ConsoleRole,
		BoardPageSize: configs.BoardPageSize,
	}, gormDB, logger)

	if root.ConsoleConfigured() {
		refreshJob := root.CreateBoardRefreshJob()
		if err := refreshJob.Start(); err != nil {
			log.Fatalf("Failed to start board refresh job: %v", err)
		}
		defer refreshJob.Stop()
	}

	startWebServer(&root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	pageSize, err := strconv.Atoi(goDotEnvVariable("BOARD_PAGE_SIZE"))
	if err != nil || pageSize < 1 {
		pageSize = 10
	}

	return cmd.Config{
		HTTPPort:      goDotEnvVariable("HTTP_PORT"),
		DBHost:        goDotEnvVariable("DB_HOST"),
		DBPort:        goDotEnvVariable("DB_PORT"),
		DBUser:        goDotEnvVariable("DB_USER"),
		DBPassword:    goDotEnvVariable("DB_PASSWORD"),
		DBName:        goDotEnvVariable("DB_NAME"),
		DBSslMode:     goDotEnvVariable("DB_SSLMODE"),
		DirectoryURL:  goDotEnvVariable("DIRECTORY_URL"),
		SessionURL:    goDotEnvVariable("SESSION_URL"),
		ConsoleUserID: goDotEnvVariable("CONSOLE_USER_ID"),
		ConsoleRole:   goDotEnvVariable("CONSOLE_ROLE"),
		BoardPageSize: pageSize,
	}
}

func goDotEnvVariable(key string) string {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded: %v", err)
	}
	return os.Getenv(key)
}

func connectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = gormDB.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}); err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return gormDB
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	e := echo.New()
	root.CreateHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
