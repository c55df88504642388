package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/sparkminds-jsc/modern-biz-insight-sub001/database"
	"github.com/sparkminds-jsc/modern-biz-insight-sub001/handlers"
	repository "github.com/sparkminds-jsc/modern-biz-insight-sub001/repositories"
	routes "github.com/sparkminds-jsc/modern-biz-insight-sub001/routes"
	services "github.com/sparkminds-jsc/modern-biz-insight-sub001/services"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Fatal("Error loading .env file:", err)
	}

	// Get MongoDB credentials from environment variables
	username := os.Getenv("MONGO_USERNAME")
	password := os.Getenv("MONGO_PASSWORD")
	cluster := os.Getenv("MONGO_CLUSTER")
	appName := os.Getenv("MONGO_APP_NAME")
	jwtSecret := os.Getenv("JWT_SECRET")

	if username == "" || password == "" || cluster == "" || appName == "" {
		log.Fatal("Missing required environment variables")
	}

	uri := fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority&appName=%s",
		username, password, cluster, appName)

	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(context.TODO(), clientOptions)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer func() {
		if err = client.Disconnect(context.TODO()); err != nil {
			log.Fatal("Failed to disconnect from MongoDB:", err)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}

	fmt.Println("Successfully connected to MongoDB Atlas!")

	db := client.Database("biz_insight")

	fmt.Println("Creating database indexes...")
	if err := database.CreateIndexes(db); err != nil {
		log.Printf("Warning: Failed to create indexes: %v", err)
	}

	// Repositories
	billingRepo := repository.NewBillingRepository(db)
	strategyRepo := repository.NewStrategyRepository(db)
	salaryRepo := repository.NewSalaryRepository(db)
	referenceRepo := repository.NewReferenceRepository(db)

	// Services
	reportService := services.NewReportService(billingRepo, salaryRepo, referenceRepo)
	strategyService := services.NewStrategyService(strategyRepo, referenceRepo)
	exportService := services.NewExportService(billingRepo)
	referenceService := services.NewReferenceService(referenceRepo)
	salaryService := services.NewSalaryService(salaryRepo)

	// Handlers
	h := routes.Handlers{
		Report:    handlers.NewReportHandler(reportService),
		Strategy:  handlers.NewStrategyHandler(strategyService),
		Export:    handlers.NewExportHandler(exportService),
		Reference: handlers.NewReferenceHandler(referenceService),
		Salary:    handlers.NewSalaryHandler(salaryService),
	}

	mux := routes.SetupRoutes(h, jwtSecret)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}

	fmt.Printf("Server starting on port %s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, mux))
}
