package main

import (
	"context"
	"log"

	"api-holiday-a99/config"
	"api-holiday-a99/database"
	"api-holiday-a99/handler"
	"api-holiday-a99/router"
	"api-holiday-a99/store"
)

func main() {
	cfg := config.Load()

	ctx := context.Background()
	firestoreClient, authClient, bucket, err := database.InitFirebase(ctx, cfg)
	if err != nil {
		log.Fatalf("Could not initialize Firebase: %v", err)
	}
	defer firestoreClient.Close()
	log.Println("Successfully connected to Firebase services!")

	cities := &store.CityStore{Client: firestoreClient}
	itineraries := &store.ItineraryStore{Client: firestoreClient}
	expenses := &store.ExpenseStore{Client: firestoreClient}
	files := &store.FileStore{Client: firestoreClient, Bucket: bucket}
	settings := &store.ConfigStore{Client: firestoreClient}

	r := router.SetupRouter(router.Handlers{
		Auth:      &handler.AuthHandler{Config: cfg, AuthClient: authClient},
		Dashboard: &handler.DashboardHandler{Settings: settings, Itineraries: itineraries, Expenses: expenses},
		Day:       &handler.DayHandler{Itineraries: itineraries, Expenses: expenses},
		Files:     &handler.FileHandler{Files: files},
		Cities:    &handler.CityHandler{Cities: cities},
		Manage:    &handler.ManageHandler{Settings: settings, Expenses: expenses},
		Report:    &handler.ReportHandler{Config: cfg, Settings: settings, Itineraries: itineraries, Expenses: expenses},
	})

	log.Printf("Server is running on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
