package main

import (
	"net/http"
	"os"

	"smarttodo/backend/ai"
	"smarttodo/backend/config"
	"smarttodo/backend/middleware"
	"smarttodo/backend/routes"
	"smarttodo/backend/supabase"

	"github.com/rs/cors"
)

func main() {

	config.LoadEnv()
	config.InitLogger()
	supabase.Init()

	engine := ai.New()

	mux := http.NewServeMux()
	routes.Register(mux, engine)

	handler := middleware.Chain(
		middleware.LoggingMiddleware,
		cors.New(cors.Options{
			AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type", "Authorization", "X-Requested-With"},
			MaxAge:         86400,
		}).Handler,
	)(mux)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	config.Logger.Info("Server is running on port ", port)
	config.Logger.Fatal(http.ListenAndServe(":"+port, handler))
}
