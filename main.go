package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/davetechinnovation/contact-backend/internal/auth"
	"github.com/davetechinnovation/contact-backend/internal/config"
	"github.com/davetechinnovation/contact-backend/internal/contact"
	"github.com/davetechinnovation/contact-backend/internal/db"
	"github.com/davetechinnovation/contact-backend/internal/geo"
	"github.com/davetechinnovation/contact-backend/internal/mailer"
	"github.com/davetechinnovation/contact-backend/internal/middleware"
	"github.com/davetechinnovation/contact-backend/internal/token"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
)

func RootHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, "Server is up!")
}

func main() {
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	conn, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	log.Println("Connected to database")

	if err := auth.Init(conn); err != nil {
		log.Fatal("Failed to init auth tables: ", err)
	}

	tokens := token.NewManager(cfg.JWTSecret, cfg.TokenTTL)
	authHandler := auth.NewHandler(auth.NewService(auth.NewGormStore(conn), tokens))

	notifyCfg, err := mailer.LoadNotifyConfig(cfg.NotifyConfigPath, cfg.OwnerEmail)
	if err != nil {
		log.Fatal("Failed to load notify config: ", err)
	}
	outbound, err := mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailUser, cfg.EmailPass, notifyCfg)
	if err != nil {
		log.Fatal("Failed to set up mailer: ", err)
	}

	contactHandler := contact.NewHandler(contact.NewService(geo.NewClient(cfg.IPInfoToken), outbound))

	bearer := middleware.BearerAuth(tokens)

	r := chi.NewRouter()
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Get("/", RootHandler)

	r.Mount("/auth", auth.SetupRoutes(authHandler, bearer))
	r.Mount("/contact", contact.SetupRoutes(contactHandler, bearer))

	fmt.Println("Server listening on port :" + cfg.Port + "...")

	if err := http.ListenAndServe("0.0.0.0:"+cfg.Port, r); err != nil {
		log.Fatal(err)
	}
}
