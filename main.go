package main

import (
	"fmt"
	"log"
	"net/http"

	"planboard/config"
	"planboard/handlers"
	"planboard/i18n"
	"planboard/store"

	"github.com/gorilla/csrf"
)

func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The SPA may be served from another origin during development
		origin := r.Header.Get("Origin")
		if origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}

		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func main() {
	if err := config.LoadConfig("config.json"); err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	if err := i18n.LoadTranslations("i18n"); err != nil {
		log.Fatalf("Error loading translations: %v", err)
	}

	if config.AppConfig.DBPath != "" {
		s, err := store.OpenSQLiteStore(config.AppConfig.DBPath)
		if err != nil {
			log.Fatalf("Error opening store: %v", err)
		}
		defer s.Close()
		handlers.Store = s
	} else {
		log.Println("No db_path configured, using in-memory store. Data is lost on restart.")
		handlers.Store = store.NewMemoryStore()
	}

	if err := store.SeedHabitLegends(handlers.Store, handlers.DemoUserID); err != nil {
		log.Fatalf("Error seeding habit legends: %v", err)
	}

	mux := http.NewServeMux()

	// SPA bundle
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))

	handlers.RegisterHandlers(mux)

	addr := fmt.Sprintf("%s:%d", config.AppConfig.ListenIP, config.AppConfig.ListenPort)
	log.Printf("Server starting on %s (%s)", addr, config.AppConfig.AppName)

	var handler http.Handler = handlers.SecurityHeadersMiddleware(mux)
	if config.AppConfig.CSRFKey != "" {
		// Off by default: the API carries no session cookies to protect.
		csrfMiddleware := csrf.Protect(
			[]byte(config.AppConfig.CSRFKey),
			csrf.Secure(false), // Set to true in production with HTTPS
			csrf.Path("/"),
		)
		handler = csrfMiddleware(handler)
	}

	if err := http.ListenAndServe(addr, CORSMiddleware(handler)); err != nil {
		log.Fatal(err)
	}
}
