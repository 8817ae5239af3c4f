package config

import (
	"encoding/json"
	"os"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	AppName    string `json:"app_name" env:"PLANBOARD_APP_NAME"`
	ListenIP   string `json:"listen_ip" env:"PLANBOARD_LISTEN_IP"`
	ListenPort int    `json:"listen_port" env:"PLANBOARD_LISTEN_PORT"`
	// DBPath selects the SQLite store backend. Empty means in-memory only:
	// a restart loses all data.
	DBPath string `json:"db_path" env:"PLANBOARD_DB_PATH"`
	// CSRFKey enables the CSRF middleware when set. The API carries no
	// session cookies, so this is off unless configured.
	CSRFKey string `json:"csrf_key" env:"PLANBOARD_CSRF_KEY"`
}

var AppConfig Config

func LoadConfig(path string) error {
	AppConfig = Config{}

	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&AppConfig); err != nil {
		return err
	}

	// Environment variables override file values
	if err := env.Parse(&AppConfig); err != nil {
		return err
	}

	if AppConfig.AppName == "" {
		AppConfig.AppName = "Planboard"
	}
	if AppConfig.ListenPort == 0 {
		AppConfig.ListenPort = 8080
	}

	return nil
}
