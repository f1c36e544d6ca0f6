package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		AppName  string
		Env      string // DEV (local; default), TEST, QA, PROD
		Debug    bool
		TestMode bool
		Build    string

		Server   ServerConfig
		Semester SemesterConfig
		Search   SearchConfig

		CatalogPath string
		StatePath   string

		RollbarToken     string
		NotifyWebhookURL string
	}

	ServerConfig struct {
		Addr            string
		DebugAddr       string
		ShutdownTimeout time.Duration
	}

	// SemesterConfig anchors all week-offset arithmetic.
	// BaseDate must be the Monday of week 1.
	SemesterConfig struct {
		BaseDate time.Time
	}

	// SearchConfig holds the course search tuning knobs.
	// Empirically chosen values; configuration, not invariants.
	SearchConfig struct {
		Threshold      float64
		CodeWeight     float64
		NameWeight     float64
		LecturerWeight float64
		Limit          int
		Debounce       time.Duration
	}
)

func NewConfig() *Config {
	conf := viper.New()
	conf.SetTypeByDefaultValue(true)

	// defaults
	conf.SetDefault("debug", true)
	conf.SetDefault("appName", "TKB")
	conf.SetDefault("build", "dev")
	conf.SetDefault("server.addr", ":8000")
	conf.SetDefault("server.debugAddr", ":8001")
	conf.SetDefault("server.shutdownTimeout", 5*time.Second)
	conf.SetDefault("semester.baseDate", "2025-08-25") // Monday of week 1
	conf.SetDefault("search.threshold", 0.45)          // tuning: 0.2 stricter, 0.5 looser
	conf.SetDefault("search.codeWeight", 3.0)
	conf.SetDefault("search.nameWeight", 2.0)
	conf.SetDefault("search.lecturerWeight", 1.0)
	conf.SetDefault("search.limit", 200)
	conf.SetDefault("search.debounce", 250*time.Millisecond)
	conf.SetDefault("catalogPath", filepath.Join("data", "courses.json"))
	conf.SetDefault("statePath", filepath.Join("data", "state.json"))
	conf.SetDefault("rollbarToken", "")
	conf.SetDefault("notifyWebhookURL", "")

	env := os.Getenv("ENV")
	var testMode bool
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		testMode = true
	}
	conf.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	conf.AutomaticEnv()

	baseDate, err := time.ParseInLocation("2006-01-02", conf.GetString("semester.baseDate"), time.Local)
	if err != nil {
		log.Fatalf("config: invalid semester.baseDate: %v", err)
	}

	return &Config{
		AppName:  conf.GetString("appName"),
		Env:      env,
		Debug:    conf.GetBool("debug"),
		TestMode: testMode,
		Build:    conf.GetString("build"),
		Server: ServerConfig{
			Addr:            conf.GetString("server.addr"),
			DebugAddr:       conf.GetString("server.debugAddr"),
			ShutdownTimeout: conf.GetDuration("server.shutdownTimeout"),
		},
		Semester: SemesterConfig{BaseDate: baseDate},
		Search: SearchConfig{
			Threshold:      conf.GetFloat64("search.threshold"),
			CodeWeight:     conf.GetFloat64("search.codeWeight"),
			NameWeight:     conf.GetFloat64("search.nameWeight"),
			LecturerWeight: conf.GetFloat64("search.lecturerWeight"),
			Limit:          conf.GetInt("search.limit"),
			Debounce:       conf.GetDuration("search.debounce"),
		},
		CatalogPath:      conf.GetString("catalogPath"),
		StatePath:        conf.GetString("statePath"),
		RollbarToken:     conf.GetString("rollbarToken"),
		NotifyWebhookURL: conf.GetString("notifyWebhookURL"),
	}
}
