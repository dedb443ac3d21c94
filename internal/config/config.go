package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	DataForSEO   DataForSEO   `mapstructure:",squash"`
	SnapshotSync SnapshotSync `mapstructure:",squash"`
	Analytics    Analytics    `mapstructure:",squash"`
	Cors         Cors         `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`

	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
}

type DataForSEO struct {
	URL               string        `mapstructure:"dataforseo_url"`
	Login             string        `mapstructure:"dataforseo_login"`
	Password          string        `mapstructure:"dataforseo_password"`
	Timeout           time.Duration `mapstructure:"dataforseo_timeout"`
	RequestsPerSecond float64       `mapstructure:"dataforseo_requests_per_second"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type SnapshotSync struct {
	CronSchedule      string   `mapstructure:"snapshot_sync_cron"`
	Keywords          []string `mapstructure:"snapshot_sync_keywords"`
	LocationCode      int      `mapstructure:"snapshot_sync_location_code"`
	LanguageCode      string   `mapstructure:"snapshot_sync_language_code"`
	MaxConcurrentJobs int      `mapstructure:"snapshot_sync_max_concurrent_jobs"`
	Enabled           bool     `mapstructure:"snapshot_sync_enabled"`
}

// Analytics agrupa as heurísticas de tendência e volatilidade
type Analytics struct {
	TrendNoiseThreshold     float64 `mapstructure:"trend_noise_threshold"`
	TrendWindowSize         int     `mapstructure:"trend_window_size"`
	VolatilityNormalization float64 `mapstructure:"volatility_normalization"`
	VolatilityNewLostWeight float64 `mapstructure:"volatility_new_lost_weight"`
	StatsTopN               int     `mapstructure:"stats_top_n"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/serp?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")

	viper.SetDefault("DATAFORSEO_URL", "https://api.dataforseo.com/v3")
	viper.SetDefault("DATAFORSEO_LOGIN", "")
	viper.SetDefault("DATAFORSEO_PASSWORD", "")
	viper.SetDefault("DATAFORSEO_TIMEOUT", "60s")
	viper.SetDefault("DATAFORSEO_REQUESTS_PER_SECOND", 2) // limite da conta: 2000 req/min, usamos bem menos

	// Defaults para sincronização de snapshots
	viper.SetDefault("SNAPSHOT_SYNC_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("SNAPSHOT_SYNC_KEYWORDS", "")
	viper.SetDefault("SNAPSHOT_SYNC_LOCATION_CODE", 2840) // United States
	viper.SetDefault("SNAPSHOT_SYNC_LANGUAGE_CODE", "en")
	viper.SetDefault("SNAPSHOT_SYNC_MAX_CONCURRENT_JOBS", 3)
	viper.SetDefault("SNAPSHOT_SYNC_ENABLED", false)

	// Heurísticas de tendência/volatilidade (ver DESIGN.md)
	viper.SetDefault("TREND_NOISE_THRESHOLD", 2)
	viper.SetDefault("TREND_WINDOW_SIZE", 3)
	viper.SetDefault("VOLATILITY_NORMALIZATION", 10)
	viper.SetDefault("VOLATILITY_NEW_LOST_WEIGHT", 10)
	viper.SetDefault("STATS_TOP_N", 10)

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:4001")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.SnapshotSync.Keywords = compact(config.SnapshotSync.Keywords)
	config.Cors.AllowedOrigins = compact(config.Cors.AllowedOrigins)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// compact remove espaços e entradas vazias geradas por listas como "a, ,b" ou ""
func compact(values []string) []string {
	result := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			result = append(result, v)
		}
	}
	return result
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
