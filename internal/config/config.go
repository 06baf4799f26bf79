package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	DriverMongoDB  = "mongodb"
	DriverPostgres = "postgres"
)

type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Database  Database  `mapstructure:",squash"`
	MongoDB   MongoDB   `mapstructure:",squash"`
	Dashboard Dashboard `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

type Server struct {
	Host        string `mapstructure:"host"`
	Port        string `mapstructure:"port"`
	FrontendURL string `mapstructure:"frontend_url"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type MongoDB struct {
	URI            string        `mapstructure:"mongodb_uri"`
	Database       string        `mapstructure:"mongodb_database"`
	MaxPoolSize    uint64        `mapstructure:"mongodb_max_pool_size"`
	MinPoolSize    uint64        `mapstructure:"mongodb_min_pool_size"`
	ConnectTimeout time.Duration `mapstructure:"mongodb_connect_timeout"`
}

type Dashboard struct {
	APIURL      string        `mapstructure:"dashboard_api_url"`
	Timeout     time.Duration `mapstructure:"dashboard_timeout"`
	Addr        string        `mapstructure:"dashboard_addr"`
	RefreshCron string        `mapstructure:"dashboard_refresh_cron"`
	MapType     string        `mapstructure:"dashboard_map_type"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "")
	viper.SetDefault("PORT", 5000)
	viper.SetDefault("FRONTEND_URL", "http://localhost:3000")

	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("DATABASE_DRIVER", DriverMongoDB)
	viper.SetDefault("DATABASE_URL", "localhost:5432/ecommerce_dashboard?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("MONGODB_URI", "mongodb://localhost:27017/ecommerce-dashboard")
	viper.SetDefault("MONGODB_DATABASE", "ecommerce-dashboard")
	viper.SetDefault("MONGODB_MAX_POOL_SIZE", 20)
	viper.SetDefault("MONGODB_MIN_POOL_SIZE", 2)
	viper.SetDefault("MONGODB_CONNECT_TIMEOUT", "10s")

	// Cliente do dashboard
	viper.SetDefault("DASHBOARD_API_URL", "http://localhost:5000/api")
	viper.SetDefault("DASHBOARD_TIMEOUT", "10s")
	viper.SetDefault("DASHBOARD_ADDR", ":4001")
	viper.SetDefault("DASHBOARD_REFRESH_CRON", "") // vazio desabilita o refresh agendado
	viper.SetDefault("DASHBOARD_MAP_TYPE", "USA")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env): ", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = BuildDSN(config.Database)

	return config, nil
}

// BuildDSN monta a string de conexão do PostgreSQL
func BuildDSN(db Database) string {
	return fmt.Sprintf(
		"%s://%s:%s@%s",
		DriverPostgres,
		db.User,
		db.Password,
		db.URL,
	)
}

// Addr retorna o endereço de escuta da API
func (s Server) Addr() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug("Arquivo .env carregado de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
