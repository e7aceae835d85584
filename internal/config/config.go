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
	App                   App                   `mapstructure:",squash"`
	Server                Server                `mapstructure:",squash"`
	Database              Database              `mapstructure:",squash"`
	SSOtica               SSOtica               `mapstructure:",squash"`
	Auth                  Auth                  `mapstructure:",squash"`
	Goals                 Goals                 `mapstructure:",squash"`
	AbsenceRedistribution AbsenceRedistribution `mapstructure:",squash"`
	SSOticaMultiClient    map[string]SSOtica    `mapstructure:"-"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type SSOtica struct {
	URL         string   `mapstructure:"ssotica_url"`
	AccessToken string   `mapstructure:"ssotica_access_token"`
	Secrets     []string `mapstructure:"ssotica_secrets"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Timezone string `mapstructure:"timezone"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type Goals struct {
	// Papel do colaborador considerado no roster de vendedores
	CollaboratorRole string        `mapstructure:"collaborator_role"`
	QuotaCacheTTL    time.Duration `mapstructure:"quota_cache_ttl"`
}

type AbsenceRedistribution struct {
	CronSchedule string `mapstructure:"absence_redistribution_cron"`
	Enabled      bool   `mapstructure:"absence_redistribution_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/goals")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SSOTICA_URL", "https://app.ssotica.com.br/api/v1")
	viper.SetDefault("SSOTICA_ACCESS_TOKEN", "your_access_token")
	viper.SetDefault("SSOTICA_SECRETS", "")

	viper.SetDefault("AUTH_SECRET", "your_secret_key")

	viper.SetDefault("COLLABORATOR_ROLE", "vendedor")
	viper.SetDefault("QUOTA_CACHE_TTL", "5m")

	viper.SetDefault("ABSENCE_REDISTRIBUTION_CRON", "0 7 * * *") // Todos os dias às 7h da manhã
	viper.SetDefault("ABSENCE_REDISTRIBUTION_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("TIMEZONE", "America/Sao_Paulo")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

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

	config.SSOticaMultiClient, err = parseSecrets(config.SSOtica)
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Location retorna o fuso horário usado para determinar o "hoje" das lojas
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		logrus.Warnf("Fuso horário inválido: %s, usando local", c.App.Timezone)
		return time.Local
	}
	return loc
}

// parseSecrets monta o mapa de tokens SSOtica por nome de secret (formato nome=token)
func parseSecrets(cfg SSOtica) (map[string]SSOtica, error) {
	clients := make(map[string]SSOtica, len(cfg.Secrets))
	for _, entry := range cfg.Secrets {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		name, token, ok := strings.Cut(entry, "=")
		if !ok || name == "" || token == "" {
			return nil, fmt.Errorf("config: secret SSOtica inválido: %q", entry)
		}

		clients[name] = SSOtica{
			URL:         cfg.URL,
			AccessToken: token,
		}
	}
	return clients, nil
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
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
