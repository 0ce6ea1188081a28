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

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Upload         Upload         `mapstructure:",squash"`
	Reconciliation Reconciliation `mapstructure:",squash"`
	Retention      Retention      `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`

	// Vazio usa as origens padrão do middleware de CORS
	CorsOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`

	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"database_max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Upload struct {
	MaxSizeMB       int64    `mapstructure:"upload_max_size_mb"`
	SalesField      string   `mapstructure:"upload_sales_field"`
	ReturnsField    string   `mapstructure:"upload_returns_field"`
	AllowedSuffixes []string `mapstructure:"upload_allowed_suffixes"`
}

type Reconciliation struct {
	FinanceCustomers []string `mapstructure:"reconciliation_finance_customers"`
	TraceEnabled     bool     `mapstructure:"reconciliation_trace_enabled"`
	AliasFile        string   `mapstructure:"reconciliation_alias_file"`
}

type Retention struct {
	CronSchedule    string `mapstructure:"retention_cron"`
	AchievementKeep int    `mapstructure:"retention_achievement_months"`
	BatchKeepDays   int    `mapstructure:"retention_batch_days"`
	Enabled         bool   `mapstructure:"retention_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/achievements")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")

	viper.SetDefault("UPLOAD_MAX_SIZE_MB", 32)
	viper.SetDefault("UPLOAD_SALES_FIELD", "sales")
	viper.SetDefault("UPLOAD_RETURNS_FIELD", "returns")
	viper.SetDefault("UPLOAD_ALLOWED_SUFFIXES", ".xlsx,.xlsm,.csv")

	// Lista vazia mantém as financeiras padrão do motor de conciliação
	viper.SetDefault("RECONCILIATION_FINANCE_CUSTOMERS", "")
	viper.SetDefault("RECONCILIATION_TRACE_ENABLED", false)
	viper.SetDefault("RECONCILIATION_ALIAS_FILE", "")

	viper.SetDefault("RETENTION_CRON", "0 2 1 * *")      // No primeiro dia de cada mês às 2h da manhã
	viper.SetDefault("RETENTION_ACHIEVEMENT_MONTHS", 24) // 2 anos de histórico
	viper.SetDefault("RETENTION_BATCH_DAYS", 180)        // 6 meses de lotes de upload
	viper.SetDefault("RETENTION_ENABLED", false)         // Habilitar limpeza automática

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

	config.Reconciliation.FinanceCustomers = compact(config.Reconciliation.FinanceCustomers)
	config.Upload.AllowedSuffixes = compact(config.Upload.AllowedSuffixes)
	config.Server.CorsOrigins = compact(config.Server.CorsOrigins)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// compact remove entradas vazias geradas pelo split de strings vazias
func compact(values []string) []string {
	result := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
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
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
