package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/vfg2006/sales-bi-api/internal/domain"
)

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	Dashboard       Dashboard       `mapstructure:",squash"`
	Generator       Generator       `mapstructure:",squash"`
	Import          Import          `mapstructure:",squash"`
	KPISnapshotSync KPISnapshotSync `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN             string        `mapstructure:"-"`
	Driver          string        `mapstructure:"database_driver"`
	Password        string        `mapstructure:"database_password"`
	URL             string        `mapstructure:"database_url"`
	User            string        `mapstructure:"database_user"`
	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Dashboard guarda o mês inicial e os dias úteis por mês no formato YYYYMM:N
type Dashboard struct {
	SelectedMonth      string   `mapstructure:"selected_month"`
	CurrentBusinessDay int      `mapstructure:"current_business_day"`
	BusinessDays       []string `mapstructure:"business_days"`
}

// Generator controla o dataset sintético carregado na inicialização.
// Periods usa o formato YYYY:inicio-fim:media.
type Generator struct {
	Seed                    uint64   `mapstructure:"generator_seed"`
	CustomersPerSalesperson int      `mapstructure:"generator_customers_per_salesperson"`
	MonthlyVariance         float64  `mapstructure:"generator_monthly_variance"`
	TargetRatio             float64  `mapstructure:"generator_target_ratio"`
	Periods                 []string `mapstructure:"generator_periods"`
}

type Import struct {
	MaxUploadMB int64 `mapstructure:"import_max_upload_mb"`
}

type KPISnapshotSync struct {
	CronSchedule string `mapstructure:"kpi_snapshot_sync_cron"`
	Enabled      bool   `mapstructure:"kpi_snapshot_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/sales_bi?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 4)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")

	viper.SetDefault("SELECTED_MONTH", "202602")
	viper.SetDefault("CURRENT_BUSINESS_DAY", 9)
	viper.SetDefault("BUSINESS_DAYS", "202602:17")

	viper.SetDefault("GENERATOR_SEED", 0) // 0 = semente aleatória
	viper.SetDefault("GENERATOR_CUSTOMERS_PER_SALESPERSON", 12)
	viper.SetDefault("GENERATOR_MONTHLY_VARIANCE", 0.1)
	viper.SetDefault("GENERATOR_TARGET_RATIO", 1.3)
	viper.SetDefault("GENERATOR_PERIODS", "2025:1-12:8000000000,2026:1-2:9200000000")

	viper.SetDefault("IMPORT_MAX_UPLOAD_MB", 20)

	viper.SetDefault("KPI_SNAPSHOT_SYNC_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("KPI_SNAPSHOT_SYNC_ENABLED", false)    // Habilitar histórico de KPIs no Postgres

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

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Settings converte a seção Dashboard na configuração de dias úteis do motor.
// Entradas malformadas são registradas e ignoradas.
func (c *Config) Settings() (domain.Settings, error) {
	month, err := domain.ParseYearMonth(c.Dashboard.SelectedMonth)
	if err != nil {
		return domain.Settings{}, fmt.Errorf("config: SELECTED_MONTH: %w", err)
	}

	settings := domain.Settings{
		Month:               month,
		BusinessDaysByMonth: make(map[string]int),
		CurrentBusinessDay:  c.Dashboard.CurrentBusinessDay,
	}

	for _, entry := range c.Dashboard.BusinessDays {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		key, value, ok := strings.Cut(entry, ":")
		if !ok {
			logrus.Warnf("config: BUSINESS_DAYS ignorado (esperado YYYYMM:N): %q", entry)
			continue
		}
		ym, err := domain.ParseYearMonth(key)
		if err != nil {
			logrus.Warnf("config: BUSINESS_DAYS ignorado: %v", err)
			continue
		}
		days, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || days <= 0 || days > ym.DaysInMonth() {
			logrus.Warnf("config: BUSINESS_DAYS ignorado (dias inválidos): %q", entry)
			continue
		}

		settings.BusinessDaysByMonth[ym.String()] = days
	}

	return settings, nil
}

// GenerationPeriods lê os períodos do gerador; entradas malformadas são ignoradas
func (c *Config) GenerationPeriods() []domain.GenerationPeriod {
	periods := make([]domain.GenerationPeriod, 0, len(c.Generator.Periods))
	for _, entry := range c.Generator.Periods {
		if strings.TrimSpace(entry) == "" {
			continue
		}
		period, err := domain.ParseGenerationPeriod(entry)
		if err != nil {
			logrus.Warnf("config: GENERATOR_PERIODS ignorado: %v", err)
			continue
		}
		periods = append(periods, period)
	}
	return periods
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
		logrus.Info("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
