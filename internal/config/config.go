package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Dataset        Dataset        `mapstructure:",squash"`
	Output         Output         `mapstructure:",squash"`
	Report         Report         `mapstructure:",squash"`
	DatasetRefresh DatasetRefresh `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port" validate:"required"`
}

type Database struct {
	DSN           string `mapstructure:"-"`
	Driver        string `mapstructure:"database_driver"`
	Password      string `mapstructure:"database_password"`
	URL           string `mapstructure:"database_url"`
	User          string `mapstructure:"database_user"`
	ExportEnabled bool   `mapstructure:"database_export_enabled"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

// Dataset é o arquivo de entrada com os posts
type Dataset struct {
	InputPath string `mapstructure:"input_path" validate:"required"`
}

// Output são os caminhos dos artefatos gerados pelo relatório
type Output struct {
	ProcessedPath string `mapstructure:"processed_output_path" validate:"required"`
	DashboardPath string `mapstructure:"dashboard_output_path" validate:"required"`
	ReportPath    string `mapstructure:"report_output_path" validate:"required"`
}

// Report são os cortes usados nas análises
type Report struct {
	TopN          int     `mapstructure:"report_top_n" validate:"gt=0"`
	DashboardTopN int     `mapstructure:"dashboard_top_n" validate:"gt=0"`
	TopDays       int     `mapstructure:"top_days" validate:"gt=0"`
	OutlierK      float64 `mapstructure:"outlier_k" validate:"gt=0"`
	HistogramBins int     `mapstructure:"histogram_bins" validate:"gt=0,lte=200"`
}

type DatasetRefresh struct {
	CronSchedule string `mapstructure:"dataset_refresh_cron" validate:"required"`
	Enabled      bool   `mapstructure:"dataset_refresh_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/engagement?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_EXPORT_ENABLED", false)

	viper.SetDefault("INPUT_PATH", "data/Instagram-data.csv")
	viper.SetDefault("PROCESSED_OUTPUT_PATH", "data/instagram_data_processed.csv")
	viper.SetDefault("DASHBOARD_OUTPUT_PATH", "visualizations/instagram_dashboard.xlsx")
	viper.SetDefault("REPORT_OUTPUT_PATH", "reports/instagram_report.md")

	viper.SetDefault("REPORT_TOP_N", 5)
	viper.SetDefault("DASHBOARD_TOP_N", 10)
	viper.SetDefault("TOP_DAYS", 10)
	viper.SetDefault("OUTLIER_K", 2.0)
	viper.SetDefault("HISTOGRAM_BINS", 30)

	viper.SetDefault("DATASET_REFRESH_CRON", "*/5 * * * *") // A cada 5 minutos
	viper.SetDefault("DATASET_REFRESH_ENABLED", true)

	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("APP_ENV", "development")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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

	if err := config.Validate(); err != nil {
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

// Validate verifica os campos obrigatórios e os limites numéricos
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !asValidationErrors(err, &validationErrors) {
		return err
	}

	fields := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		fields = append(fields, fmt.Sprintf("%s (%s)", fieldErr.Namespace(), fieldErr.Tag()))
	}
	return fmt.Errorf("configuração inválida: %s", strings.Join(fields, ", "))
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	validationErrors, ok := err.(validator.ValidationErrors)
	if ok {
		*target = validationErrors
	}
	return ok
}

// IsDevelopment indica se a aplicação roda em ambiente de desenvolvimento
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "" || c.App.Env == "development"
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

	logrus.Debug("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
