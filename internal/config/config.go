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
	App      App      `mapstructure:",squash"`
	Server   Server   `mapstructure:",squash"`
	Stripe   Stripe   `mapstructure:",squash"`
	Firebase Firebase `mapstructure:",squash"`
	Sheets   Sheets   `mapstructure:",squash"`
	Auth     Auth     `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Stripe guarda as credenciais das duas contas de billing. As chaves são
// lidas uma única vez no boot e injetadas nos adapters; nunca acessadas como
// estado global.
type Stripe struct {
	BaseURL         string `mapstructure:"stripe_base_url"`
	SaaSSecretKey   string `mapstructure:"stripe_secret_key_saas"`
	AgencySecretKey string `mapstructure:"stripe_secret_key_agency"`
	PageSize        int    `mapstructure:"stripe_page_size"`
}

type Firebase struct {
	ProjectID   string `mapstructure:"firebase_project_id"`
	ClientEmail string `mapstructure:"firebase_client_email"`
	PrivateKey  string `mapstructure:"firebase_private_key"`
}

type Sheets struct {
	ExportURL string `mapstructure:"google_sheet_url"`
}

type Auth struct {
	// Password é a senha compartilhada do dashboard. PasswordHash, quando
	// definido, tem precedência (bcrypt).
	Password     string        `mapstructure:"app_password"`
	PasswordHash string        `mapstructure:"app_password_hash"`
	Secret       string        `mapstructure:"auth_secret"`
	TokenTTL     time.Duration `mapstructure:"auth_token_ttl"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("STRIPE_BASE_URL", "https://api.stripe.com/v1")
	viper.SetDefault("STRIPE_PAGE_SIZE", 100)

	viper.SetDefault("GOOGLE_SHEET_URL", "")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")
	viper.SetDefault("AUTH_TOKEN_TTL", "12h")

	viper.SetDefault("LOG_LEVEL", "debug")
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
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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

	// Chaves privadas chegam de variáveis de ambiente com "\n" escapado
	config.Firebase.PrivateKey = strings.ReplaceAll(config.Firebase.PrivateKey, `\n`, "\n")

	return config, nil
}

// CredentialsJSON monta o JSON de service account esperado pelo SDK do Google
// a partir das três variáveis de ambiente.
func (f Firebase) CredentialsJSON() []byte {
	return []byte(fmt.Sprintf(
		`{"type":"service_account","project_id":%q,"client_email":%q,"private_key":%q,"token_uri":"https://oauth2.googleapis.com/token"}`,
		f.ProjectID, f.ClientEmail, f.PrivateKey,
	))
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
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
