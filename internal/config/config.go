package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App    App    `mapstructure:",squash"`
	Chart  Chart  `mapstructure:",squash"`
	Deck   Deck   `mapstructure:",squash"`
	Assets Assets `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Chart controla a geometria padrão dos gráficos ASCII de spend
type Chart struct {
	Width  int `mapstructure:"chart_width"`
	Height int `mapstructure:"chart_height"`
}

// Deck controla os padrões de geração de apresentações
type Deck struct {
	ColorScheme     string `mapstructure:"deck_color_scheme"`
	AutoBackgrounds bool   `mapstructure:"deck_auto_backgrounds"`
	AutoLogos       bool   `mapstructure:"deck_auto_logos"`
}

// Assets aponta para a árvore de imagens usada no auto-estilo
// (<dir>/backgrounds e <dir>/logos)
type Assets struct {
	Dir string `mapstructure:"assets_dir"`
}

func SetDefaults() {
	viper.SetDefault("LOG_LEVEL", "info")

	viper.SetDefault("CHART_WIDTH", 60)
	viper.SetDefault("CHART_HEIGHT", 15)

	viper.SetDefault("DECK_COLOR_SCHEME", "feedmob")
	viper.SetDefault("DECK_AUTO_BACKGROUNDS", true)
	viper.SetDefault("DECK_AUTO_LOGOS", true)

	viper.SetDefault("ASSETS_DIR", "assets")
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

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar localizações conhecidas para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debugf("Arquivo .env carregado de: %s", location)
			return
		}
	}
}
