package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Models struct {
		Dir       string `mapstructure:"dir"`
		Spam      string `mapstructure:"spam"`
		Language  string `mapstructure:"language"`
		Sentiment string `mapstructure:"sentiment"`
		News      string `mapstructure:"news"`
	} `mapstructure:"models"`

	Assets struct {
		Dir           string `mapstructure:"dir"`
		SpamImage     string `mapstructure:"spam_image"`
		NotSpamImage  string `mapstructure:"not_spam_image"`
		LikedImage    string `mapstructure:"liked_image"`
		DislikedImage string `mapstructure:"disliked_image"`
		SidebarImage  string `mapstructure:"sidebar_image"`
	} `mapstructure:"assets"`

	Server struct {
		Addr           string `mapstructure:"addr"`
		Port           string `mapstructure:"port"`
		Mode           string `mapstructure:"mode"` // gin mode: debug, release or test
		MaxUploadBytes int64  `mapstructure:"max_upload_bytes"`
	} `mapstructure:"server"`

	Page struct {
		Title   string   `mapstructure:"title"`
		Contact []string `mapstructure:"contact"` // lines shown under "Contact us"; hidden when empty
	} `mapstructure:"page"`

	Log struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"` // text or json
	} `mapstructure:"log"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("models.dir", "models")
	v.SetDefault("models.spam", "spam.json")
	v.SetDefault("models.language", "lang_det.json")
	v.SetDefault("models.sentiment", "review.json")
	v.SetDefault("models.news", "news_short.json")

	v.SetDefault("assets.dir", "assets")
	v.SetDefault("assets.spam_image", "spam.jpg")
	v.SetDefault("assets.not_spam_image", "not_spam.png")
	v.SetDefault("assets.liked_image", "liked.jpeg")
	v.SetDefault("assets.disliked_image", "images.jpeg")
	v.SetDefault("assets.sidebar_image", "riteshsamridhipics.jpg")

	v.SetDefault("server.addr", "localhost")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.max_upload_bytes", 8<<20)

	v.SetDefault("page.title", "LENS eXpert")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// LoadConfig reads config.yaml from the working directory, if present, and
// overlays LENSX_* environment variables (e.g. LENSX_MODELS_DIR).
func LoadConfig() (*Config, error) {
	return LoadConfigFrom("")
}

// LoadConfigFrom is LoadConfig with an explicit config file. An empty path
// falls back to searching the working directory.
func LoadConfigFrom(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("LENSX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine when searching; defaults and env vars apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

// ModelPath joins the models dir and a file name.
func (c *Config) ModelPath(name string) string {
	return filepath.Join(c.Models.Dir, name)
}

// AssetPath joins the assets dir and a file name.
func (c *Config) AssetPath(name string) string {
	return filepath.Join(c.Assets.Dir, name)
}

// ImagePaths lists every image that must exist at startup.
func (c *Config) ImagePaths() []string {
	return []string{
		c.AssetPath(c.Assets.SpamImage),
		c.AssetPath(c.Assets.NotSpamImage),
		c.AssetPath(c.Assets.LikedImage),
		c.AssetPath(c.Assets.DislikedImage),
		c.AssetPath(c.Assets.SidebarImage),
	}
}
