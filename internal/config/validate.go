package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func (c *Config) Validate() error {
	if c.Models.Dir == "" {
		return errors.New("models.dir is required")
	}
	for key, name := range map[string]string{
		"models.spam":      c.Models.Spam,
		"models.language":  c.Models.Language,
		"models.sentiment": c.Models.Sentiment,
		"models.news":      c.Models.News,
	} {
		if name == "" {
			return fmt.Errorf("%s is required", key)
		}
	}

	if c.Assets.Dir == "" {
		return errors.New("assets.dir is required")
	}
	for key, name := range map[string]string{
		"assets.spam_image":     c.Assets.SpamImage,
		"assets.not_spam_image": c.Assets.NotSpamImage,
		"assets.liked_image":    c.Assets.LikedImage,
		"assets.disliked_image": c.Assets.DislikedImage,
		"assets.sidebar_image":  c.Assets.SidebarImage,
	} {
		if name == "" {
			return fmt.Errorf("%s is required", key)
		}
	}

	if c.Server.Port == "" {
		return errors.New("server.port is required")
	}
	switch c.Server.Mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return fmt.Errorf("server.mode %q must be one of debug, release, test", c.Server.Mode)
	}
	if c.Server.MaxUploadBytes <= 0 {
		return errors.New("server.max_upload_bytes must be positive")
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format %q must be text or json", c.Log.Format)
	}

	return nil
}
