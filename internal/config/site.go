package config

import "os"

// SiteConfig carries the public site root embedded in mail triggers so the
// notifier can build links back to submissions.
type SiteConfig struct {
	Root string
}

func NewSiteConfig() *SiteConfig {
	root := os.Getenv("SITE_ROOT")
	if root == "" {
		root = "http://localhost:8082"
	}
	return &SiteConfig{
		Root: root,
	}
}
