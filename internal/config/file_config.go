package config

import "strings"

// ImageUploadConfig - ограничения для фото актера (left/center/right)
type ImageUploadConfig struct {
	MaxSize      int64
	AllowedTypes []string
	Quality      int
	MaxDimension int
}

// ImageUpload собирает ограничения загрузки из секции upload
func (c *Config) ImageUpload() ImageUploadConfig {
	return ImageUploadConfig{
		MaxSize:      c.Upload.MaxSize,
		AllowedTypes: c.Upload.AllowedTypes,
		Quality:      c.Upload.ImageQuality,
		MaxDimension: c.Upload.MaxDimension,
	}
}

// IsAllowed проверяет MIME-тип (без параметров вроде charset)
func (u ImageUploadConfig) IsAllowed(contentType string) bool {
	mime := strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0])
	for _, t := range u.AllowedTypes {
		if strings.EqualFold(t, mime) {
			return true
		}
	}
	return false
}
