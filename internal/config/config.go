package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Port         string `mapstructure:"PORT"`
	BaseURL      string `mapstructure:"BASE_URL"`
	DatabasePath string `mapstructure:"DATABASE_PATH"`

	AdminUser string `mapstructure:"ADMIN_USER"`
	AdminPass string `mapstructure:"ADMIN_PASS"`

	SMTPHost string `mapstructure:"SMTP_HOST"`
	SMTPPort int    `mapstructure:"SMTP_PORT"`
	SMTPUser string `mapstructure:"SMTP_USER"`
	SMTPPass string `mapstructure:"SMTP_PASS"`
	MailFrom string `mapstructure:"MAIL_FROM"`
	MailCC   string `mapstructure:"MAIL_CC"`

	PDFDir    string `mapstructure:"PDF_DIR"`
	QRDir     string `mapstructure:"QR_DIR"`
	UploadDir string `mapstructure:"UPLOAD_DIR"`
	LogoPath  string `mapstructure:"LOGO_PATH"`

	GoogleCredentialsFile string `mapstructure:"GOOGLE_CREDENTIALS_FILE"`
	GoogleToken           string `mapstructure:"GOOGLE_TOKEN"`
	SpreadsheetID         string `mapstructure:"SPREADSHEET_ID"`
}

func LoadConfig() *Config {
	viper.SetDefault("PORT", "3000")
	viper.SetDefault("BASE_URL", "http://localhost:3000")
	viper.SetDefault("DATABASE_PATH", "submissions.db")
	viper.SetDefault("SMTP_HOST", "smtp.gmail.com")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("MAIL_CC", "taomonlae@gmail.com")
	viper.SetDefault("PDF_DIR", "pdfs")
	viper.SetDefault("QR_DIR", "qr_codes")
	viper.SetDefault("UPLOAD_DIR", "public/uploads")
	viper.SetDefault("LOGO_PATH", "public/logo.png")
	viper.SetDefault("GOOGLE_CREDENTIALS_FILE", "credentials.json")

	viper.BindEnv("ADMIN_USER")
	viper.BindEnv("ADMIN_PASS")
	viper.BindEnv("SMTP_HOST")
	viper.BindEnv("SMTP_PORT")
	viper.BindEnv("SMTP_USER")
	viper.BindEnv("SMTP_PASS")
	viper.BindEnv("MAIL_FROM")
	viper.BindEnv("MAIL_CC")
	viper.BindEnv("BASE_URL")
	viper.BindEnv("GOOGLE_CREDENTIALS_FILE")
	viper.BindEnv("GOOGLE_TOKEN")
	viper.BindEnv("SPREADSHEET_ID")

	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}

	if config.MailFrom == "" {
		config.MailFrom = config.SMTPUser
	}

	return &config
}
