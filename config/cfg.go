package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/Growth-8020/free-scripts/internal/ads"
	"github.com/Growth-8020/free-scripts/internal/mail"
	"github.com/Growth-8020/free-scripts/internal/report"
	"github.com/Growth-8020/free-scripts/internal/sheets"
	"github.com/Growth-8020/free-scripts/log"
	"github.com/asaskevich/govalidator"
	"github.com/spf13/viper"
)

// Config represents the global configuration for one invocation. It is
// loaded once and passed into the workflows explicitly; nothing reads
// process-wide settings afterwards.
type Config struct {
	Ads    ads.Config    `mapstructure:"ads"`
	Sheets sheets.Config `mapstructure:"sheets"`
	Mailer mail.Config   `mapstructure:"mailer"`
	Logger log.Config    `mapstructure:"logger"`
	Report report.Config `mapstructure:"report"`
}

// LoadConfig loads the configuration from a file and/or environment
// variables. Environment variables take precedence over config file values.
func LoadConfig(cfgFile string) (*Config, error) {
	viper.SetConfigType("toml")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "__", "-", "__"))

	bindEnvVars()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %v", err)
			}
		}
	} else {
		viper.SetConfigName("config")
		viper.AddConfigPath("./config")
		viper.AddConfigPath("$HOME/config/free-scripts")
		viper.AddConfigPath("/etc/free-scripts")
		// Config file is optional, env vars can carry everything.
		_ = viper.ReadInConfig()
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config into struct: %v", err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) validate() error {
	for _, r := range c.Report.Recipients {
		if !govalidator.IsEmail(r) {
			return fmt.Errorf("report.recipients: %q is not a valid email address", r)
		}
	}
	if c.Report.Notify && len(c.Report.Recipients) == 0 {
		return fmt.Errorf("report.notify is enabled but report.recipients is empty")
	}
	if c.Report.HistoryDays < 0 {
		return fmt.Errorf("report.history_days must not be negative, got %d", c.Report.HistoryDays)
	}
	return nil
}

// bindEnvVars binds environment variables to config keys so flat env names
// work alongside nested config file keys.
func bindEnvVars() {
	// Ads API
	viper.BindEnv("ads.developer_token", "ADS_DEVELOPER_TOKEN")
	viper.BindEnv("ads.customer_id", "ADS_CUSTOMER_ID")
	viper.BindEnv("ads.login_customer_id", "ADS_LOGIN_CUSTOMER_ID")
	viper.BindEnv("ads.client_id", "ADS_CLIENT_ID")
	viper.BindEnv("ads.client_secret", "ADS_CLIENT_SECRET")
	viper.BindEnv("ads.refresh_token", "ADS_REFRESH_TOKEN")
	viper.BindEnv("ads.endpoint", "ADS_ENDPOINT")
	viper.BindEnv("ads.http_timeout", "ADS_HTTP_TIMEOUT")

	// Sheets
	viper.BindEnv("sheets.spreadsheet_id", "SHEETS_SPREADSHEET_ID")
	viper.BindEnv("sheets.credentials_json", "SHEETS_CREDENTIALS_JSON")

	// Mailer
	viper.BindEnv("mailer.sendgrid_api_key", "MAILER_SENDGRID_API_KEY")
	viper.BindEnv("mailer.from_email", "MAILER_FROM_EMAIL")
	viper.BindEnv("mailer.from_email_name", "MAILER_FROM_EMAIL_NAME")
	viper.BindEnv("mailer.reply_to", "MAILER_REPLY_TO")

	// Logger
	viper.BindEnv("logger.level", "LOG_LEVEL")
	viper.BindEnv("logger.add_source", "LOG_ADD_SOURCE")

	// Report
	viper.BindEnv("report.account_name", "REPORT_ACCOUNT_NAME")
	viper.BindEnv("report.date_range", "REPORT_DATE_RANGE")
	viper.BindEnv("report.start_date", "REPORT_START_DATE")
	viper.BindEnv("report.end_date", "REPORT_END_DATE")
	viper.BindEnv("report.history_days", "REPORT_HISTORY_DAYS")
	viper.BindEnv("report.enabled_campaigns_only", "REPORT_ENABLED_CAMPAIGNS_ONLY")
	viper.BindEnv("report.min_impressions", "REPORT_MIN_IMPRESSIONS")
	viper.BindEnv("report.notify", "REPORT_NOTIFY")
	viper.BindEnv("report.recipients", "REPORT_RECIPIENTS")
	viper.BindEnv("report.reports", "REPORT_REPORTS")
}
