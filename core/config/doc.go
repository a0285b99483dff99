// Package config provides configuration management for fleet-ledger.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file in the working directory.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Log: Logging level and format
//   - Storage: Optional root directory confining input and output paths
//   - Capture: Sentinel prefixes identifying payloads inside HAR archives
//   - Report: Grand fleet label, duplicate-name separator, activity window
//
// Defaults come from the `default` struct tags. Every key can be overridden
// by its upper-cased environment variable, e.g. REPORT_GRAND_FLEET_NAME.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Report.GrandFleetName)
package config
