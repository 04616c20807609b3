package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/countryplug/internal/app"
	"github.com/vk/countryplug/internal/config"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("countryplug", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprintf(output, `
CountryPlug - country-selective capability plugin demonstration.

Usage:
  countryplug [options] [COUNTRY_CODE]

Arguments:
  COUNTRY_CODE
    Country variant to load (e.g. 'cz' or 'hu'). When omitted, the
    %s environment variable is consulted, then the country config file.

Options:
`, config.EnvVar)
		flagSet.PrintDefaults()
	}

	countriesFlag := flagSet.String("countries", "countries.hcl", "Path to the country discovery manifest (file or directory).")
	configFileFlag := flagSet.String("config-file", config.DefaultFilePath, "Path to the country config file consulted as the last source.")
	nameFlag := flagSet.String("name", "World", "Name to greet in the demonstration.")
	logFormatFlag := flagSet.String("log-format", "json", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: "at most one COUNTRY_CODE argument is allowed"}
	}
	countryCode := ""
	if flagSet.NArg() == 1 {
		countryCode = flagSet.Arg(0)
	}
	slog.Debug("Country argument determined.", "country", countryCode)

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	appConfig, err := app.NewConfig(app.Config{
		CountryCode:    countryCode,
		CatalogPath:    *countriesFlag,
		ConfigFilePath: *configFileFlag,
		GreetName:      *nameFlag,
		LogFormat:      logFormat,
		LogLevel:       logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", appConfig)
	return appConfig, false, nil
}
