package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/apirocket/rocket/pkg/chat"
	"github.com/apirocket/rocket/pkg/render"
	"github.com/apirocket/rocket/pkg/request"
	"github.com/apirocket/rocket/pkg/tui"
	"github.com/charmbracelet/glamour"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "dev"

var (
	cfgFile     string
	flagMethod  string
	flagURL     string
	flagHeaders []string
	flagData    string
	flagTimeout int
	rootCmd     = &cobra.Command{
		Use:   "rocket",
		Short: "Rocket - build and fire HTTP requests from a chat",
		Long: `Rocket is a conversational HTTP request builder. It walks you through
method, URL, body and headers one message at a time, sends the request and
shows a formatted response. Run it bare for the interactive chat, or pass
--url for a one-shot request from the command line.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Load .env file if it exists (optional, warn if malformed)
			if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
				fmt.Fprintf(os.Stderr, "Warning: Failed to load .env file: %v\n", err)
			}

			// Initialize .rocket folder (runs setup wizard on first run)
			if err := initializeRocketFolder(); err != nil {
				return fmt.Errorf("initializing config folder: %w", err)
			}

			// Re-read config after initialization (first run creates config.json
			// after Viper's initial read, so values would be stale without this)
			_ = viper.ReadInConfig()

			executor, err := buildExecutor(cmd.Context())
			if err != nil {
				return err
			}

			// CLI mode: one-shot request from flags
			if flagURL != "" {
				return runOnce(cmd.Context(), executor)
			}

			// Interactive mode: start the chat TUI
			engine := chat.NewEngine(chat.NewStore(), executor, buildBodyValidator())
			if err := tui.Run(engine); err != nil {
				return fmt.Errorf("running rocket: %w", err)
			}
			return nil
		},
	}
)

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .rocket/config.json)")

	// One-shot CLI flags
	rootCmd.Flags().StringVarP(&flagMethod, "method", "X", "GET", "HTTP method for one-shot mode")
	rootCmd.Flags().StringVarP(&flagURL, "url", "u", "", "Execute a single request against this URL and exit")
	rootCmd.Flags().StringArrayVarP(&flagHeaders, "header", "H", nil, `Request header in "Key: Value" form (repeatable)`)
	rootCmd.Flags().StringVarP(&flagData, "data", "d", "", "JSON request body for one-shot mode")
	rootCmd.Flags().IntVar(&flagTimeout, "timeout", 0, "Request timeout in seconds (overrides config)")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(rocketFolderName)
		viper.SetConfigType("json")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("rocket")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	_ = viper.ReadInConfig()
}

// requestTimeout resolves the timeout: flag beats config beats default.
func requestTimeout() time.Duration {
	if flagTimeout > 0 {
		return time.Duration(flagTimeout) * time.Second
	}
	if seconds := viper.GetInt("timeout_seconds"); seconds > 0 {
		return time.Duration(seconds) * time.Second
	}
	return request.DefaultTimeout
}

// buildExecutor creates the HTTP executor and, when OAuth2 client
// credentials are configured, attaches a default Authorization header.
func buildExecutor(ctx context.Context) (*request.Executor, error) {
	executor := request.NewExecutor(requestTimeout())

	auth := request.AuthConfig{
		TokenURL:     viper.GetString("auth.token_url"),
		ClientID:     viper.GetString("auth.client_id"),
		ClientSecret: viper.GetString("auth.client_secret"),
		Scopes:       viper.GetStringSlice("auth.scopes"),
	}
	if auth.Enabled() {
		bearer, err := request.BearerToken(ctx, auth)
		if err != nil {
			return nil, fmt.Errorf("fetching OAuth2 token: %w", err)
		}
		executor.SetDefaultHeader("Authorization", bearer)
	}

	return executor, nil
}

// buildBodyValidator compiles the optional body schema from config.
func buildBodyValidator() *chat.BodyValidator {
	schemaPath := viper.GetString("body_schema")
	if schemaPath == "" {
		return chat.NewBodyValidator()
	}

	validator, err := chat.NewBodyValidatorWithSchema(schemaPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: body schema ignored: %v\n", err)
		return chat.NewBodyValidator()
	}
	return validator
}

// runOnce validates the flag-built request, executes it and prints the
// rendered outcome through glamour.
func runOnce(ctx context.Context, executor *request.Executor) error {
	method, ok := chat.ParseMethod(strings.ToUpper(flagMethod))
	if !ok {
		return fmt.Errorf("unsupported method %q (use GET, POST, PUT, PATCH or DELETE)", flagMethod)
	}
	if err := chat.ValidateURL(flagURL); err != nil {
		return fmt.Errorf("invalid url %q: %w", flagURL, err)
	}
	if flagData != "" {
		if err := buildBodyValidator().Validate(flagData); err != nil {
			return fmt.Errorf("invalid body: %w", err)
		}
	}

	spec := request.Spec{
		Method:  string(method),
		URL:     flagURL,
		Headers: chat.ParseHeaderBlock(strings.Join(flagHeaders, "\n")),
		Body:    flagData,
	}

	text := render.Format(executor.Execute(ctx, spec))

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		fmt.Println(text) // Fallback to raw output
		return nil
	}

	out, err := renderer.Render(text)
	if err != nil {
		fmt.Println(text) // Fallback
		return nil
	}

	fmt.Print(out)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
