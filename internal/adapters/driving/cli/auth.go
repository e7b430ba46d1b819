package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Whil-/confluence-reader/internal/core/domain"
)

var authHost string

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage Confluence credentials",
	Long: `Store and inspect the credentials used for Basic authentication.

Credentials are stored per host in a netrc-style file. The API token is
prompted for without echo.

Examples:
  confluence-reader auth set --host example.atlassian.net
  confluence-reader auth show`,
}

var authSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Store credentials for a host",
	RunE:  runAuthSet,
}

var authShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored credential for the configured host",
	RunE:  runAuthShow,
}

func init() {
	authCmd.PersistentFlags().StringVar(&authHost, "host", "", "Confluence host (defaults to the configured host)")
	authCmd.AddCommand(authSetCmd)
	authCmd.AddCommand(authShowCmd)
	rootCmd.AddCommand(authCmd)
}

// resolveHost picks the flag host or falls back to the configured one.
func resolveHost() (string, error) {
	if authHost != "" {
		return authHost, nil
	}
	if services != nil && services.Host != "" {
		return services.Host, nil
	}
	return "", fmt.Errorf("host: %w", domain.ErrNoHost)
}

func runAuthSet(cmd *cobra.Command, _ []string) error {
	if services == nil {
		return ErrNoServices
	}

	host, err := resolveHost()
	if err != nil {
		return err
	}

	reader := bufio.NewReader(os.Stdin)
	cmd.Printf("Username for %s: ", host)
	username := readLine(reader)
	if username == "" {
		return fmt.Errorf("username: %w", domain.ErrInvalidInput)
	}

	cmd.Print("API token: ")
	secret := readSecret()
	cmd.Println()
	if secret == "" {
		return fmt.Errorf("token: %w", domain.ErrInvalidInput)
	}

	cred := domain.Credential{Username: username, Secret: secret}
	if err := services.Credentials.Store(host, cred); err != nil {
		return fmt.Errorf("store credential: %w", err)
	}

	cmd.Printf("Stored credential for %s\n", host)
	return nil
}

func runAuthShow(cmd *cobra.Command, _ []string) error {
	if services == nil {
		return ErrNoServices
	}

	host, err := resolveHost()
	if err != nil {
		return err
	}

	cred, err := services.Credentials.Lookup(host)
	if err != nil {
		return fmt.Errorf("lookup credential for %s: %w", host, err)
	}

	cmd.Printf("Host:     %s\n", host)
	cmd.Printf("Username: %s\n", cred.Username)
	cmd.Printf("Token:    %s\n", maskSecret(cred.Secret))
	return nil
}

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

// readSecret reads a secret without echo, falling back to a plain read
// when stdin is not a terminal.
//
//nolint:errcheck // CLI helper, error ignored for UX
func readSecret() string {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		secret, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return strings.TrimSpace(string(secret))
		}
	}
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func maskSecret(secret string) string {
	if len(secret) <= 8 {
		return "****"
	}
	return secret[:4] + "..." + secret[len(secret)-4:]
}
