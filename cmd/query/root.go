package query

import (
	"crypto/tls"
	"errors"
	"fmt"
	"github.com/colstore/colstore/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

const (
	keyInsecure = "insecure"
	keyTimeout  = "timeout"
)

var (
	QueryCmd = &cobra.Command{
		Use:   "query VERB [name=value ...]",
		Short: "Send a text protocol request to a colstore server",
		Long: `Send one text protocol request and print the response. Values must be URL query escaped.

Examples:
  colstore query CREATE key=user1 name=Alice email=alice%40example.com
  colstore query READ key=user1 versions=true
  colstore query SCAN prefix=user`,
		Args:    cobra.MinimumNArgs(1),
		PreRunE: processConfig,
		RunE:    run,
	}
)

func init() {
	flags := QueryCmd.PersistentFlags()
	flags.String(config.KeyAddress, "127.0.0.1", "Address of the server")
	flags.Int(config.KeyPort, 9443, "Port of the text protocol listener")
	flags.Bool(config.KeyTLS, false, "Connect over TLS")
	flags.Bool(keyInsecure, false, "Skip TLS certificate verification")
	flags.Duration(keyTimeout, 5*time.Second, "Request timeout")
}

func processConfig(cmd *cobra.Command, _ []string) error {
	return viper.BindPFlags(cmd.Flags())
}

func run(cmd *cobra.Command, args []string) error {
	addr := net.JoinHostPort(viper.GetString(config.KeyAddress), strconv.Itoa(viper.GetInt(config.KeyPort)))
	timeout := viper.GetDuration(keyTimeout)
	if timeout <= 0 {
		return errors.New("timeout must be positive")
	}

	response, err := send(addr, strings.Join(args, " "), timeout, tlsConfig())
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(response))
	if strings.HasPrefix(string(response), "ERROR: ") {
		return errors.New(strings.TrimPrefix(string(response), "ERROR: "))
	}
	return nil
}

func tlsConfig() *tls.Config {
	if !viper.GetBool(config.KeyTLS) {
		return nil
	}
	return &tls.Config{
		InsecureSkipVerify: viper.GetBool(keyInsecure),
		MinVersion:         tls.VersionTLS12,
	}
}

// send writes the newline-terminated request and reads the response until the server closes the
// connection.
func send(addr, request string, timeout time.Duration, tlsCfg *tls.Config) ([]byte, error) {
	dialer := &net.Dialer{Timeout: timeout}

	var conn net.Conn
	var err error
	if tlsCfg != nil {
		conn, err = tls.DialWithDialer(dialer, "tcp", addr, tlsCfg)
	} else {
		conn, err = dialer.Dial("tcp", addr)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", addr, err)
	}
	defer conn.Close()

	if err = conn.SetDeadline(time.Now().Add(timeout)); err != nil {
		return nil, err
	}
	if _, err = conn.Write([]byte(request + "\n")); err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	response, err := io.ReadAll(conn)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return response, nil
}
