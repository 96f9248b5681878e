package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dmitrijs2005/walletsession/internal/client/wallet"
	"github.com/dmitrijs2005/walletsession/internal/shared"
	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
// In tests you can replace it with a stub to avoid touching the terminal.
var readPassword = term.ReadPassword

// getSecret is a test seam for GetSecret.
var getSecret = GetSecret

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// The trailing newline is trimmed. If EOF occurs after some input was read,
// the partial line is returned.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetSecret prints prompt to w and reads a value from the terminal without
// echo. The returned slice should be wiped by the caller.
func GetSecret(w io.Writer, prompt string) ([]byte, error) {
	if _, err := fmt.Fprint(w, prompt); err != nil {
		return nil, err
	}
	b, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// keyReader returns the modal's source of private keys: the key file when
// one is configured, otherwise a hidden terminal prompt.
func keyReader(path string, w io.Writer) wallet.KeyReader {
	return func(ctx context.Context) (string, error) {
		if path != "" {
			b, err := os.ReadFile(path)
			if err != nil {
				return "", err
			}
			defer shared.WipeByteArray(b)
			return strings.TrimSpace(string(b)), nil
		}

		b, err := getSecret(w, "Enter wallet private key (hex): ")
		if err != nil {
			return "", err
		}
		defer shared.WipeByteArray(b)
		key := strings.TrimSpace(string(b))
		if key == "" {
			return "", errors.New("no key entered")
		}
		return key, nil
	}
}
