// Package token obtains the Joplin API token from a local file, prompting
// the user and persisting the answer when the file is absent.
package token

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dinayuil/joplin-to-hexo/internal/apperr"
)

// Load reads the token from path. When the file is missing or empty the
// user is prompted on in/out and the entered token is persisted to path for
// the next run. Failure to persist is logged, not fatal.
func Load(path string, in io.Reader, out io.Writer, logger *slog.Logger) (string, error) {
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if tok := strings.TrimSpace(string(data)); tok != "" {
			return tok, nil
		}
		logger.Warn("token file is empty", slog.String("path", path))
	case !errors.Is(err, os.ErrNotExist):
		return "", fmt.Errorf("token: read %s: %w", path, err)
	}

	fmt.Fprintln(out, "--- Joplin API Token Setup ---")
	fmt.Fprintln(out, "The token is shown in Joplin under Tools > Options > Web Clipper.")
	fmt.Fprintln(out, "Make sure the Web Clipper service is enabled.")
	fmt.Fprint(out, "Paste the token and press Enter: ")

	var tok string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		tok = strings.TrimSpace(scanner.Text())
		if tok != "" {
			break
		}
		fmt.Fprint(out, "Token cannot be empty, try again: ")
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("token: read input: %w", err)
	}
	if tok == "" {
		return "", apperr.ErrTokenMissing
	}

	if err := os.WriteFile(path, []byte(tok+"\n"), 0o600); err != nil {
		logger.Warn("could not persist token", slog.String("path", path), slog.String("error", err.Error()))
	} else {
		logger.Info("token saved for future runs", slog.String("path", path))
	}
	return tok, nil
}
