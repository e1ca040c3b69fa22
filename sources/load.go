package sources

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/reusee/e5"
	"github.com/reusee/terse/logs"
	"github.com/reusee/terse/nets"
	"github.com/reusee/terse/tokens"
)

var wrap = e5.Wrap.With(e5.WrapStacktrace)

var ErrNotText = errors.New("program is not utf-8 text")

// Stdin is read for the - reference.
type Stdin io.Reader

func (Module) Stdin() Stdin {
	return os.Stdin
}

// Load reads a program from a file path, an http(s) URL, or - for stdin.
type Load func(ctx context.Context, ref string) (*tokens.Source, error)

func (Module) Load(
	client nets.HTTPClient,
	stdin Stdin,
	logger logs.Logger,
) Load {
	return func(ctx context.Context, ref string) (*tokens.Source, error) {
		var content []byte
		var err error
		switch {
		case ref == "-":
			content, err = io.ReadAll(stdin)
		case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
			content, err = fetch(ctx, client, ref)
		default:
			content, err = os.ReadFile(ref)
		}
		if err != nil {
			return nil, wrap(fmt.Errorf("load %s: %w", ref, err))
		}
		if !utf8.Valid(content) {
			return nil, fmt.Errorf("%w: %s", ErrNotText, ref)
		}
		logger.DebugContext(ctx, "source loaded", "ref", ref, "bytes", len(content))
		return tokens.NewSource(ref, string(content)), nil
	}
}

func fetch(ctx context.Context, client nets.HTTPClient, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: %s", url, resp.Status)
	}
	return io.ReadAll(resp.Body)
}
