// Package webpuzzle fetches puzzle instances from binarypuzzle.com.
//
// The site publishes 200 puzzles per size and difficulty. Cells live in
// <p id="celpar_N"> elements in row-major order; a blank cell marks an
// empty one.
package webpuzzle

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/avast/retry-go/v4"

	binarypuzzle "github.com/Luycia/binary-puzzle"
	"github.com/Luycia/binary-puzzle/logger"
)

var (
	// ErrBadSize is returned for sizes the site does not publish.
	ErrBadSize = errors.New("unsupported puzzle size")

	// ErrBadDifficulty is returned for difficulty levels outside Easy..VeryHard.
	ErrBadDifficulty = errors.New("unknown difficulty level")

	// ErrBadIndex is returned for puzzle indices outside 0..199.
	ErrBadIndex = errors.New("puzzle index out of range")
)

// Difficulty selects one of the site's difficulty levels.
type Difficulty int

const (
	Easy Difficulty = iota + 1
	Medium
	Hard
	VeryHard
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	case VeryHard:
		return "very hard"
	default:
		return "unknown"
	}
}

const (
	defaultBaseURL  = "https://www.binarypuzzle.com/puzzles.php"
	defaultAttempts = 3
)

// Client fetches puzzles from binarypuzzle.com. The zero value is ready to
// use and relies on http.DefaultClient.
type Client struct {
	// HTTP is the client used for requests. Nil means http.DefaultClient.
	HTTP *http.Client

	// BaseURL overrides the puzzle endpoint, mainly for tests.
	BaseURL string

	// Attempts bounds the tries on transient failures. Zero means 3.
	Attempts uint
}

// Fetch downloads the puzzle identified by size, difficulty and index.
// Supported sizes are 6, 8, 10, 12 and 14; index runs from 0 to 199.
// Transient failures are retried up to c.Attempts times.
func (c *Client) Fetch(ctx context.Context, size int, d Difficulty, index int) (*binarypuzzle.Grid, error) {
	switch size {
	case 6, 8, 10, 12, 14:
	default:
		return nil, ErrBadSize
	}
	if d < Easy || d > VeryHard {
		return nil, ErrBadDifficulty
	}
	if index < 0 || index > 199 {
		return nil, ErrBadIndex
	}

	// the site numbers puzzles from 1
	url := fmt.Sprintf("%s?size=%d&level=%d&nr=%d", c.baseURL(), size, int(d), index+1)
	log := logger.Logger()

	var g *binarypuzzle.Grid
	err := retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
			if err != nil {
				return retry.Unrecoverable(err)
			}
			resp, err := c.httpClient().Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("fetching %s: status %s", url, resp.Status)
			}
			g, err = parseCells(resp.Body, size)
			return err
		},
		retry.Attempts(c.attempts()),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Warn().Uint("attempt", n).Err(err).Msg("puzzle fetch failed, retrying")
		}),
	)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Int("size", size).
		Stringer("difficulty", d).
		Int("index", index).
		Int("clues", g.NbFixed()).
		Msg("fetched puzzle")
	return g, nil
}

// Fetch downloads a puzzle using a zero value Client.
func Fetch(ctx context.Context, size int, d Difficulty, index int) (*binarypuzzle.Grid, error) {
	var c Client
	return c.Fetch(ctx, size, d, index)
}

// parseCells scans the puzzle page for cell paragraphs, in row-major
// document order, and turns them into a grid.
func parseCells(r io.Reader, n int) (*binarypuzzle.Grid, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing puzzle page: %w", err)
	}

	cells := doc.Find("p[id^=celpar_]")
	if cells.Length() != n*n {
		return nil, fmt.Errorf("puzzle page has %d cells, want %d", cells.Length(), n*n)
	}

	g, err := binarypuzzle.New(n)
	if err != nil {
		return nil, err
	}
	var parseErr error
	cells.EachWithBreak(func(i int, sel *goquery.Selection) bool {
		// TrimSpace also strips the site's non-breaking spaces
		switch text := strings.TrimSpace(sel.Text()); text {
		case "":
		case "0", "1":
			parseErr = g.Fix(i/n, i%n, text[0]-'0')
		default:
			parseErr = fmt.Errorf("cell %d holds %q, want 0, 1 or empty", i+1, text)
		}
		return parseErr == nil
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return g, nil
}

func (c *Client) baseURL() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return defaultBaseURL
}

func (c *Client) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return http.DefaultClient
}

func (c *Client) attempts() uint {
	if c.Attempts > 0 {
		return c.Attempts
	}
	return defaultAttempts
}
