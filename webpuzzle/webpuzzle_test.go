package webpuzzle

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// puzzleHTML renders a page fragment in the site's shape: one celpar
// paragraph per cell, &nbsp; for empty ones.
func puzzleHTML(n int, cells map[int]string) string {
	var sb strings.Builder
	sb.WriteString("<html><body><div id=\"puzzelpapier\">")
	for k := 1; k <= n*n; k++ {
		fmt.Fprintf(&sb, "<p id=\"celpar_%d\" class=\"celpar\">", k)
		if v, ok := cells[k-1]; ok {
			sb.WriteString(v)
		} else {
			sb.WriteString("&nbsp;")
		}
		sb.WriteString("</p>")
	}
	sb.WriteString("</div></body></html>")
	return sb.String()
}

func TestFetchValidation(t *testing.T) {
	ctx := context.Background()

	_, err := Fetch(ctx, 7, Easy, 0)
	require.ErrorIs(t, err, ErrBadSize)

	_, err = Fetch(ctx, 6, 0, 0)
	require.ErrorIs(t, err, ErrBadDifficulty)

	_, err = Fetch(ctx, 6, VeryHard+1, 0)
	require.ErrorIs(t, err, ErrBadDifficulty)

	_, err = Fetch(ctx, 6, Easy, -1)
	require.ErrorIs(t, err, ErrBadIndex)

	_, err = Fetch(ctx, 6, Easy, 200)
	require.ErrorIs(t, err, ErrBadIndex)
}

func TestParseCells(t *testing.T) {
	page := puzzleHTML(6, map[int]string{
		0:  "0",
		7:  "1",
		35: "1",
	})

	g, err := parseCells(strings.NewReader(page), 6)
	require.NoError(t, err)
	require.Equal(t, 3, g.NbFixed())

	v, fixed := g.At(0, 0)
	require.True(t, fixed)
	require.EqualValues(t, 0, v)

	v, fixed = g.At(1, 1)
	require.True(t, fixed)
	require.EqualValues(t, 1, v)

	v, fixed = g.At(5, 5)
	require.True(t, fixed)
	require.EqualValues(t, 1, v)

	_, fixed = g.At(2, 3)
	require.False(t, fixed)
}

func TestParseCellsWrongCount(t *testing.T) {
	page := puzzleHTML(6, nil)

	_, err := parseCells(strings.NewReader(page), 8)
	require.ErrorContains(t, err, "36 cells, want 64")
}

func TestParseCellsGarbage(t *testing.T) {
	page := puzzleHTML(6, map[int]string{4: "x"})

	_, err := parseCells(strings.NewReader(page), 6)
	require.ErrorContains(t, err, `cell 5 holds "x"`)
}

func TestClientFetch(t *testing.T) {
	var query string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		fmt.Fprint(w, puzzleHTML(6, map[int]string{2: "1", 13: "0"}))
	}))
	defer srv.Close()

	c := Client{BaseURL: srv.URL}
	g, err := c.Fetch(context.Background(), 6, Medium, 41)
	require.NoError(t, err)
	require.Equal(t, "size=6&level=2&nr=42", query)
	require.Equal(t, 6, g.Size())
	require.Equal(t, 2, g.NbFixed())
}

func TestClientFetchRetries(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		if hits < 3 {
			http.Error(w, "busy", http.StatusServiceUnavailable)
			return
		}
		fmt.Fprint(w, puzzleHTML(6, map[int]string{0: "1"}))
	}))
	defer srv.Close()

	c := Client{BaseURL: srv.URL, Attempts: 3}
	g, err := c.Fetch(context.Background(), 6, Easy, 0)
	require.NoError(t, err)
	require.Equal(t, 3, hits)
	require.Equal(t, 1, g.NbFixed())
}

func TestClientFetchExhaustsRetries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "busy", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := Client{BaseURL: srv.URL, Attempts: 2}
	_, err := c.Fetch(context.Background(), 6, Easy, 0)
	require.ErrorContains(t, err, "503")
}

func TestDifficultyString(t *testing.T) {
	require.Equal(t, "easy", Easy.String())
	require.Equal(t, "very hard", VeryHard.String())
	require.Equal(t, "unknown", Difficulty(9).String())
}
