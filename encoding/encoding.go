// Package encoding offers (de)serialization APIs for puzzle artifacts.
//
// It uses CBOR with a leading version header. Solution sets pack their cells
// as a bitstream.
package encoding

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/blang/semver/v4"
	"github.com/fxamacker/cbor/v2"
	"github.com/icza/bitio"

	binarypuzzle "github.com/Luycia/binary-puzzle"
	"github.com/Luycia/binary-puzzle/logger"
)

// ErrMixedSizes is returned when a solution set holds solutions of differing
// sizes.
var ErrMixedSizes = errors.New("solutions of differing sizes")

type gridBlob struct {
	Size  int
	Cells []cellBlob
}

type cellBlob struct {
	Row   int
	Col   int
	Value uint8
}

type solutionsBlob struct {
	Size  int
	Count int
	Bits  []byte
}

// WriteGrid serializes g into a file
func WriteGrid(path string, g *binarypuzzle.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return SerializeGrid(f, g)
}

// ReadGrid reads and deserializes a grid from a file
func ReadGrid(path string) (*binarypuzzle.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return DeserializeGrid(f)
}

// WriteSolutions serializes a solution set into a file
func WriteSolutions(path string, sols []*binarypuzzle.Solution) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return SerializeSolutions(f, sols)
}

// ReadSolutions reads and deserializes a solution set from a file
func ReadSolutions(path string) ([]*binarypuzzle.Solution, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return DeserializeSolutions(f)
}

// SerializeGrid writes g into the provided writer, version header first
func SerializeGrid(w io.Writer, g *binarypuzzle.Grid) error {
	encoder, err := newEncoder(w)
	if err != nil {
		return err
	}
	if err := encoder.Encode(binarypuzzle.Version.String()); err != nil {
		return err
	}

	fixed := g.Fixed()
	blob := gridBlob{Size: g.Size(), Cells: make([]cellBlob, len(fixed))}
	for i, fc := range fixed {
		blob.Cells[i] = cellBlob{Row: fc.Row, Col: fc.Col, Value: fc.Value}
	}
	return encoder.Encode(blob)
}

// DeserializeGrid reads a grid from the provided reader, checking the
// version header
func DeserializeGrid(r io.Reader) (*binarypuzzle.Grid, error) {
	decoder := cbor.NewDecoder(r)
	if err := checkVersion(decoder); err != nil {
		return nil, err
	}

	var blob gridBlob
	if err := decoder.Decode(&blob); err != nil {
		return nil, err
	}
	g, err := binarypuzzle.New(blob.Size)
	if err != nil {
		return nil, fmt.Errorf("grid artifact: %w", err)
	}
	for _, cell := range blob.Cells {
		if err := g.Fix(cell.Row, cell.Col, cell.Value); err != nil {
			return nil, fmt.Errorf("grid artifact: %w", err)
		}
	}
	return g, nil
}

// SerializeSolutions writes sols into the provided writer. All solutions
// must share one size.
func SerializeSolutions(w io.Writer, sols []*binarypuzzle.Solution) error {
	blob := solutionsBlob{Count: len(sols)}
	if len(sols) > 0 {
		n := sols[0].Size()
		blob.Size = n
		var bits bytes.Buffer
		bw := bitio.NewWriter(&bits)
		for _, s := range sols {
			if s.Size() != n {
				return ErrMixedSizes
			}
			for r := 0; r < n; r++ {
				for c := 0; c < n; c++ {
					if err := bw.WriteBool(s.At(r, c) == 1); err != nil {
						return err
					}
				}
			}
		}
		if err := bw.Close(); err != nil {
			return err
		}
		blob.Bits = bits.Bytes()
	}

	encoder, err := newEncoder(w)
	if err != nil {
		return err
	}
	if err := encoder.Encode(binarypuzzle.Version.String()); err != nil {
		return err
	}
	return encoder.Encode(blob)
}

// DeserializeSolutions reads a solution set from the provided reader
func DeserializeSolutions(r io.Reader) ([]*binarypuzzle.Solution, error) {
	decoder := cbor.NewDecoder(r)
	if err := checkVersion(decoder); err != nil {
		return nil, err
	}

	var blob solutionsBlob
	if err := decoder.Decode(&blob); err != nil {
		return nil, err
	}
	if blob.Count < 0 || blob.Size < 0 {
		return nil, errors.New("malformed solution artifact")
	}
	need := uint64(blob.Count) * uint64(blob.Size) * uint64(blob.Size)
	if (need+7)/8 != uint64(len(blob.Bits)) {
		return nil, errors.New("solution artifact bit count mismatch")
	}

	sols := make([]*binarypuzzle.Solution, 0, blob.Count)
	br := bitio.NewReader(bytes.NewReader(blob.Bits))
	for i := 0; i < blob.Count; i++ {
		rows := make([][]uint8, blob.Size)
		for r := range rows {
			rows[r] = make([]uint8, blob.Size)
			for c := range rows[r] {
				bit, err := br.ReadBool()
				if err != nil {
					return nil, fmt.Errorf("solution artifact: %w", err)
				}
				if bit {
					rows[r][c] = 1
				}
			}
		}
		s, err := binarypuzzle.SolutionFromRows(rows)
		if err != nil {
			return nil, fmt.Errorf("solution artifact: %w", err)
		}
		sols = append(sols, s)
	}
	return sols, nil
}

func newEncoder(w io.Writer) (*cbor.Encoder, error) {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return nil, err
	}
	return em.NewEncoder(w), nil
}

// checkVersion decodes the version header and warns when the artifact was
// written by another minor version.
func checkVersion(decoder *cbor.Decoder) error {
	var header string
	if err := decoder.Decode(&header); err != nil {
		return err
	}
	artifactVersion, err := semver.Parse(header)
	if err != nil {
		return fmt.Errorf("parsing artifact version: %w", err)
	}
	if artifactVersion.Major != binarypuzzle.Version.Major || artifactVersion.Minor != binarypuzzle.Version.Minor {
		log := logger.Logger()
		log.Warn().
			Str("artifact", artifactVersion.String()).
			Str("current", binarypuzzle.Version.String()).
			Msg("artifact version mismatch, no compatibility guarantees")
	}
	return nil
}
