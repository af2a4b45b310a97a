package datasource

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"math"
	"os"
	"strings"
	"sync"

	"github.com/gocarina/gocsv"

	"github.com/rxtech-lab/argo-backtest/pkg/errors"
)

// priceRow is one line of a price file. Headers are normalized before
// matching, so Date, DATE and date all fill the same field.
type priceRow struct {
	Date  string  `csv:"date"`
	Value float64 `csv:"value"`
}

var headerNormalizerOnce sync.Once

// normalizeHeader lowercases a header and maps the accepted aliases of the
// value column onto "value".
func normalizeHeader(name string) string {
	name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))

	switch name {
	case "price", "close":
		return "value"
	default:
		return name
	}
}

// CSVSource reads a Date,Value price file. The Date column is optional and
// column names are matched case-insensitively.
type CSVSource struct {
	Path string
}

// NewCSVSource creates a source reading the file at path.
func NewCSVSource(path string) *CSVSource {
	return &CSVSource{Path: path}
}

// Describe implements Source.
func (s *CSVSource) Describe() string {
	return s.Path
}

// Load implements Source.
func (s *CSVSource) Load(ctx context.Context) ([]Point, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(errors.ErrCodeDataNotFound, err, "price file %s does not exist", s.Path)
		}

		return nil, errors.Wrapf(errors.ErrCodeDataSourceUnavailable, err, "failed to read price file %s", s.Path)
	}

	return ReadCSV(ctx, bytes.NewReader(data))
}

// ReadCSV parses a Date,Value price table from r. Every value must be a
// positive finite number.
func ReadCSV(ctx context.Context, r io.Reader) ([]Point, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	headerNormalizerOnce.Do(func() {
		gocsv.SetHeaderNormalizer(normalizeHeader)
	})

	var rows []*priceRow
	if err := gocsv.UnmarshalCSV(gocsv.LazyCSVReader(r), &rows); err != nil {
		if stderrors.Is(err, gocsv.ErrEmptyCSVFile) {
			return nil, errors.New(errors.ErrCodeDataNotFound, "price file is empty")
		}

		return nil, errors.Wrap(errors.ErrCodeMarketDataParseFailed, "failed to parse price file", err)
	}

	if len(rows) == 0 {
		return nil, errors.New(errors.ErrCodeDataNotFound, "price file has no rows")
	}

	points := make([]Point, len(rows))

	for i, row := range rows {
		// line 1 is the header
		if !(row.Value > 0) || math.IsInf(row.Value, 1) {
			return nil, errors.Newf(errors.ErrCodeMarketDataParseFailed, "value on line %d must be a positive finite number, got %v", i+2, row.Value)
		}

		points[i] = Point{Date: strings.TrimSpace(row.Date), Value: row.Value}
	}

	return points, nil
}
