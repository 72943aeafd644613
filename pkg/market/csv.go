package market

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/solarquote/solarquote/pkg/types"
)

// ErrWrongLength is returned when a series does not have one value per hour
// of the year.
var ErrWrongLength = errors.New("series must have one value per hour of the year")

// ErrNonFinite is returned for NaN or infinite values.
var ErrNonFinite = errors.New("series values must be finite")

// ReadCSV reads an hourly series such as clearing prices in PLN/kWh or a
// measured load profile in kWh. The value is the
// last column of each row so both "value" and "hour,value" layouts work. A
// first row that does not parse is treated as a header.
func ReadCSV(r io.Reader) ([]float64, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	values := make([]float64, 0, types.HoursPerYear)
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read line %d: %w", line, err)
		}
		if len(rec) == 0 {
			continue
		}
		field := strings.TrimSpace(rec[len(rec)-1])
		p, err := strconv.ParseFloat(field, 64)
		if err != nil {
			if line == 1 {
				continue
			}
			return nil, fmt.Errorf("invalid value on line %d (%q): %w", line, field, err)
		}
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return nil, fmt.Errorf("%w: line %d (%q)", ErrNonFinite, line, field)
		}
		values = append(values, p)
	}
	if len(values) != types.HoursPerYear {
		return nil, fmt.Errorf("%w: got %d", ErrWrongLength, len(values))
	}
	return values, nil
}
