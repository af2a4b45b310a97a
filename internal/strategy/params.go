package strategy

import (
	"math"

	"github.com/rxtech-lab/argo-backtest/pkg/errors"
)

// paramReader walks positional strategy parameters. Omitted trailing
// parameters fall back to their defaults. Values decoded from YAML or JSON
// arrive as float64, int or []any and are converted here.
type paramReader struct {
	tag    string
	params []any
	next   int
	err    error
}

func newParamReader(tag string, params []any) *paramReader {
	return &paramReader{tag: tag, params: params, next: 0, err: nil}
}

func (p *paramReader) take() (any, bool) {
	if p.next >= len(p.params) {
		p.next++

		return nil, false
	}

	value := p.params[p.next]
	p.next++

	return value, value != nil
}

func (p *paramReader) fail(name string, value any, want string) {
	if p.err == nil {
		p.err = errors.Newf(errors.ErrCodeInvalidParameter, "%s parameter %d (%s) must be %s, got %v (%T)", p.tag, p.next, name, want, value, value)
	}
}

func (p *paramReader) float(name string, def float64) float64 {
	raw, ok := p.take()
	if !ok {
		return def
	}

	value, ok := toFloat(raw)
	if !ok {
		p.fail(name, raw, "a number")

		return def
	}

	return value
}

func (p *paramReader) int(name string, def int) int {
	raw, ok := p.take()
	if !ok {
		return def
	}

	value, ok := toInt(raw)
	if !ok {
		p.fail(name, raw, "an integer")

		return def
	}

	return value
}

func (p *paramReader) bool(name string, def bool) bool {
	raw, ok := p.take()
	if !ok {
		return def
	}

	value, ok := raw.(bool)
	if !ok {
		p.fail(name, raw, "a boolean")

		return def
	}

	return value
}

func (p *paramReader) ints(name string, def []int) []int {
	raw, ok := p.take()
	if !ok {
		return def
	}

	switch values := raw.(type) {
	case []int:
		return values
	case []any:
		out := make([]int, 0, len(values))

		for _, v := range values {
			n, ok := toInt(v)
			if !ok {
				p.fail(name, raw, "a list of integers")

				return def
			}

			out = append(out, n)
		}

		return out
	default:
		p.fail(name, raw, "a list of integers")

		return def
	}
}

// done reports the first conversion error, or an error when more parameters
// were given than the strategy accepts.
func (p *paramReader) done() error {
	if p.err != nil {
		return p.err
	}

	if len(p.params) > p.next {
		return errors.Newf(errors.ErrCodeInvalidParameter, "%s accepts at most %d parameters, got %d", p.tag, p.next, len(p.params))
	}

	return nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		if n > math.MaxInt || n < math.MinInt {
			return 0, false
		}

		return int(n), true
	case uint64:
		if n > math.MaxInt {
			return 0, false
		}

		return int(n), true
	case float64:
		// float64(math.MaxInt) is 2^63, which is already out of range
		if n != math.Trunc(n) || n >= float64(math.MaxInt) || n < float64(math.MinInt) {
			return 0, false
		}

		return int(n), true
	default:
		return 0, false
	}
}
