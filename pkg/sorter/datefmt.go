package sorter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lestrrat-go/strftime"
)

// dateSpecs extends the default strftime verbs with the ones chrono-style
// patterns also use.
var dateSpecs = func() strftime.SpecificationSet {
	ss := strftime.NewSpecificationSet()
	set := func(b byte, fn func([]byte, time.Time) []byte) {
		if err := ss.Set(b, strftime.AppendFunc(fn)); err != nil {
			panic(err)
		}
	}
	set('s', func(b []byte, t time.Time) []byte {
		return strconv.AppendInt(b, t.Unix(), 10)
	})
	// %f: nanoseconds since the last whole second, nine digits.
	set('f', func(b []byte, t time.Time) []byte {
		return append(b, zeroPad(t.Nanosecond(), 9)...)
	})
	set('G', func(b []byte, t time.Time) []byte {
		y, _ := t.ISOWeek()
		return append(b, zeroPad(y, 4)...)
	})
	set('g', func(b []byte, t time.Time) []byte {
		y, _ := t.ISOWeek()
		return append(b, zeroPad(y%100, 2)...)
	})
	set('P', func(b []byte, t time.Time) []byte {
		return append(b, t.Format("pm")...)
	})
	set('q', func(b []byte, t time.Time) []byte {
		return strconv.AppendInt(b, int64(t.Month()-1)/3+1, 10)
	})
	// %+: ISO 8601, i.e. %Y-%m-%dT%H:%M:%S%.f%:z.
	set('+', func(b []byte, t time.Time) []byte {
		b = append(b, t.Format("2006-01-02T15:04:05")...)
		b = append(b, fraction(t, 0, true)...)
		return append(b, t.Format("-07:00")...)
	})
	return ss
}()

// dateFormat renders a strftime pattern. Plain verbs go through strftime;
// the padding modifiers (%-d, %_d, %0e), the fractional second forms
// (%.f, %.3f, %6f) and the colon offsets (%:z, %::z) are handled here.
type dateFormat struct {
	parts []func(time.Time) string
}

func compileDateFormat(pattern string) (*dateFormat, error) {
	f := &dateFormat{}
	var plain strings.Builder
	flush := func() error {
		if plain.Len() == 0 {
			return nil
		}
		p, err := newStrftime(plain.String())
		if err != nil {
			return err
		}
		f.parts = append(f.parts, p.FormatString)
		plain.Reset()
		return nil
	}
	add := func(part func(time.Time) string) error {
		if err := flush(); err != nil {
			return err
		}
		f.parts = append(f.parts, part)
		return nil
	}

	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '%' || i+1 >= len(pattern) {
			plain.WriteByte(pattern[i])
			continue
		}
		rest := pattern[i+1:]
		switch c := rest[0]; {
		case c == '-' || c == '_' || c == '0':
			if len(rest) < 2 {
				return nil, fmt.Errorf("incomplete directive %q", pattern[i:])
			}
			verb, err := newStrftime("%" + rest[1:2])
			if err != nil {
				return nil, err
			}
			if err := add(func(t time.Time) string { return repad(c, verb.FormatString(t)) }); err != nil {
				return nil, err
			}
			i += 2
		case c == '.' || c == '3' || c == '6' || c == '9':
			n, digits, dot, err := parseFraction(rest)
			if err != nil {
				return nil, fmt.Errorf("directive %q: %w", pattern[i:], err)
			}
			if err := add(func(t time.Time) string { return fraction(t, digits, dot) }); err != nil {
				return nil, err
			}
			i += n
		case c == ':':
			colons := 1
			if len(rest) > 1 && rest[1] == ':' {
				colons = 2
			}
			if len(rest) <= colons || rest[colons] != 'z' {
				return nil, fmt.Errorf("unknown directive %q", pattern[i:])
			}
			layout := "-07:00"
			if colons == 2 {
				layout = "-07:00:00"
			}
			if err := add(func(t time.Time) string { return t.Format(layout) }); err != nil {
				return nil, err
			}
			i += colons + 1
		default:
			plain.WriteByte('%')
			plain.WriteByte(c)
			i++
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return f, nil
}

func newStrftime(p string) (*strftime.Strftime, error) {
	return strftime.New(p, strftime.WithSpecificationSet(dateSpecs))
}

func (f *dateFormat) Format(t time.Time) string {
	var sb strings.Builder
	for _, part := range f.parts {
		sb.WriteString(part(t))
	}
	return sb.String()
}

// parseFraction reads ".f", ".3f", ".6f", ".9f", "3f", "6f" or "9f" from the
// start of s and returns how many bytes it used.
func parseFraction(s string) (n, digits int, dot bool, err error) {
	if s[n] == '.' {
		dot = true
		n++
	}
	if n < len(s) && (s[n] == '3' || s[n] == '6' || s[n] == '9') {
		digits = int(s[n] - '0')
		n++
	}
	if n >= len(s) || s[n] != 'f' || (!dot && digits == 0) {
		return 0, 0, false, fmt.Errorf("unknown fractional second directive")
	}
	return n + 1, digits, dot, nil
}

// fraction renders the sub-second part of t with the given number of digits.
// digits 0 picks the shortest of 3, 6 or 9 that is exact, or nothing for a
// whole second.
func fraction(t time.Time, digits int, dot bool) string {
	ns := t.Nanosecond()
	if digits == 0 {
		switch {
		case ns == 0:
			return ""
		case ns%1e6 == 0:
			digits = 3
		case ns%1e3 == 0:
			digits = 6
		default:
			digits = 9
		}
	}
	for d := 9; d > digits; d-- {
		ns /= 10
	}
	s := zeroPad(ns, digits)
	if dot {
		return "." + s
	}
	return s
}

// repad changes the padding of a numeric field: '-' drops it, '_' pads with
// spaces, '0' pads with zeros. Non-numeric text is returned as is.
func repad(flag byte, s string) string {
	n := 0
	for n < len(s)-1 && (s[n] == '0' || s[n] == ' ') {
		n++
	}
	if n == len(s) || s[n] < '0' || s[n] > '9' {
		return s
	}
	switch flag {
	case '-':
		return s[n:]
	case '_':
		return strings.Repeat(" ", n) + s[n:]
	}
	return strings.Repeat("0", n) + s[n:]
}

func zeroPad(v, width int) string {
	s := strconv.Itoa(v)
	if len(s) < width {
		s = strings.Repeat("0", width-len(s)) + s
	}
	return s
}
