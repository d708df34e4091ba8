package ts

import (
	"fmt"

	"golang.org/x/xerrors"
)

// ParseError is returned when a TS file cannot be decoded. Line and Column
// point at the position the decoder had reached.
type ParseError struct {
	Message string
	Line    int
	Column  int
	frame   xerrors.Frame
}

func newParseError(line, column int, format string, args ...interface{}) ParseError {
	return ParseError{
		Message: fmt.Sprintf(format, args...),
		Line:    line,
		Column:  column,
		frame:   xerrors.Caller(1),
	}
}

// FormatError prints the position and, in verbose mode, the frame the error
// was created in
func (pe ParseError) FormatError(p xerrors.Printer) error {
	p.Printf("%d:%d: %s", pe.Line, pe.Column, pe.Message)
	pe.frame.Format(p)
	return nil
}

func (pe ParseError) Format(f fmt.State, c rune) {
	xerrors.FormatError(pe, f, c)
}

func (pe ParseError) Error() string {
	return fmt.Sprint(pe)
}

// IsParseError tells us whether err, or anything it wraps, is a ParseError
func IsParseError(err error) bool {
	var parseErr ParseError
	return xerrors.As(err, &parseErr)
}
