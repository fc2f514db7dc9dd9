package errors

import (
	"fmt"
	"strings"
)

// Append clubs together all provided errors. Nil values are ignored and
// nested groups are flattened.
//
// If no non-nil error is provided, nil is returned. If exactly one error is
// left, it is returned as it is.
func Append(errs ...error) error {
	var all multiErr
	for _, err := range errs {
		if errIsNil(err) {
			continue
		}
		if m, ok := err.(multiErr); ok {
			all = append(all, m...)
			continue
		}
		all = append(all, err)
	}

	switch len(all) {
	case 0:
		return nil
	case 1:
		return all[0]
	default:
		return all
	}
}

// multiErr groups several errors. It is returned by Append when more than one
// error is provided.
type multiErr []error

var (
	_ coder    = multiErr(nil)
	_ unpacker = multiErr(nil)
	_ error    = multiErr(nil)
)

func (errs multiErr) Error() string {
	if len(errs) == 1 {
		return fmt.Sprintf("1 error occurred:\n\t* %s\n\n", errs[0])
	}

	points := make([]string, len(errs))
	for i, err := range errs {
		points[i] = fmt.Sprintf("* %s", err)
	}

	return fmt.Sprintf(
		"%d errors occurred:\n\t%s\n\n",
		len(errs), strings.Join(points, "\n\t"))
}

// Unpack implements the unpacker interface.
func (errs multiErr) Unpack() []error {
	return errs
}

// ABCICode returns the code of the first error, consistent with a fail fast
// approach.
func (errs multiErr) ABCICode() uint32 {
	if len(errs) == 0 {
		return SuccessABCICode
	}
	return abciCode(errs[0])
}
