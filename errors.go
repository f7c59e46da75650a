package xlsxgen

import "fmt"

// ErrorKind is spec.md §7's stable error taxonomy.
type ErrorKind int

const (
	// ErrorKindFileWrite is an underlying I/O failure.
	ErrorKindFileWrite ErrorKind = iota
	// ErrorKindDataProvider means a sheet's data provider returned an error.
	ErrorKindDataProvider
	// ErrorKindXmlGeneration is a logic error building XML; should be
	// unreachable in a correct implementation, reported rather than
	// asserting.
	ErrorKindXmlGeneration
	// ErrorKindEncoding means text could not be encoded in UTF-8.
	ErrorKindEncoding
	// ErrorKindXmlValidation means a generated part would be invalid XML.
	ErrorKindXmlValidation
	// ErrorKindCancelled means cancellation was honored at a sheet boundary.
	ErrorKindCancelled
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorKindFileWrite:
		return "FileWrite"
	case ErrorKindDataProvider:
		return "DataProvider"
	case ErrorKindXmlGeneration:
		return "XmlGeneration"
	case ErrorKindEncoding:
		return "Encoding"
	case ErrorKindXmlValidation:
		return "XmlValidation"
	case ErrorKindCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// GenerationError is the typed error write()/WriteContext returns and the
// one a Failed progress event carries the Kind of. Teacher (adnsv-go-xl)
// returns plain errors built with fmt.Errorf("...: %w", ...) and never
// wraps them in a custom type; GenerationError keeps that wrapping idiom
// but adds spec.md §7's stable Kind taxonomy on top, satisfying
// errors.Is/errors.As the way idiomatic Go libraries do.
type GenerationError struct {
	Kind        ErrorKind
	Description string
	Err         error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("xlsxgen: %s: %s: %v", e.Kind, e.Description, e.Err)
	}
	return fmt.Sprintf("xlsxgen: %s: %s", e.Kind, e.Description)
}

func (e *GenerationError) Unwrap() error { return e.Err }

func newError(kind ErrorKind, description string, err error) *GenerationError {
	return &GenerationError{Kind: kind, Description: description, Err: err}
}
