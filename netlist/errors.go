package netlist

import "errors"

// Sentinel errors for netlist ingestion. All ingestion failures are fatal
// and typed: no partial Netlist is ever returned alongside a non-nil
// error (spec §7, MalformedNetlist).
var (
	// ErrMalformedJSON indicates the input bytes are not valid JSON or do
	// not match the expected {"modules": {...}} shape.
	ErrMalformedJSON = errors.New("netlist: malformed JSON document")

	// ErrModuleNotFound indicates the requested module name is absent
	// from the document's "modules" map.
	ErrModuleNotFound = errors.New("netlist: module not found")

	// ErrUnknownCellType indicates a cell's "type" field is not one of
	// NOT, NOR, BUFF, DFF.
	ErrUnknownCellType = errors.New("netlist: unknown cell type")

	// ErrMissingPin indicates a cell is missing a pin field required by
	// its type (e.g. a non-DFF cell missing "A" or "Y").
	ErrMissingPin = errors.New("netlist: missing pin field")

	// ErrMissingPortBits indicates a port is missing its "bits" field.
	ErrMissingPortBits = errors.New("netlist: port missing bits")

	// ErrUnknownPortDirection indicates a port's "direction" field is
	// neither "input" nor "output".
	ErrUnknownPortDirection = errors.New("netlist: unknown port direction")
)
