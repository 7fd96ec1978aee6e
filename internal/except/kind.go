package except

// Kind classifies a raised error.
type Kind int

const (
	None Kind = iota
	NullArgument
	FileNotFound
	IO
	Format
	Runtime
	Allocation
)

var kindLabels = [...]string{
	None:         "Nothing",
	NullArgument: "Null Argument: ",
	FileNotFound: "File Not Found: ",
	IO:           "IO Error: ",
	Format:       "Format Error: ",
	Runtime:      "Runtime Error: ",
	Allocation:   "Allocation Error: ",
}

var kindNames = [...]string{
	None:         "none",
	NullArgument: "null-argument",
	FileNotFound: "file-not-found",
	IO:           "io",
	Format:       "format",
	Runtime:      "runtime",
	Allocation:   "allocation",
}

// Label is the prefix placed in front of a raised message.
func (k Kind) Label() string {
	if k < 0 || int(k) >= len(kindLabels) {
		return "Unknown Error: "
	}
	return kindLabels[k]
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}
