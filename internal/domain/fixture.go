package domain

// Expectation is the outcome a fixture is expected to produce when validated.
// It is assigned once, from the directory the fixture was discovered in.
type Expectation int

const (
	// ExpectSuccess marks fixtures under success/ that the validator must accept
	ExpectSuccess Expectation = iota
	// ExpectFailure marks fixtures under fail/ that the validator must reject
	ExpectFailure
)

// Directory names that carry the expectation of the fixtures inside them
const (
	SuccessDir = "success"
	FailDir    = "fail"
)

// Succeeds reports whether a validator run is expected to exit 0
func (e Expectation) Succeeds() bool {
	return e == ExpectSuccess
}

// Dir returns the well-known directory holding fixtures with this expectation
func (e Expectation) Dir() string {
	if e == ExpectSuccess {
		return SuccessDir
	}
	return FailDir
}

func (e Expectation) String() string {
	if e == ExpectSuccess {
		return "success"
	}
	return "failure"
}

// Fixture is a sample input file with a predetermined expected outcome
type Fixture struct {
	Path   string      // Path handed to the validator command
	Name   string      // Path relative to the fixture base directory, e.g. success/a.wexpr
	Expect Expectation // Fixed at discovery time
}
