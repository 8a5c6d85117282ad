package centurion

// Result reports success or failure of a native call that carries no further information.
//
// It deliberately is not a bool, so it cannot be compared against unrelated booleans.
type Result struct {
	ok bool
}

var (
	Success = Result{ok: true}
	Failure = Result{ok: false}
)

// ResultOf converts a native boolean outcome.
func ResultOf(ok bool) Result {
	return Result{ok: ok}
}

// ResultFromCode converts SDL's "zero or positive on success" status codes.
func ResultFromCode(code int) Result {
	return Result{ok: code >= 0}
}

// ResultFromError converts a Go error.
func ResultFromError(err error) Result {
	return Result{ok: err == nil}
}

func (r Result) Ok() bool     { return r.ok }
func (r Result) Failed() bool { return !r.ok }

func (r Result) String() string {
	if r.ok {
		return "success"
	}
	return "failure"
}
