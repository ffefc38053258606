package dummyserial

// Lookup maps a request written to the port to the response the next read
// returns. whenInvalid is the marker the port was configured with - a lookup
// should return it for requests it cannot answer. The response may be a
// string or a []byte, anything else makes Read fail with
// ErrInvalidResponseType.
type Lookup func(request, whenInvalid string) interface{}

// DefaultLookup is bound to ports constructed without a Lookup of their own.
// It defaults to Echo.
var DefaultLookup Lookup = Echo

// Echo is a placeholder lookup answering every request with itself, and an
// empty request with the when-invalid marker. It nags at warning level until
// replaced by a real lookup.
func Echo(request, whenInvalid string) interface{} {
	Log.Warn("bogus echo lookup in use, please override")
	if request == NoDataPresent {
		return whenInvalid
	}
	return request
}

// Exchange is a single step of a Replay script.
type Exchange struct {
	Expect  string
	Respond interface{}
}

// Replay returns a lookup that walks an ordered script of exchanges,
// answering each expected request with the paired response. Requests out of
// order, or after the script is exhausted, get the when-invalid marker and
// do not advance the script.
func Replay(script []Exchange) Lookup {
	position := 0
	return func(request, whenInvalid string) interface{} {
		if position >= len(script) {
			Log.Errorf("replay script exhausted, got %q", request)
			return whenInvalid
		}
		step := script[position]
		if request != step.Expect {
			Log.Errorf("replay expected %q, got %q", step.Expect, request)
			return whenInvalid
		}
		position++
		return step.Respond
	}
}
