/*
Package server implements msgpack IPC for word prediction services.

The server reads a stream of msgpack encoded requests from stdin and writes
one msgpack encoded response per request to stdout. Right after starting it
writes a status message:

	{"id": "", "status": "ready"}

Autocompletion of a partly typed word:

	{"id": "req_001", "a": "complete", "t": "hel", "l": 3}
	{"id": "req_001", "s": [{"w": "hell", "r": 1}, {"w": "hello", "r": 2}, {"w": "help", "r": 3}], "c": 3, "t": 41}

Next-word prediction uses "a": "next", and "a": "stream" takes the text typed
so far and picks one of the two, see predict.Handle.Stream. "a": "health"
answers with a status message.

Failed requests get an error message with an HTTP-like code:

	{"id": "req_002", "e": "input has more than one word", "c": 400}
*/
package server

// Request is a single prediction request.
type Request struct {
	ID     string `msgpack:"id"`
	Action string `msgpack:"a"`
	Text   string `msgpack:"t"`
	Limit  int    `msgpack:"l,omitempty"`
}

// Suggestion - minimal suggestion response
type Suggestion struct {
	Word string `msgpack:"w"`
	Rank uint16 `msgpack:"r"`
}

// Response carries the suggestions for one request. TimeTaken is in µs.
type Response struct {
	ID          string       `msgpack:"id"`
	Suggestions []Suggestion `msgpack:"s"`
	Count       int          `msgpack:"c"`
	TimeTaken   int64        `msgpack:"t"`
}

// StatusResponse answers health checks and announces readiness.
type StatusResponse struct {
	ID     string `msgpack:"id"`
	Status string `msgpack:"status"`
}

// ErrorResponse holds basic error information for failed requests
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
