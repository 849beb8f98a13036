/*
Package server implements msgpack IPC over one trie.

The server reads a stream of msgpack encoded requests from stdin and writes
exactly one msgpack response per request to stdout. Requests are processed
synchronously, in order, with timing info included in suggestion responses.

# IPC

Every request carries an ID that is echoed back, an op and the fields that
op needs:

	{"id": "r1", "op": "insert", "w": "cat"}
	{"id": "r2", "op": "correct", "w": "cot", "k": 1, "l": 10}
	{"id": "r3", "op": "complete", "w": "ca"}
	{"id": "r4", "op": "stats"}

correct and complete answer with suggestions in trie order:

	{"id": "r2", "s": [{"w": "cat", "d": 1, "n": 1}], "c": 1, "t": 12}

d is the number of substituted positions and n how many times the word was
inserted. t is the time taken in microseconds.

insert and remove answer with a status and the new key count:

	{"id": "r1", "status": "ok", "keys": 1}

Failures use a small error shape with an HTTP-like code:

	{"id": "r5", "e": "unknown op: frob", "c": 404}

# Limits

k above the configured max budget is clamped, and an omitted k uses the
default budget. l defaults to the configured max results; 0 means no limit.
*/
package server

// Request is one client message.
type Request struct {
	ID     string `msgpack:"id"`
	Op     string `msgpack:"op"`
	Word   string `msgpack:"w,omitempty"`
	Budget *int   `msgpack:"k,omitempty"`
	Limit  int    `msgpack:"l,omitempty"`
}

// Suggestion - one matched word
type Suggestion struct {
	Word     string `msgpack:"w"`
	Distance int    `msgpack:"d"`
	Count    int    `msgpack:"n"`
}

// Response answers correct and complete requests.
type Response struct {
	ID          string       `msgpack:"id"`
	Suggestions []Suggestion `msgpack:"s"`
	Count       int          `msgpack:"c"`
	TimeTaken   int64        `msgpack:"t"`
}

// StatusResponse answers insert and remove requests.
type StatusResponse struct {
	ID     string `msgpack:"id"`
	Status string `msgpack:"status"`
	Keys   int    `msgpack:"keys"`
}

// StatsResponse answers stats requests.
type StatsResponse struct {
	ID       string `msgpack:"id"`
	Keys     int    `msgpack:"keys"`
	Nodes    int    `msgpack:"nodes"`
	Alphabet string `msgpack:"alphabet"`
	Requests int    `msgpack:"requests"`
}

// ErrorResponse holds basic error information for a failed request
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}

const (
	CodeBadRequest  = 400
	CodeUnknownOp   = 404
	CodeServerError = 500
)

const (
	OpInsert   = "insert"
	OpRemove   = "remove"
	OpCorrect  = "correct"
	OpComplete = "complete"
	OpStats    = "stats"
)
