package server

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/bastiangx/wordtrie/internal/utils"
	"github.com/bastiangx/wordtrie/pkg/config"
	"github.com/bastiangx/wordtrie/pkg/trie"
)

func budget(k int) *int { return &k }

// session encodes reqs, serves them and returns a decoder over the replies.
func session(t *testing.T, opts Options, reqs ...Request) (*msgpack.Decoder, *trie.Trie, error) {
	t.Helper()
	var in bytes.Buffer
	enc := msgpack.NewEncoder(&in)
	for _, req := range reqs {
		require.NoError(t, enc.Encode(req))
	}

	tr := trie.New()
	var out bytes.Buffer
	srv := NewServer(tr, utils.NewWordFilter(tr.Alphabet(), 64, true), opts, &in, &out)
	err := srv.Start()
	return msgpack.NewDecoder(&out), tr, err
}

func next[T any](t *testing.T, dec *msgpack.Decoder) T {
	t.Helper()
	var v T
	require.NoError(t, dec.Decode(&v))
	return v
}

func words(s []Suggestion) []string {
	res := make([]string, len(s))
	for i, sg := range s {
		res[i] = sg.Word
	}
	return res
}

var seed = []Request{
	{ID: "i1", Op: OpInsert, Word: "cat"},
	{ID: "i2", Op: OpInsert, Word: "cap"},
	{ID: "i3", Op: OpInsert, Word: "car"},
	{ID: "i4", Op: OpInsert, Word: "dog"},
}

func TestSession(t *testing.T) {
	reqs := append([]Request{}, seed...)
	reqs = append(reqs,
		Request{ID: "c1", Op: OpCorrect, Word: "cot", Budget: budget(1)},
		Request{ID: "c2", Op: OpCorrect, Word: "Cat"},
		Request{ID: "p1", Op: OpComplete, Word: "ca", Limit: 2},
		Request{ID: "p2", Op: OpComplete},
		Request{ID: "r1", Op: OpRemove, Word: "cat"},
		Request{ID: "s1", Op: OpStats},
	)
	dec, _, err := session(t, Options{DefaultBudget: 1, MaxBudget: 8}, reqs...)
	require.NoError(t, err)

	for i := 1; i <= 4; i++ {
		status := next[StatusResponse](t, dec)
		assert.Equal(t, "ok", status.Status)
		assert.Equal(t, i, status.Keys)
	}

	resp := next[Response](t, dec)
	assert.Equal(t, "c1", resp.ID)
	assert.Equal(t, []Suggestion{{Word: "cat", Distance: 1, Count: 1}}, resp.Suggestions)
	assert.Equal(t, 1, resp.Count)

	resp = next[Response](t, dec)
	assert.Equal(t, "c2", resp.ID)
	assert.Equal(t, []Suggestion{
		{Word: "cap", Distance: 1, Count: 1},
		{Word: "car", Distance: 1, Count: 1},
		{Word: "cat", Distance: 0, Count: 1},
	}, resp.Suggestions, "omitted budget uses the default")

	resp = next[Response](t, dec)
	assert.Equal(t, []string{"cap", "car"}, words(resp.Suggestions))

	resp = next[Response](t, dec)
	assert.Equal(t, []string{"cap", "car", "cat", "dog"}, words(resp.Suggestions))

	status := next[StatusResponse](t, dec)
	assert.Equal(t, "r1", status.ID)
	assert.Equal(t, 3, status.Keys)

	stats := next[StatsResponse](t, dec)
	assert.Equal(t, StatsResponse{
		ID:       "s1",
		Keys:     3,
		Nodes:    8,
		Alphabet: trie.DefaultSymbols,
		Requests: 10,
	}, stats)
}

func TestBudgetClamp(t *testing.T) {
	reqs := append([]Request{}, seed...)
	reqs = append(reqs, Request{ID: "c", Op: OpCorrect, Word: "dog", Budget: budget(9)})

	dec, _, err := session(t, Options{MaxBudget: 2}, reqs...)
	require.NoError(t, err)
	for range seed {
		next[StatusResponse](t, dec)
	}
	resp := next[Response](t, dec)
	assert.Equal(t, []string{"dog"}, words(resp.Suggestions))

	dec, _, err = session(t, Options{}, reqs...)
	require.NoError(t, err)
	for range seed {
		next[StatusResponse](t, dec)
	}
	resp = next[Response](t, dec)
	assert.Equal(t, []string{"cap", "car", "cat", "dog"}, words(resp.Suggestions))
}

func TestNegativeBudget(t *testing.T) {
	dec, _, err := session(t, Options{}, seed[0], Request{ID: "c", Op: OpCorrect, Word: "cat", Budget: budget(-1)})
	require.NoError(t, err)
	next[StatusResponse](t, dec)
	resp := next[Response](t, dec)
	assert.Empty(t, resp.Suggestions)
	assert.Equal(t, 0, resp.Count)
}

func TestLimit(t *testing.T) {
	reqs := append([]Request{}, seed...)
	reqs = append(reqs,
		Request{ID: "a", Op: OpComplete},
		Request{ID: "b", Op: OpComplete, Limit: 1},
		Request{ID: "c", Op: OpComplete, Limit: 10},
	)
	dec, _, err := session(t, Options{MaxResults: 3}, reqs...)
	require.NoError(t, err)
	for range seed {
		next[StatusResponse](t, dec)
	}
	assert.Equal(t, 3, next[Response](t, dec).Count)
	assert.Equal(t, 1, next[Response](t, dec).Count)
	assert.Equal(t, 3, next[Response](t, dec).Count)
}

func TestErrors(t *testing.T) {
	dec, tr, err := session(t, Options{},
		Request{ID: "bad", Op: OpInsert, Word: "c4t"},
		Request{ID: "long", Op: OpInsert, Word: string(bytes.Repeat([]byte("a"), 65))},
		Request{ID: "op", Op: "frob"},
		Request{ID: "ok", Op: OpInsert, Word: "cat"},
	)
	require.NoError(t, err)

	e := next[ErrorResponse](t, dec)
	assert.Equal(t, "bad", e.ID)
	assert.Equal(t, CodeBadRequest, e.Code)

	e = next[ErrorResponse](t, dec)
	assert.Equal(t, "long", e.ID)
	assert.Equal(t, CodeBadRequest, e.Code)

	e = next[ErrorResponse](t, dec)
	assert.Equal(t, "op", e.ID)
	assert.Equal(t, CodeUnknownOp, e.Code)
	assert.Contains(t, e.Error, "frob")

	assert.Equal(t, "ok", next[StatusResponse](t, dec).ID)
	assert.Equal(t, 1, tr.Len())
}

func TestEmptyWord(t *testing.T) {
	dec, tr, err := session(t, Options{},
		Request{ID: "1", Op: OpInsert},
		Request{ID: "2", Op: OpRemove},
		Request{ID: "3", Op: OpRemove},
	)
	require.NoError(t, err)
	assert.Equal(t, 1, next[StatusResponse](t, dec).Keys)
	assert.Equal(t, 0, next[StatusResponse](t, dec).Keys)
	assert.Equal(t, 0, next[StatusResponse](t, dec).Keys)
	assert.Equal(t, 1, tr.Nodes())
}

func TestMalformedInput(t *testing.T) {
	tr := trie.New()
	var out bytes.Buffer
	srv := NewServer(tr, utils.NewWordFilter(tr.Alphabet(), 0, false), Options{}, bytes.NewReader([]byte{0xc1}), &out)

	assert.Error(t, srv.Start())
	var e ErrorResponse
	require.NoError(t, msgpack.Unmarshal(out.Bytes(), &e))
	assert.Equal(t, CodeBadRequest, e.Code)
}

func TestEmptyInput(t *testing.T) {
	dec, _, err := session(t, Options{})
	require.NoError(t, err)
	var v any
	assert.Error(t, dec.Decode(&v), "no request, no response")
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Server.MaxBudget = 3
	cfg.Server.MaxResults = 20
	assert.Equal(t, Options{DefaultBudget: cfg.CLI.DefaultBudget, MaxBudget: 3, MaxResults: 20}, OptionsFromConfig(cfg))
}
