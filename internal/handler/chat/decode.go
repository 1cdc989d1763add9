package chat

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	chatmodel "github.com/littlemoneyschool/tutor/backend/internal/model/chat"
	"github.com/littlemoneyschool/tutor/backend/internal/service/resolver"
)

const (
	// maxBodyBytes bounds what is read of a request body. History past the bound is dropped.
	maxBodyBytes = 1 << 20
	// maxHistoryTurns is how many of the newest decoded turns are kept.
	maxHistoryTurns = 50
)

const (
	fieldMessage = "message"
	fieldHistory = "conversationHistory"
)

// decodeRequest reads a POST /ai-chat body. The message must be a JSON string.
// History is lenient: entries that are not turns are skipped, a non-array value is
// ignored, and a body cut off by the size limit keeps what was read before the cut.
// Blank messages are left for the resolver to reject.
func decodeRequest(r io.Reader) (resolver.Request, bool) {
	dec := json.NewDecoder(r)

	if tok, err := dec.Token(); err != nil || tok != json.Delim('{') {
		return resolver.Request{}, false
	}

	var (
		req        resolver.Request
		hasMessage bool
	)

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return req, hasMessage && truncated(err)
		}
		key, _ := tok.(string)

		switch key {
		case fieldMessage:
			var raw json.RawMessage
			if err := dec.Decode(&raw); err != nil {
				return resolver.Request{}, false
			}
			var text string
			if len(raw) == 0 || raw[0] != '"' || json.Unmarshal(raw, &text) != nil {
				return resolver.Request{}, false
			}
			req.Message = text
			hasMessage = true

		case fieldHistory:
			turns, err := decodeHistory(dec)
			req.History = turns
			if err != nil {
				return req, hasMessage && truncated(err)
			}

		default:
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return req, hasMessage && truncated(err)
			}
		}
	}

	if _, err := dec.Token(); err != nil && !truncated(err) {
		return resolver.Request{}, false
	}
	return req, hasMessage
}

// decodeHistory reads the history value and keeps the newest maxHistoryTurns valid turns.
func decodeHistory(dec *json.Decoder) ([]chatmodel.Turn, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if tok != json.Delim('[') {
		if delim, ok := tok.(json.Delim); ok && delim == '{' {
			return nil, skipObject(dec)
		}
		return nil, nil
	}

	var turns []chatmodel.Turn
	for dec.More() {
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return chatmodel.LastTurns(turns, maxHistoryTurns), err
		}
		var turn chatmodel.Turn
		if json.Unmarshal(raw, &turn) != nil || !turn.Valid() {
			continue
		}
		turns = append(turns, turn)
		if len(turns) > 2*maxHistoryTurns {
			turns = chatmodel.LastTurns(turns, maxHistoryTurns)
		}
	}
	if _, err := dec.Token(); err != nil {
		return chatmodel.LastTurns(turns, maxHistoryTurns), err
	}
	return chatmodel.LastTurns(turns, maxHistoryTurns), nil
}

// skipObject consumes the rest of an object whose opening brace was already read.
func skipObject(dec *json.Decoder) error {
	for dec.More() {
		if _, err := dec.Token(); err != nil {
			return err
		}
		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return err
		}
	}
	_, err := dec.Token()
	return err
}

// truncated reports whether err comes from the body size limit.
func truncated(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}
