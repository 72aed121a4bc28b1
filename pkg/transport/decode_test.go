package transport

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func response(encoding string, body []byte) *http.Response {
	h := http.Header{}
	if encoding != "" {
		h.Set("Content-Encoding", encoding)
	}
	return &http.Response{Header: h, Body: io.NopCloser(bytes.NewReader(body))}
}

func TestReadBodyPlain(t *testing.T) {
	body, err := ReadBody(response("", []byte(`{"ok":true}`)))
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, string(body))
}

func TestReadBodyGzip(t *testing.T) {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, _ = w.Write([]byte(`{"count":2}`))
	require.NoError(t, w.Close())

	body, err := ReadBody(response("gzip", buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, `{"count":2}`, string(body))
}

func TestReadBodyBrotli(t *testing.T) {
	var buf bytes.Buffer
	w := brotli.NewWriter(&buf)
	_, _ = w.Write([]byte(`{"matches":[]}`))
	require.NoError(t, w.Close())

	body, err := ReadBody(response("br", buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, `{"matches":[]}`, string(body))
}

func TestReadBodyBadGzip(t *testing.T) {
	_, err := ReadBody(response("gzip", []byte("not gzip")))
	assert.Error(t, err)
}
