package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptureWriterOversizedBodyNotCacheable(t *testing.T) {
	rec := httptest.NewRecorder()
	cw := &captureWriter{ResponseWriter: rec, status: http.StatusOK, limit: 5}

	_, err := cw.Write([]byte("hello"))
	require.NoError(t, err)
	_, err = cw.Write([]byte(" world, this will not fit"))
	require.NoError(t, err)

	// The client always receives the full body.
	assert.Equal(t, "hello world, this will not fit", rec.Body.String())
	// The capture holds only a prefix, so the response is marked
	// uncacheable rather than stored truncated.
	assert.Equal(t, "hello", cw.buf.String())
	assert.True(t, cw.overflowed())
}

func TestCaptureWriterBodyAtLimitIsCacheable(t *testing.T) {
	rec := httptest.NewRecorder()
	cw := &captureWriter{ResponseWriter: rec, status: http.StatusOK, limit: 5}

	_, err := cw.Write([]byte("12345"))
	require.NoError(t, err)

	assert.Equal(t, "12345", cw.buf.String())
	assert.False(t, cw.overflowed())
}

func TestCaptureWriterUnlimited(t *testing.T) {
	rec := httptest.NewRecorder()
	cw := &captureWriter{ResponseWriter: rec, status: http.StatusOK}

	_, err := cw.Write([]byte("anything goes"))
	require.NoError(t, err)

	assert.Equal(t, "anything goes", cw.buf.String())
	assert.False(t, cw.overflowed())
}

func TestPayloadRoundTrip(t *testing.T) {
	hdr := http.Header{"Content-Type": []string{"application/json"}}
	payload, err := encodePayload(http.StatusOK, hdr, []byte(`{"ok":true}`))
	require.NoError(t, err)

	status, gotHdr, body, ok := decodePayload(payload)
	require.True(t, ok)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "application/json", gotHdr.Get("Content-Type"))
	assert.Equal(t, `{"ok":true}`, string(body))
}
