package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubSigner struct {
	signed string
	url    string
	err    error
}

func (s *stubSigner) SignPut(ctx context.Context, fileName, fileType string) (string, string, error) {
	return s.signed, s.url, s.err
}

func TestSignUploadReturnsBothURLs(t *testing.T) {
	h := NewStorageHandler(&stubSigner{
		signed: "https://bucket.s3.amazonaws.com/abc-cat.png?X-Amz-Signature=sig",
		url:    "https://bucket.s3.amazonaws.com/abc-cat.png",
	})
	c, rec := newJSONContext(t, http.MethodGet, "/api/aws/sign-s3?file-name=cat.png&file-type=image/png", "")

	require.NoError(t, h.SignUpload(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"signedRequest"`)
	require.Contains(t, rec.Body.String(), `"url":"https://bucket.s3.amazonaws.com/abc-cat.png"`)
}

func TestSignUploadRequiresFileParams(t *testing.T) {
	h := NewStorageHandler(&stubSigner{})
	c, rec := newJSONContext(t, http.MethodGet, "/api/aws/sign-s3?file-name=cat.png", "")

	require.NoError(t, h.SignUpload(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), `"file-type"`)
}

func TestSignUploadFailureIsServiceUnavailable(t *testing.T) {
	h := NewStorageHandler(&stubSigner{err: errors.New("presign: no credentials")})
	c, rec := newJSONContext(t, http.MethodGet, "/api/aws/sign-s3?file-name=cat.png&file-type=image/png", "")

	require.NoError(t, h.SignUpload(c))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.Contains(t, rec.Body.String(), "could not sign upload")
}
