package dto

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	validAddress   = "9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin"
	validSignature = "5VERv8NMvzbJMEkV8xnrLkEaWRtSz9CosKDYjCJjBRnbJLgp8uirBgmQpjKhoR4tjF3ZpRzrFmBV6UjKdiSZkQUW"
	validNonce     = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"
)

func bindJSON(t *testing.T, body string, dst any) error {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte(body)))
	c.Request.Header.Set("Content-Type", "application/json")
	return c.ShouldBindJSON(dst)
}

func TestWalletRequest_Valid(t *testing.T) {
	var req WalletRequest
	require.NoError(t, bindJSON(t, `{"walletAddress":"`+validAddress+`"}`, &req))
	assert.Equal(t, validAddress, req.WalletAddress)
}

func TestWalletRequest_RejectsBadAddresses(t *testing.T) {
	for _, addr := range []string{
		"",
		"0x52908400098527886E0F7030069857D2E4169EE7",
		"9xQeWvG816bUx9EPjHmaT23",
		"OOOOOOOOOOOOOOOOOOOOOOOOOOOOOOOOOOOOOOOOOOOO",
	} {
		var req WalletRequest
		err := bindJSON(t, `{"walletAddress":"`+addr+`"}`, &req)
		assert.Error(t, err, addr)
	}
}

func TestSubmitRequest_Valid(t *testing.T) {
	var req SubmitRequest
	body := `{"walletAddress":"` + validAddress + `","signature":"` + validSignature + `","nonce":"` + validNonce + `"}`
	require.NoError(t, bindJSON(t, body, &req))
}

func TestSubmitRequest_RejectsBadSignatureAndNonce(t *testing.T) {
	var req SubmitRequest
	body := `{"walletAddress":"` + validAddress + `","signature":"abc","nonce":"xyz"}`
	err := bindJSON(t, body, &req)
	require.Error(t, err)

	msg := BindingMessage(err)
	assert.Contains(t, msg, "signature must be a valid transaction signature")
	assert.Contains(t, msg, "nonce is malformed")
}

func TestBindingMessage_UsesWireNames(t *testing.T) {
	var req WalletRequest
	err := bindJSON(t, `{}`, &req)
	require.Error(t, err)
	assert.Equal(t, "walletAddress is required", BindingMessage(err))
}

func TestBindingMessage_MalformedJSON(t *testing.T) {
	var req WalletRequest
	err := bindJSON(t, `{"walletAddress":`, &req)
	require.Error(t, err)
	assert.Equal(t, "Malformed request body", BindingMessage(err))
}

func TestWalletQuery_Form(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/?walletAddress="+validAddress, nil)

	var q WalletQuery
	require.NoError(t, c.ShouldBindWith(&q, binding.Query))
	assert.Equal(t, validAddress, q.WalletAddress)
}

func TestTrimStruct(t *testing.T) {
	req := LoginRequest{Username: "  operator ", Password: "pw"}
	TrimStruct(&req)
	assert.Equal(t, "operator", req.Username)

	TrimStruct(req) // non-pointer is a no-op
	s := "  x "
	TrimStruct(&s)
	assert.Equal(t, "  x ", s)
	assert.False(t, strings.HasPrefix(req.Username, " "))
}
