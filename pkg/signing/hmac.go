package signing

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"

	perrors "github.com/pkg/errors"
)

// BuildHMACSignature produces the Level 2 request signature: HMAC-SHA256 over
// timestamp + method + path + JSON body, keyed with the base64url-decoded API
// secret and encoded back to base64url.
func BuildHMACSignature(secret string, timestamp int64, method, requestPath string, body interface{}) (string, error) {
	decodedSecret, err := base64.URLEncoding.DecodeString(secret)
	if err != nil {
		return "", perrors.Wrap(err, "decode api secret")
	}

	message := fmt.Sprintf("%d%s%s", timestamp, method, requestPath)
	if body != nil {
		bodyJSON, err := json.Marshal(body)
		if err != nil {
			return "", perrors.Wrap(err, "marshal request body")
		}
		message += string(bodyJSON)
	}

	h := hmac.New(sha256.New, decodedSecret)
	h.Write([]byte(message))

	return base64.URLEncoding.EncodeToString(h.Sum(nil)), nil
}
