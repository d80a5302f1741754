package controllers

import (
	"crypto/sha1"
	"encoding/hex"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// MediaSettings carries the upload-provider credentials used to sign direct
// browser uploads. The secret never leaves the server; clients only get the
// derived signature.
type MediaSettings struct {
	CloudName    string
	ApiKey       string
	ApiSecret    string
	UploadPreset string
}

var mediaSettings MediaSettings

func ConfigureMedia(settings MediaSettings) {
	mediaSettings = settings
}

type MediaSignatureRequest struct {
	Folder       string `json:"folder" form:"folder"`
	ResourceType string `json:"resourceType" form:"resourceType"`
}

type MediaSignatureResponse struct {
	Timestamp int64  `json:"timestamp"`
	Signature string `json:"signature"`
	ApiKey    string `json:"apiKey"`
	CloudName string `json:"cloudName"`
	Folder    string `json:"folder,omitempty"`
}

// CreateMediaSignature issues a signed upload ticket for the media CDN.
func CreateMediaSignature(c *gin.Context) {
	if mediaSettings.ApiSecret == "" {
		RespondError(c, "media uploads not configured", http.StatusServiceUnavailable)
		return
	}

	var req MediaSignatureRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	timestamp := time.Now().Unix()
	params := map[string]string{
		"timestamp": strconv.FormatInt(timestamp, 10),
	}
	if req.ResourceType != "" {
		params["resource_type"] = req.ResourceType
	} else {
		params["resource_type"] = "image"
	}
	if req.Folder != "" {
		params["folder"] = req.Folder
	}
	if mediaSettings.UploadPreset != "" {
		params["upload_preset"] = mediaSettings.UploadPreset
	}

	RespondSuccess(c, MediaSignatureResponse{
		Timestamp: timestamp,
		Signature: signUploadParams(params, mediaSettings.ApiSecret),
		ApiKey:    mediaSettings.ApiKey,
		CloudName: mediaSettings.CloudName,
		Folder:    req.Folder,
	})
}

// signUploadParams builds the provider's signature: SHA-1 over the params
// serialized as "k=v" pairs, sorted by key, joined by "&", with the API
// secret appended.
func signUploadParams(params map[string]string, secret string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}

	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + secret))
	return hex.EncodeToString(sum[:])
}
