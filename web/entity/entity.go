// Package entity defines data structures used by the web layer of the
// spesometro panel.
package entity

import (
	"crypto/tls"
	"math"
	"net"
	"strings"
	"time"

	"github.com/domysh/spesometro/util/common"
)

// Msg represents a standard API response message with success status,
// message text, and optional data object.
type Msg struct {
	Success bool   `json:"success"`
	Msg     string `json:"msg"`
	Obj     any    `json:"obj"`
}

// Token is the login response carrying a bearer session token.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// IdResponse reports the id affected by a mutation.
type IdResponse struct {
	Id string `json:"id"`
}

// AllSetting contains the runtime-tunable configuration of the panel.
type AllSetting struct {
	WebListen        string `json:"webListen" form:"webListen"`               // Web server listen IP address
	WebDomain        string `json:"webDomain" form:"webDomain"`               // Web server domain for domain validation
	WebPort          int    `json:"webPort" form:"webPort"`                   // Web server port number
	WebCertFile      string `json:"webCertFile" form:"webCertFile"`           // Path to SSL certificate file
	WebKeyFile       string `json:"webKeyFile" form:"webKeyFile"`             // Path to SSL private key file
	WebBasePath      string `json:"webBasePath" form:"webBasePath"`           // Base path for panel URLs
	PageSize         int    `json:"pageSize" form:"pageSize"`                 // Number of items per page in lists
	TimeLocation     string `json:"timeLocation" form:"timeLocation"`         // Time zone location for scheduled jobs
	TokenExpiryHours int    `json:"tokenExpiryHours" form:"tokenExpiryHours"` // Session token lifetime in hours
}

// CheckValid validates all settings, checking IP addresses, ports, SSL
// certificates, and other configuration values.
func (s *AllSetting) CheckValid() error {
	if s.WebListen != "" {
		ip := net.ParseIP(s.WebListen)
		if ip == nil {
			return common.NewError("web listen is not valid ip:", s.WebListen)
		}
	}

	if s.WebPort <= 0 || s.WebPort > math.MaxUint16 {
		return common.NewError("web port is not a valid port:", s.WebPort)
	}

	if s.WebCertFile != "" || s.WebKeyFile != "" {
		_, err := tls.LoadX509KeyPair(s.WebCertFile, s.WebKeyFile)
		if err != nil {
			return common.NewErrorf("cert file <%v> or key file <%v> invalid: %v", s.WebCertFile, s.WebKeyFile, err)
		}
	}

	if !strings.HasPrefix(s.WebBasePath, "/") {
		s.WebBasePath = "/" + s.WebBasePath
	}
	if !strings.HasSuffix(s.WebBasePath, "/") {
		s.WebBasePath += "/"
	}

	if s.TokenExpiryHours <= 0 {
		return common.NewError("token expiry must be positive:", s.TokenExpiryHours)
	}

	_, err := time.LoadLocation(s.TimeLocation)
	if err != nil {
		return common.NewError("time location not exist:", s.TimeLocation)
	}

	return nil
}
