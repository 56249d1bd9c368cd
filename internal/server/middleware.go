package server

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// newSalt is drawn once per process; pseudonyms do not survive a restart.
func newSalt() string {
	var seed [16]byte
	if _, err := rand.Read(seed[:]); err != nil {
		log.Fatalf("access log: reading random salt: %v", err)
	}
	return hex.EncodeToString(seed[:])
}

// hashIP maps a client address to a short pseudonym.
func hashIP(salt, ip string) string {
	sum := sha256.Sum256([]byte(salt + "|" + ip))
	return hex.EncodeToString(sum[:8])
}

// accessLog logs one line per request. Static assets are skipped and
// clients sending DNT: 1 are logged without an identifier.
func accessLog(salt string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/static/") || strings.HasPrefix(path, "/favicon") {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		client := "-"
		if c.GetHeader("DNT") != "1" {
			client = hashIP(salt, c.ClientIP())
		}
		log.Printf("%s %s %d %s client=%s", c.Request.Method, path, c.Writer.Status(), time.Since(start).Round(time.Microsecond), client)
	}
}
