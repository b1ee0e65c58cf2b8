package logmodule

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestGinrus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	out, formatter := log.StandardLogger().Out, log.StandardLogger().Formatter
	defer func() {
		log.SetOutput(out)
		log.SetFormatter(formatter)
	}()

	var buf bytes.Buffer
	log.SetOutput(&buf)
	log.SetFormatter(&log.JSONFormatter{})

	r := gin.New()
	r.Use(Ginrus("API"))
	r.GET("/ok", func(c *gin.Context) {
		c.Set("uid", "user-1")
		c.Status(http.StatusOK)
	})
	r.GET("/missing", func(c *gin.Context) {
		c.Status(http.StatusNotFound)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok?x=1", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, buf.String(), `"prefix":"API"`)
	assert.Contains(t, buf.String(), `"uid":"user-1"`)
	assert.Contains(t, buf.String(), `"level":"info"`)

	buf.Reset()
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, buf.String(), `"level":"warning"`)
}
