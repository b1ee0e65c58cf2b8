package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/neighborly/neighborly-api/apperr"
	"github.com/neighborly/neighborly-api/schema"
)

// accountRegister creates the profile of the token user or refreshes its contact fields
func (s *Server) accountRegister(c *gin.Context) {
	var params struct {
		Username string `json:"username"`
		Phone    string `json:"phone"`
		Language string `json:"language"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	email := c.GetString("email")
	if email == "" {
		abortWithError(c, apperr.Invalid("email", "the token carries no email"))
		return
	}

	username := strings.TrimSpace(params.Username)
	if username == "" {
		username = c.GetString("name")
	}

	language := strings.TrimSpace(params.Language)
	if language == "" {
		language = "en"
	}

	p, err := s.mongoStore.UpsertProfile(c, &schema.Profile{
		ID:       c.GetString("uid"),
		Email:    email,
		Username: username,
		Phone:    strings.TrimSpace(params.Phone),
		Language: language,
	}, time.Now())
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": p,
	})
}

// accountDetail is the API to query the profile of the caller
func (s *Server) accountDetail(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"result": currentProfile(c),
	})
}

type fcmTokenParams struct {
	Token string `json:"token"`
}

func bindFCMToken(c *gin.Context) (string, bool) {
	var params fcmTokenParams
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return "", false
	}

	token := strings.TrimSpace(params.Token)
	if token == "" {
		abortWithError(c, apperr.Invalid("token", "required"))
		return "", false
	}
	return token, true
}

// addFCMToken registers a device of the caller for push
func (s *Server) addFCMToken(c *gin.Context) {
	token, ok := bindFCMToken(c)
	if !ok {
		return
	}

	if err := s.mongoStore.AddFCMToken(c, currentProfile(c).ID, token); shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

func (s *Server) removeFCMToken(c *gin.Context) {
	token, ok := bindFCMToken(c)
	if !ok {
		return
	}

	if err := s.mongoStore.RemoveFCMToken(c, currentProfile(c).ID, token); shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
