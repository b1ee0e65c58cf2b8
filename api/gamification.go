package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) getXP(c *gin.Context) {
	xp, err := s.lifecycle.XP(c, currentProfile(c).ID)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": xp})
}

func (s *Server) getHelpHistory(c *gin.Context) {
	history, err := s.lifecycle.History(c, currentProfile(c).ID)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": history})
}

func (s *Server) getBadges(c *gin.Context) {
	badges, err := s.lifecycle.Badges(c, currentProfile(c).ID)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": badges})
}
