package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/neighborly/neighborly-api/community"
)

func memberEmail(c *gin.Context) string {
	return strings.ToLower(strings.TrimSpace(c.Param("email")))
}

// requestJoin asks the admins of a community to let the caller in
func (s *Server) requestJoin(c *gin.Context) {
	var params struct {
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&params); err != nil && c.Request.ContentLength > 0 {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if err := s.gate.RequestJoin(c, *currentProfile(c), c.Param("communityID"), params.Message); shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

func (s *Server) approveJoin(c *gin.Context) {
	if err := s.gate.ApproveJoin(c, currentProfile(c).Email, c.Param("communityID"), memberEmail(c)); shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

func (s *Server) rejectJoin(c *gin.Context) {
	if err := s.gate.RejectJoin(c, currentProfile(c).Email, c.Param("communityID"), memberEmail(c)); shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

func (s *Server) leaveCommunity(c *gin.Context) {
	if err := s.gate.Leave(c, c.Param("communityID"), currentProfile(c).Email); shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// blockMember is the admin action to block a member for a while or for good
func (s *Server) blockMember(c *gin.Context) {
	var params community.BlockInput
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	block, err := s.gate.Block(c, currentProfile(c).Email, c.Param("communityID"), memberEmail(c), params)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": block})
}

func (s *Server) unblockMember(c *gin.Context) {
	cm, err := s.gate.Unblock(c, currentProfile(c).Email, c.Param("communityID"), memberEmail(c))
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": cm})
}

func (s *Server) removeMember(c *gin.Context) {
	cm, err := s.gate.Remove(c, currentProfile(c).Email, c.Param("communityID"), memberEmail(c))
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": cm})
}

func (s *Server) listBlocks(c *gin.Context) {
	blocks, err := s.gate.ListBlocks(c, currentProfile(c).Email, c.Param("communityID"))
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": blocks})
}

func (s *Server) memberBlockStatus(c *gin.Context) {
	status, err := s.gate.IsBlocked(c, memberEmail(c), c.Param("communityID"))
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": status})
}
