package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/neighborly/neighborly-api/moderation"
)

// reportUser files a report against another user
func (s *Server) reportUser(c *gin.Context) {
	var params moderation.ReportInput
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	report, decision, err := s.scorer.RecordReport(currentProfile(c).Email, params)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": gin.H{
		"report_id":    report.ID,
		"auto_blocked": decision.Block,
	}})
}

// giveFeedback rates a helper, or the service itself through the placeholder target
func (s *Server) giveFeedback(c *gin.Context) {
	var params moderation.FeedbackInput
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	feedback, err := s.scorer.RecordFeedback(currentProfile(c).Email, params)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": feedback})
}

func (s *Server) getRating(c *gin.Context) {
	rating, err := s.scorer.Rating(strings.ToLower(strings.TrimSpace(c.Param("email"))))
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": rating})
}
