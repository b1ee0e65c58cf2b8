package api

import (
	"net/http"

	"github.com/RichardKnop/machinery/v1/backends/result"
	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/gin-gonic/gin"

	"github.com/neighborly/neighborly-api/background"
	"github.com/neighborly/neighborly-api/store"
)

type taskEnqueuer interface {
	SendTask(signature *tasks.Signature) (*result.AsyncResult, error)
}

// UseBackground hands the sweeps of the secret routes over to the background workers.
// Without it the sweeps run within the request.
func (s *Server) UseBackground(enqueuer taskEnqueuer) {
	s.background = enqueuer
}

func (s *Server) enqueue(c *gin.Context, name string) {
	if _, err := s.background.SendTask(&tasks.Signature{
		Name: name,
	}); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"result": "queued"})
}

// adminExpireBlocks is an internal only api to end the temporary blocks past their end date
func (s *Server) adminExpireBlocks(c *gin.Context) {
	if s.background != nil {
		s.enqueue(c, background.TaskProcessExpiredBlocks)
		return
	}

	count, err := s.sweeper.SweepExpiredBlocks(c)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": gin.H{"expired": count}})
}

// adminCleanupNotifications is an internal only api to drop notifications past retention
func (s *Server) adminCleanupNotifications(c *gin.Context) {
	if s.background != nil {
		s.enqueue(c, background.TaskCleanupExpiredNotifications)
		return
	}

	count, err := s.sweeper.SweepExpiredNotifications(c)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": gin.H{"deleted": count}})
}

type reportListParams struct {
	ReportType string `form:"report_type"`
	Status     string `form:"status"`
	Limit      int    `form:"limit"`
}

func (s *Server) adminListReports(c *gin.Context) {
	var params reportListParams
	if err := c.Bind(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	reports, err := s.scorer.ListReports(store.ReportFilter{
		ReportType: params.ReportType,
		Status:     params.Status,
		Limit:      params.Limit,
	})
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": reports})
}

func (s *Server) adminUpdateReport(c *gin.Context) {
	var params struct {
		Status string `json:"status"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if err := s.scorer.UpdateReportStatus(c.Param("reportID"), params.Status); shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

func (s *Server) adminModerationStats(c *gin.Context) {
	stats, err := s.scorer.Stats()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": stats})
}
